package contract

import (
	"strings"
	"testing"

	"iface/iface-go/pkg/sig"
	"iface/iface-go/pkg/typesys"
)

func mustInterface(t *testing.T, name string, members []typesys.MemberDecl) *Interface {
	t.Helper()
	i, err := Declare(name, Spec{Members: members})
	if err != nil {
		t.Fatalf("declaring %s: %v", name, err)
	}
	return i
}

func TestDeclareNormalizesSignatures(t *testing.T) {
	i := mustInterface(t, "Writer", []typesys.MemberDecl{
		{Name: "write", Value: sig.New().Pos("self").Pos("data")},
		{Name: "flush", Value: sig.New().Pos("self")},
	})
	names := i.MemberNames()
	if len(names) != 2 || names[0] != "flush" || names[1] != "write" {
		t.Fatalf("expected sorted member names, got %v", names)
	}
	write := i.Members()["write"]
	if write.Kind != sig.KindFunction {
		t.Fatalf("expected function kind, got %s", write.Kind)
	}
	if got := write.Sig.String(); got != "(data)" {
		t.Fatalf("expected receiver-stripped shape, got %q", got)
	}
}

func TestDeclareSkipsStructuralNames(t *testing.T) {
	i := mustInterface(t, "Writer", []typesys.MemberDecl{
		{Name: "doc", Value: "interface documentation"},
		{Name: "module", Value: "pkg/example"},
		{Name: "qualname", Value: "example.Writer"},
		{Name: "write", Value: sig.New().Pos("self").Pos("data")},
	})
	if names := i.MemberNames(); len(names) != 1 || names[0] != "write" {
		t.Fatalf("structural names must not become contract members, got %v", names)
	}
}

func TestDeclareFailsOnUnparseableMember(t *testing.T) {
	_, err := Declare("Display", Spec{Members: []typesys.MemberDecl{
		{Name: "answer", Value: 42},
	}})
	if err == nil {
		t.Fatalf("expected declaration-time failure")
	}
	msg := err.Error()
	for _, want := range []string{"couldn't parse signature", "Display.answer", "int"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error %q should mention %q", msg, want)
		}
	}
}

func TestDeclareFailsOnDuplicateMember(t *testing.T) {
	_, err := Declare("Writer", Spec{Members: []typesys.MemberDecl{
		{Name: "write", Value: sig.New().Pos("self")},
		{Name: "write", Value: sig.New().Pos("self")},
	}})
	if err == nil || !strings.Contains(err.Error(), "twice") {
		t.Fatalf("expected duplicate member error, got %v", err)
	}
}

func TestDeclareFailsOnDefaultWithoutImplementation(t *testing.T) {
	_, err := Declare("Writer", Spec{Members: []typesys.MemberDecl{
		{Name: "flush", Value: Default{Value: sig.New().Pos("self")}},
	}})
	if err == nil || !strings.Contains(err.Error(), "carries no implementation") {
		t.Fatalf("expected default-without-impl error, got %v", err)
	}
}

func TestDefaultsRecordedAsSignatures(t *testing.T) {
	impl := func() {}
	i := mustInterface(t, "Closer", []typesys.MemberDecl{
		{Name: "close", Value: Default{Value: sig.Func{Sig: sig.New().Pos("self"), Impl: impl}}},
	})
	if _, ok := i.Members()["close"]; !ok {
		t.Fatalf("defaulted members must still appear in signatures")
	}
	if _, ok := i.defaults["close"]; !ok {
		t.Fatalf("default descriptor not recorded")
	}
}

func TestInterfaceCannotBeInstantiated(t *testing.T) {
	i := mustInterface(t, "Writer", []typesys.MemberDecl{
		{Name: "write", Value: sig.New().Pos("self").Pos("data")},
	})
	if _, err := i.New(); err == nil || !strings.Contains(err.Error(), "can't instantiate interface Writer") {
		t.Fatalf("expected instantiation failure, got %v", err)
	}
}
