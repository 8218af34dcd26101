package sig

import (
	"strings"
	"testing"
)

func TestNormalizeStripsSelfReceiver(t *testing.T) {
	m, err := Std{}.Normalize(New().Pos("self").Pos("data"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Kind != KindFunction {
		t.Fatalf("expected function kind, got %s", m.Kind)
	}
	if got := m.Sig.String(); got != "(data)" {
		t.Fatalf("expected receiver stripped, got %q", got)
	}
}

func TestNormalizeFuncWrapperCarriesImpl(t *testing.T) {
	impl := func() {}
	m, err := Std{}.Normalize(Func{Sig: New().Pos("self"), Impl: impl})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Impl == nil {
		t.Fatalf("expected implementation to survive normalization")
	}
	if got := m.Sig.String(); got != "()" {
		t.Fatalf("expected empty shape after receiver strip, got %q", got)
	}
}

func TestNormalizeTypeFuncStripsCls(t *testing.T) {
	m, err := Std{}.Normalize(TypeFunc{Sig: New().Pos("cls").Pos("n")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Kind != KindTypeFunction {
		t.Fatalf("expected type function kind, got %s", m.Kind)
	}
	if got := m.Sig.String(); got != "(n)" {
		t.Fatalf("expected cls stripped, got %q", got)
	}
}

func TestNormalizeStaticFuncKeepsShape(t *testing.T) {
	m, err := Std{}.Normalize(StaticFunc{Sig: New().Pos("self").Pos("n")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.Sig.String(); got != "(self, n)" {
		t.Fatalf("static functions have no receiver to strip, got %q", got)
	}
}

func TestNormalizeProperty(t *testing.T) {
	m, err := Std{}.Normalize(Prop{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Kind != KindProperty {
		t.Fatalf("expected property kind, got %s", m.Kind)
	}
	if got := m.Sig.String(); got != "()" {
		t.Fatalf("properties take no arguments, got %q", got)
	}
}

func TestNormalizeRejectsPlainValues(t *testing.T) {
	_, err := Std{}.Normalize(42)
	if err == nil {
		t.Fatalf("expected error for plain value")
	}
	if !strings.Contains(err.Error(), "int") {
		t.Fatalf("error should name the value's type, got %q", err)
	}
}

func TestNormalizeRejectsInvalidShape(t *testing.T) {
	_, err := Std{}.Normalize(Func{Sig: New().Pos("a").Pos("a")})
	if err == nil {
		t.Fatalf("expected validation error for duplicate parameter")
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{New(), "function"},
		{Func{}, "function"},
		{TypeFunc{}, "type function"},
		{StaticFunc{}, "static function"},
		{Prop{}, "property"},
		{"text", "string"},
	}
	for _, tc := range cases {
		if got := Describe(tc.value); got != tc.want {
			t.Fatalf("Describe(%#v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}
