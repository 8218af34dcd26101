package sig

import "testing"

func TestSignatureString(t *testing.T) {
	s := New().Pos("a").PosDefault("b").VarArgs("rest").Key("k").KeyDefault("o").VarKeywords("extra")
	want := "(a, b=?, *rest, k, o=?, **extra)"
	if got := s.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSignatureStringBareStarSeparator(t *testing.T) {
	s := New().Pos("a").Key("k")
	if got := s.String(); got != "(a, *, k)" {
		t.Fatalf("expected keyword-only separator, got %q", got)
	}
}

func TestSignatureStringEmpty(t *testing.T) {
	if got := New().String(); got != "()" {
		t.Fatalf("expected (), got %q", got)
	}
}

func TestSignatureEqual(t *testing.T) {
	a := New().Pos("x").Key("k")
	b := New().Pos("x").Key("k")
	if !a.Equal(b) {
		t.Fatalf("expected signatures to be equal")
	}
	if a.Equal(New().Pos("y").Key("k")) {
		t.Fatalf("expected renamed signatures to differ")
	}
	if a.Equal(New().Pos("x")) {
		t.Fatalf("expected signatures of different length to differ")
	}
}

func TestValidateAcceptsWellFormedShapes(t *testing.T) {
	shapes := []Signature{
		New(),
		New().Pos("a").Pos("b"),
		New().Pos("a").PosDefault("b").VarArgs("rest").Key("k").KeyDefault("o").VarKeywords("extra"),
		New().Key("k"),
		New().VarKeywords("kw"),
	}
	for _, s := range shapes {
		if err := s.Validate(); err != nil {
			t.Fatalf("expected %s to validate, got %v", s, err)
		}
	}
}

func TestValidateRejectsMalformedShapes(t *testing.T) {
	cases := []struct {
		name string
		sig  Signature
	}{
		{"duplicate name", New().Pos("a").Pos("a")},
		{"required after defaulted", New().PosDefault("a").Pos("b")},
		{"positional after keyword", New().Key("k").Pos("a")},
		{"two var-positionals", New().VarArgs("a").VarArgs("b")},
		{"two var-keywords", New().VarKeywords("a").VarKeywords("b")},
		{"keyword after var-keyword", New().VarKeywords("kw").Key("k")},
		{"empty name", New().Pos("")},
	}
	for _, tc := range cases {
		if err := tc.sig.Validate(); err == nil {
			t.Fatalf("%s: expected validation error for %s", tc.name, tc.sig)
		}
	}
}

func TestParamsReturnsCopy(t *testing.T) {
	s := New().Pos("a")
	params := s.Params()
	params[0].Name = "mutated"
	if s.Params()[0].Name != "a" {
		t.Fatalf("Params must not expose internal state")
	}
}
