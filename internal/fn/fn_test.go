package fn

import "testing"

func TestKeyFilter(t *testing.T) {
	m := map[string]int{"keep": 1, "drop": 2}
	got := KeyFilter(func(k string) bool { return k == "keep" }, m)
	if len(got) != 1 || got["keep"] != 1 {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestValFilter(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}
	got := ValFilter(func(v int) bool { return v > 1 }, m)
	if len(got) != 2 || got["b"] != 2 || got["c"] != 3 {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestComplement(t *testing.T) {
	isEven := func(n int) bool { return n%2 == 0 }
	isOdd := Complement(isEven)
	if isOdd(2) || !isOdd(3) {
		t.Fatalf("complement misbehaved")
	}
}

func TestDZip(t *testing.T) {
	left := map[string]int{"shared": 1, "only": 2}
	right := map[string]string{"shared": "x"}
	got := DZip(left, right)
	if len(got) != 1 {
		t.Fatalf("expected only shared keys, got %v", got)
	}
	pair := got["shared"]
	if pair[0] != 1 || pair[1] != "x" {
		t.Fatalf("unexpected pair: %v", pair)
	}
}
