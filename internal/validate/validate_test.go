package validate_test

import (
	"strings"
	"testing"

	"superstar/internal/validate"
)

func TestQty(t *testing.T) {
	cases := map[string]int{"": 1, "abc": 1, "0": 1, "-3": 1, "2": 2, "50": 50, "999": 50}
	for in, want := range cases {
		if got := validate.Qty(in); got != want {
			t.Fatalf("Qty(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestQtyOrZero(t *testing.T) {
	cases := map[string]int{"": 0, "abc": 0, "-1": 0, "0": 0, "3": 3, "999": 50}
	for in, want := range cases {
		if got := validate.QtyOrZero(in); got != want {
			t.Fatalf("QtyOrZero(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestID(t *testing.T) {
	if _, ok := validate.ID("chips-salted"); !ok {
		t.Fatal("plain id rejected")
	}
	for _, bad := range []string{"", "a b", "<script>", "../etc"} {
		if _, ok := validate.ID(bad); ok {
			t.Fatalf("ID(%q) accepted", bad)
		}
	}
}

func TestQ(t *testing.T) {
	if _, ok := validate.Q("nylon sev"); !ok {
		t.Fatal("plain query rejected")
	}
	if _, ok := validate.Q("आलू चिप्स"); !ok {
		t.Fatal("hindi query rejected")
	}
	if _, ok := validate.Q("<script>"); ok {
		t.Fatal("angle brackets accepted")
	}
	long := strings.Repeat("न", 60)
	if q, ok := validate.Q(long); !ok || len([]rune(q)) != 50 {
		t.Fatalf("long query not truncated on a rune boundary: %q %v", q, ok)
	}
}
