package color

import "testing"

// Scenarios S1-S3 from spec.md §8.
func TestOfScenarios(t *testing.T) {
	cases := []struct {
		guess, target, want string
	}{
		{"mourir", "manger", "rbbbbr"},
		{"marines", "manager", "rrybyrb"},
		{"mozozzgz", "montagne", "rrbbbbyb"},
	}

	for _, c := range cases {
		got, err := Of(c.guess, c.target)
		if err != nil {
			t.Fatalf("Of(%q, %q) error: %v", c.guess, c.target, err)
		}
		if got.String() != c.want {
			t.Errorf("Of(%q, %q) = %q, want %q", c.guess, c.target, got.String(), c.want)
		}
	}
}

// TestOfSelfIsAllExact is spec.md invariant 1: color(w, w) is all-Exact.
func TestOfSelfIsAllExact(t *testing.T) {
	for _, w := range []string{"mourir", "manager", "istanbul"} {
		v, err := Of(w, w)
		if err != nil {
			t.Fatalf("Of(%q, %q) error: %v", w, w, err)
		}
		if !v.AllExact() {
			t.Errorf("Of(%q, %q) = %q, want all-exact", w, w, v.String())
		}
	}
}

// TestExactPlusMisplacedCountsMinOccurrences is spec.md invariant 2.
func TestExactPlusMisplacedCountsMinOccurrences(t *testing.T) {
	guess, target := "mozozzgz", "montagne"
	v, err := Of(guess, target)
	if err != nil {
		t.Fatal(err)
	}

	counted := 0
	for _, c := range v {
		if c == Exact || c == Misplaced {
			counted++
		}
	}

	expected := 0
	for letter := byte('a'); letter <= 'z'; letter++ {
		g, tg := 0, 0
		for i := 0; i < len(guess); i++ {
			if guess[i] == letter {
				g++
			}
		}
		for i := 0; i < len(target); i++ {
			if target[i] == letter {
				tg++
			}
		}
		if g < tg {
			expected += g
		} else {
			expected += tg
		}
	}

	if counted != expected {
		t.Errorf("exact+misplaced = %d, want %d", counted, expected)
	}
}

// TestParseRoundTrip is spec.md S4.
func TestParseRoundTrip(t *testing.T) {
	v, err := Parse("RBBYYR")
	if err != nil {
		t.Fatal(err)
	}
	want := Vector{Exact, Absent, Absent, Misplaced, Misplaced, Exact}
	if len(v) != len(want) {
		t.Fatalf("Parse length = %d, want %d", len(v), len(want))
	}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("Parse[%d] = %v, want %v", i, v[i], want[i])
		}
	}
	if v.String() != "rbbyyr" {
		t.Errorf("String() = %q, want %q", v.String(), "rbbyyr")
	}
}

func TestParseInvalidChar(t *testing.T) {
	_, err := Parse("rbxyyr")
	if err == nil {
		t.Fatal("Parse with invalid char should error")
	}
	if _, ok := err.(ErrInvalidColorChar); !ok {
		t.Errorf("error type = %T, want ErrInvalidColorChar", err)
	}
}

// TestNewDefault is spec.md S6.
func TestNewDefault(t *testing.T) {
	if got := New(6).String(); got != "rbbbbb" {
		t.Errorf("New(6) = %q, want %q", got, "rbbbbb")
	}
	if got := New(9).String(); got != "rbbbbbbbb" {
		t.Errorf("New(9) = %q, want %q", got, "rbbbbbbbb")
	}
}

func TestStateIDDistinguishesVectors(t *testing.T) {
	a, _ := Parse("rbbbbb")
	b, _ := Parse("rybbbb")
	if a.StateID() == b.StateID() {
		t.Error("distinct vectors produced the same state id")
	}
	c, _ := Parse("rbbbbb")
	if a.StateID() != c.StateID() {
		t.Error("identical vectors produced different state ids")
	}
}

func TestOfLengthMismatch(t *testing.T) {
	_, err := Of("abc", "abcd")
	if err == nil {
		t.Fatal("Of with mismatched lengths should error")
	}
}
