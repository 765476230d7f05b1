package combinator

import "testing"

// abba builds a(bb)+a, the regex scenario from spec §8.
func abba() Expression {
	return Concat{
		A: Concat{A: Byte('a'), B: Plus{A: Concat{A: Byte('b'), B: Byte('b')}}},
		B: Byte('a'),
	}
}

func TestPlusConcatRegexScenario(t *testing.T) {
	n := abba().ToNFA()

	cases := []struct {
		input string
		want  bool
	}{
		{"aa", false},
		{"aba", false},
		{"abba", true},
		{"abbba", false},
		{"abbbba", true},
	}

	for _, c := range cases {
		if got := n.Simulate([]byte(c.input)); got != c.want {
			t.Errorf("Simulate(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestPlusConcatRegexScenarioViaDFA(t *testing.T) {
	n := abba().ToNFA()
	d := n.Lower()

	for _, in := range []string{"aa", "aba", "abba", "abbba", "abbbba"} {
		if d.Simulate([]byte(in)) != n.Simulate([]byte(in)) {
			t.Errorf("DFA/NFA mismatch on %q", in)
		}
	}
}

func TestByteMatchesExactlyOneByte(t *testing.T) {
	n := Byte('a').ToNFA()
	if !n.Simulate([]byte("a")) {
		t.Fatal(`Byte('a') should match "a"`)
	}
	if n.Simulate([]byte("b")) {
		t.Fatal(`Byte('a') should not match "b"`)
	}
	if n.Simulate([]byte("aa")) {
		t.Fatal(`Byte('a') should not match "aa"`)
	}
	if n.Simulate([]byte("")) {
		t.Fatal(`Byte('a') should not match ""`)
	}
}

func TestConcatAssociativity(t *testing.T) {
	left := Concat{A: Byte('a'), B: Concat{A: Byte('b'), B: Byte('c')}}
	right := Concat{A: Concat{A: Byte('a'), B: Byte('b')}, B: Byte('c')}

	leftNFA := left.ToNFA()
	rightNFA := right.ToNFA()

	for _, in := range []string{"abc", "ab", "abcd", "", "cba"} {
		if leftNFA.Simulate([]byte(in)) != rightNFA.Simulate([]byte(in)) {
			t.Errorf("concat(a, concat(b,c)) and concat(concat(a,b), c) disagree on %q", in)
		}
	}
}

func TestAltUnion(t *testing.T) {
	n := Alt{A: Byte('a'), B: Byte('b')}.ToNFA()
	for in, want := range map[string]bool{"a": true, "b": true, "c": false, "": false, "ab": false} {
		if got := n.Simulate([]byte(in)); got != want {
			t.Errorf("Alt(a,b).Simulate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestOptionalAcceptsEmpty(t *testing.T) {
	n := Optional{A: Byte('a')}.ToNFA()
	if !n.Simulate([]byte("")) {
		t.Fatal("Optional should accept empty input")
	}
	if !n.Simulate([]byte("a")) {
		t.Fatal("Optional should accept the wrapped expression's language")
	}
	if n.Simulate([]byte("aa")) {
		t.Fatal("Optional should not accept two occurrences")
	}
}

func TestPlusRequiresAtLeastOne(t *testing.T) {
	n := Plus{A: Byte('a')}.ToNFA()
	if n.Simulate([]byte("")) {
		t.Fatal("Plus should not accept empty input")
	}
	for _, in := range []string{"a", "aa", "aaa", "aaaaaaaaaa"} {
		if !n.Simulate([]byte(in)) {
			t.Errorf("Plus should accept %q", in)
		}
	}
}
