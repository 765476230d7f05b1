package automaton

import "testing"

func TestLowerEquivalenceAcrossBackends(t *testing.T) {
	n := buildScenarioNFA()
	d := n.Lower()

	inputs := []string{"a", "ab", "abb", "c", "abbb", "", "ba", "abba"}
	for _, in := range inputs {
		want := n.Simulate([]byte(in))
		got := d.Simulate([]byte(in))
		if got != want {
			t.Errorf("Lower().Simulate(%q) = %v, NFA.Simulate(%q) = %v", in, got, in, want)
		}
	}
}

func TestLowerDeterministicModuloNumbering(t *testing.T) {
	n := buildScenarioNFA()
	d1 := n.Lower()
	d2 := n.Lower()

	inputs := []string{"a", "ab", "abb", "c", "abbb", "abbbb", ""}
	for _, in := range inputs {
		if d1.Simulate([]byte(in)) != d2.Simulate([]byte(in)) {
			t.Errorf("two Lower() runs disagree on %q", in)
		}
	}
}

func TestClosureKeyOrderIndependent(t *testing.T) {
	a := []StateID{3, 1, 2}
	b := []StateID{1, 2, 3}

	ka := computeClosureKey(sortedUnique(a))
	kb := computeClosureKey(sortedUnique(b))
	if ka != kb {
		t.Fatalf("computeClosureKey not order-independent: %v vs %v", ka, kb)
	}
}

func TestLowerEmptyCycleNFA(t *testing.T) {
	// Plus-shaped epsilon cycle: lowering must terminate and produce a
	// DFA equivalent to the NFA.
	n := NewNFA()
	start := n.AddState()
	mid := n.AddState()
	accept := n.AddState()
	n.SetStart(start)
	n.AddAccept(accept)
	n.AddByteEdge(start, 'x', mid)
	n.AddEpsilonEdge(mid, accept)
	n.AddEpsilonEdge(accept, start)

	d := n.Lower()
	for _, in := range []string{"x", "xx", "xxx", "", "y"} {
		if d.Simulate([]byte(in)) != n.Simulate([]byte(in)) {
			t.Errorf("Lower() mismatch on %q", in)
		}
	}
}
