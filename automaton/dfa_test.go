package automaton

import "testing"

func TestDFASimulateScenario(t *testing.T) {
	n := buildScenarioNFA()
	d := n.Lower()

	cases := []struct {
		input string
		want  bool
	}{
		{"a", true},
		{"ab", true},
		{"abb", true},
		{"c", false},
		{"abbb", false},
	}

	for _, c := range cases {
		if got := d.Simulate([]byte(c.input)); got != c.want {
			t.Errorf("Simulate(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestDFANoDuplicateEdgesPerByte(t *testing.T) {
	n := buildScenarioNFA()
	d := n.Lower()

	for s := 0; s < d.States(); s++ {
		seen := make(map[byte]bool)
		for b := 0; b < 256; b++ {
			if _, ok := d.Transition(StateID(s), byte(b)); ok {
				if seen[byte(b)] {
					t.Fatalf("state %d has duplicate edge on byte %d", s, b)
				}
				seen[byte(b)] = true
			}
		}
	}
}

func TestDFAAddEdgeDuplicatePanics(t *testing.T) {
	d := newDFA()
	s0 := d.addState()
	s1 := d.addState()
	s2 := d.addState()
	d.addEdge(s0, 'a', s1)

	defer func() {
		if recover() == nil {
			t.Fatal("duplicate addEdge on same (state, byte) should panic")
		}
	}()
	d.addEdge(s0, 'a', s2)
}

func TestDFASimulatePanicsWhenNotReady(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Simulate on unconfigured DFA should panic")
		}
	}()
	newDFA().Simulate([]byte("a"))
}
