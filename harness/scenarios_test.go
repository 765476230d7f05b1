package harness

import "testing"

func TestBackendsAgreeOnScenarioNFA(t *testing.T) {
	n := BuildScenarioNFA()
	d := n.Lower()

	b := NewBenchmark(BasicVocabulary, 10000, 0)

	nfaResult := b.Run(n.Simulate)
	dfaResult := b.Run(d.Simulate)

	if nfaResult.Count != dfaResult.Count {
		t.Fatalf("NFA/DFA match counts differ: %d vs %d", nfaResult.Count, dfaResult.Count)
	}
}

func TestBackendsAgreeOnRegexExpression(t *testing.T) {
	n := BuildRegexExpression().ToNFA()
	d := n.Lower()

	b := NewBenchmark(RegexVocabulary, 10000, 0)

	nfaResult := b.Run(n.Simulate)
	dfaResult := b.Run(d.Simulate)

	if nfaResult.Count != dfaResult.Count {
		t.Fatalf("NFA/DFA match counts differ: %d vs %d", nfaResult.Count, dfaResult.Count)
	}
}
