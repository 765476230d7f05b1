package harness

import "testing"

func TestNewBenchmarkDeterministic(t *testing.T) {
	vocab := []string{"a", "b", "c"}
	b1 := NewBenchmark(vocab, 1000, 42)
	b2 := NewBenchmark(vocab, 1000, 42)

	if len(b1.inputs) != len(b2.inputs) {
		t.Fatalf("input counts differ: %d vs %d", len(b1.inputs), len(b2.inputs))
	}
	for i := range b1.inputs {
		if string(b1.inputs[i]) != string(b2.inputs[i]) {
			t.Fatalf("same seed produced different input at %d: %q vs %q", i, b1.inputs[i], b2.inputs[i])
		}
	}
}

func TestBenchmarkRunCountsMatches(t *testing.T) {
	vocab := []string{"a", "b"}
	b := NewBenchmark(vocab, 100, 7)

	result := b.Run(func(in []byte) bool {
		return len(in) > 0 && in[0] == 'a'
	})

	want := 0
	for _, in := range b.inputs {
		if len(in) > 0 && in[0] == 'a' {
			want++
		}
	}
	if result.Count != want {
		t.Fatalf("Run().Count = %d, want %d", result.Count, want)
	}
}

func TestCPUFeaturesDoesNotPanic(t *testing.T) {
	_ = CPUFeatures()
}
