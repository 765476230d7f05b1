// Package harness provides the deterministic benchmark driver and
// reference scenarios used to cross-check the NFA, DFA, and JIT backends
// against each other (spec §4.6, §8: "all three backends ... on the same
// inputs must return the same count — this is the primary correctness
// gate"). Grounded directly on original_source/nfa.cc's Benchmark and
// TimedScope: a fixed-size sample built once from a small vocabulary with a
// seeded generator, timed around the inner loop only.
package harness

import (
	"math/rand"
	"time"

	"golang.org/x/sys/cpu"
)

// MatchFunc is the common shape of automaton.NFA.Simulate,
// automaton.DFA.Simulate, and jit.Handle.Match: each is already assignable
// to this type as a method value, so Benchmark.Run takes any of the three
// interchangeably without an adapter type.
type MatchFunc func(input []byte) bool

// Benchmark holds a fixed, pre-sampled sequence of inputs.
type Benchmark struct {
	inputs [][]byte
}

// NewBenchmark builds a Benchmark by sampling count inputs, with
// replacement, from vocabulary using a seeded generator — the same seed
// always produces the same sequence (spec §4.6).
func NewBenchmark(vocabulary []string, count int, seed int64) *Benchmark {
	r := rand.New(rand.NewSource(seed))
	inputs := make([][]byte, count)
	for i := range inputs {
		inputs[i] = []byte(vocabulary[r.Intn(len(vocabulary))])
	}
	return &Benchmark{inputs: inputs}
}

// Result is the outcome of one Run: how many inputs matched, and how long
// the inner loop took.
type Result struct {
	Count   int
	Elapsed time.Duration
}

// Run calls match over every sampled input, in order, timing only the loop
// itself (spec §4.6, "A scoped timer measures wall-clock elapsed time
// around the inner loop").
func (b *Benchmark) Run(match MatchFunc) Result {
	start := time.Now()
	count := 0
	for _, in := range b.inputs {
		if match(in) {
			count++
		}
	}
	return Result{Count: count, Elapsed: time.Since(start)}
}

// CPUFeatures reports the SIMD instruction sets available on the current
// host, for diagnostic inclusion alongside benchmark results — it has no
// effect on correctness or on which backend runs. A scalar DFA walk and a
// goto-threaded JIT function both execute one byte at a time regardless of
// what the CPU additionally supports; this is purely informational, the
// same role golang.org/x/sys/cpu plays in the teacher's simd package
// (simd/memchr_amd64.go) one level further from the byte loop.
func CPUFeatures() []string {
	var features []string
	if cpu.X86.HasAVX2 {
		features = append(features, "AVX2")
	}
	if cpu.X86.HasSSE42 {
		features = append(features, "SSE4.2")
	}
	if cpu.ARM64.HasASIMD {
		features = append(features, "ASIMD")
	}
	return features
}
