// Command miniregexdemo is the reference binary: it hard-codes the two
// end-to-end scenarios from spec §8 (the hand-built s1..s5 NFA and the
// a(bb)+a expression), runs each through all three backends, and prints
// the benchmark counts and elapsed times side by side — the same role
// basicTests/regexTests play in original_source/nfa.cc's main().
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/coregx/miniregex/harness"
	"github.com/coregx/miniregex/jit"
)

const sampleSize = 1000000

func main() {
	if err := runBasicScenario(); err != nil {
		fail(err)
	}
	if err := runRegexScenario(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	var toolchainErr *jit.ToolchainError
	if errors.As(err, &toolchainErr) {
		slog.Error("native toolchain failure", "stage", toolchainErr.Stage, "error", toolchainErr)
		os.Exit(1)
	}
	slog.Error("scenario failed", "error", err)
	os.Exit(1)
}

func runBasicScenario() error {
	fmt.Println("--------------------------")
	fmt.Println("Basic scenario (s1..s5)")

	n := harness.BuildScenarioNFA()

	fmt.Println("NFA:")
	_ = n.Dump(os.Stdout)

	d := n.Lower()
	fmt.Println("DFA:")
	_ = d.Dump(os.Stdout)

	h, err := jit.Build(d)
	if err != nil {
		return err
	}
	defer h.Close()

	if err := checkScenarioAssertions(n.Simulate, d.Simulate, h.Match); err != nil {
		return err
	}

	return runAndReport(harness.BasicVocabulary, n.Simulate, d.Simulate, h.Match)
}

func runRegexScenario() error {
	fmt.Println("--------------------------")
	fmt.Println("Regex scenario: a(bb)+a")

	expr := harness.BuildRegexExpression()
	n := expr.ToNFA().WithPrefilter()

	fmt.Println("NFA:")
	_ = n.Dump(os.Stdout)

	d := n.Lower().WithPrefilter(n)
	fmt.Println("DFA:")
	_ = d.Dump(os.Stdout)

	h, err := jit.Build(d)
	if err != nil {
		return err
	}
	defer h.Close()

	expected := map[string]bool{
		"aa": false, "aba": false, "abba": true, "abbba": false, "abbbba": true,
	}
	for in, want := range expected {
		for name, match := range map[string]func([]byte) bool{"nfa": n.Simulate, "dfa": d.Simulate, "jit": h.Match} {
			if got := match([]byte(in)); got != want {
				return fmt.Errorf("%s.Match(%q) = %v, want %v", name, in, got, want)
			}
		}
	}

	return runAndReport(harness.RegexVocabulary, n.Simulate, d.Simulate, h.Match)
}

func checkScenarioAssertions(nfaMatch, dfaMatch, jitMatch func([]byte) bool) error {
	expected := map[string]bool{"a": true, "ab": true, "abb": true, "c": false, "abbb": false}
	for in, want := range expected {
		for name, match := range map[string]func([]byte) bool{"nfa": nfaMatch, "dfa": dfaMatch, "jit": jitMatch} {
			if got := match([]byte(in)); got != want {
				return fmt.Errorf("%s.Match(%q) = %v, want %v", name, in, got, want)
			}
		}
	}
	return nil
}

func runAndReport(vocabulary []string, nfaMatch, dfaMatch, jitMatch func([]byte) bool) error {
	bench := harness.NewBenchmark(vocabulary, sampleSize, 0)

	nfaResult := bench.Run(nfaMatch)
	dfaResult := bench.Run(dfaMatch)
	jitResult := bench.Run(jitMatch)

	fmt.Printf("NFA: count=%d elapsed=%s\n", nfaResult.Count, nfaResult.Elapsed)
	fmt.Printf("DFA: count=%d elapsed=%s\n", dfaResult.Count, dfaResult.Elapsed)
	fmt.Printf("JIT: count=%d elapsed=%s\n", jitResult.Count, jitResult.Elapsed)

	if features := harness.CPUFeatures(); len(features) > 0 {
		fmt.Printf("host SIMD features: %v\n", features)
	}

	if nfaResult.Count != dfaResult.Count || dfaResult.Count != jitResult.Count {
		return fmt.Errorf("backend counts disagree: nfa=%d dfa=%d jit=%d", nfaResult.Count, dfaResult.Count, jitResult.Count)
	}
	return nil
}
