package jit

import (
	"os"
	"os/exec"
	"testing"

	"github.com/coregx/miniregex/combinator"
)

func requireCC(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("cc"); err != nil {
		t.Skip("no host C compiler on PATH; skipping JIT integration test")
	}
}

func TestBuildAndMatchRegexScenario(t *testing.T) {
	requireCC(t)

	expr := combinator.Concat{
		A: combinator.Concat{A: combinator.Byte('a'), B: combinator.Plus{A: combinator.Concat{A: combinator.Byte('b'), B: combinator.Byte('b')}}},
		B: combinator.Byte('a'),
	}
	dfa := expr.ToNFA().Lower()

	h, err := Build(dfa)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer h.Close()

	cases := map[string]bool{
		"aa":     false,
		"aba":    false,
		"abba":   true,
		"abbba":  false,
		"abbbba": true,
	}
	for in, want := range cases {
		if got := h.Match([]byte(in)); got != want {
			t.Errorf("Match(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCloseRemovesArtifacts(t *testing.T) {
	requireCC(t)

	dfa := combinator.Byte('a').ToNFA().Lower()
	h, err := Build(dfa)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	cFile, libFile := h.artifact.cFile, h.artifact.libFile
	if err := h.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	for _, f := range []string{cFile, libFile} {
		if _, err := os.Stat(f); !os.IsNotExist(err) {
			t.Errorf("artifact %q still exists after Close", f)
		}
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	requireCC(t)

	dfa := combinator.Byte('a').ToNFA().Lower()
	h, err := Build(dfa)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got: %v", err)
	}
}
