package jit

import (
	"strconv"
	"strings"
	"testing"

	"github.com/coregx/miniregex/combinator"
)

func TestEmitContainsOneBlockPerState(t *testing.T) {
	n := combinator.Byte('a').ToNFA()
	dfa := n.Lower()

	src := Emit(dfa)

	for i := 0; i < dfa.States(); i++ {
		label := "state" + strconv.Itoa(i) + ":"
		if !strings.Contains(src, label) {
			t.Errorf("Emit output missing label %q:\n%s", label, src)
		}
	}
	if !strings.Contains(src, "int jitted(char* c, int len)") {
		t.Errorf("Emit output missing function signature:\n%s", src)
	}
}

func TestEmitUsesNumericByteEscapes(t *testing.T) {
	n := combinator.Byte('\'').ToNFA() // a byte that would break a raw char literal
	dfa := n.Lower()

	src := Emit(dfa)

	if strings.Contains(src, "== '''") {
		t.Fatalf("Emit must not emit raw quote-breaking char literals:\n%s", src)
	}
	if !strings.Contains(src, "\\x27") {
		t.Errorf("Emit should emit a numeric hex escape for a quote byte:\n%s", src)
	}
}

func TestEmitAcceptReturnValues(t *testing.T) {
	dfa := combinator.Byte('a').ToNFA().Lower()
	src := Emit(dfa)

	// Exactly one state must return 1 on exhausted input (the accept
	// state); every other state returns 0.
	ones := strings.Count(src, "return 1; }")
	if ones != 1 {
		t.Errorf("Emit produced %d accepting states, want 1:\n%s", ones, src)
	}
}
