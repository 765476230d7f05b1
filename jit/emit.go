package jit

import (
	"fmt"
	"strings"

	"github.com/coregx/miniregex/automaton"
)

// Emit generates the C source for dfa's jitted function (spec §4.5): a
// single function int jitted(char*, int), one labeled block per DFA
// state, and a goto between blocks for every outgoing edge.
//
// Byte literals are always emitted as numeric hex escapes ('\x61', not
// 'a'): the reference emits raw character literals, which breaks for
// quote, backslash, newline, NUL, and non-ASCII bytes (spec §9, "JIT
// canonicalization of byte literals"). Numeric escapes are total over the
// byte alphabet and cost nothing in generated-code size or readability.
func Emit(dfa *automaton.DFA) string {
	var b strings.Builder
	b.WriteString("int jitted(char* c, int len) { char ch;\n")

	for i := 0; i < dfa.States(); i++ {
		state := automaton.StateID(i)
		accept := 0
		if dfa.IsAccept(state) {
			accept = 1
		}
		fmt.Fprintf(&b, "state%d:\n", i)
		fmt.Fprintf(&b, "if (!len) { return %d; }\n", accept)
		b.WriteString("ch = *c; ++c; --len;\n")

		for lo := 0; lo < 256; lo++ {
			target, ok := dfa.Transition(state, byte(lo))
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "if (ch == '\\x%02x') goto state%d;\n", lo, target)
		}

		b.WriteString("return 0;\n")
	}

	b.WriteString("}\n")
	return b.String()
}
