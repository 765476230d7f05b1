package automaton

import "github.com/coregx/miniregex/internal/prefilter"

// bytePrefilter adapts internal/prefilter.Filter to the NFA/DFA Simulate
// hot path. A nil *bytePrefilter (or a bytePrefilter wrapping a nil Filter)
// always reports a possible match, so callers never need to special-case
// "no prefilter was extracted".
type bytePrefilter struct {
	f *prefilter.Filter
}

func (p *bytePrefilter) mayMatch(input []byte) bool {
	if p == nil {
		return true
	}
	return p.f.MayMatch(input)
}

// newBytePrefilter extracts the required literal along n's deterministic
// prefix — the run of states from the start state that each have exactly
// one outgoing edge, collecting the label of every byte edge crossed and
// tunneling through single epsilon edges without consuming input — and
// builds a bytePrefilter from it. Stopping at an accepting state or at the
// first branch (zero, two, or more outgoing edges) keeps the extracted
// literal a true requirement:
// there is no alternative path through the automaton that skips it. A
// single epsilon edge doesn't introduce such an alternative — it's exactly
// what automaton.Splice wires from a combinator's fresh start state into
// its first spliced sub-expression — so it must be followed, not treated
// as a branch.
//
// This mirrors, at a much smaller scale, the teacher's literal-prefix
// extraction (literal/extractor.go) feeding its Aho-Corasick strategy
// (meta/compile.go): both pull a required byte sequence out of the
// automaton's structure rather than from a syntax tree, then hand it to
// the same library for the actual scan.
func newBytePrefilter(n *NFA) *bytePrefilter {
	lit := extractRequiredLiteral(n)
	f, err := prefilter.New([][]byte{lit})
	if err != nil {
		// A build failure here means no patterns could be compiled into
		// an automaton; fall back to never filtering rather than
		// propagating a build-time error from an optional optimization.
		return nil
	}
	return &bytePrefilter{f: f}
}

// extractRequiredLiteral walks from n's start state through the run of
// states that have exactly one outgoing edge, collecting that edge's label
// whenever it's a byte edge and simply following it when it's an epsilon
// edge (a single epsilon edge carries no alternative path, unlike a
// branch). It stops at an accepting state, or at the first state with zero,
// or two or more, outgoing edges, since each means there is a way through
// the automaton that skips whatever comes next.
func extractRequiredLiteral(n *NFA) []byte {
	var lit []byte
	seen := make(map[StateID]bool)
	cur := n.Start()
	for cur != InvalidState && !seen[cur] {
		seen[cur] = true
		if n.IsAccept(cur) {
			break
		}
		edges := n.Edges(cur)
		if len(edges) != 1 {
			break
		}
		e := edges[0]
		if !e.Epsilon {
			lit = append(lit, e.Label)
		}
		cur = e.Target
	}
	return lit
}
