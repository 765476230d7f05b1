// Package combinator builds NFAs from a small closed set of expression
// variants: Byte, Concat, Alt, Optional, and Plus. Each lifts directly to
// an automaton.NFA via ToNFA, using automaton.Splice as the shared
// construction primitive — the Go equivalent of the C++ template classes
// (Char/And/Or/Maybe/OneOrMore) and their merge() splice in
// original_source/nfa.cc, modeled here as a single-method interface
// rather than a class hierarchy. The interface is exported, so any type
// with a ToNFA method is also an Expression.
package combinator

import "github.com/coregx/miniregex/automaton"

// Expression is any regex fragment that can be lowered to an NFA. The
// interface has exactly one method by design: the only thing any
// combinator variant needs to do is produce an automaton.
type Expression interface {
	// ToNFA builds a freshly allocated NFA with exactly one start state
	// and (for every variant but Alt) exactly one accept state.
	ToNFA() *automaton.NFA
}

// Byte matches exactly one input byte.
type Byte byte

// ToNFA builds the two-state shape from the table: s -> s' on Byte, s
// start, s' accept.
func (b Byte) ToNFA() *automaton.NFA {
	n := automaton.NewNFA()
	s := n.AddState()
	n.SetStart(s)
	accept := n.AddState()
	n.AddAccept(accept)
	n.AddByteEdge(s, byte(b), accept)
	return n
}

// Concat matches A followed immediately by B.
type Concat struct {
	A, B Expression
}

// ToNFA splices A then B off a fresh start, so the sole accept state is
// reached only after both have matched in sequence.
func (c Concat) ToNFA() *automaton.NFA {
	n := automaton.NewNFA()
	start := n.AddState()
	n.SetStart(start)

	mid := automaton.Splice(n, start, c.A.ToNFA())
	end := automaton.Splice(n, mid, c.B.ToNFA())

	n.AddAccept(end)
	return n
}

// Alt matches A or B.
type Alt struct {
	A, B Expression
}

// ToNFA splices both A and B off the same fresh start and accepts both
// exits, giving L(A) ∪ L(B).
func (alt Alt) ToNFA() *automaton.NFA {
	n := automaton.NewNFA()
	start := n.AddState()
	n.SetStart(start)

	exitA := automaton.Splice(n, start, alt.A.ToNFA())
	exitB := automaton.Splice(n, start, alt.B.ToNFA())

	n.AddAccept(exitA)
	n.AddAccept(exitB)
	return n
}

// Optional matches A zero or one times.
type Optional struct {
	A Expression
}

// ToNFA splices A off a fresh start and accepts its exit, plus an extra
// epsilon edge straight from start to that exit for the zero-occurrence
// case: L(A) ∪ {ε}.
func (o Optional) ToNFA() *automaton.NFA {
	n := automaton.NewNFA()
	start := n.AddState()
	n.SetStart(start)

	exit := automaton.Splice(n, start, o.A.ToNFA())
	n.AddAccept(exit)
	n.AddEpsilonEdge(start, exit)
	return n
}

// Plus matches A one or more times.
type Plus struct {
	A Expression
}

// ToNFA splices A off a fresh start and accepts its exit, plus a backward
// epsilon edge from that exit to start so another occurrence of A can
// follow: L(A)+. The back-edge is the cyclic epsilon graph that
// automaton.NFA's closure fixed point must terminate on.
func (p Plus) ToNFA() *automaton.NFA {
	n := automaton.NewNFA()
	start := n.AddState()
	n.SetStart(start)

	exit := automaton.Splice(n, start, p.A.ToNFA())
	n.AddAccept(exit)
	n.AddEpsilonEdge(exit, start)
	return n
}
