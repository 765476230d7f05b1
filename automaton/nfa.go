package automaton

import (
	"fmt"
	"io"

	"github.com/coregx/miniregex/internal/conv"
	"github.com/coregx/miniregex/internal/sparse"
)

// Edge is a single outgoing transition of an NFA state: either an epsilon
// transition (no input consumed) or a transition on a single byte.
type Edge struct {
	Epsilon bool
	Label   byte
	Target  StateID
}

// nfaState owns an ordered sequence of outgoing edges (spec §3: "Each state
// owns an ordered sequence of outgoing edges"). Duplicate edges are
// permitted and order of insertion is preserved but not semantically
// significant (spec §9 Open Questions: the reference permits this).
type nfaState struct {
	edges []Edge
}

// NFA is a Thompson-style nondeterministic finite automaton over an 8-bit
// byte alphabet plus epsilon transitions. Automata are built once (states
// and edges added, start/accept configured) and then queried read-only;
// mutators are not reentrant and must complete before Simulate or Lower is
// called (spec §5).
type NFA struct {
	states []nfaState
	start  StateID
	accept map[StateID]struct{}

	prefilter *bytePrefilter // optional, see WithPrefilter
}

// NewNFA creates an empty NFA with no states, no start, and no accept
// states.
func NewNFA() *NFA {
	return &NFA{
		start:  InvalidState,
		accept: make(map[StateID]struct{}),
	}
}

// AddState appends a new state with no outgoing edges and returns its
// identifier.
func (n *NFA) AddState() StateID {
	id := StateID(conv.IntToUint32(len(n.states)))
	n.states = append(n.states, nfaState{})
	return id
}

// SetStart records start as the unique start state. Calling SetStart again
// overwrites the previous value; the last call before matching wins (spec
// §4.1: "may be called multiple times, last write wins until matching").
func (n *NFA) SetStart(start StateID) {
	n.start = start
}

// Start returns the current start state, or InvalidState if none has been
// set.
func (n *NFA) Start() StateID {
	return n.start
}

// AddAccept inserts state into the accept set. It panics with a *BuildError
// if state was already present, per spec §3 ("each identifier may be added
// at most once; duplicate-insert is a programmer error").
func (n *NFA) AddAccept(state StateID) {
	if _, dup := n.accept[state]; dup {
		panic(&BuildError{Message: "duplicate accept state", State: state})
	}
	n.accept[state] = struct{}{}
}

// IsAccept reports whether state is in the accept set.
func (n *NFA) IsAccept(state StateID) bool {
	_, ok := n.accept[state]
	return ok
}

// AddEdge appends an edge from -> to labeled label (a byte value, ignored
// when epsilon is true). It panics with a *BuildError if from or to is not
// a state of this NFA, so a dangling edge cannot be constructed.
func (n *NFA) AddEdge(from StateID, epsilon bool, label byte, to StateID) {
	if int(from) >= len(n.states) || int(to) >= len(n.states) {
		panic(&BuildError{Message: fmt.Sprintf("edge %d -> %d refers to a state outside the automaton", from, to), State: from})
	}
	n.states[from].edges = append(n.states[from].edges, Edge{Epsilon: epsilon, Label: label, Target: to})
}

// AddEpsilonEdge is a convenience wrapper for AddEdge(from, true, 0, to).
func (n *NFA) AddEpsilonEdge(from, to StateID) {
	n.AddEdge(from, true, 0, to)
}

// AddByteEdge is a convenience wrapper for AddEdge(from, false, label, to).
func (n *NFA) AddByteEdge(from StateID, label byte, to StateID) {
	n.AddEdge(from, false, label, to)
}

// States returns the number of states in the NFA.
func (n *NFA) States() int {
	return len(n.states)
}

// Edges returns the outgoing edges of state, in insertion order. The
// returned slice must not be modified.
func (n *NFA) Edges(state StateID) []Edge {
	return n.states[state].edges
}

// closure computes the epsilon closure of the given seed states in place:
// the least set C containing every seed such that for every q in C and
// every epsilon edge q -> q', q' is also in C (spec §4.1). It is a
// depth-first fixed point over an explicit stack with a visited marker,
// which terminates on cyclic epsilon graphs (e.g. the back-edge Plus
// introduces) because each state is expanded (marked visited and its
// epsilon edges pushed) at most once.
func (n *NFA) closure(seeds []StateID, visited *sparse.Set, out *[]StateID) {
	stack := append([]StateID(nil), seeds...)
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Contains(uint32(q)) {
			continue
		}
		visited.Insert(uint32(q))
		*out = append(*out, q)
		for _, e := range n.states[q].edges {
			if e.Epsilon && !visited.Contains(uint32(e.Target)) {
				stack = append(stack, e.Target)
			}
		}
	}
}

// Closure returns the epsilon closure of seeds as a sorted, duplicate-free
// slice of StateID. It is exported for use by subset construction
// (automaton.Lower) in addition to Simulate.
func (n *NFA) Closure(seeds ...StateID) []StateID {
	visited := sparse.New(uint32(len(n.states)))
	var out []StateID
	n.closure(seeds, visited, &out)
	return sortedUnique(out)
}

// Simulate runs the NFA over input and reports whether it accepts (spec
// §4.1). It panics with a *MatchError if the NFA has no states, no start
// state, or an empty accept set (spec §3 invariants, §7 "Empty automaton
// use").
func (n *NFA) Simulate(input []byte) bool {
	if err := n.checkReady(); err != nil {
		panic(err)
	}
	if n.prefilter != nil && !n.prefilter.mayMatch(input) {
		return false
	}

	numStates := uint32(len(n.states))
	var current []StateID
	n.closure([]StateID{n.start}, sparse.New(numStates), &current)

	for _, b := range input {
		var next []StateID
		for _, q := range current {
			for _, e := range n.states[q].edges {
				if !e.Epsilon && e.Label == b {
					next = append(next, e.Target)
				}
			}
		}
		var closed []StateID
		n.closure(next, sparse.New(numStates), &closed)
		current = closed
		if len(current) == 0 {
			// An empty current set can never become nonempty again (no
			// edges originate from states that aren't there), so the
			// match is settled early as false — permitted, not required,
			// by spec §4.1.
			return false
		}
	}

	return n.containsAccept(current)
}

func (n *NFA) containsAccept(states []StateID) bool {
	for _, q := range states {
		if n.IsAccept(q) {
			return true
		}
	}
	return false
}

func (n *NFA) checkReady() error {
	if len(n.states) == 0 {
		return &MatchError{Message: "simulate on empty NFA", Err: ErrInvalidState}
	}
	if n.start == InvalidState || int(n.start) >= len(n.states) {
		return &MatchError{Message: "simulate with no start state", Err: ErrNoStart}
	}
	if len(n.accept) == 0 {
		return &MatchError{Message: "simulate with empty accept set", Err: ErrNoAccept}
	}
	return nil
}

// WithPrefilter attaches an optional required-literal prefilter built from
// this NFA's structure. See internal/prefilter and SPEC_FULL.md's DOMAIN
// STACK section: it only ever short-circuits a definite non-match, never
// changes a definite match into a non-match.
func (n *NFA) WithPrefilter() *NFA {
	n.prefilter = newBytePrefilter(n)
	return n
}

// --- dumper implementation ---

func (n *NFA) numStates() int          { return len(n.states) }
func (n *NFA) dumpStart() StateID      { return n.Start() }
func (n *NFA) isAccept(s StateID) bool { return n.IsAccept(s) }

func (n *NFA) edgeLines(s StateID) []string {
	lines := make([]string, 0, len(n.states[s].edges))
	for _, e := range n.states[s].edges {
		if e.Epsilon {
			lines = append(lines, fmt.Sprintf("eps -> %d", e.Target))
		} else {
			lines = append(lines, fmt.Sprintf("%q -> %d", rune(e.Label), e.Target))
		}
	}
	return lines
}

// Dump writes the textual representation described in spec §6.
func (n *NFA) Dump(w io.Writer) error {
	return dump(w, n)
}
