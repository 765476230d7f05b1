package automaton

import (
	"fmt"
	"io"

	"github.com/coregx/miniregex/internal/conv"
)

// dfaState is a single DFA state: a function from byte to target StateID.
// Each (source, byte) pair has at most one target (spec §3).
type dfaState struct {
	edges map[byte]StateID
}

// DFA is a deterministic finite automaton over an 8-bit byte alphabet,
// produced by subset construction (Lower) from an NFA. Like NFA, it is
// built once and then queried read-only.
type DFA struct {
	states []dfaState
	start  StateID
	accept map[StateID]struct{}

	prefilter *bytePrefilter
}

// newDFA creates an empty DFA. Unexported: the only supported way to build
// a DFA is NFA.Lower, which maintains the subset-construction invariants
// (spec §4.3) that a free-standing mutator API would let a caller violate.
func newDFA() *DFA {
	return &DFA{start: InvalidState, accept: make(map[StateID]struct{})}
}

// addState appends a new DFA state with no outgoing edges and returns its
// identifier.
func (d *DFA) addState() StateID {
	id := StateID(conv.IntToUint32(len(d.states)))
	d.states = append(d.states, dfaState{edges: make(map[byte]StateID)})
	return id
}

// addEdge records source -byte(label)-> target. It panics with a
// *BuildError if an edge already exists for (source, label), since a DFA
// transition function must be single-valued (spec §3).
func (d *DFA) addEdge(source StateID, label byte, target StateID) {
	if _, dup := d.states[source].edges[label]; dup {
		panic(&BuildError{Message: fmt.Sprintf("duplicate DFA edge on byte %q", label), State: source})
	}
	d.states[source].edges[label] = target
}

func (d *DFA) setStart(s StateID) { d.start = s }

func (d *DFA) addAccept(s StateID) {
	if _, dup := d.accept[s]; dup {
		panic(&BuildError{Message: "duplicate accept state", State: s})
	}
	d.accept[s] = struct{}{}
}

// Start returns the DFA's start state.
func (d *DFA) Start() StateID { return d.start }

// IsAccept reports whether state is accepting.
func (d *DFA) IsAccept(state StateID) bool {
	_, ok := d.accept[state]
	return ok
}

// States returns the number of states in the DFA.
func (d *DFA) States() int { return len(d.states) }

// Transition returns the target of state's outgoing edge on byte b, and
// whether one exists.
func (d *DFA) Transition(state StateID, b byte) (StateID, bool) {
	t, ok := d.states[state].edges[b]
	return t, ok
}

// Simulate walks the DFA's state table one byte at a time (spec §4.4): if
// the current state has no outgoing edge on the next byte, it returns false
// immediately; otherwise it returns true iff the final state is accepting.
func (d *DFA) Simulate(input []byte) bool {
	if err := d.checkReady(); err != nil {
		panic(err)
	}
	if d.prefilter != nil && !d.prefilter.mayMatch(input) {
		return false
	}

	state := d.start
	for _, b := range input {
		next, ok := d.Transition(state, b)
		if !ok {
			return false
		}
		state = next
	}
	return d.IsAccept(state)
}

func (d *DFA) checkReady() error {
	if len(d.states) == 0 {
		return &MatchError{Message: "simulate on empty DFA", Err: ErrInvalidState}
	}
	if d.start == InvalidState || int(d.start) >= len(d.states) {
		return &MatchError{Message: "simulate with no start state", Err: ErrNoStart}
	}
	if len(d.accept) == 0 {
		return &MatchError{Message: "simulate with empty accept set", Err: ErrNoAccept}
	}
	return nil
}

// WithPrefilter attaches an optional required-literal prefilter built from
// the structure of nfa, the NFA this DFA was lowered from. See
// internal/prefilter and SPEC_FULL.md's DOMAIN
// STACK section.
func (d *DFA) WithPrefilter(nfa *NFA) *DFA {
	d.prefilter = newBytePrefilter(nfa)
	return d
}

// --- dumper implementation ---

func (d *DFA) numStates() int          { return len(d.states) }
func (d *DFA) dumpStart() StateID      { return d.Start() }
func (d *DFA) isAccept(s StateID) bool { return d.IsAccept(s) }

func (d *DFA) edgeLines(s StateID) []string {
	// Deterministic output order regardless of map iteration order.
	lines := make([]string, 0, len(d.states[s].edges))
	for b := 0; b < 256; b++ {
		if target, ok := d.states[s].edges[byte(b)]; ok {
			lines = append(lines, fmt.Sprintf("%q -> %d", rune(b), target))
		}
	}
	return lines
}

// Dump writes the textual representation described in spec §6.
func (d *DFA) Dump(w io.Writer) error {
	return dump(w, d)
}
