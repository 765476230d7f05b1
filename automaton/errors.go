// Package automaton provides the NFA/DFA data model shared by the rest of
// miniregex: dense-integer state identifiers, ordered edge lists, epsilon
// closure, subset construction, and straight state-table simulation.
package automaton

import (
	"errors"
	"fmt"
)

// Common automaton errors. These are programmer-misuse sentinels: the
// engine treats malformed construction as a bug (spec §7), so callers see
// them only via a panic carrying one of the wrapping types below, never as
// a normal error return from Simulate.
var (
	// ErrInvalidState indicates a StateID that does not belong to the
	// automaton it was used against.
	ErrInvalidState = errors.New("automaton: invalid state")

	// ErrNoStart indicates a match operation was attempted before SetStart
	// was called.
	ErrNoStart = errors.New("automaton: start state not set")

	// ErrNoAccept indicates a match operation was attempted before any
	// accept state was added.
	ErrNoAccept = errors.New("automaton: accept set is empty")
)

// BuildError reports a misuse of the builder API: a duplicate accept
// insertion, a duplicate DFA edge on the same (state, byte) pair, or an
// edge target that refers to a state outside the automaton.
type BuildError struct {
	Message string
	State   StateID
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.State != InvalidState {
		return fmt.Sprintf("automaton: build error at state %d: %s", e.State, e.Message)
	}
	return fmt.Sprintf("automaton: build error: %s", e.Message)
}

// MatchError reports an attempt to run a simulator against an automaton
// that has not satisfied the lifecycle invariants of spec §3: at least one
// state, a start state, and a nonempty accept set.
type MatchError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MatchError) Error() string {
	return fmt.Sprintf("automaton: %s: %v", e.Message, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *MatchError) Unwrap() error {
	return e.Err
}
