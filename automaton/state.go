package automaton

import (
	"fmt"
	"io"

	"github.com/coregx/miniregex/internal/conv"
)

// StateID uniquely identifies a state within a single automaton. Identifiers
// are dense, nonnegative integers assigned in insertion order and are stable
// for the life of the automaton (spec §3: "State identifier").
type StateID uint32

// InvalidState is the distinguished identifier for "no state". It is never
// returned by AddState.
const InvalidState StateID = 0xFFFFFFFF

// dumper is the minimal read-only view Dump needs over either an NFA or a
// DFA. Modeling the shared print routine as an interface rather than a
// common base struct is the Go analogue of the original's
// FABase<Edge>::print (spec §9: closed set of variants, uniform method).
type dumper interface {
	numStates() int
	dumpStart() StateID
	isAccept(StateID) bool
	edgeLines(StateID) []string
}

// Dump writes the textual representation described in spec §6: for each
// state, its identifier, "(start)"/"(match)" annotations, and its outgoing
// edges formatted as "<label-or-'eps'> -> <target>".
func dump(w io.Writer, d dumper) error {
	for i := 0; i < d.numStates(); i++ {
		id := StateID(conv.IntToUint32(i))
		line := fmt.Sprintf("State %d", id)
		if id == d.dumpStart() {
			line += " (start)"
		}
		if d.isAccept(id) {
			line += " (match)"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		for _, e := range d.edgeLines(id) {
			if _, err := fmt.Fprintf(w, "    %s\n", e); err != nil {
				return err
			}
		}
	}
	return nil
}

// sortStateIDs sorts a slice of StateID in place using insertion sort.
//
// Closure sets produced by epsilon-closure are typically small (fewer than
// a few dozen states) and often nearly sorted already, so insertion sort
// avoids the allocation overhead of sort.Slice for the common case — the
// same tradeoff the teacher makes in dfa/lazy/state.go's sortStateIDs.
func sortStateIDs(ids []StateID) {
	for i := 1; i < len(ids); i++ {
		key := ids[i]
		j := i - 1
		for j >= 0 && ids[j] > key {
			ids[j+1] = ids[j]
			j--
		}
		ids[j+1] = key
	}
}

// dedupSortedStateIDs removes consecutive duplicates from an
// already-sorted slice, returning the deduplicated prefix.
func dedupSortedStateIDs(ids []StateID) []StateID {
	if len(ids) == 0 {
		return ids
	}
	out := ids[:1]
	for _, id := range ids[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}

// sortedUnique returns a sorted, duplicate-free copy of ids.
func sortedUnique(ids []StateID) []StateID {
	cp := make([]StateID, len(ids))
	copy(cp, ids)
	sortStateIDs(cp)
	return dedupSortedStateIDs(cp)
}
