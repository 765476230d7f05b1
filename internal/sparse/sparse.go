// Package sparse implements a sparse set of small nonnegative integers.
//
// miniregex uses it as the "has this state ID already been visited in this
// pass" marker of the epsilon-closure fixed point (automaton.NFA), which
// both NFA simulation and subset construction (automaton.Lower, through
// NFA.Closure) run. It operates over a known, bounded universe — the NFA's
// state count — so a dense/sparse pair beats a map in both allocation count
// and cache behavior.
package sparse

// Set is a set of uint32 values with O(1) insert, membership test, and
// clear. It keeps a dense array (for iteration) alongside a sparse array
// (for membership testing); the sparse array maps a value to its index in
// the dense array, and a slot is only considered live if the round trip
// sparse[v] -> dense[sparse[v]] lands back on v within the current size.
type Set struct {
	sparse []uint32
	dense  []uint32
	size   uint32
}

// New creates a Set over the universe [0, capacity).
func New(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set. A value already present is a no-op.
// value must be within the universe passed to New.
func (s *Set) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
}

// Contains reports whether value is currently in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Clear empties the set in O(1), retaining the underlying arrays.
func (s *Set) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Len returns the number of elements currently in the set.
func (s *Set) Len() int {
	return int(s.size)
}

// Values returns the set's elements in insertion order. The slice aliases
// the set's internal storage and is only valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense[:s.size]
}
