// Package conv provides bounds-checked integer narrowing helpers.
//
// miniregex stores state identifiers as StateID (a uint32) but builds them
// up from plain int counters (slice lengths, loop indices). These helpers
// make that narrowing explicit and panic on overflow rather than silently
// wrapping, since an automaton with more than 2^32 states indicates a
// programming error, not a valid input.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
func IntToUint32(n int) uint32 {
	// Compare as uint so the check is correct even on 32-bit platforms
	// where int cannot represent math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("conv: int value out of uint32 range")
	}
	return uint32(n)
}
