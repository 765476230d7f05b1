package automaton

import "hash/fnv"

// closureKey is the canonical cache key for a closure set (spec §4.3):
// two closure sets are equal iff they contain the same identifiers. The
// key is computed as an FNV-1a hash over the sorted, duplicate-free
// sequence of identifiers, exactly the scheme the teacher's lazy DFA uses
// for its own state cache (dfa/lazy/state.go: ComputeStateKey,
// sortStateIDs) — sorting first makes the hash order-independent, so two
// runs that discover the same set via different edge orders still collide
// in the cache.
type closureKey uint64

func computeClosureKey(sorted []StateID) closureKey {
	h := fnv.New64a()
	var buf [4]byte
	for _, id := range sorted {
		buf[0] = byte(id)
		buf[1] = byte(id >> 8)
		buf[2] = byte(id >> 16)
		buf[3] = byte(id >> 24)
		_, _ = h.Write(buf[:])
	}
	return closureKey(h.Sum64())
}

// setIntersectsAccept reports whether any state in a (sorted or not) set
// belongs to the NFA's accept set.
func (n *NFA) setIntersectsAccept(set []StateID) bool {
	for _, q := range set {
		if n.IsAccept(q) {
			return true
		}
	}
	return false
}

// Lower performs subset construction (spec §4.3), producing a DFA
// equivalent to the NFA on all finite inputs.
//
// Construction is a queue-driven worklist rather than recursion, mirroring
// nfa/composite_dfa.go's buildDFASubsetConstruction: each newly discovered
// closure set is pushed onto a queue and expanded when popped, which keeps
// stack depth O(1) regardless of how many distinct DFA states the subset
// construction discovers (spec §5: "Implementations targeting large NFAs
// must convert the recursion to an explicit worklist").
func (n *NFA) Lower() *DFA {
	dfa := newDFA()

	cache := make(map[closureKey]StateID)

	type workItem struct {
		id  StateID
		set []StateID
	}

	seed := n.Closure(n.start)
	seedID := dfa.addState()
	cache[computeClosureKey(seed)] = seedID
	dfa.setStart(seedID)

	queue := []workItem{{id: seedID, set: seed}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if n.setIntersectsAccept(item.set) {
			dfa.addAccept(item.id)
		}

		// Partition labeled out-edges of the closure set by byte (spec
		// §4.3 step 2).
		targets := make(map[byte][]StateID)
		for _, q := range item.set {
			for _, e := range n.states[q].edges {
				if !e.Epsilon {
					targets[e.Label] = append(targets[e.Label], e.Target)
				}
			}
		}

		for label, ts := range targets {
			closed := n.Closure(ts...)
			key := computeClosureKey(closed)
			target, ok := cache[key]
			if !ok {
				target = dfa.addState()
				cache[key] = target
				queue = append(queue, workItem{id: target, set: closed})
			}
			dfa.addEdge(item.id, label, target)
		}
	}

	return dfa
}
