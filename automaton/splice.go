package automaton

// Splice copies src's states and edges into dst under fresh identifiers,
// wires anchor to src's start state by an epsilon edge, and collapses all
// of src's former accept states into one freshly allocated "exit" state in
// dst, connected from each of them by an epsilon edge. It returns that
// exit identifier.
//
// Splice never marks anything as accepting in dst — the caller decides,
// exactly as the combinator package needs: Concat marks only its final
// exit as accepting, Alt marks both branches' exits, Optional and Plus
// mark their single exit plus an extra epsilon edge.
//
// This is the Go rendering of the original `merge(dst, dstref, src)` free
// function: same renumbering-map-then-replay-edges structure, expressed
// here as two state-count-length loops instead of an explicit map, since
// src's identifiers are already a dense 0..n-1 range and so translate by a
// constant offset.
func Splice(dst *NFA, anchor StateID, src *NFA) StateID {
	offset := StateID(dst.States())
	for i := 0; i < src.States(); i++ {
		dst.AddState()
	}
	for i := 0; i < src.States(); i++ {
		from := StateID(i)
		for _, e := range src.Edges(from) {
			target := e.Target + offset
			dst.AddEdge(from+offset, e.Epsilon, e.Label, target)
		}
	}

	dst.AddEpsilonEdge(anchor, src.Start()+offset)

	exit := dst.AddState()
	for i := 0; i < src.States(); i++ {
		if src.IsAccept(StateID(i)) {
			dst.AddEpsilonEdge(StateID(i)+offset, exit)
		}
	}

	return exit
}
