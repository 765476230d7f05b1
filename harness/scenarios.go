package harness

import (
	"github.com/coregx/miniregex/automaton"
	"github.com/coregx/miniregex/combinator"
)

// BasicVocabulary is the sample vocabulary from original_source/nfa.cc's
// basicTests, used to benchmark the hand-built s1..s5 NFA (spec §8,
// "Concrete end-to-end scenarios").
var BasicVocabulary = []string{
	"aba", "abb", "aa", "ab", "a",
	"aaa", "aab", "baa", "bba", "bbb", "ba", "bb", "b", "c",
	"blah blah blah", "abaracadabara",
}

// RegexVocabulary is the sample vocabulary from original_source/nfa.cc's
// regexTests, used to benchmark the a(bb)+a expression (spec §8, "Regex
// scenario"). The entry ending in "blah blah blah" is two strings
// concatenated in the original source (adjacent C++ string literals with no
// separating comma),
// carried over here rather than silently split into two, since nothing in
// the spec says the vocabulary itself must be semantically clean — only
// that the benchmark be deterministic.
var RegexVocabulary = []string{
	"aa", "aba", "abba", "abbba", "abbbba",
	"abbbbbbbbbbbbbbbbbbbba",
	"abbbbbbbbbbbbbbbbbbablah blah blah",
	"abaracadabara", "crapola",
}

// BuildScenarioNFA constructs the hand-built NFA from spec §8: states
// s1..s5, start s1, accept {s5}, edges s1->eps s2, s1->a s3, s2->a s4,
// s2->a s5, s3->b s4, s4->a s5, s4->b s5.
func BuildScenarioNFA() *automaton.NFA {
	n := automaton.NewNFA()
	s1 := n.AddState()
	s2 := n.AddState()
	s3 := n.AddState()
	s4 := n.AddState()
	s5 := n.AddState()

	n.AddEpsilonEdge(s1, s2)
	n.AddByteEdge(s1, 'a', s3)
	n.AddByteEdge(s2, 'a', s4)
	n.AddByteEdge(s2, 'a', s5)
	n.AddByteEdge(s3, 'b', s4)
	n.AddByteEdge(s4, 'a', s5)
	n.AddByteEdge(s4, 'b', s5)

	n.SetStart(s1)
	n.AddAccept(s5)
	return n
}

// BuildRegexExpression constructs a(bb)+a, the same example worked through
// in original_source/nfa.cc's regexTests (citing
// https://swtch.com/~rsc/regexp/nfa.c.txt).
func BuildRegexExpression() combinator.Expression {
	return combinator.Concat{
		A: combinator.Concat{
			A: combinator.Byte('a'),
			B: combinator.Plus{A: combinator.Concat{A: combinator.Byte('b'), B: combinator.Byte('b')}},
		},
		B: combinator.Byte('a'),
	}
}
