// Package prefilter wraps an Aho-Corasick automaton as a cheap "can this
// possibly match" gate in front of a slower automaton walk, the same
// division of labor the teacher's prefilter package uses for literal
// alternations (meta/compile.go: UseAhoCorasick strategy) — scaled down to
// a single required literal, since miniregex has no syntax tree to extract
// multi-literal alternations from.
package prefilter

import "github.com/coregx/ahocorasick"

// Filter reports whether a haystack could possibly contain a match, given
// one or more literal byte sequences that are known to be required by every
// accepted string.
type Filter struct {
	auto *ahocorasick.Automaton
}

// New builds a Filter from a set of required literals. An empty or all-empty
// pattern list means nothing can be ruled out, and New returns (nil, nil);
// callers must treat a nil *Filter as "always may match".
func New(patterns [][]byte) (*Filter, error) {
	builder := ahocorasick.NewBuilder()
	any := false
	for _, p := range patterns {
		if len(p) == 0 {
			continue
		}
		builder.AddPattern(p)
		any = true
	}
	if !any {
		return nil, nil
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Filter{auto: auto}, nil
}

// MayMatch reports whether haystack could contain a match. A false result is
// definitive: no accepted string can occur in haystack. A true result is not
// a guarantee and must still be verified by the full automaton.
func (f *Filter) MayMatch(haystack []byte) bool {
	if f == nil {
		return true
	}
	return f.auto.IsMatch(haystack)
}
