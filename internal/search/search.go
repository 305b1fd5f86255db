// Package search implements the first-match primitives used to narrow
// views: literal substring search, compiled-regex search, and
// multi-literal search over an Aho-Corasick automaton. All functions
// operate on plain strings and return byte offsets relative to the
// haystack; callers translate them into arena-absolute ranges.
package search

import (
	"strings"

	"github.com/coregx/ahocorasick"
	coregex "github.com/coregx/coregex"
)

// Literal returns the byte range of the first occurrence of needle in
// haystack. Byte-exact and case-sensitive. The empty needle matches at
// the start of the haystack.
func Literal(haystack, needle string) (start, stop int, ok bool) {
	i := strings.Index(haystack, needle)
	if i < 0 {
		return 0, 0, false
	}
	return i, i + len(needle), true
}

// Regex returns the byte range of the leftmost match of re in haystack.
func Regex(haystack string, re *coregex.Regex) (start, stop int, ok bool) {
	loc := re.FindStringIndex(haystack)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// LiteralSet searches for any of a fixed set of literal needles in a
// single pass. The automaton is built once and is safe for concurrent
// searches.
type LiteralSet struct {
	auto    *ahocorasick.Automaton
	needles []string
}

// NewLiteralSet builds a LiteralSet from the given needles.
func NewLiteralSet(needles []string) (*LiteralSet, error) {
	builder := ahocorasick.NewBuilder()
	for _, n := range needles {
		builder.AddPattern([]byte(n))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &LiteralSet{
		auto:    auto,
		needles: append([]string(nil), needles...),
	}, nil
}

// Needles returns the set's needles in insertion order.
func (s *LiteralSet) Needles() []string {
	return s.needles
}

// Find returns the byte range of the leftmost occurrence of any needle.
func (s *LiteralSet) Find(haystack string) (start, stop int, ok bool) {
	m := s.auto.Find([]byte(haystack), 0)
	if m == nil {
		return 0, 0, false
	}
	return m.Start, m.End, true
}

// IsMatch reports whether any needle occurs in haystack.
func (s *LiteralSet) IsMatch(haystack string) bool {
	return s.auto.IsMatch([]byte(haystack))
}
