package lineview

import (
	"fmt"

	"github.com/dshills/lineview/internal/search"
)

// LiteralSet matches any of a fixed set of literal needles in a single
// pass over a view. The underlying automaton is built once and is safe
// for concurrent searches.
type LiteralSet struct {
	set *search.LiteralSet
}

// NewLiteralSet builds a matcher for the given needles.
func NewLiteralSet(needles ...string) (*LiteralSet, error) {
	set, err := search.NewLiteralSet(needles)
	if err != nil {
		return nil, fmt.Errorf("building literal set: %w", err)
	}
	return &LiteralSet{set: set}, nil
}

// Needles returns the set's needles in insertion order.
func (s *LiteralSet) Needles() []string {
	return s.set.Needles()
}

// Find returns the sub-view of v bounding the leftmost occurrence of
// any needle, or false if none occurs.
func (s *LiteralSet) Find(v View) (View, bool) {
	start, stop, ok := s.set.Find(v.Text())
	if !ok {
		return View{}, false
	}
	return newView(v.arena, v.start+start, v.start+stop), true
}

// Match reports whether any needle occurs in v.
func (s *LiteralSet) Match(v View) bool {
	return s.set.IsMatch(v.Text())
}
