package lineview

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/dshills/lineview/internal/arena"
	"github.com/dshills/lineview/internal/search"
)

// View is a shared, immutable reference to a byte range of an arena.
// Views are cheap values: every operation that returns a "new" view
// returns fresh offsets over the same backing text, never a copy of the
// bytes. A view's range is always aligned to codepoint boundaries.
//
// The zero View is a valid empty view with no backing arena.
type View struct {
	arena *arena.Arena
	start int // inclusive byte offset into the arena
	stop  int // exclusive byte offset into the arena
}

// NewView creates a view over a fresh arena owning the given content.
func NewView(content string) View {
	a := arena.New(content)
	return View{arena: a, start: 0, stop: a.Len()}
}

func newView(a *arena.Arena, start, stop int) View {
	return View{arena: a, start: start, stop: stop}
}

// Start returns the view's inclusive start offset in arena bytes.
func (v View) Start() int {
	return v.start
}

// Stop returns the view's exclusive stop offset in arena bytes.
func (v View) Stop() int {
	return v.stop
}

// Boundaries returns the view's (start, stop) byte offsets.
func (v View) Boundaries() (start, stop int) {
	return v.start, v.stop
}

// Len returns the view's length in bytes.
func (v View) Len() int {
	return v.stop - v.start
}

// IsEmpty returns true if the view covers no bytes.
func (v View) IsEmpty() bool {
	return v.start == v.stop
}

// Text materializes the view's range. The returned string shares the
// arena's backing bytes.
func (v View) Text() string {
	if v.arena == nil {
		return ""
	}
	return v.arena.Text(v.start, v.stop)
}

// String implements fmt.Stringer.
func (v View) String() string {
	return v.Text()
}

// SameArena reports whether both views share one backing arena.
func (v View) SameArena(other View) bool {
	return arena.Same(v.arena, other.arena)
}

// checkCut validates a view-relative cut offset: it must be inside the
// view and must not fall between the bytes of a multi-byte codepoint.
func (v View) checkCut(off int) error {
	if off < 0 || off > v.Len() {
		return fmt.Errorf("%w: cut %d in view of %d bytes", ErrRangeInvalid, off, v.Len())
	}
	abs := v.start + off
	if v.arena != nil && abs < v.arena.Len() && !utf8.RuneStart(v.arena.Content()[abs]) {
		return fmt.Errorf("%w: byte offset %d", ErrNotCharBoundary, off)
	}
	return nil
}

// Slice returns the view narrowed to the relative byte range [lo, hi).
// It fails with ErrRangeInvalid if lo > hi or the range runs past the
// view, and with ErrNotCharBoundary if either cut point splits a
// codepoint.
func (v View) Slice(lo, hi int) (View, error) {
	if lo < 0 || lo > hi || hi > v.Len() {
		return View{}, fmt.Errorf("%w: [%d:%d) in view of %d bytes", ErrRangeInvalid, lo, hi, v.Len())
	}
	if err := v.checkCut(lo); err != nil {
		return View{}, err
	}
	if err := v.checkCut(hi); err != nil {
		return View{}, err
	}
	return newView(v.arena, v.start+lo, v.start+hi), nil
}

// SliceStep is Slice with an explicit stride. Only a step of 1 is
// supported; anything else fails with ErrUnsupportedStep.
func (v View) SliceStep(lo, hi, step int) (View, error) {
	if step != 1 {
		return View{}, fmt.Errorf("%w: step %d", ErrUnsupportedStep, step)
	}
	return v.Slice(lo, hi)
}

// SplitAt partitions the view at the relative byte offset pos, returning
// the two adjacent views [0, pos) and [pos, len). The same bounds and
// boundary constraints as Slice apply.
func (v View) SplitAt(pos int) (View, View, error) {
	if err := v.checkCut(pos); err != nil {
		return View{}, View{}, err
	}
	abs := v.start + pos
	return newView(v.arena, v.start, abs), newView(v.arena, abs, v.stop), nil
}

// At returns a one-codepoint view of the i-th codepoint (not byte) of
// the view. Fails with ErrIndexOutOfRange if i is negative or past the
// last codepoint.
func (v View) At(i int) (View, error) {
	if i >= 0 {
		n := 0
		for off, r := range v.Text() {
			if n == i {
				return newView(v.arena, v.start+off, v.start+off+utf8.RuneLen(r)), nil
			}
			n++
		}
	}
	return View{}, fmt.Errorf("%w: codepoint %d", ErrIndexOutOfRange, i)
}

// CharCount returns the number of Unicode codepoints in the view. This
// scans the view's bytes, O(len).
func (v View) CharCount() int {
	return utf8.RuneCountInString(v.Text())
}

// GraphemeCount returns the number of grapheme clusters in the view.
// Like CharCount this scans the view's bytes.
func (v View) GraphemeCount() int {
	return uniseg.GraphemeClusterCount(v.Text())
}

// Contains reports whether needle occurs as a contiguous byte sequence
// within the view. Byte-exact and case-sensitive.
func (v View) Contains(needle string) bool {
	return strings.Contains(v.Text(), needle)
}

// ContainsView reports whether other's bytes occur within the view.
// When both views share an arena a pure range comparison answers
// without touching the text.
func (v View) ContainsView(other View) bool {
	if v.SameArena(other) && v.start <= other.start && other.stop <= v.stop {
		return true
	}
	return strings.Contains(v.Text(), other.Text())
}

// RelPosition returns the signed byte distance from anchor's start to
// this view's start: negative when the view begins before the anchor.
// Both views must share an arena; otherwise ErrCrossArena is returned.
func (v View) RelPosition(anchor View) (int, error) {
	if !v.SameArena(anchor) {
		return 0, fmt.Errorf("%w: %s vs %s", ErrCrossArena, v.arenaID(), anchor.arenaID())
	}
	return v.start - anchor.start, nil
}

func (v View) arenaID() string {
	if v.arena == nil {
		return "<none>"
	}
	return v.arena.ID()
}

// Find returns the narrowest sub-view bounding the first occurrence of
// the literal needle, or false if absent. The empty needle matches at
// the start of the view.
func (v View) Find(needle string) (View, bool) {
	start, stop, ok := search.Literal(v.Text(), needle)
	if !ok {
		return View{}, false
	}
	return newView(v.arena, v.start+start, v.start+stop), true
}

// FindPattern returns the sub-view bounding the leftmost match of the
// compiled pattern, or false if the pattern does not match.
func (v View) FindPattern(p *Pattern) (View, bool) {
	return p.Find(v)
}

// FindAny returns the sub-view bounding the leftmost occurrence of any
// needle in the set, or false if none occurs.
func (v View) FindAny(set *LiteralSet) (View, bool) {
	return set.Find(v)
}
