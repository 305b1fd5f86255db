package lineview

import (
	"fmt"
	"strings"

	"github.com/dshills/lineview/internal/arena"
)

// Buffer is the user-facing aggregate of an arena and its line index.
// A buffer is immutable: indexing, slicing, and selecting all produce
// new values that share the arena and index with their parent. Safe to
// share across goroutines without locking.
type Buffer struct {
	arena *arena.Arena
	index *arena.LineIndex

	// Contiguous buffers address lines [lineOff, lineOff+lineCount) of
	// the shared index. Select results instead carry their own ordered
	// span list, since they are not a contiguous line range.
	lineOff   int
	lineCount int
	selection []arena.Span
}

// New creates a buffer over a fresh arena owning content. The line
// index is computed once, in a single O(n) scan.
func New(content string, opts ...Option) *Buffer {
	cfg := config{ending: LineEndingLF}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.detect {
		cfg.ending = DetectLineEnding(content)
	}

	a, idx := arena.Build(content, cfg.ending)
	return &Buffer{
		arena:     a,
		index:     idx,
		lineCount: idx.Count(),
	}
}

// Len returns the number of lines addressable through the buffer.
func (b *Buffer) Len() int {
	return b.lineCount
}

// IsEmpty returns true if the buffer addresses no lines.
func (b *Buffer) IsEmpty() bool {
	return b.lineCount == 0
}

// LineEnding returns the terminator style the buffer was indexed with.
func (b *Buffer) LineEnding() LineEnding {
	return b.index.Ending()
}

// span resolves a buffer-relative line number to an arena span.
func (b *Buffer) span(i int) (arena.Span, bool) {
	if i < 0 || i >= b.lineCount {
		return arena.Span{}, false
	}
	if b.selection != nil {
		return b.selection[i], true
	}
	return b.index.Line(b.lineOff + i)
}

// Get returns the view for line i, 0-based and relative to the buffer.
// Fails with ErrIndexOutOfRange outside [0, Len()).
func (b *Buffer) Get(i int) (View, error) {
	span, ok := b.span(i)
	if !ok {
		return View{}, fmt.Errorf("%w: line %d of %d", ErrIndexOutOfRange, i, b.lineCount)
	}
	return newView(b.arena, span.Start, span.Stop), nil
}

// Slice returns a buffer narrowed to the line range [lo, hi). hi may
// exceed the current length and is clamped, so open-ended "to end"
// slicing is legal. Fails with ErrRangeInvalid if lo < 0 or lo > hi.
// The result shares the arena and line index with the parent.
func (b *Buffer) Slice(lo, hi int) (*Buffer, error) {
	if lo < 0 || lo > hi {
		return nil, fmt.Errorf("%w: [%d:%d)", ErrRangeInvalid, lo, hi)
	}
	if hi > b.lineCount {
		hi = b.lineCount
	}
	if lo > hi {
		lo = hi
	}

	if b.selection != nil {
		return &Buffer{
			arena:     b.arena,
			index:     b.index,
			lineCount: hi - lo,
			selection: b.selection[lo:hi],
		}, nil
	}

	return &Buffer{
		arena:     b.arena,
		index:     b.index,
		lineOff:   b.lineOff + lo,
		lineCount: hi - lo,
	}, nil
}

// SliceFrom returns the buffer from line lo to the end.
func (b *Buffer) SliceFrom(lo int) (*Buffer, error) {
	if lo < 0 {
		return nil, fmt.Errorf("%w: [%d:)", ErrRangeInvalid, lo)
	}
	return b.Slice(lo, b.lineCount)
}

// SliceStep is Slice with an explicit stride. Only a step of 1 is
// supported; anything else fails with ErrUnsupportedStep.
func (b *Buffer) SliceStep(lo, hi, step int) (*Buffer, error) {
	if step != 1 {
		return nil, fmt.Errorf("%w: step %d", ErrUnsupportedStep, step)
	}
	return b.Slice(lo, hi)
}

// Select returns a buffer containing exactly the given lines, in the
// given order. Indices may repeat and order is preserved. Fails with
// ErrIndexOutOfRange if any index is outside [0, Len()). The result
// carries its own span list but still shares the arena.
func (b *Buffer) Select(indices []int) (*Buffer, error) {
	spans := make([]arena.Span, len(indices))
	for n, i := range indices {
		span, ok := b.span(i)
		if !ok {
			return nil, fmt.Errorf("%w: select index %d of %d", ErrIndexOutOfRange, i, b.lineCount)
		}
		spans[n] = span
	}

	return &Buffer{
		arena:     b.arena,
		index:     b.index,
		lineCount: len(spans),
		selection: spans,
	}, nil
}

// Iter returns a fresh iterator over the buffer's lines. Iterators are
// single-pass; obtain a new one to iterate again.
func (b *Buffer) Iter() *LineIter {
	return &LineIter{buf: b}
}

// Text materializes the buffer's content. Contiguous buffers return the
// arena range from the first line's start to the last line's stop;
// select results join their lines with the buffer's terminator.
func (b *Buffer) Text() string {
	if b.lineCount == 0 {
		return ""
	}

	if b.selection == nil {
		first, _ := b.span(0)
		last, _ := b.span(b.lineCount - 1)
		return b.arena.Text(first.Start, last.Stop)
	}

	var sb strings.Builder
	sep := b.index.Ending().Sequence()
	for n, span := range b.selection {
		if n > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(b.arena.Text(span.Start, span.Stop))
	}
	return sb.String()
}

// Map applies fn to every line's view in order and returns the ordered
// results. The first error from fn aborts the traversal and propagates.
func Map[T any](b *Buffer, fn func(View) (T, error)) ([]T, error) {
	out := make([]T, 0, b.lineCount)
	for i := 0; i < b.lineCount; i++ {
		v, err := b.Get(i)
		if err != nil {
			return nil, err
		}
		r, err := fn(v)
		if err != nil {
			return nil, fmt.Errorf("map line %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}
