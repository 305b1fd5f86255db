package lineview

import "errors"

// Errors returned by buffer, view, and pattern operations. Absence of a
// match is never an error; search operations report it with a false
// second return instead.
var (
	// ErrIndexOutOfRange reports a line or codepoint index outside the
	// valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrRangeInvalid reports a byte range with lo > hi or bounds past
	// the end of the view or buffer.
	ErrRangeInvalid = errors.New("invalid range")

	// ErrNotCharBoundary reports a cut point that falls inside a
	// multi-byte codepoint.
	ErrNotCharBoundary = errors.New("offset is not a character boundary")

	// ErrUnsupportedStep reports a slice step other than 1.
	ErrUnsupportedStep = errors.New("slice step is not supported")

	// ErrCrossArena reports a relative-position request between views
	// backed by different arenas.
	ErrCrossArena = errors.New("views are backed by different arenas")

	// ErrBadPattern reports malformed regular-expression syntax. The
	// wrapped error carries the engine's diagnostic.
	ErrBadPattern = errors.New("invalid pattern")
)
