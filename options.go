package lineview

import "github.com/dshills/lineview/internal/arena"

// LineEnding specifies the line terminator style used when indexing a
// buffer. The content is never rewritten; the style only controls where
// line boundaries fall, and spans always exclude the terminator bytes.
type LineEnding = arena.LineEnding

// Supported line terminator styles.
const (
	LineEndingLF   = arena.LineEndingLF   // Unix: \n
	LineEndingCRLF = arena.LineEndingCRLF // Windows: \r\n
	LineEndingCR   = arena.LineEndingCR   // Old Mac: \r
)

// DetectLineEnding returns a LineEnding based on the most common line
// terminator in the text. Returns LineEndingLF if none are found.
func DetectLineEnding(text string) LineEnding {
	return arena.DetectLineEnding(text)
}

type config struct {
	ending LineEnding
	detect bool
}

// Option is a functional option for configuring a Buffer at construction.
type Option func(*config)

// WithLineEnding sets the terminator style used to index the buffer.
func WithLineEnding(le LineEnding) Option {
	return func(c *config) {
		c.ending = le
	}
}

// WithLF indexes on Unix line endings (\n). This is the default.
func WithLF() Option {
	return WithLineEnding(LineEndingLF)
}

// WithCRLF indexes on Windows line endings (\r\n).
func WithCRLF() Option {
	return WithLineEnding(LineEndingCRLF)
}

// WithCR indexes on old Mac line endings (\r).
func WithCR() Option {
	return WithLineEnding(LineEndingCR)
}

// WithDetectedLineEnding picks the terminator style from the content
// itself at construction time.
func WithDetectedLineEnding() Option {
	return func(c *config) {
		c.detect = true
	}
}
