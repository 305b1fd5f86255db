package arena

import "github.com/google/uuid"

// Arena is the single immutable owner of one buffer's text. All views
// into the text reference the Arena and share its backing bytes; nothing
// is copied after construction.
type Arena struct {
	id      string
	content string
}

// New creates an Arena owning the given content.
func New(content string) *Arena {
	return &Arena{
		id:      uuid.NewString(),
		content: content,
	}
}

// Content returns the full text owned by the arena.
func (a *Arena) Content() string {
	return a.content
}

// Len returns the byte length of the arena's content.
func (a *Arena) Len() int {
	return len(a.content)
}

// ID returns the arena's diagnostic identifier. Identity comparisons use
// Same, not ID.
func (a *Arena) ID() string {
	return a.id
}

// Text returns the content in the half-open byte range [start, stop).
// The returned string shares the arena's backing bytes.
func (a *Arena) Text(start, stop int) string {
	return a.content[start:stop]
}

// Same reports whether two arenas are the same object.
func Same(a, b *Arena) bool {
	return a == b
}

// Build constructs an Arena and its LineIndex from content in one pass.
func Build(content string, ending LineEnding) (*Arena, *LineIndex) {
	return New(content), BuildIndex(content, ending)
}
