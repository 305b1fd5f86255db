package arena

// Span is a half-open byte range [Start, Stop) within an arena.
type Span struct {
	Start int // inclusive
	Stop  int // exclusive
}

// Len returns the span's length in bytes.
func (s Span) Len() int {
	return s.Stop - s.Start
}

// LineIndex maps line numbers to byte spans of an arena's content.
// Lines are 0-indexed and spans exclude the line terminator. A trailing
// terminator does not add an empty final line; content that ends without
// a terminator still yields its final line. Built once, immutable.
type LineIndex struct {
	spans  []Span
	ending LineEnding
}

// BuildIndex scans content once and records one span per line.
func BuildIndex(content string, ending LineEnding) *LineIndex {
	idx := &LineIndex{ending: ending}
	if len(content) == 0 {
		return idx
	}

	// Pre-size for the common log-file shape of short lines.
	idx.spans = make([]Span, 0, len(content)/16+1)

	start := 0
	i := 0
	for i < len(content) {
		switch ending {
		case LineEndingCRLF:
			if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
				idx.spans = append(idx.spans, Span{Start: start, Stop: i})
				i += 2
				start = i
				continue
			}
		case LineEndingCR:
			if content[i] == '\r' {
				idx.spans = append(idx.spans, Span{Start: start, Stop: i})
				i++
				start = i
				continue
			}
		default:
			if content[i] == '\n' {
				idx.spans = append(idx.spans, Span{Start: start, Stop: i})
				i++
				start = i
				continue
			}
		}
		i++
	}

	if start < len(content) {
		idx.spans = append(idx.spans, Span{Start: start, Stop: len(content)})
	}

	return idx
}

// Count returns the number of lines.
func (idx *LineIndex) Count() int {
	return len(idx.spans)
}

// Line returns the byte span of line i. The second return is false if i
// is out of range.
func (idx *LineIndex) Line(i int) (Span, bool) {
	if i < 0 || i >= len(idx.spans) {
		return Span{}, false
	}
	return idx.spans[i], true
}

// Ending returns the terminator style the index was built with.
func (idx *LineIndex) Ending() LineEnding {
	return idx.ending
}
