package lineview

// LineIter is a lazy, forward-only cursor over a buffer's lines. It
// holds only the index of the next line to produce; once exhausted it
// stays exhausted. Obtain a fresh iterator from Buffer.Iter to iterate
// again.
type LineIter struct {
	buf  *Buffer
	next int
	view View
}

// Next advances to the next line. Returns true if a line was produced,
// false once the buffer's line range is exhausted.
func (it *LineIter) Next() bool {
	v, err := it.buf.Get(it.next)
	if err != nil {
		it.view = View{}
		return false
	}
	it.next++
	it.view = v
	return true
}

// View returns the line produced by the last successful call to Next.
func (it *LineIter) View() View {
	return it.view
}
