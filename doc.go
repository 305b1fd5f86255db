// Package lineview provides zero-copy, line-indexed views over
// immutable text. It targets callers that repeatedly extract, inspect,
// and re-slice small substrings from a larger text, such as log parsers
// and structured-text analyzers, where copying would dominate cost.
//
// The package provides:
//
//   - Buffer: an immutable text aggregate with a precomputed line index
//   - View: a shared reference to a byte range of a buffer's text
//   - Literal, regex, and multi-literal first-match search over views
//   - A bounded, process-wide cache for compiled patterns
//   - Lazy single-pass line iteration
//
// Basic usage:
//
//	buf := lineview.New("Line1\nLine2\nLine3")
//
//	// Address a line without copying.
//	line, _ := buf.Get(1)
//	fmt.Println(line.Text())        // "Line2"
//	fmt.Println(line.Boundaries())  // 6 11
//
//	// Narrow a view with a search.
//	if m, ok := line.Find("ne2"); ok {
//	    fmt.Println(m.Start(), m.Stop())
//	}
//
//	// Regex search through the compiled-pattern cache.
//	p, _ := lineview.Compile(`\d+`)
//	if m, ok := p.Find(line); ok {
//	    fmt.Println(m.Text())
//	}
//
// Views are plain values over shared storage: slicing, splitting, and
// searching return new offsets into the same backing text. Two views
// can be compared for relative position only when they share a backing
// arena; comparing across arenas fails with ErrCrossArena.
//
// Everything except the pattern cache is immutable after construction
// and safe to share across goroutines without locking. The pattern
// cache is internally synchronized.
package lineview
