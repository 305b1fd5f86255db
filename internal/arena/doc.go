// Package arena provides the immutable storage layer for lineview.
//
// An Arena owns the raw text of one buffer and is never mutated after
// construction. Views and buffers reference byte ranges of an Arena
// instead of copying text; the Arena stays alive for as long as any
// reference to it does. Two ranges are comparable for relative position
// only when they are backed by the same Arena, which is checked by
// pointer identity.
//
// A LineIndex is derived from an Arena's content in a single scan and
// records one byte span per line, excluding the line terminator. The
// index is immutable and is shared by every slice of a buffer.
package arena
