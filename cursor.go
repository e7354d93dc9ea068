package pattern

import (
	"cmp"
	"fmt"
)

// Cursor is an opaque position within a haystack.
//
// Cursors are totally ordered and delimit half-open ranges [a, b). They are
// created only by haystack handles and by searchers bound to one, so every
// cursor handed out lies within [Front, Back] of its haystack. Cursors of
// different haystacks must not be mixed.
type Cursor struct {
	off int
}

// Compare returns -1, 0 or +1 depending on whether c is before, at or after d.
func (c Cursor) Compare(d Cursor) int {
	return cmp.Compare(c.off, d.off)
}

// Less reports whether c is before d.
func (c Cursor) Less(d Cursor) bool {
	return c.off < d.off
}

// add returns the cursor n elements after c.
func (c Cursor) add(n int) Cursor {
	return Cursor{off: c.off + n}
}

// Haystack is the bounds handle of a searched sequence.
//
// A Haystack never owns data; it borrows the caller's string or slice. M is
// the type of the sub-ranges it reconstructs: string for text, the slice
// type for slices.
type Haystack[M any] interface {
	// Front returns the cursor at the start of the haystack.
	Front() Cursor

	// Back returns the cursor at the end of the haystack.
	Back() Cursor

	// Offset returns the element offset of c from the front.
	Offset(c Cursor) int

	// Range returns the sub-range [start, end) as a view into the
	// haystack. It panics if the cursors are out of order or outside the
	// haystack.
	Range(start, end Cursor) M
}

// HaystackLen returns the element count of h.
func HaystackLen[M any](h Haystack[M]) int {
	return h.Offset(h.Back()) - h.Offset(h.Front())
}

// CursorDiff returns the element count between a and b, which must satisfy
// a <= b.
func CursorDiff[M any](h Haystack[M], a, b Cursor) int {
	return h.Offset(b) - h.Offset(a)
}

func checkCursor(c Cursor, n int) {
	if c.off < 0 || c.off > n {
		panic(fmt.Sprintf("pattern: cursor %d outside haystack of length %d", c.off, n))
	}
}

func checkRange(start, end Cursor, n int) {
	if start.off < 0 || start.off > end.off || end.off > n {
		panic(fmt.Sprintf("pattern: invalid range [%d, %d) in haystack of length %d", start.off, end.off, n))
	}
}

// TextHaystack is the haystack handle of a string.
//
// Ranges reported by text patterns start and end on UTF-8 unit boundaries,
// treating each byte of an invalid sequence as a unit of its own.
type TextHaystack struct {
	s string
}

// Text returns the haystack handle of s.
func Text(s string) TextHaystack {
	return TextHaystack{s: s}
}

// Front returns the cursor at offset 0.
func (h TextHaystack) Front() Cursor { return Cursor{} }

// Back returns the cursor at offset len(s).
func (h TextHaystack) Back() Cursor { return Cursor{off: len(h.s)} }

// Offset returns the byte offset of c.
func (h TextHaystack) Offset(c Cursor) int {
	checkCursor(c, len(h.s))
	return c.off
}

// Range returns s[start:end].
func (h TextHaystack) Range(start, end Cursor) string {
	checkRange(start, end, len(h.s))
	return h.s[start.off:end.off]
}

// String returns the underlying string.
func (h TextHaystack) String() string {
	return h.s
}

// SliceHaystack is the haystack handle of a slice.
//
// Ranges are views sharing the backing array, capped at their end so that
// appending to one never writes into its neighbour. Callers may mutate the
// elements of a returned range; searchers never do.
type SliceHaystack[S ~[]E, E any] struct {
	s S
}

// Slice returns the haystack handle of s.
func Slice[S ~[]E, E any](s S) SliceHaystack[S, E] {
	return SliceHaystack[S, E]{s: s}
}

// Bytes returns the haystack handle of b.
func Bytes(b []byte) SliceHaystack[[]byte, byte] {
	return SliceHaystack[[]byte, byte]{s: b}
}

// Front returns the cursor at index 0.
func (h SliceHaystack[S, E]) Front() Cursor { return Cursor{} }

// Back returns the cursor at index len(s).
func (h SliceHaystack[S, E]) Back() Cursor { return Cursor{off: len(h.s)} }

// Offset returns the element index of c.
func (h SliceHaystack[S, E]) Offset(c Cursor) int {
	checkCursor(c, len(h.s))
	return c.off
}

// Range returns s[start:end:end].
func (h SliceHaystack[S, E]) Range(start, end Cursor) S {
	checkRange(start, end, len(h.s))
	return h.s[start.off:end.off:end.off]
}

// Elems returns the underlying slice.
func (h SliceHaystack[S, E]) Elems() S {
	return h.s
}
