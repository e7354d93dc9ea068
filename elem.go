package pattern

import (
	"bytes"
	"slices"

	"github.com/coregx/pattern/prefilter"
	"github.com/coregx/pattern/simd"
	"golang.org/x/exp/constraints"
)

// ElemSearcher steps through a slice one element at a time, matching the
// elements accepted by a predicate.
type ElemSearcher[M any, E any] struct {
	hs       Haystack[M]
	front    Cursor
	haystack []E
	match    func(E) bool
	// index and lastIndex, when set, find the next matching element of a
	// window faster than the predicate loop.
	index     func([]E) int
	lastIndex func([]E) int
	position  int
	end       int
}

func newElemSearcher[M any, E any](h Haystack[M], haystack []E, match func(E) bool) *ElemSearcher[M, E] {
	return &ElemSearcher[M, E]{
		hs:       h,
		front:    h.Front(),
		haystack: haystack,
		match:    match,
		end:      len(haystack),
	}
}

// Haystack returns the haystack the searcher is bound to.
func (s *ElemSearcher[M, E]) Haystack() Haystack[M] {
	return s.hs
}

// DoubleEnded marks the searcher as double ended.
func (s *ElemSearcher[M, E]) DoubleEnded() {}

func (s *ElemSearcher[M, E]) cursors(a int) (Cursor, Cursor, bool) {
	return s.front.add(a), s.front.add(a + 1), true
}

// NextMatch returns the next matching element.
func (s *ElemSearcher[M, E]) NextMatch() (Cursor, Cursor, bool) {
	if s.index != nil {
		i := s.index(s.haystack[s.position:s.end])
		if i < 0 {
			s.position = s.end
			return Cursor{}, Cursor{}, false
		}
		a := s.position + i
		s.position = a + 1
		return s.cursors(a)
	}
	for s.position < s.end {
		a := s.position
		s.position++
		if s.match(s.haystack[a]) {
			return s.cursors(a)
		}
	}
	return Cursor{}, Cursor{}, false
}

// NextReject returns the next non-matching element.
func (s *ElemSearcher[M, E]) NextReject() (Cursor, Cursor, bool) {
	for s.position < s.end {
		a := s.position
		s.position++
		if !s.match(s.haystack[a]) {
			return s.cursors(a)
		}
	}
	return Cursor{}, Cursor{}, false
}

// NextMatchBack returns the previous matching element.
func (s *ElemSearcher[M, E]) NextMatchBack() (Cursor, Cursor, bool) {
	if s.lastIndex != nil {
		i := s.lastIndex(s.haystack[s.position:s.end])
		if i < 0 {
			s.end = s.position
			return Cursor{}, Cursor{}, false
		}
		s.end = s.position + i
		return s.cursors(s.end)
	}
	for s.end > s.position {
		s.end--
		if s.match(s.haystack[s.end]) {
			return s.cursors(s.end)
		}
	}
	return Cursor{}, Cursor{}, false
}

// NextRejectBack returns the previous non-matching element.
func (s *ElemSearcher[M, E]) NextRejectBack() (Cursor, Cursor, bool) {
	for s.end > s.position {
		s.end--
		if !s.match(s.haystack[s.end]) {
			return s.cursors(s.end)
		}
	}
	return Cursor{}, Cursor{}, false
}

// BytePattern matches single bytes of a byte slice.
type BytePattern struct {
	match func(byte) bool
	b     int
}

// Byte returns a pattern matching the byte c.
func Byte(c byte) *BytePattern {
	return &BytePattern{match: func(x byte) bool { return x == c }, b: int(c)}
}

// ByteFunc returns a pattern matching the bytes for which f returns true.
func ByteFunc(f func(byte) bool) *BytePattern {
	return &BytePattern{match: f, b: -1}
}

// Searcher binds the pattern to h.
func (p *BytePattern) Searcher(h Haystack[[]byte]) Searcher[[]byte] {
	return p.DoubleEndedSearcher(h)
}

// ReverseSearcher binds the pattern to h.
func (p *BytePattern) ReverseSearcher(h Haystack[[]byte]) ReverseSearcher[[]byte] {
	return p.DoubleEndedSearcher(h)
}

// DoubleEndedSearcher binds the pattern to h.
func (p *BytePattern) DoubleEndedSearcher(h Haystack[[]byte]) DoubleEndedSearcher[[]byte] {
	s := newElemSearcher(h, whole(h), p.match)
	if p.b >= 0 {
		c := byte(p.b)
		s.index = func(b []byte) int { return simd.Memchr(b, c) }
		s.lastIndex = func(b []byte) int { return simd.Memrchr(b, c) }
	}
	return s
}

// ByteSeqPattern searches a byte slice for a fixed byte sequence.
type ByteSeqPattern struct {
	needle []byte
	cfg    Config
}

// ByteSeq returns a pattern matching needle. The needle is borrowed and
// must not change while searchers of the pattern are in use.
func ByteSeq(needle []byte) *ByteSeqPattern {
	return ByteSeqConfig(needle, DefaultConfig())
}

// ByteSeqConfig returns a pattern matching needle built with cfg.
func ByteSeqConfig(needle []byte, cfg Config) *ByteSeqPattern {
	return &ByteSeqPattern{needle: needle, cfg: cfg}
}

// Searcher binds the pattern to h.
func (p *ByteSeqPattern) Searcher(h Haystack[[]byte]) Searcher[[]byte] {
	return p.ReverseSearcher(h)
}

// ReverseSearcher binds the pattern to h.
func (p *ByteSeqPattern) ReverseSearcher(h Haystack[[]byte]) ReverseSearcher[[]byte] {
	return newByteSearcher(h, whole(h), p.needle, EveryIndex[byte]{}, p.cfg)
}

// IsPrefixOf reports whether h starts with the needle.
func (p *ByteSeqPattern) IsPrefixOf(h Haystack[[]byte]) bool {
	return bytes.HasPrefix(whole(h), p.needle)
}

// IsSuffixOf reports whether h ends with the needle.
func (p *ByteSeqPattern) IsSuffixOf(h Haystack[[]byte]) bool {
	return bytes.HasSuffix(whole(h), p.needle)
}

// SeqPattern searches a slice for a fixed sequence of ordered elements.
type SeqPattern[S ~[]T, T constraints.Ordered] struct {
	needle S
}

// Seq returns a pattern matching needle.
//
// Example:
//
//	p := pattern.Seq([]uint32{2, 2})
//	pattern.Find(pattern.Slice([]uint32{1, 2, 2, 3}), p) // 1, true
func Seq[S ~[]T, T constraints.Ordered](needle S) *SeqPattern[S, T] {
	return &SeqPattern[S, T]{needle: needle}
}

// Searcher binds the pattern to h.
func (p *SeqPattern[S, T]) Searcher(h Haystack[S]) Searcher[S] {
	return p.ReverseSearcher(h)
}

// ReverseSearcher binds the pattern to h.
func (p *SeqPattern[S, T]) ReverseSearcher(h Haystack[S]) ReverseSearcher[S] {
	return NewSeqSearcher(h, []T(whole(h)), []T(p.needle), EveryIndex[T]{}, prefilter.NewNone[T])
}

// IsPrefixOf reports whether h starts with the needle.
func (p *SeqPattern[S, T]) IsPrefixOf(h Haystack[S]) bool {
	s := whole(h)
	return len(s) >= len(p.needle) && slices.Equal(s[:len(p.needle)], p.needle)
}

// IsSuffixOf reports whether h ends with the needle.
func (p *SeqPattern[S, T]) IsSuffixOf(h Haystack[S]) bool {
	s := whole(h)
	return len(s) >= len(p.needle) && slices.Equal(s[len(s)-len(p.needle):], p.needle)
}

// ElemPattern matches single elements of a slice.
type ElemPattern[S ~[]T, T any] struct {
	match func(T) bool
}

// Elem returns a pattern matching elements equal to e. The slice type is
// given explicitly: pattern.Elem[[]int](2).
func Elem[S ~[]T, T comparable](e T) *ElemPattern[S, T] {
	return &ElemPattern[S, T]{match: func(x T) bool { return x == e }}
}

// ElemFunc returns a pattern matching the elements for which f returns true.
func ElemFunc[S ~[]T, T any](f func(T) bool) *ElemPattern[S, T] {
	return &ElemPattern[S, T]{match: f}
}

// Searcher binds the pattern to h.
func (p *ElemPattern[S, T]) Searcher(h Haystack[S]) Searcher[S] {
	return p.DoubleEndedSearcher(h)
}

// ReverseSearcher binds the pattern to h.
func (p *ElemPattern[S, T]) ReverseSearcher(h Haystack[S]) ReverseSearcher[S] {
	return p.DoubleEndedSearcher(h)
}

// DoubleEndedSearcher binds the pattern to h.
func (p *ElemPattern[S, T]) DoubleEndedSearcher(h Haystack[S]) DoubleEndedSearcher[S] {
	return newElemSearcher(h, []T(whole(h)), p.match)
}
