// Package prefilter provides fast-skip filters for the Two-Way substring
// searcher.
//
// A filter answers one question about a haystack element: can it possibly
// occur in the needle? The searcher probes the element under the last needle
// position of the current window; when the answer is no, no match can overlap
// that element and the whole window is skipped at once.
//
// Filters may report false positives (a "yes" for an element that is not in
// the needle) but never false negatives. A false positive only costs a
// verification pass, so filters trade precision for a single-instruction
// probe.
//
// The package provides two filters:
//   - ByteSet: a 64-bit fingerprint of the needle bytes (one bit per byte&0x3f)
//   - None: accepts every element, for element types without a cheap fingerprint
//
// Example usage:
//
//	set := prefilter.NewByteSet([]byte("needle"))
//	set.Contains('e') // true
//	set.Contains('z') // false: 'z'&0x3f == 0x3a, not set by any needle byte
package prefilter

import "math/bits"

// Filter is a superset membership test over the elements of a needle.
//
// Contains returns false only if elem provably does not occur in the needle
// the filter was built from. Implementations are immutable after
// construction and safe for concurrent use.
type Filter[E any] interface {
	Contains(elem E) bool
}

// ByteSet is a 64-bit fingerprint of the bytes of a needle.
//
// Bit (b & 0x3f) is set for every needle byte b. Bytes that share the low
// six bits collide, which yields false positives but never false negatives.
type ByteSet uint64

// NewByteSet builds the fingerprint of needle.
// An empty needle produces an empty set.
func NewByteSet(needle []byte) ByteSet {
	var set ByteSet
	for _, b := range needle {
		set |= 1 << (b & 0x3f)
	}
	return set
}

// Contains reports whether b may occur in the fingerprinted needle.
func (s ByteSet) Contains(b byte) bool {
	return (uint64(s)>>(b&0x3f))&1 != 0
}

// Len returns the number of fingerprint bits set.
// Fewer bits mean more windows are skipped.
func (s ByteSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// None is a filter that accepts every element.
//
// It is used for element types where no cheap fingerprint exists, and when
// fast skipping is disabled by configuration.
type None[E any] struct{}

// NewNone returns the pass-through filter. The needle is ignored.
func NewNone[E any](_ []E) None[E] {
	return None[E]{}
}

// Contains always returns true.
func (None[E]) Contains(E) bool {
	return true
}
