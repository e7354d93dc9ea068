// Package unit splits byte strings into encoding units.
//
// A unit is the smallest span a text searcher may report: one valid UTF-8
// sequence, or one byte of an invalid sequence. WTF-8 adds a third kind, an
// encoded UTF-16 surrogate (ED A0..BF 80..BF), which is kept whole so that
// no boundary ever falls inside it.
//
// Decoding is self-consistent in both directions: splitting a string from
// the front and from the back yields the same units.
package unit

import "unicode/utf8"

// Encoding selects how bytes are grouped into units.
type Encoding uint8

const (
	// UTF8 groups bytes like unicode/utf8. Each byte of an invalid
	// sequence is a unit of its own.
	UTF8 Encoding = iota

	// WTF8 is UTF8 plus atomic 3-byte surrogate units.
	WTF8
)

// String returns the encoding name.
func (e Encoding) String() string {
	if e == WTF8 {
		return "WTF-8"
	}
	return "UTF-8"
}

// IsSurrogate reports whether r is a UTF-16 surrogate code point.
func IsSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDFFF
}

func isCont(b byte) bool {
	return b&0xC0 == 0x80
}

// surrogateAt reports whether b starts with an encoded surrogate.
func surrogateAt(b []byte) bool {
	return len(b) >= 3 && b[0] == 0xED && b[1] >= 0xA0 && b[1] <= 0xBF && isCont(b[2])
}

func decodeSurrogate(b []byte) rune {
	return rune(b[0]&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
}

// Decode returns the first unit of b and its width.
// Invalid bytes decode as (utf8.RuneError, 1); surrogates decode to their
// code point under WTF8. An empty b yields (utf8.RuneError, 0).
func (e Encoding) Decode(b []byte) (rune, int) {
	if e == WTF8 && surrogateAt(b) {
		return decodeSurrogate(b), 3
	}
	return utf8.DecodeRune(b)
}

// DecodeLast returns the last unit of b and its width.
func (e Encoding) DecodeLast(b []byte) (rune, int) {
	if e == WTF8 && len(b) >= 3 && surrogateAt(b[len(b)-3:]) {
		return decodeSurrogate(b[len(b)-3:]), 3
	}
	return utf8.DecodeLastRune(b)
}

// Opaque reports whether the unit (r, size) returned by Decode or
// DecodeLast stands for no character. Under WTF8 encoded surrogates and
// invalid bytes are opaque; UTF8 has no opaque units, invalid bytes
// decoding as utf8.RuneError.
func (e Encoding) Opaque(r rune, size int) bool {
	if e != WTF8 {
		return false
	}
	return IsSurrogate(r) || (r == utf8.RuneError && size == 1)
}

// IsBoundary reports whether a unit starts (or b ends) at offset i.
func (e Encoding) IsBoundary(b []byte, i int) bool {
	if i <= 0 || i >= len(b) {
		return i == 0 || i == len(b)
	}
	if !isCont(b[i]) {
		return true
	}
	// A continuation byte belongs to the unit of the nearest lead byte at
	// most three bytes back; without one it is a unit by itself.
	for j := i - 1; j >= 0 && j >= i-3; j-- {
		if !isCont(b[j]) {
			_, size := e.Decode(b[j:])
			return j+size <= i
		}
	}
	return true
}

// Next returns the smallest boundary strictly after i, or len(b).
func (e Encoding) Next(b []byte, i int) int {
	if i < 0 {
		return 0
	}
	for i++; i < len(b) && !e.IsBoundary(b, i); i++ {
	}
	return min(i, len(b))
}

// Prev returns the largest boundary strictly before i, or 0.
func (e Encoding) Prev(b []byte, i int) int {
	if i > len(b) {
		return len(b)
	}
	for i--; i > 0 && !e.IsBoundary(b, i); i-- {
	}
	return max(i, 0)
}

// Aligned reports whether every occurrence of needle in any string starts
// and ends on unit boundaries of that string.
//
// That holds when needle does not start with a continuation byte and its
// last unit cannot be extended by the bytes that follow it. Needles that are
// not aligned, such as the second half of a split character, must be
// searched byte by byte.
func (e Encoding) Aligned(needle []byte) bool {
	if len(needle) == 0 {
		return true
	}
	if isCont(needle[0]) {
		return false
	}
	q := -1
	for j := len(needle) - 1; j >= 0 && j >= len(needle)-utf8.UTFMax; j-- {
		if !isCont(needle[j]) {
			q = j
			break
		}
	}
	if q < 0 {
		return true
	}
	tail := needle[q:]
	if e == WTF8 && tail[0] == 0xED && len(tail) < 3 && (len(tail) == 1 || (tail[1] >= 0xA0 && tail[1] <= 0xBF)) {
		// Truncated surrogate.
		return false
	}
	return utf8.FullRune(tail)
}
