// Package conv provides checked narrowing conversions for code unit
// encoders.
//
// The conversions panic on overflow, since a value out of range indicates a
// programming error in the caller (e.g., a supplementary code point passed
// where a single UTF-16 code unit was expected).
package conv

import "math"

// RuneToUint16 converts a code point below 0x10000 to one UTF-16 code unit.
// Panics if r < 0 or r > math.MaxUint16.
//
//go:inline
func RuneToUint16(r rune) uint16 {
	if r < 0 || r > math.MaxUint16 {
		panic("integer overflow: rune value out of uint16 range")
	}
	return uint16(r)
}

// Uint16ToRune widens one UTF-16 code unit to a code point.
//
//go:inline
func Uint16ToRune(u uint16) rune {
	return rune(u)
}
