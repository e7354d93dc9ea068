package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
	lo7 = 0x7f7f7f7f7f7f7f7f
)

// memchrGeneric implements byte search using SWAR (SIMD Within A Register).
// It processes 8 bytes at a time using uint64 bitwise operations.
//
// Algorithm:
//  1. Broadcast needle to every byte of a uint64 mask
//  2. Read 8 bytes from haystack as a little-endian uint64
//  3. XOR with the mask (matching bytes become 0x00)
//  4. Detect zero bytes with (v - lo8) & ^v & hi8
//  5. Convert the lowest marked bit to a byte position
//
// The zero-byte formula may mark bytes above a true zero byte because of
// borrow propagation, but the lowest marked byte is always exact, which is
// all a forward search needs.
func memchrGeneric(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		xor := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
		if found := (xor - lo8) & ^xor & hi8; found != 0 {
			return i + bits.TrailingZeros64(found)/8
		}
	}

	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// memrchrGeneric is the backward counterpart of memchrGeneric.
//
// Scanning from the end requires the highest zero byte of each word, so it
// uses the exact zero-byte test ^(((v & lo7) + lo7) | v | lo7), which has no
// borrow between bytes and therefore no false positives.
func memrchrGeneric(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := n - 1; i >= 0; i-- {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * lo8

	i := n
	for ; i >= 8; i -= 8 {
		xor := binary.LittleEndian.Uint64(haystack[i-8:]) ^ mask
		if found := ^(((xor & lo7) + lo7) | xor | lo7); found != 0 {
			return i - 8 + (63-bits.LeadingZeros64(found))/8
		}
	}

	for i--; i >= 0; i-- {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
