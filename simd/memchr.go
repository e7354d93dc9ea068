// Package simd provides word-at-a-time byte search primitives.
//
// The functions use SWAR (SIMD Within A Register): eight haystack bytes are
// loaded into a uint64 and tested in parallel with plain integer arithmetic.
// They are portable, allocation-free and safe for concurrent use.
//
// They back the single-byte and ASCII character searchers of the pattern
// package, where a searcher jumps straight to the next candidate byte
// instead of stepping one element at a time.
package simd

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Performance characteristics:
//   - Small inputs (< 8 bytes): byte-by-byte comparison
//   - Medium/large inputs: 8 bytes per iteration
//
// Example:
//
//	simd.Memchr([]byte("hello"), 'l') // 2
func Memchr(haystack []byte, needle byte) int {
	return memchrGeneric(haystack, needle)
}

// Memrchr returns the index of the last instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Example:
//
//	simd.Memrchr([]byte("hello"), 'l') // 3
func Memrchr(haystack []byte, needle byte) int {
	return memrchrGeneric(haystack, needle)
}
