// Package pattern provides substring and element search over strings, byte
// slices, typed slices and OS strings through one search engine.
//
// A Pattern is bound to a Haystack to produce a Searcher. The searcher
// steps through the haystack reporting matches and rejects: together the
// two streams tile the haystack, so every element lies in exactly one
// reported range. Higher-level operations such as Find, Split and Trim are
// sequences of searcher calls.
//
// Fixed needles run the Two-Way algorithm (package twoway), which needs
// constant space and linear time. The engine is written once over
// ordered elements; each haystack kind only maps its cursors to element
// offsets and, for text, widens rejects to character boundaries.
//
// Basic usage:
//
//	h := pattern.Text("abbcbbd")
//	i, ok := pattern.Find(h, pattern.Substr("bb")) // 1, true
//
//	for piece := range pattern.Split(h, pattern.Substr("bb")) {
//	    fmt.Println(piece) // "a", "c", "d"
//	}
//
// Pattern kinds:
//   - Text: Substr, Rune, AnyRune, RuneSet, RuneFunc, AnyOf
//   - Bytes: ByteSeq, Byte, ByteFunc, AnyOfBytes
//   - Typed slices: Seq, Elem, ElemFunc
//   - OS strings: see package osstr
//
// Capabilities are checked at compile time. Substring patterns search in
// both directions (ReversePattern); single-element patterns are also
// double ended (DoubleEndedPattern); AnyOf only searches forward.
//
// Self-overlapping needles may match differently in each direction:
// "aa" in "aaa" is found at [0, 2) from the front and at [1, 3) from the
// back.
//
// Searchers borrow the haystack and never modify it. They are not safe for
// concurrent use; patterns are.
package pattern
