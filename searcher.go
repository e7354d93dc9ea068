package pattern

// Searcher is a pattern bound to one haystack, stepping forward.
//
// NextMatch returns the next non-overlapping match. NextReject returns the
// next range in which no match starts. Together the two streams tile the
// haystack: merged by start offset they cover [Front, Back) without gaps or
// overlaps, and no reject is empty. ok is false once the searcher is
// exhausted in that direction.
//
// Calls to NextMatch and NextReject share one cursor and may be
// interleaved.
type Searcher[M any] interface {
	// Haystack returns the haystack the searcher is bound to.
	Haystack() Haystack[M]

	// NextMatch returns the next match range.
	NextMatch() (start, end Cursor, ok bool)

	// NextReject returns the next reject range.
	NextReject() (start, end Cursor, ok bool)
}

// ReverseSearcher is a Searcher that can also step backward from the end of
// the haystack.
//
// The backward cursor is independent of the forward one. For needles that
// overlap themselves the two directions may legitimately report different
// matches: "aa" in "aaa" matches [0, 2) forward and [1, 3) backward.
type ReverseSearcher[M any] interface {
	Searcher[M]

	// NextMatchBack returns the previous match range.
	NextMatchBack() (start, end Cursor, ok bool)

	// NextRejectBack returns the previous reject range.
	NextRejectBack() (start, end Cursor, ok bool)
}

// DoubleEndedSearcher is a ReverseSearcher whose two directions consume one
// shared range: forward and backward steps never report the same element
// twice, and collecting forward results then reversing them equals
// collecting backward results.
type DoubleEndedSearcher[M any] interface {
	ReverseSearcher[M]

	// DoubleEnded marks the capability; it does nothing.
	DoubleEnded()
}

// Pattern is a value that can search haystacks producing ranges of type M.
type Pattern[M any] interface {
	// Searcher binds the pattern to h.
	Searcher(h Haystack[M]) Searcher[M]
}

// ReversePattern is a Pattern whose searchers can step backward.
type ReversePattern[M any] interface {
	Pattern[M]
	ReverseSearcher(h Haystack[M]) ReverseSearcher[M]
}

// DoubleEndedPattern is a Pattern whose searchers are double ended.
type DoubleEndedPattern[M any] interface {
	ReversePattern[M]
	DoubleEndedSearcher(h Haystack[M]) DoubleEndedSearcher[M]
}

// PrefixMatcher is implemented by patterns that test for a prefix without
// running a searcher.
type PrefixMatcher[M any] interface {
	IsPrefixOf(h Haystack[M]) bool
}

// SuffixMatcher is implemented by patterns that test for a suffix without
// running a searcher.
type SuffixMatcher[M any] interface {
	IsSuffixOf(h Haystack[M]) bool
}

// ContainMatcher is implemented by patterns with a containment test faster
// than the first NextMatch.
type ContainMatcher[M any] interface {
	IsContainedIn(h Haystack[M]) bool
}

// whole returns the full range of h.
func whole[M any](h Haystack[M]) M {
	return h.Range(h.Front(), h.Back())
}
