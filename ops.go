package pattern

// Find returns the offset of the first match of p in h.
func Find[M any](h Haystack[M], p Pattern[M]) (int, bool) {
	a, _, ok := p.Searcher(h).NextMatch()
	if !ok {
		return -1, false
	}
	return h.Offset(a), true
}

// RFind returns the offset of the last match of p in h.
func RFind[M any](h Haystack[M], p ReversePattern[M]) (int, bool) {
	a, _, ok := p.ReverseSearcher(h).NextMatchBack()
	if !ok {
		return -1, false
	}
	return h.Offset(a), true
}

// Contains reports whether p matches anywhere in h.
func Contains[M any](h Haystack[M], p Pattern[M]) bool {
	if c, ok := p.(ContainMatcher[M]); ok {
		return c.IsContainedIn(h)
	}
	_, _, ok := p.Searcher(h).NextMatch()
	return ok
}

// HasPrefix reports whether a match of p starts at the front of h.
func HasPrefix[M any](h Haystack[M], p Pattern[M]) bool {
	if pm, ok := p.(PrefixMatcher[M]); ok {
		return pm.IsPrefixOf(h)
	}
	return searchPrefix(h, p)
}

// HasSuffix reports whether a match of p ends at the back of h.
func HasSuffix[M any](h Haystack[M], p ReversePattern[M]) bool {
	if sm, ok := p.(SuffixMatcher[M]); ok {
		return sm.IsSuffixOf(h)
	}
	return searchSuffix(h, p)
}

// searchPrefix derives the prefix test from the searcher streams. A first
// reject starting past the front means a match covers the front. Otherwise
// the answer is whether the first match starts at the front, which also
// settles zero-width matches and streams without rejects.
func searchPrefix[M any](h Haystack[M], p Pattern[M]) bool {
	front := h.Front()
	if a, _, ok := p.Searcher(h).NextReject(); ok && front.Less(a) {
		return true
	}
	a, _, ok := p.Searcher(h).NextMatch()
	return ok && a == front
}

func searchSuffix[M any](h Haystack[M], p ReversePattern[M]) bool {
	back := h.Back()
	if _, b, ok := p.ReverseSearcher(h).NextRejectBack(); ok && b.Less(back) {
		return true
	}
	_, b, ok := p.ReverseSearcher(h).NextMatchBack()
	return ok && b == back
}

// Count returns the number of non-overlapping matches of p in h.
func Count[M any](h Haystack[M], p Pattern[M]) int {
	s := p.Searcher(h)
	n := 0
	for {
		if _, _, ok := s.NextMatch(); !ok {
			return n
		}
		n++
	}
}
