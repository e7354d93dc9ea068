package pattern

import "iter"

// Matches returns an iterator over the matches of p in h, front to back.
//
// Example:
//
//	for m := range pattern.Matches(pattern.Text("abXXcdXX"), pattern.Substr("XX")) {
//	    fmt.Println(m) // XX, XX
//	}
func Matches[M any](h Haystack[M], p Pattern[M]) iter.Seq[M] {
	return func(yield func(M) bool) {
		s := p.Searcher(h)
		for {
			a, b, ok := s.NextMatch()
			if !ok || !yield(h.Range(a, b)) {
				return
			}
		}
	}
}

// RMatches returns an iterator over the matches of p in h, back to front.
// For needles that overlap themselves the matches may differ from those of
// Matches.
func RMatches[M any](h Haystack[M], p ReversePattern[M]) iter.Seq[M] {
	return func(yield func(M) bool) {
		s := p.ReverseSearcher(h)
		for {
			a, b, ok := s.NextMatchBack()
			if !ok || !yield(h.Range(a, b)) {
				return
			}
		}
	}
}

// MatchIndices is like Matches but also yields the offset of each match.
func MatchIndices[M any](h Haystack[M], p Pattern[M]) iter.Seq2[int, M] {
	return func(yield func(int, M) bool) {
		s := p.Searcher(h)
		for {
			a, b, ok := s.NextMatch()
			if !ok || !yield(h.Offset(a), h.Range(a, b)) {
				return
			}
		}
	}
}

// RMatchIndices is like RMatches but also yields the offset of each match.
func RMatchIndices[M any](h Haystack[M], p ReversePattern[M]) iter.Seq2[int, M] {
	return func(yield func(int, M) bool) {
		s := p.ReverseSearcher(h)
		for {
			a, b, ok := s.NextMatchBack()
			if !ok || !yield(h.Offset(a), h.Range(a, b)) {
				return
			}
		}
	}
}

// splitter walks the pieces between matches. start and end bound the part
// of the haystack not yet yielded.
type splitter[M any] struct {
	h            Haystack[M]
	start, end   Cursor
	keepTrailing bool
	finished     bool
}

func newSplitter[M any](h Haystack[M], keepTrailing bool) *splitter[M] {
	return &splitter[M]{h: h, start: h.Front(), end: h.Back(), keepTrailing: keepTrailing}
}

// rest returns the remaining piece once no more splitting is wanted.
func (sp *splitter[M]) rest() (Cursor, Cursor, bool) {
	if sp.finished {
		return Cursor{}, Cursor{}, false
	}
	sp.finished = true
	if sp.keepTrailing || sp.start != sp.end {
		return sp.start, sp.end, true
	}
	return Cursor{}, Cursor{}, false
}

func (sp *splitter[M]) next(s Searcher[M]) (Cursor, Cursor, bool) {
	if sp.finished {
		return Cursor{}, Cursor{}, false
	}
	if a, b, ok := s.NextMatch(); ok {
		start := sp.start
		sp.start = b
		return start, a, true
	}
	return sp.rest()
}

func (sp *splitter[M]) nextBack(s ReverseSearcher[M]) (Cursor, Cursor, bool) {
	if sp.finished {
		return Cursor{}, Cursor{}, false
	}
	if !sp.keepTrailing {
		// Drop one empty piece at the very end.
		sp.keepTrailing = true
		if a, b, ok := sp.nextBack(s); ok && a != b {
			return a, b, true
		}
		if sp.finished {
			return Cursor{}, Cursor{}, false
		}
	}
	if a, b, ok := s.NextMatchBack(); ok {
		end := sp.end
		sp.end = a
		return b, end, true
	}
	sp.finished = true
	return sp.start, sp.end, true
}

// Split returns an iterator over the pieces of h separated by matches of p.
// Leading and trailing empty pieces are kept, so joining the pieces with the
// matched separators reproduces h.
func Split[M any](h Haystack[M], p Pattern[M]) iter.Seq[M] {
	return splitSeq(h, p, true, -1)
}

// SplitN is like Split but yields at most n pieces; the last piece holds the
// unsplit remainder. n <= 0 yields nothing.
func SplitN[M any](h Haystack[M], p Pattern[M], n int) iter.Seq[M] {
	if n <= 0 {
		return func(func(M) bool) {}
	}
	return splitSeq(h, p, true, n)
}

// SplitTerminator is like Split but drops a trailing empty piece, treating
// matches as terminators rather than separators.
func SplitTerminator[M any](h Haystack[M], p Pattern[M]) iter.Seq[M] {
	return splitSeq(h, p, false, -1)
}

func splitSeq[M any](h Haystack[M], p Pattern[M], keepTrailing bool, n int) iter.Seq[M] {
	return func(yield func(M) bool) {
		s := p.Searcher(h)
		sp := newSplitter(h, keepTrailing)
		for count := 1; ; count++ {
			var a, b Cursor
			var ok bool
			if count == n {
				a, b, ok = sp.rest()
			} else {
				a, b, ok = sp.next(s)
			}
			if !ok || !yield(h.Range(a, b)) {
				return
			}
		}
	}
}

// RSplit is like Split but yields the pieces back to front.
func RSplit[M any](h Haystack[M], p ReversePattern[M]) iter.Seq[M] {
	return rsplitSeq(h, p, true, -1)
}

// RSplitN is like RSplit but yields at most n pieces; the last piece holds
// the unsplit front of h. n <= 0 yields nothing.
func RSplitN[M any](h Haystack[M], p ReversePattern[M], n int) iter.Seq[M] {
	if n <= 0 {
		return func(func(M) bool) {}
	}
	return rsplitSeq(h, p, true, n)
}

// RSplitTerminator is like SplitTerminator but yields the pieces back to
// front.
func RSplitTerminator[M any](h Haystack[M], p ReversePattern[M]) iter.Seq[M] {
	return rsplitSeq(h, p, false, -1)
}

func rsplitSeq[M any](h Haystack[M], p ReversePattern[M], keepTrailing bool, n int) iter.Seq[M] {
	return func(yield func(M) bool) {
		s := p.ReverseSearcher(h)
		sp := newSplitter(h, keepTrailing)
		for count := 1; ; count++ {
			var a, b Cursor
			var ok bool
			if count == n {
				a, b, ok = sp.rest()
			} else {
				a, b, ok = sp.nextBack(s)
			}
			if !ok || !yield(h.Range(a, b)) {
				return
			}
		}
	}
}

// TrimLeft returns h without the run of matches at its front.
func TrimLeft[M any](h Haystack[M], p Pattern[M]) M {
	start := h.Back()
	if a, _, ok := p.Searcher(h).NextReject(); ok {
		start = a
	}
	return h.Range(start, h.Back())
}

// TrimRight returns h without the run of matches at its back.
func TrimRight[M any](h Haystack[M], p ReversePattern[M]) M {
	end := h.Front()
	if _, b, ok := p.ReverseSearcher(h).NextRejectBack(); ok {
		end = b
	}
	return h.Range(h.Front(), end)
}

// Trim returns h without the runs of matches at both ends.
//
// Trim needs a double-ended pattern: the backward scan must stop where the
// forward scan did, which only a shared cursor range guarantees.
func Trim[M any](h Haystack[M], p DoubleEndedPattern[M]) M {
	s := p.DoubleEndedSearcher(h)
	start, end := h.Front(), h.Front()
	if a, b, ok := s.NextReject(); ok {
		start, end = a, b
	}
	if _, b, ok := s.NextRejectBack(); ok {
		end = b
	}
	return h.Range(start, end)
}
