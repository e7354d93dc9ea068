package pattern

import (
	"github.com/coregx/pattern/prefilter"
	"github.com/coregx/pattern/twoway"
	"golang.org/x/exp/constraints"
)

// Boundaries reports which offsets of a haystack may start or end a
// reported range.
//
// Offsets 0 and len(haystack) are always boundaries. unit.UTF8 and
// unit.WTF8 implement Boundaries[byte] for encoded text.
type Boundaries[E any] interface {
	IsBoundary(haystack []E, i int) bool
}

// EveryIndex is the Boundaries of plain slices: every offset is valid.
type EveryIndex[E any] struct{}

// IsBoundary always returns true.
func (EveryIndex[E]) IsBoundary([]E, int) bool { return true }

func alignUp[E any](b Boundaries[E], haystack []E, i int) int {
	for i < len(haystack) && !b.IsBoundary(haystack, i) {
		i++
	}
	return i
}

func alignDown[E any](b Boundaries[E], haystack []E, i int) int {
	for i > 0 && !b.IsBoundary(haystack, i) {
		i--
	}
	return i
}

// SeqSearcher searches a haystack of ordered elements for a fixed needle.
//
// Non-empty needles run the Two-Way engine. Its rejects are computed on raw
// elements and are widened to the nearest boundary before being reported;
// its matches are already aligned when the needle is. The empty needle
// matches at every boundary, alternating with one-unit rejects.
type SeqSearcher[M any, E constraints.Ordered, F prefilter.Filter[E]] struct {
	hs       Haystack[M]
	front    Cursor
	haystack []E
	bounds   Boundaries[E]

	empty bool
	en    emptyNeedle
	tw    twoway.Searcher[E, F]
}

// NewSeqSearcher returns a searcher for needle over haystack, the elements
// of h from front to back. filter builds the fast-skip filter of the needle.
//
// Both slices are borrowed and must not change while the searcher is in
// use.
func NewSeqSearcher[M any, E constraints.Ordered, F prefilter.Filter[E]](
	h Haystack[M], haystack, needle []E, bounds Boundaries[E], filter func([]E) F,
) *SeqSearcher[M, E, F] {
	s := &SeqSearcher[M, E, F]{
		hs:       h,
		front:    h.Front(),
		haystack: haystack,
		bounds:   bounds,
	}
	if len(needle) == 0 {
		s.empty = true
		s.en = emptyNeedle{end: len(haystack)}
	} else {
		s.tw = twoway.New(needle, len(haystack), filter)
	}
	return s
}

// Haystack returns the haystack the searcher is bound to.
func (s *SeqSearcher[M, E, F]) Haystack() Haystack[M] {
	return s.hs
}

func (s *SeqSearcher[M, E, F]) cursors(st twoway.Step) (Cursor, Cursor, bool) {
	if st.Kind == twoway.Done {
		return Cursor{}, Cursor{}, false
	}
	return s.front.add(st.Start), s.front.add(st.End), true
}

// next returns the next forward step with reject ends aligned.
func (s *SeqSearcher[M, E, F]) next() twoway.Step {
	if s.empty {
		return s.en.next(len(s.haystack), func(i int) int {
			return alignUp(s.bounds, s.haystack, i+1)
		})
	}
	if s.tw.Position() >= len(s.haystack) {
		return twoway.Step{}
	}
	st := s.tw.Next(s.haystack, true)
	if st.Kind == twoway.Reject {
		st.End = alignUp(s.bounds, s.haystack, st.End)
		s.tw.AdvanceTo(st.End)
	}
	return st
}

// nextBack returns the next backward step with reject starts aligned.
func (s *SeqSearcher[M, E, F]) nextBack() twoway.Step {
	if s.empty {
		return s.en.nextBack(func(i int) int {
			return alignDown(s.bounds, s.haystack, i-1)
		})
	}
	if s.tw.End() <= 0 {
		return twoway.Step{}
	}
	st := s.tw.NextBack(s.haystack, true)
	if st.Kind == twoway.Reject {
		st.Start = alignDown(s.bounds, s.haystack, st.Start)
		s.tw.RetreatTo(st.Start)
	}
	return st
}

// NextMatch returns the next match range.
func (s *SeqSearcher[M, E, F]) NextMatch() (Cursor, Cursor, bool) {
	if s.empty {
		for {
			if st := s.next(); st.Kind != twoway.Reject {
				return s.cursors(st)
			}
		}
	}
	return s.cursors(s.tw.Next(s.haystack, false))
}

// NextReject returns the next reject range.
func (s *SeqSearcher[M, E, F]) NextReject() (Cursor, Cursor, bool) {
	for {
		if st := s.next(); st.Kind != twoway.Match {
			return s.cursors(st)
		}
	}
}

// NextMatchBack returns the previous match range.
func (s *SeqSearcher[M, E, F]) NextMatchBack() (Cursor, Cursor, bool) {
	if s.empty {
		for {
			if st := s.nextBack(); st.Kind != twoway.Reject {
				return s.cursors(st)
			}
		}
	}
	return s.cursors(s.tw.NextBack(s.haystack, false))
}

// NextRejectBack returns the previous reject range.
func (s *SeqSearcher[M, E, F]) NextRejectBack() (Cursor, Cursor, bool) {
	for {
		if st := s.nextBack(); st.Kind != twoway.Match {
			return s.cursors(st)
		}
	}
}

// emptyState is the next step kind of an empty needle searcher.
type emptyState uint8

const (
	nextIsMatch emptyState = iota
	nextIsReject
	emptyDone
)

// emptyNeedle emits a zero-width match at every boundary, separated by
// rejects of one unit each. Forward and backward cursors are independent.
type emptyNeedle struct {
	position int
	end      int
	fw       emptyState
	bw       emptyState
}

// next steps forward. advance returns the boundary following its argument.
func (e *emptyNeedle) next(n int, advance func(int) int) twoway.Step {
	switch e.fw {
	case nextIsMatch:
		e.fw = nextIsReject
		return twoway.Step{Kind: twoway.Match, Start: e.position, End: e.position}
	case nextIsReject:
		if e.position >= n {
			e.fw = emptyDone
			return twoway.Step{}
		}
		pos := e.position
		e.position = advance(pos)
		e.fw = nextIsMatch
		return twoway.Step{Kind: twoway.Reject, Start: pos, End: e.position}
	default:
		return twoway.Step{}
	}
}

// nextBack steps backward. retreat returns the boundary preceding its
// argument.
func (e *emptyNeedle) nextBack(retreat func(int) int) twoway.Step {
	switch e.bw {
	case nextIsMatch:
		e.bw = nextIsReject
		return twoway.Step{Kind: twoway.Match, Start: e.end, End: e.end}
	case nextIsReject:
		if e.end <= 0 {
			e.bw = emptyDone
			return twoway.Step{}
		}
		end := e.end
		e.end = retreat(end)
		e.bw = nextIsMatch
		return twoway.Step{Kind: twoway.Reject, Start: e.end, End: end}
	default:
		return twoway.Step{}
	}
}

// newByteSearcher builds a byte SeqSearcher with the filter chosen by cfg.
func newByteSearcher[M any](h Haystack[M], haystack, needle []byte, bounds Boundaries[byte], cfg Config) ReverseSearcher[M] {
	if cfg.FastSkip {
		return NewSeqSearcher(h, haystack, needle, bounds, prefilter.NewByteSet)
	}
	return NewSeqSearcher(h, haystack, needle, bounds, prefilter.NewNone[byte])
}
