// Package twoway implements the Two-Way string matching algorithm of
// Crochemore and Perrin over slices of any ordered element type.
//
// The needle is split at a critical factorization (u, v). A search first
// matches v left to right, then u right to left. How far the window may jump
// after a mismatch follows from the factorization being critical, which gives
// linear time and constant space.
//
// Two variants are selected at construction:
//   - Short period (u is a suffix of v[:period]): the period is exact and the
//     searcher memoizes how much of the needle is already known to match
//     after a shift ("Algorithm CP1").
//   - Long period: the period is approximated by max(|u|, |v|) + 1 and
//     memoization is disabled ("Algorithm CP2").
//
// A Searcher scans forward with Next and backward with NextBack. The two
// directions keep independent cursors. Each call returns a Match, a Reject
// (a span in which no occurrence starts) or Done. Rejects are emitted only
// when earlyReject is set; without it the searcher skips straight to the
// next match, which is the fastest path.
//
// Example:
//
//	needle := []byte("bb")
//	haystack := []byte("abbcbbd")
//	s := twoway.New(needle, len(haystack), prefilter.NewByteSet)
//	for st := s.Next(haystack, true); st.Kind != twoway.Done; st = s.Next(haystack, true) {
//	    fmt.Println(st) // Reject(0, 1), Match(1, 3), Reject(3, 4), ...
//	}
package twoway

import (
	"math"
	"slices"

	"github.com/coregx/pattern/prefilter"
	"golang.org/x/exp/constraints"
)

// longPeriod marks memory and memoryBack when memoization is disabled.
const longPeriod = math.MaxInt

// Searcher is the Two-Way state bound to one needle and one haystack length.
//
// The factorization, period and filter are fixed at construction. position
// only grows and end only shrinks; they are the forward and backward cursors.
// A Searcher holds no copy of the needle or haystack and never allocates
// while stepping.
type Searcher[E constraints.Ordered, F prefilter.Filter[E]] struct {
	needle      []E
	skip        F
	critPos     int
	critPosBack int
	period      int

	position   int
	end        int
	memory     int
	memoryBack int
}

// New precomputes the critical factorization of needle and returns a searcher
// whose backward cursor starts at end, normally the haystack length.
//
// filter builds the fast-skip filter. For short period needles it sees only
// the first period elements, otherwise the whole needle.
//
// New panics if needle is empty; empty needles are handled by the caller.
func New[E constraints.Ordered, F prefilter.Filter[E]](needle []E, end int, filter func([]E) F) Searcher[E, F] {
	if len(needle) == 0 {
		panic("twoway: empty needle")
	}

	critFalse, periodFalse := maximalSuffix(needle, false)
	critTrue, periodTrue := maximalSuffix(needle, true)

	critPos, period := critTrue, periodTrue
	if critFalse > critTrue {
		critPos, period = critFalse, periodFalse
	}

	if slices.Equal(needle[:critPos], needle[period:period+critPos]) {
		// Short period: the period is exact. The reverse factorization
		// x = u'v' is chosen with |v'| < period(x).
		critPosBack := len(needle) - max(
			reverseMaximalSuffix(needle, period, false),
			reverseMaximalSuffix(needle, period, true),
		)
		return Searcher[E, F]{
			needle:      needle,
			skip:        filter(needle[:period]),
			critPos:     critPos,
			critPosBack: critPosBack,
			period:      period,
			end:         end,
			memory:      0,
			memoryBack:  len(needle),
		}
	}

	// Long period: approximate the period by its lower bound.
	return Searcher[E, F]{
		needle:      needle,
		skip:        filter(needle),
		critPos:     critPos,
		critPosBack: critPos,
		period:      max(critPos, len(needle)-critPos) + 1,
		end:         end,
		memory:      longPeriod,
		memoryBack:  longPeriod,
	}
}

// LongPeriod reports whether the needle uses the long period variant.
func (s *Searcher[E, F]) LongPeriod() bool {
	return s.memory == longPeriod
}

// Period returns the needle period, or its lower bound for long periods.
func (s *Searcher[E, F]) Period() int {
	return s.period
}

// CritPos returns the forward and backward critical positions.
func (s *Searcher[E, F]) CritPos() (forward, backward int) {
	return s.critPos, s.critPosBack
}

// Position returns the forward cursor.
func (s *Searcher[E, F]) Position() int {
	return s.position
}

// End returns the backward cursor.
func (s *Searcher[E, F]) End() int {
	return s.end
}

// AdvanceTo moves the forward cursor to pos if pos lies ahead of it.
// Memoization is reset because it describes the old window.
func (s *Searcher[E, F]) AdvanceTo(pos int) {
	if pos <= s.position {
		return
	}
	s.position = pos
	if !s.LongPeriod() {
		s.memory = 0
	}
}

// RetreatTo moves the backward cursor to end if end lies before it.
func (s *Searcher[E, F]) RetreatTo(end int) {
	if end >= s.end {
		return
	}
	s.end = end
	if !s.LongPeriod() {
		s.memoryBack = len(s.needle)
	}
}

// Next advances the forward cursor over haystack and returns the next step.
//
// With earlyReject unset only Match and Done are returned. With earlyReject
// set, every span skipped since the previous call is reported as a Reject
// before the search continues, so successive steps tile the haystack.
func (s *Searcher[E, F]) Next(haystack []E, earlyReject bool) Step {
	needle := s.needle
	long := s.LongPeriod()
	oldPos := s.position
	needleLast := len(needle) - 1

search:
	for {
		// Room to search in.
		if s.position+needleLast >= len(haystack) {
			s.position = max(len(haystack), oldPos)
			if earlyReject && oldPos < s.position {
				return rejected(oldPos, s.position)
			}
			return Step{}
		}

		if earlyReject && oldPos != s.position {
			return rejected(oldPos, s.position)
		}

		// Skip windows whose last element is not in the needle.
		if !s.skip.Contains(haystack[s.position+needleLast]) {
			s.position += len(needle)
			if !long {
				s.memory = 0
			}
			continue search
		}

		// Right part of the needle.
		start := s.critPos
		if !long {
			start = max(s.critPos, s.memory)
		}
		for i := start; i < len(needle); i++ {
			if needle[i] != haystack[s.position+i] {
				s.position += i - s.critPos + 1
				if !long {
					s.memory = 0
				}
				continue search
			}
		}

		// Left part of the needle.
		start = 0
		if !long {
			start = s.memory
		}
		for i := s.critPos - 1; i >= start; i-- {
			if needle[i] != haystack[s.position+i] {
				s.position += s.period
				if !long {
					s.memory = len(needle) - s.period
				}
				continue search
			}
		}

		matchPos := s.position
		// Non-overlapping: advance by the needle length, not the period.
		s.position += len(needle)
		if !long {
			s.memory = 0
		}
		return matched(matchPos, matchPos+len(needle))
	}
}

// NextBack is the mirror of Next and advances the backward cursor.
//
// The definitions are symmetric: period(x) = period(reverse(x)), and if
// (u, v) is a critical factorization then so is (reverse(v), reverse(u)).
// Searching backward is searching forward through the reversed haystack with
// the reversed needle, matching u' first and then v'.
func (s *Searcher[E, F]) NextBack(haystack []E, earlyReject bool) Step {
	needle := s.needle
	long := s.LongPeriod()
	if s.end > len(haystack) {
		s.end = len(haystack)
	}
	oldEnd := s.end

search:
	for {
		// Room to search in.
		if s.end < len(needle) {
			s.end = 0
			if earlyReject && oldEnd > 0 {
				return rejected(0, oldEnd)
			}
			return Step{}
		}

		if earlyReject && oldEnd != s.end {
			return rejected(s.end, oldEnd)
		}

		base := s.end - len(needle)

		// Skip windows whose first element is not in the needle.
		if !s.skip.Contains(haystack[base]) {
			s.end -= len(needle)
			if !long {
				s.memoryBack = len(needle)
			}
			continue search
		}

		// Left part of the needle.
		crit := s.critPosBack
		if !long {
			crit = min(s.critPosBack, s.memoryBack)
		}
		for i := crit - 1; i >= 0; i-- {
			if needle[i] != haystack[base+i] {
				s.end -= s.critPosBack - i
				if !long {
					s.memoryBack = len(needle)
				}
				continue search
			}
		}

		// Right part of the needle.
		needleEnd := len(needle)
		if !long {
			needleEnd = s.memoryBack
		}
		for i := s.critPosBack; i < needleEnd; i++ {
			if needle[i] != haystack[base+i] {
				s.end -= s.period
				if !long {
					s.memoryBack = s.period
				}
				continue search
			}
		}

		s.end -= len(needle)
		if !long {
			s.memoryBack = len(needle)
		}
		return matched(base, base+len(needle))
	}
}
