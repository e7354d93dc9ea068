// Package searchtest collects and validates searcher output in tests.
//
// A searcher is driven to exhaustion twice, once for matches and once for
// rejects, and the two streams are merged by start offset. A correct
// searcher produces a merged stream that tiles the haystack; Malformed
// describes every way a stream fails to.
package searchtest

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/coregx/pattern"
)

// Step is one reported range, as element offsets from the front.
type Step struct {
	Match      bool
	Start, End int
}

// Match returns a match step.
func Match(start, end int) Step {
	return Step{Match: true, Start: start, End: end}
}

// Reject returns a reject step.
func Reject(start, end int) Step {
	return Step{Start: start, End: end}
}

// String returns "Match(a, b)" or "Reject(a, b)".
func (s Step) String() string {
	if s.Match {
		return fmt.Sprintf("Match(%d, %d)", s.Start, s.End)
	}
	return fmt.Sprintf("Reject(%d, %d)", s.Start, s.End)
}

// Gather drives s forward until it is exhausted, collecting matches or
// rejects.
func Gather[M any](s pattern.Searcher[M], matches bool) []Step {
	next := s.NextReject
	if matches {
		next = s.NextMatch
	}
	return collect(s.Haystack(), next, matches)
}

// GatherBack drives s backward until it is exhausted, collecting matches or
// rejects. The result is in front-to-back order.
func GatherBack[M any](s pattern.ReverseSearcher[M], matches bool) []Step {
	next := s.NextRejectBack
	if matches {
		next = s.NextMatchBack
	}
	v := collect(s.Haystack(), next, matches)
	slices.Reverse(v)
	return v
}

func collect[M any](h pattern.Haystack[M], next func() (pattern.Cursor, pattern.Cursor, bool), matches bool) []Step {
	var v []Step
	for {
		a, b, ok := next()
		if !ok {
			return v
		}
		v = append(v, Step{Match: matches, Start: h.Offset(a), End: h.Offset(b)})
	}
}

// Merge interleaves matches and rejects by start offset. On equal starts
// the match comes first, so a zero-width match precedes the reject that
// starts where it is.
func Merge(matches, rejects []Step) []Step {
	v := make([]Step, 0, len(matches)+len(rejects))
	for len(matches) > 0 || len(rejects) > 0 {
		if len(rejects) == 0 || (len(matches) > 0 && matches[0].Start <= rejects[0].Start) {
			v = append(v, matches[0])
			matches = matches[1:]
		} else {
			v = append(v, rejects[0])
			rejects = rejects[1:]
		}
	}
	return v
}

// Forward returns the merged forward stream of p over h, built from two
// fresh searchers.
func Forward[M any](p pattern.Pattern[M], h pattern.Haystack[M]) []Step {
	return Merge(Gather(p.Searcher(h), true), Gather(p.Searcher(h), false))
}

// Backward returns the merged backward stream of p over h, in
// front-to-back order.
func Backward[M any](p pattern.ReversePattern[M], h pattern.Haystack[M]) []Step {
	return Merge(GatherBack(p.ReverseSearcher(h), true), GatherBack(p.ReverseSearcher(h), false))
}

// Malformed reports why v does not tile a haystack of length n, or nil.
func Malformed(v []Step, n int) error {
	var errs []error
	for i := 1; i < len(v); i++ {
		prev, cur := v[i-1], v[i]
		if prev.End < cur.Start {
			errs = append(errs, fmt.Errorf("gap between %v and %v", prev, cur))
		}
		if prev.End > cur.Start {
			errs = append(errs, fmt.Errorf("overlap between %v and %v", prev, cur))
		}
	}
	for _, s := range v {
		if !s.Match && s.Start == s.End {
			errs = append(errs, fmt.Errorf("zero-length %v", s))
		}
		if s.Start > s.End {
			errs = append(errs, fmt.Errorf("negative-length %v", s))
		}
	}
	if len(v) == 0 && n != 0 {
		errs = append(errs, fmt.Errorf("stream does not cover [0, %d)", n))
	}
	if len(v) > 0 {
		if v[0].Start != 0 {
			errs = append(errs, fmt.Errorf("first interval %v does not start at 0", v[0]))
		}
		if last := v[len(v)-1]; last.End != n {
			errs = append(errs, fmt.Errorf("last interval %v does not end at %d", last, n))
		}
	}
	return errors.Join(errs...)
}

// CheckForward compares the forward stream of p over h with want and
// validates its tiling.
func CheckForward[M any](t testing.TB, p pattern.Pattern[M], h pattern.Haystack[M], want []Step) {
	t.Helper()
	check(t, "forward", Forward(p, h), want, pattern.HaystackLen(h))
}

// Check compares both streams of p over h with want.
func Check[M any](t testing.TB, p pattern.ReversePattern[M], h pattern.Haystack[M], forward, backward []Step) {
	t.Helper()
	n := pattern.HaystackLen(h)
	check(t, "forward", Forward(p, h), forward, n)
	check(t, "backward", Backward(p, h), backward, n)
}

func check(t testing.TB, dir string, got, want []Step, n int) {
	t.Helper()
	if err := Malformed(want, n); err != nil {
		t.Fatalf("%s: expected stream is malformed: %v", dir, err)
	}
	if err := Malformed(got, n); err != nil {
		t.Errorf("%s: searcher output is malformed: %v\n  searcher: %v", dir, err, got)
	}
	if !slices.Equal(got, want) {
		t.Errorf("%s:\n  searcher:  %v\n  should-be: %v", dir, got, want)
	}
}
