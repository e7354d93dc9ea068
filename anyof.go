package pattern

import (
	"github.com/coregx/ahocorasick"
)

// AnyOfPattern matches any of a set of needles using an Aho-Corasick
// automaton.
//
// Matches are non-overlapping and scanned left to right. The automaton
// only scans forward, so AnyOfPattern is a Pattern but not a
// ReversePattern: RFind, RSplit and Trim do not accept it.
type AnyOfPattern struct {
	auto    *ahocorasick.Automaton
	needles int
}

// AnyOf compiles needles into a text pattern using DefaultConfig.
func AnyOf(needles ...string) (*AnyOfPattern, error) {
	return AnyOfConfig(DefaultConfig(), needles...)
}

// AnyOfConfig compiles needles into a text pattern using cfg.
//
// Needles must be non-empty. A needle that starts or ends inside a
// character may produce matches that split it.
func AnyOfConfig(cfg Config, needles ...string) (*AnyOfPattern, error) {
	raw := make([][]byte, len(needles))
	for i, n := range needles {
		raw[i] = []byte(n)
	}
	return buildAnyOf(cfg, raw)
}

// MustAnyOf is like AnyOf but panics if the set cannot be built.
func MustAnyOf(needles ...string) *AnyOfPattern {
	p, err := AnyOf(needles...)
	if err != nil {
		panic(err)
	}
	return p
}

// AnyOfBytes compiles needles into a byte slice pattern.
func AnyOfBytes(needles ...[]byte) (*AnyOfBytesPattern, error) {
	p, err := buildAnyOf(DefaultConfig(), needles)
	if err != nil {
		return nil, err
	}
	return &AnyOfBytesPattern{inner: p}, nil
}

func buildAnyOf(cfg Config, needles [][]byte) (*AnyOfPattern, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(needles) == 0 {
		return nil, &BuildError{Index: -1, Err: ErrNoNeedles}
	}
	if len(needles) > cfg.MaxNeedles {
		return nil, &BuildError{Index: -1, Err: ErrTooManyNeedles}
	}

	builder := ahocorasick.NewBuilder()
	for i, n := range needles {
		if len(n) == 0 {
			return nil, &BuildError{Index: i, Err: ErrEmptyNeedle}
		}
		builder.AddPattern(n)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, &BuildError{Index: -1, Err: err}
	}
	return &AnyOfPattern{auto: auto, needles: len(needles)}, nil
}

// Len returns the number of needles.
func (p *AnyOfPattern) Len() int {
	return p.needles
}

// Searcher binds the pattern to h.
func (p *AnyOfPattern) Searcher(h Haystack[string]) Searcher[string] {
	return newAnyOfSearcher(h, stringBytes(whole(h)), p.auto)
}

// IsContainedIn reports whether any needle occurs in h.
func (p *AnyOfPattern) IsContainedIn(h Haystack[string]) bool {
	return p.auto.IsMatch(stringBytes(whole(h)))
}

// AnyOfBytesPattern is AnyOfPattern over byte slices.
type AnyOfBytesPattern struct {
	inner *AnyOfPattern
}

// Searcher binds the pattern to h.
func (p *AnyOfBytesPattern) Searcher(h Haystack[[]byte]) Searcher[[]byte] {
	return newAnyOfSearcher(h, whole(h), p.inner.auto)
}

// IsContainedIn reports whether any needle occurs in h.
func (p *AnyOfBytesPattern) IsContainedIn(h Haystack[[]byte]) bool {
	return p.inner.auto.IsMatch(whole(h))
}

// anyOfSearcher is a forward-only searcher over an automaton.
//
// A match found while looking for the next reject is held in pending so
// that the following NextMatch returns it.
type anyOfSearcher[M any] struct {
	hs       Haystack[M]
	front    Cursor
	haystack []byte
	auto     *ahocorasick.Automaton
	position int

	pending      bool
	pendingStart int
	pendingEnd   int
}

func newAnyOfSearcher[M any](h Haystack[M], haystack []byte, auto *ahocorasick.Automaton) *anyOfSearcher[M] {
	return &anyOfSearcher[M]{hs: h, front: h.Front(), haystack: haystack, auto: auto}
}

// Haystack returns the haystack the searcher is bound to.
func (s *anyOfSearcher[M]) Haystack() Haystack[M] {
	return s.hs
}

// find locates the next match at or after position.
func (s *anyOfSearcher[M]) find() (int, int, bool) {
	if s.pending {
		return s.pendingStart, s.pendingEnd, true
	}
	if s.position >= len(s.haystack) {
		return 0, 0, false
	}
	m := s.auto.Find(s.haystack, s.position)
	if m == nil {
		return 0, 0, false
	}
	s.pending, s.pendingStart, s.pendingEnd = true, m.Start, m.End
	return m.Start, m.End, true
}

// NextMatch returns the next match range.
func (s *anyOfSearcher[M]) NextMatch() (Cursor, Cursor, bool) {
	a, b, ok := s.find()
	if !ok {
		s.position = len(s.haystack)
		return Cursor{}, Cursor{}, false
	}
	s.pending = false
	s.position = b
	return s.front.add(a), s.front.add(b), true
}

// NextReject returns the next reject range.
func (s *anyOfSearcher[M]) NextReject() (Cursor, Cursor, bool) {
	for {
		if s.position >= len(s.haystack) {
			return Cursor{}, Cursor{}, false
		}
		a, b, ok := s.find()
		if !ok {
			a = len(s.haystack)
		}
		if a > s.position {
			start := s.position
			s.position = a
			return s.front.add(start), s.front.add(a), true
		}
		// A match starts here: step over it.
		s.pending = false
		s.position = b
	}
}
