package pattern

import (
	"unicode"
	"unicode/utf8"

	"github.com/coregx/pattern/internal/unit"
	"github.com/coregx/pattern/simd"
	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/rangetable"
)

// Decoder splits encoded text into units. unit.UTF8 and unit.WTF8 are
// Decoders.
type Decoder interface {
	Decode(b []byte) (rune, int)
	DecodeLast(b []byte) (rune, int)

	// Opaque reports whether a decoded unit stands for no character.
	// Opaque units are always rejects.
	Opaque(r rune, size int) bool
}

// RunePattern matches single units of text against a set of runes.
//
// Every unit of the haystack is either a match or a reject of its own.
// In strings, invalid bytes decode to utf8.RuneError, so a set containing
// RuneError matches them, as strings.IndexRune does. The opaque units of OS
// strings, invalid bytes and encoded surrogates, never match.
type RunePattern struct {
	match func(rune) bool
	// single is the one ASCII byte matched, or -1.
	single int
	// ascii is set when match accepts ASCII runes only.
	ascii bool
}

// Rune returns a pattern matching r.
func Rune(r rune) *RunePattern {
	if r >= 0 && r < utf8.RuneSelf {
		return &RunePattern{
			match:  func(c rune) bool { return c == r },
			single: int(r),
			ascii:  true,
		}
	}
	return &RunePattern{match: func(c rune) bool { return c == r }, single: -1}
}

// AnyRune returns a pattern matching any of rs.
//
// The runes are compiled into a unicode.RangeTable. Runes that are not
// valid code points, such as negative values and surrogates, are ignored.
func AnyRune(rs ...rune) *RunePattern {
	valid := make([]rune, 0, len(rs))
	ascii := true
	for _, r := range rs {
		if !utf8.ValidRune(r) {
			continue
		}
		valid = append(valid, r)
		if r >= utf8.RuneSelf {
			ascii = false
		}
	}
	switch len(valid) {
	case 0:
		return &RunePattern{match: func(rune) bool { return false }, single: -1, ascii: true}
	case 1:
		return Rune(valid[0])
	}
	table := rangetable.New(valid...)
	return &RunePattern{
		match:  func(c rune) bool { return unicode.Is(table, c) },
		single: -1,
		ascii:  ascii,
	}
}

// RuneSet returns a pattern matching the runes of set, for example
// runes.In(unicode.Greek).
func RuneSet(set runes.Set) *RunePattern {
	return &RunePattern{match: set.Contains, single: -1}
}

// RuneFunc returns a pattern matching the runes for which f returns true.
func RuneFunc(f func(rune) bool) *RunePattern {
	return &RunePattern{match: f, single: -1}
}

// Matches reports whether r is in the set.
func (p *RunePattern) Matches(r rune) bool {
	return p.match(r)
}

// Searcher binds the pattern to h.
func (p *RunePattern) Searcher(h Haystack[string]) Searcher[string] {
	return p.DoubleEndedSearcher(h)
}

// ReverseSearcher binds the pattern to h.
func (p *RunePattern) ReverseSearcher(h Haystack[string]) ReverseSearcher[string] {
	return p.DoubleEndedSearcher(h)
}

// DoubleEndedSearcher binds the pattern to h.
func (p *RunePattern) DoubleEndedSearcher(h Haystack[string]) DoubleEndedSearcher[string] {
	return NewRuneSearcher(h, stringBytes(whole(h)), unit.UTF8, p)
}

// IsPrefixOf reports whether the first unit of h matches.
func (p *RunePattern) IsPrefixOf(h Haystack[string]) bool {
	s := whole(h)
	if len(s) == 0 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return p.match(r)
}

// IsSuffixOf reports whether the last unit of h matches.
func (p *RunePattern) IsSuffixOf(h Haystack[string]) bool {
	s := whole(h)
	if len(s) == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return p.match(r)
}

// RuneSearcher steps through encoded text one unit at a time.
type RuneSearcher[M any] struct {
	hs       Haystack[M]
	front    Cursor
	haystack []byte
	dec      Decoder
	p        *RunePattern
	position int
	end      int
}

// NewRuneSearcher returns a double-ended searcher for p over haystack, the
// bytes of h from front to back, split into units by dec.
func NewRuneSearcher[M any](h Haystack[M], haystack []byte, dec Decoder, p *RunePattern) *RuneSearcher[M] {
	return &RuneSearcher[M]{
		hs:       h,
		front:    h.Front(),
		haystack: haystack,
		dec:      dec,
		p:        p,
		end:      len(haystack),
	}
}

// Haystack returns the haystack the searcher is bound to.
func (s *RuneSearcher[M]) Haystack() Haystack[M] {
	return s.hs
}

// DoubleEnded marks the searcher as double ended.
func (s *RuneSearcher[M]) DoubleEnded() {}

// unitAt classifies the unit starting at i.
func (s *RuneSearcher[M]) unitAt(i int) (size int, matched bool) {
	if b := s.haystack[i]; b < utf8.RuneSelf {
		return 1, s.p.match(rune(b))
	}
	if s.p.ascii {
		_, size = s.dec.Decode(s.haystack[i:s.end])
		return size, false
	}
	r, size := s.dec.Decode(s.haystack[i:s.end])
	return size, !s.dec.Opaque(r, size) && s.p.match(r)
}

// unitBefore classifies the unit ending at j.
func (s *RuneSearcher[M]) unitBefore(j int) (size int, matched bool) {
	if b := s.haystack[j-1]; b < utf8.RuneSelf {
		return 1, s.p.match(rune(b))
	}
	r, size := s.dec.DecodeLast(s.haystack[s.position:j])
	if s.p.ascii {
		return size, false
	}
	return size, !s.dec.Opaque(r, size) && s.p.match(r)
}

func (s *RuneSearcher[M]) cursors(a, b int) (Cursor, Cursor, bool) {
	return s.front.add(a), s.front.add(b), true
}

// NextMatch returns the next matching unit.
func (s *RuneSearcher[M]) NextMatch() (Cursor, Cursor, bool) {
	if s.p.single >= 0 {
		i := simd.Memchr(s.haystack[s.position:s.end], byte(s.p.single))
		if i < 0 {
			s.position = s.end
			return Cursor{}, Cursor{}, false
		}
		a := s.position + i
		s.position = a + 1
		return s.cursors(a, a+1)
	}
	for s.position < s.end {
		a := s.position
		size, ok := s.unitAt(a)
		s.position += size
		if ok {
			return s.cursors(a, s.position)
		}
	}
	return Cursor{}, Cursor{}, false
}

// NextReject returns the next non-matching unit.
func (s *RuneSearcher[M]) NextReject() (Cursor, Cursor, bool) {
	for s.position < s.end {
		a := s.position
		size, ok := s.unitAt(a)
		s.position += size
		if !ok {
			return s.cursors(a, s.position)
		}
	}
	return Cursor{}, Cursor{}, false
}

// NextMatchBack returns the previous matching unit.
func (s *RuneSearcher[M]) NextMatchBack() (Cursor, Cursor, bool) {
	if s.p.single >= 0 {
		i := simd.Memrchr(s.haystack[s.position:s.end], byte(s.p.single))
		if i < 0 {
			s.end = s.position
			return Cursor{}, Cursor{}, false
		}
		a := s.position + i
		s.end = a
		return s.cursors(a, a+1)
	}
	for s.end > s.position {
		b := s.end
		size, ok := s.unitBefore(b)
		s.end -= size
		if ok {
			return s.cursors(s.end, b)
		}
	}
	return Cursor{}, Cursor{}, false
}

// NextRejectBack returns the previous non-matching unit.
func (s *RuneSearcher[M]) NextRejectBack() (Cursor, Cursor, bool) {
	for s.end > s.position {
		b := s.end
		size, ok := s.unitBefore(b)
		s.end -= size
		if !ok {
			return s.cursors(s.end, b)
		}
	}
	return Cursor{}, Cursor{}, false
}
