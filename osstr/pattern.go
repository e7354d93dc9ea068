package osstr

import (
	"bytes"

	"github.com/coregx/pattern"
	"github.com/coregx/pattern/internal/unit"
	"github.com/coregx/pattern/prefilter"
)

func elems(h pattern.Haystack[OsStr]) []byte {
	return h.Range(h.Front(), h.Back())
}

// StrPattern searches OS strings for a fixed byte sequence.
//
// A needle made of whole units reports ranges on unit boundaries. A needle
// that starts or ends inside a unit, such as one half of a split
// character, is matched byte by byte.
type StrPattern struct {
	needle []byte
	bounds pattern.Boundaries[byte]
}

// Str returns a pattern matching s.
func Str(s string) *StrPattern {
	return Os(OsStr(s))
}

// Os returns a pattern matching o. The needle is borrowed and must not
// change while searchers of the pattern are in use.
func Os(o OsStr) *StrPattern {
	p := &StrPattern{needle: o, bounds: unit.WTF8}
	if !unit.WTF8.Aligned(o) {
		p.bounds = pattern.EveryIndex[byte]{}
	}
	return p
}

// Searcher binds the pattern to h.
func (p *StrPattern) Searcher(h pattern.Haystack[OsStr]) pattern.Searcher[OsStr] {
	return p.ReverseSearcher(h)
}

// ReverseSearcher binds the pattern to h.
func (p *StrPattern) ReverseSearcher(h pattern.Haystack[OsStr]) pattern.ReverseSearcher[OsStr] {
	return pattern.NewSeqSearcher(h, elems(h), p.needle, p.bounds, prefilter.NewByteSet)
}

// IsPrefixOf reports whether h starts with the needle.
func (p *StrPattern) IsPrefixOf(h pattern.Haystack[OsStr]) bool {
	return bytes.HasPrefix(elems(h), p.needle)
}

// IsSuffixOf reports whether h ends with the needle.
func (p *StrPattern) IsSuffixOf(h pattern.Haystack[OsStr]) bool {
	return bytes.HasSuffix(elems(h), p.needle)
}

// RunePattern matches single units of OS strings against a set of runes.
// Opaque units are always rejects.
type RunePattern struct {
	inner *pattern.RunePattern
}

// Rune returns a pattern matching r.
func Rune(r rune) *RunePattern {
	return &RunePattern{inner: pattern.Rune(r)}
}

// AnyRune returns a pattern matching any of rs.
func AnyRune(rs ...rune) *RunePattern {
	return &RunePattern{inner: pattern.AnyRune(rs...)}
}

// RuneFunc returns a pattern matching the runes for which f returns true.
func RuneFunc(f func(rune) bool) *RunePattern {
	return &RunePattern{inner: pattern.RuneFunc(f)}
}

// Searcher binds the pattern to h.
func (p *RunePattern) Searcher(h pattern.Haystack[OsStr]) pattern.Searcher[OsStr] {
	return p.DoubleEndedSearcher(h)
}

// ReverseSearcher binds the pattern to h.
func (p *RunePattern) ReverseSearcher(h pattern.Haystack[OsStr]) pattern.ReverseSearcher[OsStr] {
	return p.DoubleEndedSearcher(h)
}

// DoubleEndedSearcher binds the pattern to h.
func (p *RunePattern) DoubleEndedSearcher(h pattern.Haystack[OsStr]) pattern.DoubleEndedSearcher[OsStr] {
	return pattern.NewRuneSearcher(h, elems(h), unit.WTF8, p.inner)
}

// IsPrefixOf reports whether the first unit of h matches.
func (p *RunePattern) IsPrefixOf(h pattern.Haystack[OsStr]) bool {
	r, size := unit.WTF8.Decode(elems(h))
	return size > 0 && !unit.WTF8.Opaque(r, size) && p.inner.Matches(r)
}

// IsSuffixOf reports whether the last unit of h matches.
func (p *RunePattern) IsSuffixOf(h pattern.Haystack[OsStr]) bool {
	r, size := unit.WTF8.DecodeLast(elems(h))
	return size > 0 && !unit.WTF8.Opaque(r, size) && p.inner.Matches(r)
}
