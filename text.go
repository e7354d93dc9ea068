package pattern

import (
	"strings"
	"unsafe"

	"github.com/coregx/pattern/internal/unit"
)

// stringBytes views s without copying. The result must not be written.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// textBounds returns the boundaries a needle may be searched with in enc.
// Needles that can match across a unit, such as half of a character, are
// searched byte by byte.
func textBounds(enc unit.Encoding, needle []byte) Boundaries[byte] {
	if enc.Aligned(needle) {
		return enc
	}
	return EveryIndex[byte]{}
}

// SubstrPattern searches text for a fixed substring.
//
// The empty substring matches at every character boundary, including both
// ends of the haystack.
type SubstrPattern struct {
	needle string
	cfg    Config
}

// Substr returns a pattern matching needle.
//
// Example:
//
//	p := pattern.Substr("bb")
//	pattern.Find(pattern.Text("abbcbbd"), p) // 1, true
func Substr(needle string) *SubstrPattern {
	return SubstrConfig(needle, DefaultConfig())
}

// SubstrConfig returns a pattern matching needle built with cfg.
func SubstrConfig(needle string, cfg Config) *SubstrPattern {
	return &SubstrPattern{needle: needle, cfg: cfg}
}

// Needle returns the substring searched for.
func (p *SubstrPattern) Needle() string {
	return p.needle
}

// Searcher binds the pattern to h.
func (p *SubstrPattern) Searcher(h Haystack[string]) Searcher[string] {
	return p.ReverseSearcher(h)
}

// ReverseSearcher binds the pattern to h.
func (p *SubstrPattern) ReverseSearcher(h Haystack[string]) ReverseSearcher[string] {
	needle := stringBytes(p.needle)
	return newByteSearcher(h, stringBytes(whole(h)), needle, textBounds(unit.UTF8, needle), p.cfg)
}

// IsPrefixOf reports whether h starts with the needle.
func (p *SubstrPattern) IsPrefixOf(h Haystack[string]) bool {
	return strings.HasPrefix(whole(h), p.needle)
}

// IsSuffixOf reports whether h ends with the needle.
func (p *SubstrPattern) IsSuffixOf(h Haystack[string]) bool {
	return strings.HasSuffix(whole(h), p.needle)
}
