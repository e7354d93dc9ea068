// Package osstr provides OS strings and the patterns that search them.
//
// An OsStr holds WTF-8: UTF-8 extended with encoded UTF-16 surrogates, the
// form Windows file names take when they contain unpaired surrogates. It
// may also hold arbitrary bytes read from unix interfaces. Searches treat
// each encoded surrogate and each invalid byte as an opaque unit: no
// reported range starts or ends inside one, and rune patterns never match
// one. Byte needles still match inside them when the needle itself is not
// a sequence of whole units.
//
// OS strings are searched with the functions of package pattern:
//
//	s := osstr.FromString("hello")
//	for piece := range pattern.Split(osstr.Haystack(s), osstr.Rune('l')) {
//	    fmt.Println(piece) // he, (empty), o
//	}
package osstr

import (
	"bytes"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/coregx/pattern"
	"github.com/coregx/pattern/internal/conv"
	"github.com/coregx/pattern/internal/unit"
)

// OsStr is a WTF-8 encoded OS string.
type OsStr []byte

// Haystack returns the haystack handle of o.
func Haystack(o OsStr) pattern.SliceHaystack[OsStr, byte] {
	return pattern.Slice(o)
}

// FromString returns s as an OS string.
func FromString(s string) OsStr {
	return OsStr(s)
}

// FromWide decodes UTF-16. Surrogate pairs combine into one character;
// unpaired surrogates are kept as 3-byte units.
func FromWide(w []uint16) OsStr {
	o := make(OsStr, 0, len(w))
	for i := 0; i < len(w); i++ {
		r := conv.Uint16ToRune(w[i])
		if utf16.IsSurrogate(r) && i+1 < len(w) {
			if c := utf16.DecodeRune(r, conv.Uint16ToRune(w[i+1])); c != utf8.RuneError {
				o = utf8.AppendRune(o, c)
				i++
				continue
			}
		}
		o = appendUnit(o, r)
	}
	return o
}

// appendUnit appends r, encoding surrogates the WTF-8 way.
func appendUnit(o OsStr, r rune) OsStr {
	if unit.IsSurrogate(r) {
		return append(o, 0xE0|byte(r>>12), 0x80|byte(r>>6)&0x3F, 0x80|byte(r)&0x3F)
	}
	return utf8.AppendRune(o, r)
}

// Wide encodes o as UTF-16. Encoded surrogates become the code unit they
// stand for. Invalid bytes become U+FFFD.
func (o OsStr) Wide() []uint16 {
	w := make([]uint16, 0, len(o))
	for i := 0; i < len(o); {
		r, size := unit.WTF8.Decode(o[i:])
		i += size
		if unit.IsSurrogate(r) {
			w = append(w, conv.RuneToUint16(r))
			continue
		}
		w = utf16.AppendRune(w, r)
	}
	return w
}

// ToString returns o as a string if it is valid UTF-8.
func (o OsStr) ToString() (string, bool) {
	if !utf8.Valid(o) {
		return "", false
	}
	return string(o), true
}

// Lossy returns o as a string, replacing every opaque unit with U+FFFD.
func (o OsStr) Lossy() string {
	if s, ok := o.ToString(); ok {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(o))
	for i := 0; i < len(o); {
		r, size := unit.WTF8.Decode(o[i:])
		if unit.WTF8.Opaque(r, size) {
			sb.WriteRune(utf8.RuneError)
		} else {
			sb.Write(o[i : i+size])
		}
		i += size
	}
	return sb.String()
}

// String implements fmt.Stringer using Lossy.
func (o OsStr) String() string {
	return o.Lossy()
}

// Push appends other to o. A high surrogate ending o and a low surrogate
// starting other are joined into the character they encode, so that
// pushing the halves of a split string rebuilds it.
func (o *OsStr) Push(other OsStr) {
	if n := len(*o); n >= 3 && len(other) >= 3 {
		hi, _ := unit.WTF8.DecodeLast((*o)[n-3:])
		lo, _ := unit.WTF8.Decode(other)
		if c := utf16.DecodeRune(hi, lo); c != utf8.RuneError {
			*o = append(utf8.AppendRune((*o)[:n-3], c), other[3:]...)
			return
		}
	}
	*o = append(*o, other...)
}

// PushString appends s to o.
func (o *OsStr) PushString(s string) {
	*o = append(*o, s...)
}

// ContainsOs reports whether needle occurs in o.
func (o OsStr) ContainsOs(needle OsStr) bool {
	return pattern.Contains(Haystack(o), Os(needle))
}

// HasPrefixOs reports whether o starts with prefix.
func (o OsStr) HasPrefixOs(prefix OsStr) bool {
	return bytes.HasPrefix(o, prefix)
}

// HasSuffixOs reports whether o ends with suffix.
func (o OsStr) HasSuffixOs(suffix OsStr) bool {
	return bytes.HasSuffix(o, suffix)
}
