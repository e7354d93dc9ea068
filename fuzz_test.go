// Fuzz tests comparing substring search against package strings.
//
// Run with:
//
//	go test -fuzz=FuzzSubstr -fuzztime=30s
//	go test -fuzz=FuzzSplit -fuzztime=30s
package pattern_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/coregx/pattern"
	"github.com/coregx/pattern/internal/searchtest"
)

var seedPairs = [][2]string{
	{"abbcbbd", "bb"},
	{"aaa", "aa"},
	{"abcdef", "xyz"},
	{"", ""},
	{"abc", ""},
	{"banana", "ana"},
	{"hangman", "an"},
	{"aé 💩", "é "},
	{"\xc2\xa2", "\xa2"},
	{"abb\xffbbd", "bb"},
	{"abcabdabcabd", "abcabd"},
	{"ababababab", "abab"},
}

func FuzzSubstr(f *testing.F) {
	for _, s := range seedPairs {
		f.Add(s[0], s[1])
	}
	f.Fuzz(func(t *testing.T, hay, needle string) {
		h := pattern.Text(hay)
		p := pattern.Substr(needle)

		if i, _ := pattern.Find(h, p); i != strings.Index(hay, needle) {
			t.Fatalf("Find(%q, %q) = %d, want %d", hay, needle, i, strings.Index(hay, needle))
		}
		if i, _ := pattern.RFind(h, p); i != strings.LastIndex(hay, needle) {
			t.Fatalf("RFind(%q, %q) = %d, want %d", hay, needle, i, strings.LastIndex(hay, needle))
		}
		if got, want := pattern.Count(h, p), strings.Count(hay, needle); got != want {
			t.Fatalf("Count(%q, %q) = %d, want %d", hay, needle, got, want)
		}
		if err := searchtest.Malformed(searchtest.Forward(p, h), len(hay)); err != nil {
			t.Fatalf("forward %q in %q: %v", needle, hay, err)
		}
		if err := searchtest.Malformed(searchtest.Backward(p, h), len(hay)); err != nil {
			t.Fatalf("backward %q in %q: %v", needle, hay, err)
		}

		b := pattern.Bytes([]byte(hay))
		if i, _ := pattern.Find(b, pattern.ByteSeq([]byte(needle))); i != strings.Index(hay, needle) {
			t.Fatalf("Find(bytes %q, %q) = %d", hay, needle, i)
		}
	})
}

func FuzzSplit(f *testing.F) {
	for _, s := range seedPairs {
		f.Add(s[0], s[1], 2)
	}
	f.Fuzz(func(t *testing.T, hay, sep string, n int) {
		if sep == "" {
			return
		}
		h := pattern.Text(hay)
		p := pattern.Substr(sep)
		if got, want := slices.Collect(pattern.Split(h, p)), strings.Split(hay, sep); !slices.Equal(got, want) {
			t.Fatalf("Split(%q, %q) = %q, want %q", hay, sep, got, want)
		}
		if n > 0 {
			if got, want := slices.Collect(pattern.SplitN(h, p, n)), strings.SplitN(hay, sep, n); !slices.Equal(got, want) {
				t.Fatalf("SplitN(%q, %q, %d) = %q, want %q", hay, sep, n, got, want)
			}
		}
	})
}
