package unit

import (
	"slices"
	"testing"
	"unicode/utf8"
)

// units splits b from the front and returns the unit start offsets.
func units(e Encoding, b []byte) []int {
	var starts []int
	for i := 0; i < len(b); {
		starts = append(starts, i)
		_, size := e.Decode(b[i:])
		i += size
	}
	return starts
}

// unitsBack splits b from the back.
func unitsBack(e Encoding, b []byte) []int {
	var starts []int
	for j := len(b); j > 0; {
		_, size := e.DecodeLast(b[:j])
		j -= size
		starts = append(starts, j)
	}
	slices.Reverse(starts)
	return starts
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		enc   Encoding
		input string
		want  []int
	}{
		{"ascii", UTF8, "abc", []int{0, 1, 2}},
		{"two_byte", UTF8, "a¢b", []int{0, 1, 3}},
		{"four_byte", UTF8, "\U0001F600!", []int{0, 4}},
		{"stray_continuation", UTF8, "\xa2\xa2", []int{0, 1}},
		{"truncated_lead", UTF8, "\xe2\x82x", []int{0, 1, 2}},
		{"surrogate_utf8", UTF8, "a\xed\xa0\x80b", []int{0, 1, 2, 3, 4}},
		{"surrogate_wtf8", WTF8, "a\xed\xa0\x80b", []int{0, 1, 4}},
		{"surrogate_pair_halves", WTF8, "\xed\xa0\xbd\xed\xb8\x80", []int{0, 3}},
		{"valid_ed", WTF8, "\xed\x9f\xbf", []int{0}},
		{"truncated_surrogate", WTF8, "\xed\xa0", []int{0, 1}},
		{"continuation_after_surrogate", WTF8, "\xed\xa0\x80\x80", []int{0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := []byte(tt.input)
			if got := units(tt.enc, b); !slices.Equal(got, tt.want) {
				t.Errorf("forward units = %v, want %v", got, tt.want)
			}
			if got := unitsBack(tt.enc, b); !slices.Equal(got, tt.want) {
				t.Errorf("backward units = %v, want %v", got, tt.want)
			}
			for i := 0; i <= len(b); i++ {
				want := i == len(b) || slices.Contains(tt.want, i)
				if got := tt.enc.IsBoundary(b, i); got != want {
					t.Errorf("IsBoundary(%d) = %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestDecodeSurrogate(t *testing.T) {
	r, size := WTF8.Decode([]byte("\xed\xa0\x80"))
	if r != 0xD800 || size != 3 {
		t.Errorf("Decode = (%U, %d), want (U+D800, 3)", r, size)
	}
	if !IsSurrogate(r) {
		t.Errorf("IsSurrogate(%U) = false", r)
	}

	r, size = UTF8.Decode([]byte("\xed\xa0\x80"))
	if r != utf8.RuneError || size != 1 {
		t.Errorf("UTF8 Decode = (%U, %d), want (RuneError, 1)", r, size)
	}

	r, size = WTF8.DecodeLast([]byte("x\xed\xbf\xbf"))
	if r != 0xDFFF || size != 3 {
		t.Errorf("DecodeLast = (%U, %d), want (U+DFFF, 3)", r, size)
	}
}

func TestNextPrev(t *testing.T) {
	b := []byte("a¢\xed\xa0\x80z")
	// Units: a[0] ¢[1,3) surrogate[3,6) z[6]

	next := []struct{ from, want int }{{-1, 0}, {0, 1}, {1, 3}, {2, 3}, {3, 6}, {4, 6}, {6, 7}, {7, 7}}
	for _, tt := range next {
		if got := WTF8.Next(b, tt.from); got != tt.want {
			t.Errorf("Next(%d) = %d, want %d", tt.from, got, tt.want)
		}
	}

	prev := []struct{ from, want int }{{8, 7}, {7, 6}, {6, 3}, {5, 3}, {3, 1}, {2, 1}, {1, 0}, {0, 0}}
	for _, tt := range prev {
		if got := WTF8.Prev(b, tt.from); got != tt.want {
			t.Errorf("Prev(%d) = %d, want %d", tt.from, got, tt.want)
		}
	}
}

func TestAligned(t *testing.T) {
	tests := []struct {
		needle string
		utf8   bool
		wtf8   bool
	}{
		{"", true, true},
		{"bb", true, true},
		{"¢", true, true},
		{"\xc2", false, false},
		{"\xa2", false, false},
		{"a\xc2", false, false},
		{"a\xe2\x82", false, false},
		{"a\xff", true, true},
		{"\xc2\xa2\xa2", true, true},
		{"\xed\xa0\x80", true, true},
		{"a\xed\xa0", true, false},
		{"a\xed", false, false},
	}

	for _, tt := range tests {
		if got := UTF8.Aligned([]byte(tt.needle)); got != tt.utf8 {
			t.Errorf("UTF8.Aligned(%q) = %v, want %v", tt.needle, got, tt.utf8)
		}
		if got := WTF8.Aligned([]byte(tt.needle)); got != tt.wtf8 {
			t.Errorf("WTF8.Aligned(%q) = %v, want %v", tt.needle, got, tt.wtf8)
		}
	}
}

func TestOpaque(t *testing.T) {
	tests := []struct {
		in   string
		enc  Encoding
		want bool
	}{
		{"a", WTF8, false},
		{"é", WTF8, false},
		{"\xff", WTF8, true},
		{"\xbe", WTF8, true},
		{"\xed\xa0\xbd", WTF8, true},
		{"\xff", UTF8, false},
		{"\xed\xa0\xbd", UTF8, false},
	}
	for _, tt := range tests {
		r, size := tt.enc.Decode([]byte(tt.in))
		if got := tt.enc.Opaque(r, size); got != tt.want {
			t.Errorf("%v.Opaque(Decode(%q)) = %v, want %v", tt.enc, tt.in, got, tt.want)
		}
	}
}
