package prefilter

import "testing"

func TestByteSetNoFalseNegatives(t *testing.T) {
	tests := []struct {
		name   string
		needle string
	}{
		{"empty", ""},
		{"single", "b"},
		{"word", "needle"},
		{"high_bytes", "\xc2\xa2\xff"},
		{"all_low", "\x00\x01\x02\x03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NewByteSet([]byte(tt.needle))
			for i := 0; i < len(tt.needle); i++ {
				if !set.Contains(tt.needle[i]) {
					t.Errorf("Contains(%#x) = false for needle %q", tt.needle[i], tt.needle)
				}
			}
		})
	}
}

func TestByteSetRejects(t *testing.T) {
	set := NewByteSet([]byte("needle"))

	tests := []struct {
		b    byte
		want bool
	}{
		{'n', true},
		{'e', true},
		{'d', true},
		{'l', true},
		{'z', false},
		{'a', false},
		{'N', false},
		// '.' (0x2e) and 'n' (0x6e) share the low six bits.
		{'.', true},
	}

	for _, tt := range tests {
		if got := set.Contains(tt.b); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestByteSetLen(t *testing.T) {
	tests := []struct {
		needle string
		want   int
	}{
		{"", 0},
		{"aaaa", 1},
		{"needle", 4},
		{"nN", 2},
		{"n.", 1},
	}

	for _, tt := range tests {
		if got := NewByteSet([]byte(tt.needle)).Len(); got != tt.want {
			t.Errorf("NewByteSet(%q).Len() = %d, want %d", tt.needle, got, tt.want)
		}
	}
}

func TestNone(t *testing.T) {
	f := NewNone([]int{1, 2, 3})
	for _, v := range []int{0, 1, -7, 1 << 40} {
		if !f.Contains(v) {
			t.Errorf("None.Contains(%d) = false", v)
		}
	}

	var _ Filter[byte] = ByteSet(0)
	var _ Filter[string] = None[string]{}
}
