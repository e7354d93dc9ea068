package searchtest

import (
	"slices"
	"strings"
	"testing"

	"github.com/coregx/pattern"
)

func TestMerge(t *testing.T) {
	matches := []Step{Match(0, 0), Match(1, 1), Match(2, 2)}
	rejects := []Step{Reject(0, 1), Reject(1, 2)}
	want := []Step{Match(0, 0), Reject(0, 1), Match(1, 1), Reject(1, 2), Match(2, 2)}
	if got := Merge(matches, rejects); !slices.Equal(got, want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}
	if got := Merge(nil, nil); len(got) != 0 {
		t.Errorf("Merge(nil, nil) = %v, want empty", got)
	}
}

func TestMalformed(t *testing.T) {
	tests := []struct {
		name string
		v    []Step
		n    int
		want string // substring of the error, empty for none
	}{
		{"empty", nil, 0, ""},
		{"tiling", []Step{Reject(0, 1), Match(1, 3), Reject(3, 4)}, 4, ""},
		{"zero width matches", []Step{Match(0, 0), Reject(0, 1), Match(1, 1)}, 1, ""},
		{"gap", []Step{Reject(0, 1), Match(2, 3)}, 3, "gap"},
		{"overlap", []Step{Match(0, 2), Reject(1, 3)}, 3, "overlap"},
		{"zero-length reject", []Step{Match(0, 1), Reject(1, 1), Reject(1, 2)}, 2, "zero-length"},
		{"negative", []Step{Reject(0, 2), Match(2, 1)}, 1, "negative-length"},
		{"bad first", []Step{Match(1, 2)}, 2, "does not start at 0"},
		{"bad last", []Step{Match(0, 2)}, 3, "does not end at 3"},
		{"empty stream over text", nil, 3, "does not cover [0, 3)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Malformed(tt.v, tt.n)
			if tt.want == "" {
				if err != nil {
					t.Errorf("Malformed() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Malformed() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestStepString(t *testing.T) {
	if got := Match(1, 3).String(); got != "Match(1, 3)" {
		t.Errorf("String() = %q", got)
	}
	if got := Reject(0, 1).String(); got != "Reject(0, 1)" {
		t.Errorf("String() = %q", got)
	}
}

func TestGather(t *testing.T) {
	h := pattern.Text("abbcbbd")
	p := pattern.Substr("bb")

	if got, want := Gather(p.Searcher(h), true), []Step{Match(1, 3), Match(4, 6)}; !slices.Equal(got, want) {
		t.Errorf("Gather(matches) = %v, want %v", got, want)
	}
	if got, want := GatherBack(p.ReverseSearcher(h), false), []Step{Reject(0, 1), Reject(3, 4), Reject(6, 7)}; !slices.Equal(got, want) {
		t.Errorf("GatherBack(rejects) = %v, want %v", got, want)
	}
	Check(t, p, h,
		[]Step{Reject(0, 1), Match(1, 3), Reject(3, 4), Match(4, 6), Reject(6, 7)},
		[]Step{Reject(0, 1), Match(1, 3), Reject(3, 4), Match(4, 6), Reject(6, 7)},
	)
}
