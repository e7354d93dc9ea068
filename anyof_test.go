package pattern_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/coregx/pattern"
	"github.com/coregx/pattern/internal/searchtest"
)

func TestAnyOfStream(t *testing.T) {
	p, err := pattern.AnyOf("foo", "bar")
	if err != nil {
		t.Fatalf("AnyOf: %v", err)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
	searchtest.CheckForward(t, p, pattern.Text("xfooybarz"), []searchtest.Step{
		reject(0, 1), match(1, 4), reject(4, 5), match(5, 8), reject(8, 9),
	})
	searchtest.CheckForward(t, p, pattern.Text("foobar"), []searchtest.Step{
		match(0, 3), match(3, 6),
	})
	searchtest.CheckForward(t, p, pattern.Text("nothing"), []searchtest.Step{
		reject(0, 7),
	})
	searchtest.CheckForward(t, p, pattern.Text(""), nil)
}

func TestAnyOfIterators(t *testing.T) {
	p := pattern.MustAnyOf("\r\n", "\n")
	h := pattern.Text("a\nb\r\nc")
	if got, want := slices.Collect(pattern.Split(h, p)), []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("Split = %q, want %q", got, want)
	}
	if got := pattern.Count(h, p); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
	if i, ok := pattern.Find(h, p); !ok || i != 1 {
		t.Errorf("Find = %d, %v, want 1, true", i, ok)
	}
	if got := pattern.TrimLeft(pattern.Text("\n\nx"), p); got != "x" {
		t.Errorf("TrimLeft = %q, want %q", got, "x")
	}
}

func TestAnyOfBytes(t *testing.T) {
	p, err := pattern.AnyOfBytes([]byte("GET"), []byte("PUT"))
	if err != nil {
		t.Fatalf("AnyOfBytes: %v", err)
	}
	h := pattern.Bytes([]byte("PUT /a GET /b"))
	var got []string
	for m := range pattern.Matches(h, p) {
		got = append(got, string(m))
	}
	if want := []string{"PUT", "GET"}; !slices.Equal(got, want) {
		t.Errorf("Matches = %q, want %q", got, want)
	}
	if !pattern.Contains(h, p) || pattern.Contains(pattern.Bytes([]byte("POST")), p) {
		t.Error("Contains wrong")
	}
}

func TestAnyOfErrors(t *testing.T) {
	small := pattern.DefaultConfig()
	small.MaxNeedles = 2

	tests := []struct {
		name    string
		build   func() error
		want    error
		index   int
		isBuild bool
	}{
		{"no needles", func() error { _, err := pattern.AnyOf(); return err }, pattern.ErrNoNeedles, -1, true},
		{"empty needle", func() error { _, err := pattern.AnyOf("a", "", "b"); return err }, pattern.ErrEmptyNeedle, 1, true},
		{"too many", func() error { _, err := pattern.AnyOfConfig(small, "a", "b", "c"); return err }, pattern.ErrTooManyNeedles, -1, true},
		{"empty bytes", func() error { _, err := pattern.AnyOfBytes([]byte("a"), nil); return err }, pattern.ErrEmptyNeedle, 1, true},
		{"bad config", func() error {
			cfg := pattern.DefaultConfig()
			cfg.MaxNeedles = 0
			_, err := pattern.AnyOfConfig(cfg, "a")
			return err
		}, pattern.ErrInvalidConfig, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if !strings.HasPrefix(err.Error(), "pattern: ") {
				t.Errorf("error %q lacks package prefix", err)
			}
			var be *pattern.BuildError
			if got := errors.As(err, &be); got != tt.isBuild {
				t.Fatalf("errors.As(BuildError) = %v, want %v", got, tt.isBuild)
			}
			if tt.isBuild && be.Index != tt.index {
				t.Errorf("Index = %d, want %d", be.Index, tt.index)
			}
		})
	}
}

func TestMustAnyOfPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, pattern.ErrNoNeedles) {
			t.Errorf("recover() = %v, want ErrNoNeedles", r)
		}
	}()
	pattern.MustAnyOf()
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		max     int
		wantErr bool
	}{
		{"default", pattern.DefaultConfig().MaxNeedles, false},
		{"one", 1, false},
		{"limit", 65536, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"above limit", 65537, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := pattern.DefaultConfig()
			cfg.MaxNeedles = tt.max
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var ce *pattern.ConfigError
			if !errors.As(err, &ce) || ce.Field != "MaxNeedles" {
				t.Errorf("err = %v, want ConfigError for MaxNeedles", err)
			}
		})
	}
}
