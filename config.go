package pattern

import "fmt"

// Config controls how patterns build their searchers.
//
// Example:
//
//	cfg := pattern.DefaultConfig()
//	cfg.FastSkip = false
//	p := pattern.SubstrConfig("needle", cfg)
type Config struct {
	// FastSkip enables the needle fingerprint of byte substring searchers.
	// Windows whose last byte cannot occur in the needle are skipped
	// whole. Disabling it never changes results.
	// Default: true
	FastSkip bool

	// MaxNeedles limits the number of needles accepted by AnyOf.
	// Default: 1024
	MaxNeedles int
}

// DefaultConfig returns the configuration used by Substr, ByteSeq, Seq and
// AnyOf.
func DefaultConfig() Config {
	return Config{
		FastSkip:   true,
		MaxNeedles: 1024,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MaxNeedles: 1 to 65,536
func (c Config) Validate() error {
	if c.MaxNeedles < 1 || c.MaxNeedles > 65536 {
		return &ConfigError{
			Field:   "MaxNeedles",
			Message: fmt.Sprintf("must be between 1 and 65536, got %d", c.MaxNeedles),
		}
	}
	return nil
}
