package pattern

import (
	"errors"
	"fmt"
)

// Common pattern construction errors
var (
	// ErrEmptyNeedle indicates an empty needle in a needle set
	ErrEmptyNeedle = errors.New("empty needle in set")

	// ErrNoNeedles indicates a needle set without needles
	ErrNoNeedles = errors.New("no needles")

	// ErrTooManyNeedles indicates a needle set above Config.MaxNeedles
	ErrTooManyNeedles = errors.New("too many needles")

	// ErrInvalidConfig indicates invalid configuration was provided
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigError describes an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return "pattern: invalid config: " + e.Field + ": " + e.Message
}

// Unwrap returns ErrInvalidConfig
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// BuildError wraps a needle set construction failure.
// Index is the offending needle, or -1 when the set as a whole failed.
type BuildError struct {
	Index int
	Err   error
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("pattern: needle %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("pattern: needle set: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *BuildError) Unwrap() error {
	return e.Err
}
