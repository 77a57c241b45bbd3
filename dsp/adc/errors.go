package adc

import (
	"errors"
	"fmt"
)

// Errors wrapped by [LoadError].
var (
	ErrMalformedLine = errors.New("adc: malformed sample line")
	ErrInvalidValue  = errors.New("adc: sample value is not a signed 32-bit integer")
	ErrNoSamples     = errors.New("adc: sample log contains no samples")
)

// LoadError reports a sample log that could not be read. No samples are
// returned alongside a LoadError.
type LoadError struct {
	Path string // empty when reading from a stream
	Line int    // 1-based; 0 when the failure is not tied to a line
	Err  error
}

func (e *LoadError) Error() string {
	src := e.Path
	if src == "" {
		src = "<input>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("load %s:%d: %v", src, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", src, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
