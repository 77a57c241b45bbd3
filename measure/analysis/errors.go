package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBuffer is returned for zero-length input.
	ErrEmptyBuffer = errors.New("analysis: empty buffer")
	// ErrTooShort is returned when fewer than two samples are supplied.
	ErrTooShort = errors.New("analysis: buffer shorter than 2 samples")
	// ErrOddLength is returned for odd lengths when odd input is rejected.
	ErrOddLength = errors.New("analysis: odd buffer length")
)

// AnalysisError reports a failed analysis of a block of Length samples.
//
//nolint:revive
type AnalysisError struct {
	Length int
	Err    error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analyze %d samples: %v", e.Length, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }
