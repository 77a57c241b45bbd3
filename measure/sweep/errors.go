package sweep

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStep is returned when the dimming step is negative.
	ErrInvalidStep = errors.New("sweep: step must be positive")
	// ErrInvalidWorkers is returned for a negative worker count.
	ErrInvalidWorkers = errors.New("sweep: workers must not be negative")
	// ErrNoAnalyzer is returned when Run is called without an Analyzer.
	ErrNoAnalyzer = errors.New("sweep: analyzer is nil")
	// ErrNoSink is returned when Run is called without a Sink.
	ErrNoSink = errors.New("sweep: sink is nil")
)

// SinkError reports a sink failure for the frame with the given count.
type SinkError struct {
	Count int
	Err   error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("sink frame %d: %v", e.Count, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }

// StepError reports a failed analysis for the step with the given count.
type StepError struct {
	Count int
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("dimming step %d: %v", e.Count, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
