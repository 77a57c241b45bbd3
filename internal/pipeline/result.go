package pipeline

import (
	"context"
	"errors"

	"github.com/cwbudde/adc-dimming/dsp/adc"
	"github.com/cwbudde/adc-dimming/dsp/spectrum"
	"github.com/cwbudde/adc-dimming/internal/config"
	"github.com/cwbudde/adc-dimming/internal/report"
	"github.com/cwbudde/adc-dimming/measure/analysis"
	"github.com/cwbudde/adc-dimming/measure/sweep"
)

// Kind classifies the outcome of a run.
type Kind int

const (
	KindOK Kind = iota
	KindConfig
	KindLoad
	KindAnalysis
	KindSink
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindConfig:
		return "config"
	case KindLoad:
		return "load"
	case KindAnalysis:
		return "analysis"
	case KindSink:
		return "sink"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

var (
	// ErrReport wraps failures to write the run report.
	ErrReport = errors.New("pipeline: write report")
	// ErrSinkSetup wraps failures to prepare an output sink.
	ErrSinkSetup = errors.New("pipeline: set up sink")
)

// Result is the outcome of Run. Summary and Report describe the steps that
// ran, also when the run failed.
type Result struct {
	Kind    Kind
	Err     error
	Summary sweep.Summary
	Report  *report.Run
}

// OK reports whether the run succeeded.
func (r Result) OK() bool { return r.Kind == KindOK }

// Classify maps an error to its Kind. A nil error is KindOK; errors of
// unknown origin count as analysis failures.
func Classify(err error) Kind {
	if err == nil {
		return KindOK
	}

	var (
		loadErr     *adc.LoadError
		sinkErr     *sweep.SinkError
		analysisErr *analysis.AnalysisError
		stepErr     *sweep.StepError
	)

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case errors.As(err, &loadErr):
		return KindLoad
	case errors.Is(err, config.ErrInvalid), errors.Is(err, spectrum.ErrUnknownBackend):
		return KindConfig
	case errors.As(err, &sinkErr), errors.Is(err, ErrReport), errors.Is(err, ErrSinkSetup):
		return KindSink
	case errors.As(err, &analysisErr), errors.As(err, &stepErr):
		return KindAnalysis
	default:
		return KindAnalysis
	}
}

func failed(err error) Result {
	return Result{Kind: Classify(err), Err: err}
}
