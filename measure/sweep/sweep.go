package sweep

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/adc-dimming/measure/analysis"
)

// Analyzer turns a sample block into a windowed spectrum.
// *analysis.Analyzer implements it.
type Analyzer interface {
	Analyze(x []float64) (analysis.Result, error)
}

// Sweep configures a dimming sweep.
type Sweep struct {
	Analyzer Analyzer

	// Step is the distance between dimming counts. Zero means DefaultStep.
	Step int
	// Workers > 1 analyzes steps concurrently. Frames are still emitted in
	// order.
	Workers int
	// Isolate keeps sweeping after a failed step instead of aborting.
	Isolate bool
	// TruncateDimmed truncates dimmed samples toward zero before analysis.
	TruncateDimmed bool
}

// StepResult records the outcome of one step.
type StepResult struct {
	Index int
	Count int
	Err   error
}

// Summary describes a finished or aborted sweep.
type Summary struct {
	Length int
	Step   int
	Steps  []StepResult
}

// Failed returns the number of failed steps.
func (s Summary) Failed() int {
	n := 0
	for _, r := range s.Steps {
		if r.Err != nil {
			n++
		}
	}

	return n
}

// Err joins the errors of all failed steps. It is nil when every step
// succeeded.
func (s Summary) Err() error {
	var errs []error
	for _, r := range s.Steps {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}

	return errors.Join(errs...)
}

// Validate checks the sweep parameters.
func (s *Sweep) Validate() error {
	if s.Analyzer == nil {
		return ErrNoAnalyzer
	}

	if s.Step < 0 {
		return ErrInvalidStep
	}

	if s.Workers < 0 {
		return ErrInvalidWorkers
	}

	return nil
}

func (s *Sweep) step() int {
	if s.Step == 0 {
		return DefaultStep
	}

	return s.Step
}

// errStepFailed stops scheduling further steps after a failure without Isolate.
var errStepFailed = errors.New("sweep: step failed")

type stepOutput struct {
	dimmed []float64
	res    analysis.Result
	err    error
}

// Run sweeps normalized, the DC-centered form of raw, and emits one Frame per
// dimming count to sink.
//
// Without Isolate the first analysis or sink failure stops the sweep and is
// returned; frames for earlier counts have already been emitted. With
// Isolate every step runs, failures are recorded in the Summary and Run
// returns nil unless ctx is canceled.
func (s *Sweep) Run(ctx context.Context, raw []int32, normalized []float64, sink Sink) (Summary, error) {
	if err := s.Validate(); err != nil {
		return Summary{}, err
	}

	if sink == nil {
		return Summary{}, ErrNoSink
	}

	step := s.step()
	counts, err := Schedule(len(normalized), step)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		Length: len(normalized),
		Step:   step,
		Steps:  make([]StepResult, 0, len(counts)),
	}

	if s.Workers > 1 {
		return s.runParallel(ctx, raw, normalized, counts, sink, sum)
	}

	for i, cnt := range counts {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		out := s.compute(normalized, cnt)
		if stop, err := s.deliver(&sum, i, cnt, raw, normalized, out, sink); stop {
			return sum, err
		}
	}

	return sum, nil
}

func (s *Sweep) runParallel(
	ctx context.Context,
	raw []int32,
	normalized []float64,
	counts []int,
	sink Sink,
	sum Summary,
) (Summary, error) {
	outs := make([]stepOutput, len(counts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Workers)

	// Steps are scheduled in count order, so every step before the first
	// failure is computed even if later ones are never started.
	for i, cnt := range counts {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			outs[i] = s.compute(normalized, cnt)
			if outs[i].err != nil && !s.Isolate {
				return errStepFailed
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, errStepFailed) {
		return sum, err
	}

	if err := ctx.Err(); err != nil {
		return sum, err
	}

	for i, cnt := range counts {
		if stop, err := s.deliver(&sum, i, cnt, raw, normalized, outs[i], sink); stop {
			return sum, err
		}
	}

	return sum, nil
}

func (s *Sweep) compute(normalized []float64, cnt int) stepOutput {
	var dimmed []float64
	if s.TruncateDimmed {
		dimmed = DimTruncated(normalized, cnt)
	} else {
		dimmed = Dim(normalized, cnt)
	}

	res, err := s.Analyzer.Analyze(dimmed)

	return stepOutput{dimmed: dimmed, res: res, err: err}
}

// deliver records one step and emits its frame. It reports whether the sweep
// must stop, and with which error.
func (s *Sweep) deliver(
	sum *Summary,
	i, cnt int,
	raw []int32,
	normalized []float64,
	out stepOutput,
	sink Sink,
) (bool, error) {
	if out.err != nil {
		err := &StepError{Count: cnt, Err: out.err}
		sum.Steps = append(sum.Steps, StepResult{Index: i, Count: cnt, Err: err})

		return !s.Isolate, errIf(!s.Isolate, err)
	}

	frame := Frame{
		Index:      i,
		Count:      cnt,
		Percent:    float64(cnt) * 100 / float64(len(normalized)),
		Raw:        raw,
		Normalized: normalized,
		Dimmed:     out.dimmed,
		Windowed:   out.res.Windowed,
		Magnitudes: out.res.Magnitudes,
		Spectrum:   out.res.Spectrum,
	}

	if err := sink.Emit(frame); err != nil {
		serr := &SinkError{Count: cnt, Err: err}
		sum.Steps = append(sum.Steps, StepResult{Index: i, Count: cnt, Err: serr})

		return !s.Isolate, errIf(!s.Isolate, serr)
	}

	sum.Steps = append(sum.Steps, StepResult{Index: i, Count: cnt})

	return false, nil
}

func errIf(cond bool, err error) error {
	if cond {
		return err
	}

	return nil
}
