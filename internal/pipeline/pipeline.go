// Package pipeline runs load, normalization and the dimming sweep with the
// configured sinks, and reports the outcome as a tagged Result.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/adc-dimming/dsp/adc"
	"github.com/cwbudde/adc-dimming/dsp/spectrum"
	"github.com/cwbudde/adc-dimming/internal/config"
	"github.com/cwbudde/adc-dimming/internal/logging"
	"github.com/cwbudde/adc-dimming/internal/progress"
	"github.com/cwbudde/adc-dimming/internal/render"
	"github.com/cwbudde/adc-dimming/internal/report"
	"github.com/cwbudde/adc-dimming/measure/analysis"
	"github.com/cwbudde/adc-dimming/measure/sweep"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logrus.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// WithSink adds a sink that receives every frame after the built-in ones.
func WithSink(s sweep.Sink) Option {
	return func(p *Pipeline) {
		if s != nil {
			p.extra = append(p.extra, s)
		}
	}
}

// WithProgressOutput sets where the progress bar is drawn when progress is
// enabled. The default is stderr.
func WithProgressOutput(w io.Writer) Option {
	return func(p *Pipeline) {
		p.progressOut = w
	}
}

// Pipeline runs one configuration.
type Pipeline struct {
	cfg         config.Config
	log         *logrus.Logger
	extra       []sweep.Sink
	progressOut io.Writer
}

// New returns a pipeline for a copy of cfg.
func New(cfg *config.Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:         *cfg,
		log:         logging.Discard(),
		progressOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the pipeline. It never panics on bad input; every failure is
// reported through Result.
func (p *Pipeline) Run(ctx context.Context) Result {
	start := time.Now()
	cfg := p.cfg

	if err := cfg.Validate(); err != nil {
		return p.finish(failed(err), start)
	}

	log := p.log.WithFields(logrus.Fields{
		"input":   cfg.Input,
		"backend": cfg.Analysis.Backend,
		"step":    cfg.Sweep.Step,
	})
	log.Info("run started")

	raw, err := adc.Load(cfg.Input)
	if err != nil {
		return p.finish(failed(err), start)
	}

	normalized := adc.Normalize(raw)
	offset := adc.Offset(raw)
	log.WithFields(logrus.Fields{
		"samples": len(raw),
		"min":     slices.Min(raw),
		"max":     slices.Max(raw),
		"offset":  offset,
	}).Info("samples loaded")

	var aopts []analysis.Option
	if cfg.Analysis.RejectOdd {
		aopts = append(aopts, analysis.WithRejectOddLength())
	}

	analyzer, err := analysis.NewWithBackend(spectrum.Backend(cfg.Analysis.Backend), aopts...)
	if err != nil {
		return p.finish(failed(err), start)
	}

	builder := report.NewBuilder(report.Run{
		Input:   cfg.Input,
		Samples: len(raw),
		Min:     slices.Min(raw),
		Max:     slices.Max(raw),
		Offset:  offset,
		Backend: string(analyzer.Backend()),
		Window:  analyzer.Window().String(),
		Step:    cfg.Sweep.Step,
	})

	sinks := []sweep.Sink{builder}

	if cfg.Output.PNG {
		r, err := render.New(render.Options{
			Dir:      cfg.Output.Dir,
			Prefix:   cfg.Output.Prefix,
			WidthIn:  cfg.Output.WidthIn,
			HeightIn: cfg.Output.HeightIn,
			DPI:      cfg.Output.DPI,
			Window:   analyzer.Window(),
		})
		if err != nil {
			return p.finish(failed(fmt.Errorf("%w: %w", ErrSinkSetup, err)), start)
		}
		sinks = append(sinks, r)
	}

	if p.log.IsLevelEnabled(logrus.DebugLevel) {
		sinks = append(sinks, p.debugSink())
	}

	sinks = append(sinks, p.extra...)
	sink := sweep.Multi(sinks...)

	var bar *progress.Sink
	if cfg.Progress {
		counts, _ := sweep.Schedule(len(normalized), cfg.Sweep.Step)
		bar = progress.Wrap(sink, len(counts), p.progressOut)
		sink = bar
	}

	sw := &sweep.Sweep{
		Analyzer:       analyzer,
		Step:           cfg.Sweep.Step,
		Workers:        cfg.Sweep.Workers,
		Isolate:        !cfg.Sweep.FailFast,
		TruncateDimmed: cfg.Sweep.TruncateDimmed,
	}

	sum, err := sw.Run(ctx, raw, normalized, sink)
	if bar != nil {
		for _, r := range sum.Steps {
			var serr *sweep.StepError
			if errors.As(r.Err, &serr) {
				bar.Skip()
			}
		}
		bar.Done()
	}
	if err == nil {
		err = sum.Err()
	}

	// Without isolation the failing step is the run error itself.
	stepLevel := logrus.DebugLevel
	if sw.Isolate {
		stepLevel = logrus.WarnLevel
	}
	for _, r := range sum.Steps {
		if r.Err != nil {
			log.WithFields(logrus.Fields{"count": r.Count}).WithError(r.Err).Log(stepLevel, "step failed")
		}
	}

	run := builder.Finish(sum)
	if cfg.Output.PNG {
		run.Images = cfg.Output.Dir
	}

	if cfg.Output.Report != "" {
		if werr := report.WriteFile(cfg.Output.Report, run); werr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrReport, werr)
		}
	}

	res := Result{
		Kind:    Classify(err),
		Err:     err,
		Summary: sum,
		Report:  &run,
	}

	return p.finish(res, start)
}

func (p *Pipeline) debugSink() sweep.Sink {
	return sweep.SinkFunc(func(f sweep.Frame) error {
		s := report.NewStep(f)
		p.log.WithFields(logrus.Fields{
			"count":     s.Count,
			"percent":   s.Percent,
			"peak_bin":  s.PeakBin,
			"peak":      s.PeakMagnitude,
			"energy":    s.Energy,
			"high_band": s.HighBandRatio,
		}).Debug("step analyzed")
		return nil
	})
}

func (p *Pipeline) finish(res Result, start time.Time) Result {
	fields := logrus.Fields{
		"kind":     res.Kind.String(),
		"steps":    len(res.Summary.Steps),
		"failed":   res.Summary.Failed(),
		"duration": time.Since(start).Round(time.Millisecond),
	}

	// The caller reports res.Err; logging it again would print the failure twice.
	if res.Err != nil {
		p.log.WithFields(fields).WithError(res.Err).Debug("run failed")
		return res
	}

	p.log.WithFields(fields).Info("run finished")
	return res
}
