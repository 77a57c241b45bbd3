// Package report collects per-step statistics of a dimming sweep and writes
// them as YAML or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/adc-dimming/measure/sweep"
	frequencystats "github.com/cwbudde/adc-dimming/stats/frequency"
	timestats "github.com/cwbudde/adc-dimming/stats/time"
)

// Run summarizes one pipeline run.
type Run struct {
	Input   string  `yaml:"input"             json:"input"`
	Samples int     `yaml:"samples"           json:"samples"`
	Min     int32   `yaml:"min"               json:"min"`
	Max     int32   `yaml:"max"               json:"max"`
	Offset  float64 `yaml:"offset"            json:"offset"`
	Backend string  `yaml:"backend"           json:"backend"`
	Window  string  `yaml:"window"            json:"window"`
	Step    int     `yaml:"step"              json:"step"`
	Steps   []Step  `yaml:"steps"             json:"steps"`
	Failed  []Fail  `yaml:"failed,omitempty"  json:"failed,omitempty"`
	Images  string  `yaml:"images,omitempty"  json:"images,omitempty"`
}

// Step summarizes one emitted frame.
type Step struct {
	Index   int     `yaml:"index"   json:"index"`
	Count   int     `yaml:"count"   json:"count"`
	Percent float64 `yaml:"percent" json:"percent"`

	DimmedRMS    float64 `yaml:"dimmed_rms"    json:"dimmed_rms"`
	DimmedEnergy float64 `yaml:"dimmed_energy" json:"dimmed_energy"`
	LeadingZeros int     `yaml:"leading_zeros" json:"leading_zeros"`

	PeakBin       int     `yaml:"peak_bin"        json:"peak_bin"`
	PeakMagnitude int64   `yaml:"peak_magnitude"  json:"peak_magnitude"`
	Energy        float64 `yaml:"energy"          json:"energy"`
	Centroid      float64 `yaml:"centroid"        json:"centroid"`
	Rolloff       int     `yaml:"rolloff"         json:"rolloff"`
	HighBandRatio float64 `yaml:"high_band_ratio" json:"high_band_ratio"`
}

// Fail records a failed step.
type Fail struct {
	Count int    `yaml:"count" json:"count"`
	Error string `yaml:"error" json:"error"`
}

// NewStep computes the statistics of f. The spectral values are taken from
// the untruncated magnitudes; PeakMagnitude is the integer bin value.
func NewStep(f sweep.Frame) Step {
	dimmed := timestats.Calculate(f.Dimmed)

	mags := f.Magnitudes
	if mags == nil {
		mags = frequencystats.Float(f.Spectrum)
	}
	fstats := frequencystats.Calculate(mags)

	s := Step{
		Index:         f.Index,
		Count:         f.Count,
		Percent:       f.Percent,
		DimmedRMS:     dimmed.RMS,
		DimmedEnergy:  dimmed.Energy,
		LeadingZeros:  dimmed.LeadingZeros,
		PeakBin:       fstats.MaxBin,
		Energy:        fstats.Energy,
		Centroid:      fstats.Centroid,
		Rolloff:       fstats.Rolloff,
		HighBandRatio: fstats.HighBandRatio,
	}
	if fstats.MaxBin < len(f.Spectrum) {
		s.PeakMagnitude = f.Spectrum[fstats.MaxBin]
	}

	return s
}

// Builder is a sweep.Sink accumulating a Run.
type Builder struct {
	mu  sync.Mutex
	run Run
}

// NewBuilder starts a report with the given header.
func NewBuilder(header Run) *Builder {
	header.Steps = nil
	header.Failed = nil
	return &Builder{run: header}
}

// Emit appends the statistics of f.
func (b *Builder) Emit(f sweep.Frame) error {
	step := NewStep(f)

	b.mu.Lock()
	b.run.Steps = append(b.run.Steps, step)
	b.mu.Unlock()

	return nil
}

// Finish records the failed steps of sum and returns the completed run.
func (b *Builder) Finish(sum sweep.Summary) Run {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, r := range sum.Steps {
		if r.Err != nil {
			b.run.Failed = append(b.run.Failed, Fail{Count: r.Count, Error: r.Err.Error()})
		}
	}
	if sum.Step > 0 {
		b.run.Step = sum.Step
	}

	out := b.run
	out.Steps = append([]Step(nil), b.run.Steps...)
	return out
}

// Format names an output encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks JSON for .json paths and YAML otherwise.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Write encodes run to w.
func Write(w io.Writer, run Run, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(run); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return nil
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(run); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q", string(format))
	}
}

// WriteFile writes run to path in the format implied by its extension.
func WriteFile(path string, run Run) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Write(f, run, FormatFor(path))
}
