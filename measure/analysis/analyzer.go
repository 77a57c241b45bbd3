package analysis

import (
	"github.com/cwbudde/adc-dimming/dsp/spectrum"
	"github.com/cwbudde/adc-dimming/dsp/window"
)

// Result holds the output of one analysis.
type Result struct {
	// Windowed is the input multiplied by the window coefficients.
	Windowed []float64
	// Magnitudes are the bin magnitudes before truncation, Nyquist dropped.
	Magnitudes []float64
	// Spectrum holds Magnitudes truncated toward zero.
	Spectrum []int64
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithTransformer sets the FFT implementation.
func WithTransformer(t spectrum.Transformer) Option {
	return func(a *Analyzer) {
		if t != nil {
			a.fft = t
		}
	}
}

// WithWindow replaces the default Hamming window.
func WithWindow(t window.Type) Option {
	return func(a *Analyzer) {
		a.windowType = t
	}
}

// WithRejectOddLength makes Analyze fail with ErrOddLength for odd input
// lengths instead of flooring the bin count.
func WithRejectOddLength() Option {
	return func(a *Analyzer) {
		a.rejectOdd = true
	}
}

// Analyzer computes windowed magnitude spectra.
type Analyzer struct {
	fft        spectrum.Transformer
	windowType window.Type
	rejectOdd  bool
	windows    *window.Cache
}

// New returns an Analyzer using a symmetric Hamming window and the algo-fft
// backend unless overridden by options.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		windowType: window.TypeHamming,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.fft == nil {
		a.fft = spectrum.NewAlgoFFT()
	}

	a.windows = window.NewCache(a.windowType)

	return a
}

// NewWithBackend is New with the transformer selected by name.
func NewWithBackend(b spectrum.Backend, opts ...Option) (*Analyzer, error) {
	t, err := spectrum.NewTransformer(b)
	if err != nil {
		return nil, err
	}

	return New(append([]Option{WithTransformer(t)}, opts...)...), nil
}

// Backend reports the FFT backend in use.
func (a *Analyzer) Backend() spectrum.Backend {
	return a.fft.Name()
}

// Window reports the window type in use.
func (a *Analyzer) Window() window.Type {
	return a.windowType
}

// Coefficients returns the window for length n. The slice is shared.
func (a *Analyzer) Coefficients(n int) []float64 {
	return a.windows.Get(n)
}

// Analyze windows x, transforms it and returns the truncated magnitude
// spectrum with the Nyquist bin dropped. x is not modified.
func (a *Analyzer) Analyze(x []float64) (Result, error) {
	n := len(x)
	if err := a.validate(n); err != nil {
		return Result{}, &AnalysisError{Length: n, Err: err}
	}

	windowed, err := window.ApplyCoefficients(x, a.windows.Get(n))
	if err != nil {
		return Result{}, &AnalysisError{Length: n, Err: err}
	}

	bins, err := a.fft.Forward(windowed)
	if err != nil {
		return Result{}, &AnalysisError{Length: n, Err: err}
	}

	mags := spectrum.DropLast(spectrum.Magnitude(bins))

	return Result{
		Windowed:   windowed,
		Magnitudes: mags,
		Spectrum:   spectrum.Truncate(mags),
	}, nil
}

func (a *Analyzer) validate(n int) error {
	switch {
	case n == 0:
		return ErrEmptyBuffer
	case n < 2:
		return ErrTooShort
	case a.rejectOdd && n%2 != 0:
		return ErrOddLength
	}

	return nil
}

// SpectrumLen returns the number of bins Analyze produces for n samples.
func SpectrumLen(n int) int {
	if n < 2 {
		return 0
	}

	return n / 2
}

var defaultAnalyzer = New()

// Analyze runs the default Analyzer (Hamming window, algo-fft) on x.
func Analyze(x []float64) (Result, error) {
	return defaultAnalyzer.Analyze(x)
}
