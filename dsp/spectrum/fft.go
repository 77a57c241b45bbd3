package spectrum

import (
	"errors"
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	godsp "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Backend names an FFT implementation.
type Backend string

const (
	BackendAlgoFFT Backend = "algofft"
	BackendGonum   Backend = "gonum"
	BackendGoDSP   Backend = "godsp"
)

// Errors returned by transformers.
var (
	ErrEmptyInput     = errors.New("spectrum: input must not be empty")
	ErrUnknownBackend = errors.New("spectrum: unknown FFT backend")
)

// Backends lists every available backend, default first.
func Backends() []Backend {
	return []Backend{BackendAlgoFFT, BackendGonum, BackendGoDSP}
}

// Transformer computes the one-sided DFT of a real input block.
//
// Forward returns OneSidedLen(len(x)) bins and never modifies x.
// Implementations are safe for concurrent use.
type Transformer interface {
	Name() Backend
	Forward(x []float64) ([]complex128, error)
}

// NewTransformer returns the transformer for the named backend.
// An empty name selects algo-fft.
func NewTransformer(b Backend) (Transformer, error) {
	switch b {
	case BackendAlgoFFT, "":
		return NewAlgoFFT(), nil
	case BackendGonum:
		return NewGonum(), nil
	case BackendGoDSP:
		return NewGoDSP(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, string(b))
	}
}

// planPool keeps reusable FFT plans per transform length.
type planPool[P any] struct {
	pools   sync.Map // int -> *sync.Pool
	newPlan func(n int) (P, error)
}

func (pp *planPool[P]) get(n int) (P, error) {
	v, _ := pp.pools.LoadOrStore(n, &sync.Pool{})
	if p, ok := v.(*sync.Pool).Get().(P); ok {
		return p, nil
	}
	return pp.newPlan(n)
}

func (pp *planPool[P]) put(n int, p P) {
	if v, ok := pp.pools.Load(n); ok {
		v.(*sync.Pool).Put(p)
	}
}

// AlgoFFT runs a complex algo-fft plan over the real input and keeps the
// non-negative half. Lengths algo-fft cannot plan fall back to gonum.
type AlgoFFT struct {
	plans    planPool[*algofft.Plan[complex128]]
	fallback *Gonum

	mu          sync.RWMutex
	unsupported map[int]bool
}

// NewAlgoFFT returns an algo-fft backed transformer.
func NewAlgoFFT() *AlgoFFT {
	t := &AlgoFFT{
		fallback:    NewGonum(),
		unsupported: make(map[int]bool),
	}
	t.plans.newPlan = func(n int) (*algofft.Plan[complex128], error) {
		return algofft.NewPlan64(n)
	}
	return t
}

// Name implements [Transformer].
func (t *AlgoFFT) Name() Backend { return BackendAlgoFFT }

// Forward implements [Transformer].
func (t *AlgoFFT) Forward(x []float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	t.mu.RLock()
	skip := t.unsupported[n]
	t.mu.RUnlock()
	if skip {
		return t.fallback.Forward(x)
	}

	plan, err := t.plans.get(n)
	if err != nil {
		t.mu.Lock()
		t.unsupported[n] = true
		t.mu.Unlock()
		return t.fallback.Forward(x)
	}
	defer t.plans.put(n, plan)

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: algo-fft forward (n=%d): %w", n, err)
	}

	return out[:OneSidedLen(n):OneSidedLen(n)], nil
}

// Gonum wraps gonum's real FFT.
type Gonum struct {
	plans planPool[*fourier.FFT]
}

// NewGonum returns a gonum backed transformer.
func NewGonum() *Gonum {
	t := &Gonum{}
	t.plans.newPlan = func(n int) (*fourier.FFT, error) {
		return fourier.NewFFT(n), nil
	}
	return t
}

// Name implements [Transformer].
func (t *Gonum) Name() Backend { return BackendGonum }

// Forward implements [Transformer].
func (t *Gonum) Forward(x []float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	plan, err := t.plans.get(n)
	if err != nil {
		return nil, err
	}
	defer t.plans.put(n, plan)

	return plan.Coefficients(nil, x), nil
}

// GoDSP wraps github.com/mjibson/go-dsp/fft.
type GoDSP struct{}

// NewGoDSP returns a go-dsp backed transformer.
func NewGoDSP() *GoDSP { return &GoDSP{} }

// Name implements [Transformer].
func (GoDSP) Name() Backend { return BackendGoDSP }

// Forward implements [Transformer].
func (GoDSP) Forward(x []float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	full := godsp.FFTReal(x)
	bins := make([]complex128, OneSidedLen(n))
	copy(bins, full)
	return bins, nil
}
