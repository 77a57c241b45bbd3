package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris4Term
	TypeFlatTop
)

// Types lists every supported window type in declaration order.
var Types = []Type{
	TypeRectangular,
	TypeHann,
	TypeHamming,
	TypeBlackman,
	TypeBlackmanHarris4Term,
	TypeFlatTop,
}

// Metadata holds spectral properties of a window type.
type Metadata struct {
	Name                string
	Slug                string
	ENBW                float64
	HighestSidelobe     float64
	CoherentGain        float64
	CoherentGainSquared float64
}

// Cosine-sum coefficients: w(x) = sum_k c[k] * cos(2*pi*k*x), x in [0,1].
var (
	rectangularCoeffs     = []float64{1}
	hannCoeffs            = []float64{0.5, -0.5}
	hammingCoeffs         = []float64{0.54, -0.46}
	blackmanCoeffs        = []float64{0.42, -0.5, 0.08}
	blackmanHarris4Coeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	flatTopCoeffs         = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
)

var metadataByType = map[Type]Metadata{
	TypeRectangular:         {Name: "Rectangular", Slug: "rectangular", ENBW: 1, HighestSidelobe: -13.26, CoherentGain: 1, CoherentGainSquared: 1},
	TypeHann:                {Name: "Hann", Slug: "hann", ENBW: 1.5, HighestSidelobe: -31.47, CoherentGain: 0.5, CoherentGainSquared: 0.25},
	TypeHamming:             {Name: "Hamming", Slug: "hamming", ENBW: 1.3628, HighestSidelobe: -42.68, CoherentGain: 0.54, CoherentGainSquared: 0.2916},
	TypeBlackman:            {Name: "Blackman", Slug: "blackman", ENBW: 1.7268, HighestSidelobe: -58.11, CoherentGain: 0.42, CoherentGainSquared: 0.1764},
	TypeBlackmanHarris4Term: {Name: "Blackman-Harris", Slug: "blackman-harris", ENBW: 2.0044, HighestSidelobe: -92.01, CoherentGain: 0.35875, CoherentGainSquared: 0.1287015625},
	TypeFlatTop:             {Name: "Flat Top", Slug: "flat-top", ENBW: 3.7702, HighestSidelobe: -93.6, CoherentGain: 0.21557895, CoherentGainSquared: 0.0464742836},
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length.
//
// The symmetric form evaluates the window at x = n/(N-1), so w[0] == w[N-1].
// A single-sample window is the window's centre value.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	coeffs := coeffsFor(t)
	out := make([]float64, length)
	for i := range out {
		out[i] = cosineFromCoeffs(samplePosition(i, length, cfg.periodic), coeffs)
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// Parse resolves a window slug such as "hamming" or "blackman-harris".
func Parse(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range Types {
		if metadataByType[t].Slug == name {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errUnknownType, name)
}

// String returns the window name.
func (t Type) String() string {
	if m, ok := metadataByType[t]; ok {
		return m.Name
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// Hamming returns Hamming window coefficients,
// w[n] = 0.54 - 0.46*cos(2*pi*n/(N-1)) in the symmetric form.
func Hamming(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeHamming, size, opts...), validateLength(size)
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

func coeffsFor(t Type) []float64 {
	switch t {
	case TypeHann:
		return hannCoeffs
	case TypeHamming:
		return hammingCoeffs
	case TypeBlackman:
		return blackmanCoeffs
	case TypeBlackmanHarris4Term:
		return blackmanHarris4Coeffs
	case TypeFlatTop:
		return flatTopCoeffs
	default:
		return rectangularCoeffs
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0.5
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}
