// Package signal synthesizes deterministic ADC sample blocks.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator produces a sine tone on top of a DC offset with optional
// uniform noise, quantized like an ADC of the configured resolution.
type Generator struct {
	samples   int
	cycles    float64
	amplitude float64
	offset    float64
	noise     float64
	seed      int64
	bits      int
}

// Option configures a Generator.
type Option func(*Generator)

// WithSamples sets the block length.
func WithSamples(n int) Option {
	return func(g *Generator) { g.samples = n }
}

// WithCycles sets the number of tone periods across the block.
func WithCycles(c float64) Option {
	return func(g *Generator) { g.cycles = c }
}

// WithAmplitude sets the tone peak in ADC counts.
func WithAmplitude(a float64) Option {
	return func(g *Generator) { g.amplitude = a }
}

// WithOffset sets the DC level in ADC counts.
func WithOffset(o float64) Option {
	return func(g *Generator) { g.offset = o }
}

// WithNoise adds uniform noise in [-a, a] counts.
func WithNoise(a float64) Option {
	return func(g *Generator) { g.noise = a }
}

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.seed = seed }
}

// WithResolution clamps output to [0, 2^bits-1]. Zero disables clamping
// and allows signed output.
func WithResolution(bits int) Option {
	return func(g *Generator) { g.bits = bits }
}

// NewGenerator returns a generator for a 64-sample, 4-cycle, 1000-count tone
// centered at 2048 on a 12-bit converter, modified by opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		samples:   64,
		cycles:    4,
		amplitude: 1000,
		offset:    2048,
		seed:      1,
		bits:      12,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Samples returns the configured block length.
func (g *Generator) Samples() int { return g.samples }

// Validate checks the generator configuration.
func (g *Generator) Validate() error {
	if g.samples <= 0 {
		return fmt.Errorf("samples must be > 0: %d", g.samples)
	}
	if g.amplitude < 0 {
		return fmt.Errorf("amplitude must be >= 0: %f", g.amplitude)
	}
	if g.noise < 0 {
		return fmt.Errorf("noise amplitude must be >= 0: %f", g.noise)
	}
	if g.bits < 0 || g.bits > 31 {
		return fmt.Errorf("resolution must be in [0, 31] bits: %d", g.bits)
	}
	return nil
}

// Generate returns one block of quantized samples.
func (g *Generator) Generate() ([]int32, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	lo, hi := float64(math.MinInt32), float64(math.MaxInt32)
	if g.bits > 0 {
		lo, hi = 0, float64(int64(1)<<g.bits-1)
	}

	rng := rand.New(rand.NewSource(g.seed))
	step := 2 * math.Pi * g.cycles / float64(g.samples)

	out := make([]int32, g.samples)
	for i := range out {
		v := g.offset + g.amplitude*math.Sin(step*float64(i))
		if g.noise > 0 {
			v += (rng.Float64()*2 - 1) * g.noise
		}
		out[i] = int32(math.Max(lo, math.Min(hi, math.Round(v))))
	}
	return out, nil
}
