package buffer

import "math"

// Buffer wraps a float64 slice.
// DSP functions accept raw []float64; use Samples() to bridge.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice(s []float64) *Buffer {
	return &Buffer{samples: s}
}

// Clone returns a Buffer holding a copy of s.
func Clone(s []float64) *Buffer {
	return &Buffer{samples: append([]float64(nil), s...)}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	clear(b.samples)
}

// ZeroRange sets samples in [start, end) to 0.
// Indices are clamped to valid bounds.
func (b *Buffer) ZeroRange(start, end int) {
	start = max(start, 0)
	end = min(end, len(b.samples))
	if start >= end {
		return
	}
	clear(b.samples[start:end])
}

// ZeroPrefix sets the first n samples to 0. n is clamped to the length.
func (b *Buffer) ZeroPrefix(n int) {
	b.ZeroRange(0, n)
}

// TruncateTowardZero drops the fractional part of every sample, matching
// a conversion into an integer register (-3.5 becomes -3).
func (b *Buffer) TruncateTowardZero() {
	for i, v := range b.samples {
		b.samples[i] = math.Trunc(v)
	}
}

// Copy returns a deep copy of the buffer.
func (b *Buffer) Copy() *Buffer {
	return Clone(b.samples)
}
