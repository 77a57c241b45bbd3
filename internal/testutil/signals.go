package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ramp32 returns the ADC samples 0, 1, ..., length-1.
func Ramp32(length int) []int32 {
	out := make([]int32, length)
	for i := range out {
		out[i] = int32(i)
	}
	return out
}

// Const32 returns length ADC samples all equal to value.
func Const32(value int32, length int) []int32 {
	out := make([]int32, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Sine32 quantizes a sine of the given number of cycles per buffer around
// offset, truncating toward zero like an integer ADC register.
func Sine32(cycles, amplitude float64, offset int32, length int) []int32 {
	out := make([]int32, length)
	for i := range out {
		v := amplitude * math.Sin(2*math.Pi*cycles*float64(i)/float64(length))
		out[i] = offset + int32(v)
	}
	return out
}
