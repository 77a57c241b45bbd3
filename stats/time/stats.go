// Package time summarizes sample blocks in the time domain.
package time

import "math"

// Stats describes one sample block.
type Stats struct {
	Length int
	Mean   float64
	RMS    float64
	Min    float64
	MinPos int
	Max    float64
	MaxPos int
	Peak   float64 // max(|Min|, |Max|)
	Range  float64 // Max - Min
	Energy float64 // sum of squares

	ZeroCrossings int
	// LeadingZeros counts samples equal to zero before the first non-zero
	// one. For a dimmed block it is at least the dimming count.
	LeadingZeros int
	// Zeros counts all samples equal to zero.
	Zeros int
}

// Calculate summarizes signal in a single pass.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	s := Stats{
		Length: n,
		Min:    signal[0],
		Max:    signal[0],
	}

	var sum float64
	leading := true

	for i, x := range signal {
		sum += x
		s.Energy += x * x

		if x > s.Max {
			s.Max, s.MaxPos = x, i
		}
		if x < s.Min {
			s.Min, s.MinPos = x, i
		}

		if x == 0 {
			s.Zeros++
			if leading {
				s.LeadingZeros++
			}
		} else {
			leading = false
		}

		if i > 0 && signal[i-1]*x < 0 {
			s.ZeroCrossings++
		}
	}

	nf := float64(n)
	s.Mean = sum / nf
	s.RMS = math.Sqrt(s.Energy / nf)
	s.Peak = math.Max(math.Abs(s.Max), math.Abs(s.Min))
	s.Range = s.Max - s.Min

	return s
}

// CalculateInt32 summarizes raw ADC samples.
func CalculateInt32(samples []int32) Stats {
	f := make([]float64, len(samples))
	for i, v := range samples {
		f[i] = float64(v)
	}

	return Calculate(f)
}

// RMS returns the root-mean-square of signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return math.Sqrt(Energy(signal) / float64(len(signal)))
}

// Energy returns the sum of squared samples.
func Energy(signal []float64) float64 {
	var e float64
	for _, x := range signal {
		e += x * x
	}

	return e
}

// LeadingZeros returns the number of zero samples before the first non-zero
// one.
func LeadingZeros(signal []float64) int {
	for i, x := range signal {
		if x != 0 {
			return i
		}
	}

	return len(signal)
}

// ZeroCrossings counts sign changes between consecutive samples.
// Zero-valued samples never count as a crossing.
func ZeroCrossings(signal []float64) int {
	count := 0
	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}

	return count
}
