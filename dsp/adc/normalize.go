package adc

// Offset returns the midpoint of the sample range, min + (max-min)/2.
// The subtraction is carried out in 64 bits so that the full int32 range
// cannot overflow, and the halving keeps its fractional part.
func Offset(samples []int32) float64 {
	if len(samples) == 0 {
		return 0
	}

	lo, hi := int64(samples[0]), int64(samples[0])
	for _, s := range samples[1:] {
		v := int64(s)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return float64(lo) + float64(hi-lo)/2
}

// Normalize returns samples shifted by [Offset]. Values are not rescaled.
// A constant buffer yields all zeros.
func Normalize(samples []int32) []float64 {
	if len(samples) == 0 {
		return nil
	}

	offset := Offset(samples)
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s) - offset
	}
	return out
}
