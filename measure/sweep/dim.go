package sweep

import "github.com/cwbudde/adc-dimming/dsp/buffer"

// DefaultStep is the distance between consecutive dimming counts.
const DefaultStep = 4

// Schedule returns the dimming counts 0, step, 2*step, ... below n.
// It yields ceil(n/step) counts for n > 0.
func Schedule(n, step int) ([]int, error) {
	if step < 1 {
		return nil, ErrInvalidStep
	}

	if n <= 0 {
		return nil, nil
	}

	counts := make([]int, 0, (n+step-1)/step)
	for cnt := 0; cnt < n; cnt += step {
		counts = append(counts, cnt)
	}

	return counts, nil
}

// Dim returns a copy of x with x[0:count] set to zero.
// Counts beyond len(x) zero the whole copy.
func Dim(x []float64, count int) []float64 {
	b := buffer.Clone(x)
	b.ZeroPrefix(count)

	return b.Samples()
}

// DimTruncated is Dim followed by truncation of every sample toward zero,
// as if the dimmed block were stored in an integer register.
func DimTruncated(x []float64, count int) []float64 {
	b := buffer.Clone(x)
	b.ZeroPrefix(count)
	b.TruncateTowardZero()

	return b.Samples()
}
