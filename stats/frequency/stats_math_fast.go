//go:build fastmath

package frequency

import "github.com/meko-christian/algo-approx"

// mathLog computes ln(x) using fast approximation.
func mathLog(x float64) float64 {
	return approx.FastLog(x)
}

// mathExp computes e^x using fast approximation.
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}

// mathSqrt computes sqrt(x) using fast approximation.
func mathSqrt(x float64) float64 {
	return approx.FastSqrt(x)
}
