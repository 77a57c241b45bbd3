package window

import "math"

// analysisOversample is the number of response evaluations per bin.
const analysisOversample = 64

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the two-sided half-power main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstMinimumBins is the first null (minimum) position in bins.
	FirstMinimumBins float64
	// ScallopLossdB is the amplitude error for a signal half a bin off centre.
	ScallopLossdB float64
}

// Analyze computes spectral properties of the given window coefficients.
//
// The window's power response is sampled on a grid of analysisOversample
// points per bin between DC and Nyquist; crossings are linearly interpolated.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	sum := 0.0
	sumSq := 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}
	if sum == 0 {
		return Analysis{}
	}

	dc := sum * sum
	resp := powerResponse(coeffs, analysisOversample)

	a := Analysis{
		CoherentGain:  sum / float64(n),
		ENBW:          float64(n) * sumSq / dc,
		ScallopLossdB: 10 * math.Log10(resp[analysisOversample/2]/dc),
	}

	half := dc / 2
	for i := 1; i < len(resp); i++ {
		if resp[i] <= half {
			frac := (resp[i-1] - half) / (resp[i-1] - resp[i])
			a.Bandwidth3dB = 2 * (float64(i-1) + frac) / analysisOversample
			break
		}
	}

	// The first null is the first turn-around once the main lobe has fallen
	// below a tenth of DC; flat-top main lobes have shallow dips above that.
	firstMin := len(resp) - 1
	for i := 1; i < len(resp)-1; i++ {
		if resp[i] < dc/10 && resp[i+1] > resp[i] {
			firstMin = i
			break
		}
	}
	a.FirstMinimumBins = float64(firstMin) / analysisOversample

	peak := 0.0
	for _, v := range resp[firstMin:] {
		peak = math.Max(peak, v)
	}
	if peak > 0 {
		a.HighestSidelobedB = 10 * math.Log10(peak/dc)
	} else {
		a.HighestSidelobedB = math.Inf(-1)
	}

	return a
}

// powerResponse returns |W(f)|^2 sampled from DC to Nyquist with the given
// number of points per bin.
func powerResponse(coeffs []float64, perBin int) []float64 {
	n := len(coeffs)
	points := n*perBin/2 + 1
	out := make([]float64, points)

	for j := range out {
		w := 2 * math.Pi * float64(j) / float64(n*perBin)
		re, im := 0.0, 0.0
		for k, c := range coeffs {
			s, co := math.Sincos(w * float64(k))
			re += c * co
			im -= c * s
		}
		out[j] = re*re + im*im
	}

	return out
}
