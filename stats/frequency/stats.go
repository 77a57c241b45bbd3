// Package frequency summarizes one-sided magnitude spectra.
//
// Spectra are indexed by bin; no sample rate is involved, so centroid,
// spread and rolloff are reported in bins.
package frequency

// Stats holds summary values of a magnitude spectrum (linear, not dB).
type Stats struct {
	BinCount int
	DC       float64 // bin 0
	Max      float64
	MaxBin   int
	// PeakAC is the largest magnitude above DC, at PeakACBin.
	PeakAC    float64
	PeakACBin int
	Sum       float64
	Energy    float64 // sum of squared magnitudes

	Centroid float64 // bins
	Spread   float64 // bins
	Flatness float64 // 0..1, DC excluded
	Rolloff  int     // bin below which 85 % of the energy lies
	// HighBandRatio is the share of energy in the upper half of the bins.
	HighBandRatio float64
}

// RolloffFraction is the energy fraction used for Stats.Rolloff.
const RolloffFraction = 0.85

// Calculate computes all statistics of magnitude.
func Calculate(magnitude []float64) Stats {
	n := len(magnitude)
	if n == 0 {
		return Stats{}
	}

	s := Stats{
		BinCount:  n,
		DC:        magnitude[0],
		Max:       magnitude[0],
		PeakACBin: -1,
	}

	for i, v := range magnitude {
		s.Sum += v
		s.Energy += v * v

		if v > s.Max {
			s.Max, s.MaxBin = v, i
		}
		if i > 0 && (s.PeakACBin < 0 || v > s.PeakAC) {
			s.PeakAC, s.PeakACBin = v, i
		}
	}

	s.Centroid = centroid(magnitude, s.Sum)
	s.Spread = spread(magnitude, s.Centroid, s.Sum)
	s.Flatness = Flatness(magnitude)
	s.Rolloff = rolloff(magnitude, RolloffFraction, s.Energy)
	s.HighBandRatio = highBandRatio(magnitude, s.Energy)

	return s
}

// CalculateInt computes statistics of an integer spectrum.
func CalculateInt(spectrum []int64) Stats {
	return Calculate(Float(spectrum))
}

// Float converts integer magnitudes to float64.
func Float(spectrum []int64) []float64 {
	if spectrum == nil {
		return nil
	}

	out := make([]float64, len(spectrum))
	for i, v := range spectrum {
		out[i] = float64(v)
	}

	return out
}

// Centroid returns the magnitude-weighted mean bin.
func Centroid(magnitude []float64) float64 {
	var sum float64
	for _, v := range magnitude {
		sum += v
	}

	return centroid(magnitude, sum)
}

func centroid(magnitude []float64, sum float64) float64 {
	if sum == 0 {
		return 0
	}

	var w float64
	for i, v := range magnitude {
		w += float64(i) * v
	}

	return w / sum
}

func spread(magnitude []float64, cent, sum float64) float64 {
	if sum == 0 {
		return 0
	}

	var w float64
	for i, v := range magnitude {
		d := float64(i) - cent
		w += d * d * v
	}

	return mathSqrt(w / sum)
}

// Flatness returns the ratio of geometric to arithmetic mean of bins 1..n-1.
// A zero bin makes the result 0.
func Flatness(magnitude []float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}

	var sumLin, sumLog float64
	for _, v := range magnitude[1:] {
		if v <= 0 {
			return 0
		}
		sumLin += v
		sumLog += mathLog(v)
	}

	bins := float64(len(magnitude) - 1)

	return mathExp(sumLog/bins) / (sumLin / bins)
}

// Rolloff returns the first bin at which the cumulative energy reaches
// fraction of the total. An all-zero spectrum yields 0.
func Rolloff(magnitude []float64, fraction float64) int {
	var e float64
	for _, v := range magnitude {
		e += v * v
	}

	return rolloff(magnitude, fraction, e)
}

func rolloff(magnitude []float64, fraction, total float64) int {
	if total == 0 {
		return 0
	}

	threshold := fraction * total
	var cum float64
	for i, v := range magnitude {
		cum += v * v
		if cum >= threshold {
			return i
		}
	}

	return len(magnitude) - 1
}

// HighBandRatio returns the fraction of energy in bins [n/2, n).
func HighBandRatio(magnitude []float64) float64 {
	var e float64
	for _, v := range magnitude {
		e += v * v
	}

	return highBandRatio(magnitude, e)
}

func highBandRatio(magnitude []float64, total float64) float64 {
	if total == 0 {
		return 0
	}

	var high float64
	for _, v := range magnitude[len(magnitude)/2:] {
		high += v * v
	}

	return high / total
}
