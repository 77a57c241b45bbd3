package frequency

import (
	"math"
	"testing"
)

func TestCalculateEmpty(t *testing.T) {
	if s := Calculate(nil); s != (Stats{}) {
		t.Fatalf("Calculate(nil)=%+v", s)
	}
}

func TestCalculate(t *testing.T) {
	s := Calculate([]float64{5, 1, 3, 1})

	if s.BinCount != 4 || s.DC != 5 {
		t.Fatalf("BinCount=%d DC=%v", s.BinCount, s.DC)
	}
	if s.Max != 5 || s.MaxBin != 0 {
		t.Fatalf("Max=%v@%d", s.Max, s.MaxBin)
	}
	if s.PeakAC != 3 || s.PeakACBin != 2 {
		t.Fatalf("PeakAC=%v@%d", s.PeakAC, s.PeakACBin)
	}
	if s.Sum != 10 || s.Energy != 36 {
		t.Fatalf("Sum=%v Energy=%v", s.Sum, s.Energy)
	}
	// (0*5 + 1*1 + 2*3 + 3*1) / 10
	if math.Abs(s.Centroid-1.0) > 1e-12 {
		t.Fatalf("Centroid=%v want 1", s.Centroid)
	}
	// energy 25, 26, 35, 36 -> 85 % = 30.6 reached at bin 2
	if s.Rolloff != 2 {
		t.Fatalf("Rolloff=%d want 2", s.Rolloff)
	}
	if math.Abs(s.HighBandRatio-10.0/36) > 1e-12 {
		t.Fatalf("HighBandRatio=%v", s.HighBandRatio)
	}
}

func TestCalculateSingleBin(t *testing.T) {
	s := Calculate([]float64{4})
	if s.PeakACBin != -1 || s.Max != 4 || s.Flatness != 0 {
		t.Fatalf("single-bin stats=%+v", s)
	}
}

func TestSilentSpectrum(t *testing.T) {
	s := CalculateInt(make([]int64, 32))
	if s.Energy != 0 || s.Centroid != 0 || s.Rolloff != 0 || s.HighBandRatio != 0 || s.Flatness != 0 {
		t.Fatalf("silent stats=%+v", s)
	}
	if s.PeakACBin != 1 {
		t.Fatalf("PeakACBin=%d want 1", s.PeakACBin)
	}
}

func TestFlatness(t *testing.T) {
	if f := Flatness([]float64{9, 2, 2, 2}); math.Abs(f-1) > 1e-12 {
		t.Fatalf("flat spectrum flatness=%v want 1", f)
	}
	if f := Flatness([]float64{0, 1, 0, 1}); f != 0 {
		t.Fatalf("zero bin flatness=%v want 0", f)
	}
	if f := Flatness([]float64{0, 1, 100}); f <= 0 || f >= 0.5 {
		t.Fatalf("peaky flatness=%v", f)
	}
}

func TestHelpersMatchCalculate(t *testing.T) {
	m := []float64{0.5, 3, 7, 2, 1, 0.25}
	s := Calculate(m)

	if Centroid(m) != s.Centroid {
		t.Fatalf("Centroid=%v want %v", Centroid(m), s.Centroid)
	}
	if Rolloff(m, RolloffFraction) != s.Rolloff {
		t.Fatalf("Rolloff=%d want %d", Rolloff(m, RolloffFraction), s.Rolloff)
	}
	if HighBandRatio(m) != s.HighBandRatio {
		t.Fatalf("HighBandRatio=%v want %v", HighBandRatio(m), s.HighBandRatio)
	}
}

func TestFloat(t *testing.T) {
	if Float(nil) != nil {
		t.Fatal("Float(nil) must be nil")
	}
	got := Float([]int64{0, 3, -1})
	if len(got) != 3 || got[1] != 3 || got[2] != -1 {
		t.Fatalf("Float=%v", got)
	}
}
