package time

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
	s := Calculate([]float64{0, 0, -2, 3, -1, 0})

	if s.Length != 6 {
		t.Fatalf("Length=%d", s.Length)
	}
	if s.Min != -2 || s.MinPos != 2 || s.Max != 3 || s.MaxPos != 3 {
		t.Fatalf("min/max=%v@%d %v@%d", s.Min, s.MinPos, s.Max, s.MaxPos)
	}
	if s.Peak != 3 || s.Range != 5 {
		t.Fatalf("Peak=%v Range=%v", s.Peak, s.Range)
	}
	if s.Energy != 14 {
		t.Fatalf("Energy=%v want 14", s.Energy)
	}
	if math.Abs(s.RMS-math.Sqrt(14.0/6)) > 1e-12 {
		t.Fatalf("RMS=%v", s.RMS)
	}
	if s.Mean != 0 {
		t.Fatalf("Mean=%v want 0", s.Mean)
	}
	if s.ZeroCrossings != 2 {
		t.Fatalf("ZeroCrossings=%d want 2", s.ZeroCrossings)
	}
	if s.LeadingZeros != 2 || s.Zeros != 3 {
		t.Fatalf("LeadingZeros=%d Zeros=%d", s.LeadingZeros, s.Zeros)
	}
}

func TestCalculateAllZero(t *testing.T) {
	s := Calculate(make([]float64, 8))
	if s.LeadingZeros != 8 || s.Zeros != 8 || s.RMS != 0 || s.Peak != 0 {
		t.Fatalf("all-zero stats=%+v", s)
	}
}

func TestCalculateInt32(t *testing.T) {
	s := CalculateInt32([]int32{2047, 2049, 2048})
	if s.Min != 2047 || s.Max != 2049 || s.Mean != 2048 {
		t.Fatalf("stats=%+v", s)
	}
}

func TestHelpersMatchCalculate(t *testing.T) {
	x := []float64{0, 0, 0, 1.5, -2, 4, -0.5, 3}
	s := Calculate(x)

	if RMS(x) != s.RMS {
		t.Fatalf("RMS=%v want %v", RMS(x), s.RMS)
	}
	if Energy(x) != s.Energy {
		t.Fatalf("Energy=%v want %v", Energy(x), s.Energy)
	}
	if LeadingZeros(x) != s.LeadingZeros {
		t.Fatalf("LeadingZeros=%d want %d", LeadingZeros(x), s.LeadingZeros)
	}
	if ZeroCrossings(x) != s.ZeroCrossings {
		t.Fatalf("ZeroCrossings=%d want %d", ZeroCrossings(x), s.ZeroCrossings)
	}
	if RMS(nil) != 0 || LeadingZeros(nil) != 0 {
		t.Fatal("empty helpers must return 0")
	}
}
