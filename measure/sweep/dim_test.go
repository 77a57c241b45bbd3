package sweep

import (
	"errors"
	"testing"
)

func TestSchedule(t *testing.T) {
	tests := []struct {
		n, step int
		want    []int
	}{
		{0, 4, nil},
		{1, 4, []int{0}},
		{4, 4, []int{0}},
		{5, 4, []int{0, 4}},
		{10, 4, []int{0, 4, 8}},
		{8, 1, []int{0, 1, 2, 3, 4, 5, 6, 7}},
		{9, 3, []int{0, 3, 6}},
	}

	for _, tt := range tests {
		got, err := Schedule(tt.n, tt.step)
		if err != nil {
			t.Fatalf("Schedule(%d,%d): %v", tt.n, tt.step, err)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("Schedule(%d,%d)=%v want %v", tt.n, tt.step, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("Schedule(%d,%d)=%v want %v", tt.n, tt.step, got, tt.want)
			}
		}
	}
}

func TestScheduleStepCount(t *testing.T) {
	for n := 1; n <= 130; n++ {
		got, err := Schedule(n, DefaultStep)
		if err != nil {
			t.Fatal(err)
		}
		want := (n + 3) / 4
		if len(got) != want {
			t.Fatalf("n=%d: %d steps, want ceil(n/4)=%d", n, len(got), want)
		}
		for i := 1; i < len(got); i++ {
			if got[i] <= got[i-1] {
				t.Fatalf("n=%d: counts not strictly increasing: %v", n, got)
			}
		}
	}
}

func TestScheduleInvalidStep(t *testing.T) {
	for _, step := range []int{0, -4} {
		if _, err := Schedule(8, step); !errors.Is(err, ErrInvalidStep) {
			t.Fatalf("step=%d: err=%v want ErrInvalidStep", step, err)
		}
	}
}

func TestDim(t *testing.T) {
	x := []float64{-3.5, -2.5, -1.5, -0.5, 0.5, 1.5, 2.5, 3.5}

	tests := []struct {
		count int
		want  []float64
	}{
		{0, []float64{-3.5, -2.5, -1.5, -0.5, 0.5, 1.5, 2.5, 3.5}},
		{4, []float64{0, 0, 0, 0, 0.5, 1.5, 2.5, 3.5}},
		{7, []float64{0, 0, 0, 0, 0, 0, 0, 3.5}},
		{20, []float64{0, 0, 0, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		got := Dim(x, tt.count)
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("Dim(count=%d)=%v want %v", tt.count, got, tt.want)
			}
		}
	}

	if x[0] != -3.5 {
		t.Fatal("Dim must not modify its input")
	}

	d := Dim(x, 0)
	d[0] = 100
	if x[0] != -3.5 {
		t.Fatal("Dim(count=0) must return a copy")
	}
}

func TestDimTruncated(t *testing.T) {
	x := []float64{-3.5, -2.5, -1.5, -0.5, 0.5, 1.5, 2.5, 3.5}

	got := DimTruncated(x, 2)
	want := []float64{0, 0, -1, 0, 0, 1, 2, 3}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("DimTruncated=%v want %v", got, want)
		}
	}
}
