package testutil

import "testing"

func TestRequireHelpersPass(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1.0005, 2}, 1e-3)
	RequireInt64SliceEqual(t, []int64{4, 0, -1}, []int64{4, 0, -1})
}
