package time

import (
	"testing"

	"github.com/cwbudde/adc-dimming/internal/testutil"
)

func BenchmarkCalculate(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1, 4096)

	b.ReportAllocs()
	for range b.N {
		_ = Calculate(x)
	}
}
