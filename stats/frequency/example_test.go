package frequency_test

import (
	"fmt"

	frequencystats "github.com/cwbudde/adc-dimming/stats/frequency"
)

func ExampleCalculateInt() {
	s := frequencystats.CalculateInt([]int64{0, 3, 12, 3, 0, 0, 0, 0})
	fmt.Printf("peak=%d centroid=%.0f rolloff=%d\n", s.PeakACBin, s.Centroid, s.Rolloff)

	// Output:
	// peak=2 centroid=2 rolloff=2
}
