package signal_test

import (
	"fmt"

	"github.com/cwbudde/adc-dimming/dsp/signal"
)

func ExampleGenerator_Generate() {
	g := signal.NewGenerator(signal.WithSamples(8), signal.WithCycles(1), signal.WithAmplitude(100))
	x, err := g.Generate()
	if err != nil {
		panic(err)
	}

	fmt.Println(x)

	// Output:
	// [2048 2119 2148 2119 2048 1977 1948 1977]
}
