package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cwbudde/adc-dimming/dsp/adc"
	dspsignal "github.com/cwbudde/adc-dimming/dsp/signal"
)

func newGenerateCmd() *cobra.Command {
	var (
		out       string
		name      string
		baseAddr  uint32
		samples   int
		cycles    float64
		amplitude float64
		offset    float64
		noise     float64
		seed      int64
		bits      int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic ADC sample log",
		Example: `  adcdim generate --out TestData/ADC0Data.txt
  adcdim generate --samples 128 --cycles 7.5 --noise 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := dspsignal.NewGenerator(
				dspsignal.WithSamples(samples),
				dspsignal.WithCycles(cycles),
				dspsignal.WithAmplitude(amplitude),
				dspsignal.WithOffset(offset),
				dspsignal.WithNoise(noise),
				dspsignal.WithSeed(seed),
				dspsignal.WithResolution(bits),
			)

			values, err := g.Generate()
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				return adc.WriteRecords(cmd.OutOrStdout(), name, values, baseAddr)
			}

			return writeLogFile(out, name, values, baseAddr)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "", "output file (default stdout)")
	f.StringVar(&name, "name", "ADC0Buf", "variable name written per line")
	f.Uint32Var(&baseAddr, "base-addr", 0x2000, "XRAM address of the first sample")
	f.IntVar(&samples, "samples", 64, "number of samples")
	f.Float64Var(&cycles, "cycles", 4, "tone periods across the block")
	f.Float64Var(&amplitude, "amplitude", 1000, "tone amplitude in counts")
	f.Float64Var(&offset, "offset", 2048, "DC level in counts")
	f.Float64Var(&noise, "noise", 0, "uniform noise amplitude in counts")
	f.Int64Var(&seed, "seed", 1, "noise seed")
	f.IntVar(&bits, "bits", 12, "converter resolution; 0 allows signed values")

	return cmd
}

func writeLogFile(path, name string, values []int32, baseAddr uint32) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, "# %d samples\n", len(values)); err != nil {
		return err
	}
	if err := adc.WriteRecords(w, name, values, baseAddr); err != nil {
		return err
	}

	return w.Flush()
}
