package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/adc-dimming/dsp/window"
)

func newWindowCmd() *cobra.Command {
	var (
		size     int
		periodic bool
		list     bool
	)

	cmd := &cobra.Command{
		Use:   "window [window-name ...]",
		Short: "Print spectral properties of window functions",
		Long: `Prints measured spectral properties of window functions.
Without arguments every known window is listed.`,
		Example: `  adcdim window hamming
  adcdim window --size 64 hann blackman
  adcdim window --list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, t := range window.Types {
					fmt.Fprintln(cmd.OutOrStdout(), window.Info(t).Slug)
				}
				return nil
			}

			if size < 2 {
				return fmt.Errorf("window size must be >= 2: %d", size)
			}

			types, err := resolveWindows(args)
			if err != nil {
				return err
			}

			var opts []window.Option
			if periodic {
				opts = append(opts, window.WithPeriodic())
			}

			return printWindows(cmd.OutOrStdout(), types, size, opts)
		},
	}

	cmd.Flags().IntVar(&size, "size", 64, "window length in samples")
	cmd.Flags().BoolVar(&periodic, "periodic", false, "use periodic (FFT) form instead of symmetric")
	cmd.Flags().BoolVar(&list, "list", false, "list available window names")

	return cmd
}

func resolveWindows(names []string) ([]window.Type, error) {
	if len(names) == 0 {
		return window.Types, nil
	}

	types := make([]window.Type, 0, len(names))
	for _, name := range names {
		t, err := window.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("%w (use --list to see available)", err)
		}
		types = append(types, t)
	}

	return types, nil
}

func printWindows(w io.Writer, types []window.Type, size int, opts []window.Option) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Window\tCG\tENBW\t3dB BW\tSidelobe\tFirst Min\tScallop\n")
	fmt.Fprintf(tw, "\t\t[bins]\t[bins]\t[dB]\t[bins]\t[dB]\n")

	for _, t := range types {
		a := window.Analyze(window.Generate(t, size, opts...))
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\t%.2f\t%.3f\t%.2f\n",
			window.Info(t).Name,
			a.CoherentGain,
			a.ENBW,
			a.Bandwidth3dB,
			a.HighestSidelobedB,
			a.FirstMinimumBins,
			a.ScallopLossdB,
		)
	}

	return tw.Flush()
}
