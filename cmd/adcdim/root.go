package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/adc-dimming/internal/config"
	"github.com/cwbudde/adc-dimming/internal/logging"
	"github.com/cwbudde/adc-dimming/internal/pipeline"
)

// flagKeys maps persistent flags to configuration keys.
var flagKeys = map[string]string{
	"input":           "input",
	"output-dir":      "output.dir",
	"prefix":          "output.prefix",
	"png":             "output.png",
	"dpi":             "output.dpi",
	"width":           "output.width_in",
	"height":          "output.height_in",
	"report":          "output.report",
	"backend":         "analysis.backend",
	"reject-odd":      "analysis.reject_odd",
	"step":            "sweep.step",
	"workers":         "sweep.workers",
	"fail-fast":       "sweep.fail_fast",
	"truncate-dimmed": "sweep.truncate_dimmed",
	"log-level":       "log.level",
	"log-format":      "log.format",
	"progress":        "progress",
}

type rootOptions struct {
	v          *viper.Viper
	configFile string
	stdout     io.Writer
	stderr     io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	o := &rootOptions{
		v:      config.New(),
		stdout: stdout,
		stderr: stderr,
	}

	cmd := &cobra.Command{
		Use:   "adcdim",
		Short: "Spectral analysis of ADC samples under progressive dimming",
		Long: `adcdim loads an ADC sample log, removes its DC offset and computes the
Hamming-windowed magnitude spectrum while zeroing a growing prefix of the
samples. Every dimming step is rendered to a PNG figure.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.runPipeline(cmd)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.configFile, "config", "", "config file (default is ./adcdim.yaml, ./configs/adcdim.yaml or $HOME/.config/adcdim/adcdim.yaml)")
	addConfigFlags(pf)

	for name, key := range flagKeys {
		// Lookup cannot fail for flags registered above.
		_ = o.v.BindPFlag(key, pf.Lookup(name))
	}

	cmd.AddCommand(
		newWindowCmd(),
		newGenerateCmd(),
		newConfigCmd(o),
	)

	return cmd
}

func addConfigFlags(fs *pflag.FlagSet) {
	d := config.Default()

	fs.StringP("input", "i", d.Input, "sample log to analyze")
	fs.String("output-dir", d.Output.Dir, "directory for rendered figures")
	fs.String("prefix", d.Output.Prefix, "figure file name prefix")
	fs.Bool("png", d.Output.PNG, "render one PNG figure per dimming step")
	fs.Int("dpi", d.Output.DPI, "figure resolution")
	fs.Float64("width", d.Output.WidthIn, "figure width in inches")
	fs.Float64("height", d.Output.HeightIn, "figure height in inches")
	fs.String("report", d.Output.Report, "write a run report (.json for JSON, otherwise YAML)")
	fs.String("backend", d.Analysis.Backend, "FFT backend (algofft, gonum, godsp)")
	fs.Bool("reject-odd", d.Analysis.RejectOdd, "fail on odd sample counts instead of flooring the bin count")
	fs.Int("step", d.Sweep.Step, "dimming step in samples")
	fs.Int("workers", d.Sweep.Workers, "concurrent analysis workers")
	fs.Bool("fail-fast", d.Sweep.FailFast, "abort the sweep on the first failed step")
	fs.Bool("truncate-dimmed", d.Sweep.TruncateDimmed, "truncate dimmed samples toward zero before analysis")
	fs.String("log-level", d.Log.Level, "log level (debug, info, warn, error)")
	fs.String("log-format", d.Log.Format, "log format (text, json)")
	fs.Bool("progress", d.Progress, "show a progress bar")
}

func (o *rootOptions) load() (*config.Config, error) {
	if err := config.ReadFile(o.v, o.configFile); err != nil {
		return nil, err
	}

	return config.Load(o.v)
}

func (o *rootOptions) runPipeline(cmd *cobra.Command) error {
	cfg, err := o.load()
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: o.stderr,
	})
	if err != nil {
		return err
	}

	if used := o.v.ConfigFileUsed(); used != "" {
		log.WithField("file", used).Debug("using config file")
	}

	res := pipeline.New(cfg,
		pipeline.WithLogger(log),
		pipeline.WithProgressOutput(o.stderr),
	).Run(cmd.Context())

	if !res.OK() {
		return fmt.Errorf("%s failed: %w", res.Kind, res.Err)
	}

	return nil
}

func newConfigCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.load()
			if err != nil {
				return err
			}
			return cfg.WriteYAML(cmd.OutOrStdout())
		},
	}
}
