// Package config loads adcdim settings from defaults, an optional YAML file,
// ADCDIM_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/adc-dimming/dsp/spectrum"
	"github.com/cwbudde/adc-dimming/internal/logging"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. ADCDIM_SWEEP_STEP.
	EnvPrefix = "ADCDIM"
	// Name is the config file base name searched for.
	Name = "adcdim"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete run configuration.
type Config struct {
	Input    string         `mapstructure:"input"    yaml:"input"`
	Output   OutputConfig   `mapstructure:"output"   yaml:"output"`
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis"`
	Sweep    SweepConfig    `mapstructure:"sweep"    yaml:"sweep"`
	Log      LogConfig      `mapstructure:"log"      yaml:"log"`
	Progress bool           `mapstructure:"progress" yaml:"progress"`
}

// OutputConfig controls rendered images and the run report.
type OutputConfig struct {
	Dir      string  `mapstructure:"dir"       yaml:"dir"`
	Prefix   string  `mapstructure:"prefix"    yaml:"prefix"`
	PNG      bool    `mapstructure:"png"       yaml:"png"`
	DPI      int     `mapstructure:"dpi"       yaml:"dpi"`
	WidthIn  float64 `mapstructure:"width_in"  yaml:"width_in"`
	HeightIn float64 `mapstructure:"height_in" yaml:"height_in"`
	// Report is the run report path; .json selects JSON, anything else YAML.
	// Empty disables the report.
	Report string `mapstructure:"report" yaml:"report"`
}

// AnalysisConfig selects the FFT backend and odd-length policy.
type AnalysisConfig struct {
	Backend   string `mapstructure:"backend"    yaml:"backend"`
	RejectOdd bool   `mapstructure:"reject_odd" yaml:"reject_odd"`
}

// SweepConfig controls the dimming sweep.
type SweepConfig struct {
	Step           int  `mapstructure:"step"            yaml:"step"`
	Workers        int  `mapstructure:"workers"         yaml:"workers"`
	FailFast       bool `mapstructure:"fail_fast"       yaml:"fail_fast"`
	TruncateDimmed bool `mapstructure:"truncate_dimmed" yaml:"truncate_dimmed"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", filepath.Join("TestData", "ADC0Data.txt"))

	v.SetDefault("output.dir", "TestData")
	v.SetDefault("output.prefix", "ADC0Data")
	v.SetDefault("output.png", true)
	v.SetDefault("output.dpi", 300)
	v.SetDefault("output.width_in", 18.0)
	v.SetDefault("output.height_in", 12.0)
	v.SetDefault("output.report", "")

	v.SetDefault("analysis.backend", string(spectrum.BackendAlgoFFT))
	v.SetDefault("analysis.reject_odd", false)

	v.SetDefault("sweep.step", 4)
	v.SetDefault("sweep.workers", 1)
	v.SetDefault("sweep.fail_fast", true)
	v.SetDefault("sweep.truncate_dimmed", false)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", logging.FormatText)

	v.SetDefault("progress", false)
}

// New returns a viper instance with defaults, environment binding and the
// standard config search path.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(Name)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", Name))
	}

	return v
}

// ReadFile reads path, or searches the config paths when path is empty.
// A missing file is only an error when path was given explicitly.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	}

	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if path == "" && errors.As(err, &notFound) {
		return nil
	}

	return fmt.Errorf("read config: %w", err)
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration with every key at its default.
func Default() *Config {
	cfg, err := Load(func() *viper.Viper {
		v := viper.New()
		SetDefaults(v)
		return v
	}())
	if err != nil {
		panic(err)
	}

	return cfg
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalid)
	}

	if c.Sweep.Step < 1 {
		return fmt.Errorf("%w: sweep.step must be >= 1, got %d", ErrInvalid, c.Sweep.Step)
	}

	if c.Sweep.Workers < 1 {
		return fmt.Errorf("%w: sweep.workers must be >= 1, got %d", ErrInvalid, c.Sweep.Workers)
	}

	if c.Output.PNG {
		if c.Output.DPI < 1 {
			return fmt.Errorf("%w: output.dpi must be >= 1, got %d", ErrInvalid, c.Output.DPI)
		}

		if c.Output.WidthIn <= 0 || c.Output.HeightIn <= 0 {
			return fmt.Errorf("%w: output size must be positive, got %gx%g in",
				ErrInvalid, c.Output.WidthIn, c.Output.HeightIn)
		}
	}

	if !slices.Contains(spectrum.Backends(), spectrum.Backend(c.Analysis.Backend)) {
		return fmt.Errorf("%w: unknown analysis.backend %q", ErrInvalid, c.Analysis.Backend)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if err := logging.ValidateFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// WriteYAML writes c as YAML.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return enc.Close()
}
