// Package config resolves the numkit CLI configuration: built-in defaults,
// then an optional TOML file, then NUMKIT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment override, e.g. NUMKIT_QUAD_STEP or
// NUMKIT_ROOT_MAX_ITER.
const EnvPrefix = "NUMKIT"

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid value")

// Integration rules accepted by Quad.Rule.
const (
	RuleSimpson   = "simpson"
	RuleTrapezoid = "trapezoid"
	RuleParallel  = "parallel"
)

// Differentiation methods accepted by Diff.Method.
const (
	MethodSymmetric = "symmetric"
	MethodStencil   = "stencil"
)

// Config holds the complete CLI configuration.
type Config struct {
	Quad   QuadConfig   `toml:"quad"`
	Diff   DiffConfig   `toml:"diff"`
	Root   RootConfig   `toml:"root"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// QuadConfig holds integration defaults.
type QuadConfig struct {
	Rule    string  `toml:"rule" split_words:"true"`
	Step    float64 `toml:"step" split_words:"true"`
	Workers int     `toml:"workers" split_words:"true"` // 0 = GOMAXPROCS
}

// DiffConfig holds differentiation defaults.
type DiffConfig struct {
	Method string  `toml:"method" split_words:"true"`
	Step   float64 `toml:"step" split_words:"true"`
}

// RootConfig holds root-finding defaults.
type RootConfig struct {
	MaxIter   int  `toml:"max_iter" split_words:"true"`
	Recursive bool `toml:"recursive" split_words:"true"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Precision int `toml:"precision" split_words:"true"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `toml:"level" split_words:"true"`
	Development bool   `toml:"development" split_words:"true"`
}

// Default returns the built-in configuration. The numeric defaults mirror
// the library defaults of quad, diff and root.
func Default() *Config {
	return &Config{
		Quad: QuadConfig{
			Rule: RuleSimpson,
			Step: 1e-6,
		},
		Diff: DiffConfig{
			Method: MethodSymmetric,
			Step:   0x1p-25,
		},
		Root: RootConfig{
			MaxIter: 100,
		},
		Output: OutputConfig{
			Precision: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// path is empty) and NUMKIT_* environment variables, in that order, and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field against its domain.
func (c *Config) Validate() error {
	switch {
	case !validStep(c.Quad.Step):
		return invalid("quad.step", c.Quad.Step)
	case c.Quad.Workers < 0:
		return invalid("quad.workers", c.Quad.Workers)
	case c.Quad.Rule != RuleSimpson && c.Quad.Rule != RuleTrapezoid && c.Quad.Rule != RuleParallel:
		return invalid("quad.rule", c.Quad.Rule)
	case !validStep(c.Diff.Step):
		return invalid("diff.step", c.Diff.Step)
	case c.Diff.Method != MethodSymmetric && c.Diff.Method != MethodStencil:
		return invalid("diff.method", c.Diff.Method)
	case c.Root.MaxIter < 0:
		return invalid("root.max_iter", c.Root.MaxIter)
	case c.Output.Precision < 0 || c.Output.Precision > 15:
		return invalid("output.precision", c.Output.Precision)
	}

	return nil
}

func validStep(h float64) bool {
	return h > 0 && !math.IsInf(h, 1)
}

func invalid(field string, v any) error {
	return fmt.Errorf("%s=%v: %w", field, v, ErrInvalidConfig)
}
