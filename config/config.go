// Package config loads the sinspline server configuration from an optional
// YAML file and SINSPLINE_* environment variables, in that order.
//
// Environment keys follow the field path, e.g. SINSPLINE_LISTEN,
// SINSPLINE_READ_TIMEOUT, SINSPLINE_DEFAULTS_DEGREE, SINSPLINE_LIMITS_MAX_TICKS.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/sinspline/bspline"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SINSPLINE"

// ErrInvalidConfig indicates a configuration that fails Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Params is one (ticks, control points, degree) request.
type Params struct {
	Ticks   int `yaml:"ticks" json:"ticks"`
	Control int `yaml:"control" json:"control"`
	Degree  int `yaml:"degree" json:"degree"`
}

// Limits bounds what a client may request.
type Limits struct {
	MaxTicks   int `yaml:"max_ticks" split_words:"true"`
	MaxControl int `yaml:"max_control" split_words:"true"`
	MaxDegree  int `yaml:"max_degree" split_words:"true"`
}

// Config is the server configuration.
type Config struct {
	Listen          string        `yaml:"listen"`
	ReadTimeout     time.Duration `yaml:"read_timeout" split_words:"true"`
	WriteTimeout    time.Duration `yaml:"write_timeout" split_words:"true"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" split_words:"true"`

	// CacheTTL is how long a built model is reused; 0 disables caching.
	CacheTTL time.Duration `yaml:"cache_ttl" split_words:"true"`

	// EvalMode selects the native evaluator: "recursive" or "memoized".
	EvalMode string `yaml:"eval_mode" split_words:"true"`

	Defaults Params `yaml:"defaults"`
	Limits   Limits `yaml:"limits"`
}

// Default returns the built-in configuration: the classic form defaults
// (200 ticks, 10 control points, degree 2) and degree up to 5.
func Default() *Config {
	return &Config{
		Listen:          ":8080",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		CacheTTL:        10 * time.Minute,
		EvalMode:        bspline.Recursive.String(),
		Defaults:        Params{Ticks: 200, Control: 10, Degree: 2},
		Limits:          Limits{MaxTicks: 5000, MaxControl: 200, MaxDegree: 5},
	}
}

// Load starts from Default, overlays the YAML file at path (skipped when path
// is empty), applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports the first inconsistency as ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.Listen == "":
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	case c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.ShutdownTimeout <= 0:
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidConfig)
	case c.CacheTTL < 0:
		return fmt.Errorf("%w: negative cache ttl %s", ErrInvalidConfig, c.CacheTTL)
	case c.Limits.MaxDegree < 1:
		return fmt.Errorf("%w: max degree %d < 1", ErrInvalidConfig, c.Limits.MaxDegree)
	case c.Limits.MaxTicks < 2:
		return fmt.Errorf("%w: max ticks %d < 2", ErrInvalidConfig, c.Limits.MaxTicks)
	case c.Limits.MaxControl < c.Limits.MaxDegree+1:
		return fmt.Errorf("%w: max control %d cannot fit degree %d",
			ErrInvalidConfig, c.Limits.MaxControl, c.Limits.MaxDegree)
	case c.Defaults.Degree < 1 || c.Defaults.Ticks < 2 || c.Defaults.Control < c.Defaults.Degree+1:
		return fmt.Errorf("%w: defaults %+v cannot build a model", ErrInvalidConfig, c.Defaults)
	}

	if _, err := c.Mode(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Limits.Check(c.Defaults); err != nil {
		return fmt.Errorf("%w: defaults: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Mode parses EvalMode.
func (c *Config) Mode() (bspline.EvalMode, error) {
	return bspline.ParseEvalMode(c.EvalMode)
}

// ErrOutOfLimits indicates request parameters beyond the configured Limits.
var ErrOutOfLimits = errors.New("config: parameters out of limits")

// Check reports ErrOutOfLimits when p exceeds the limits. Lower bounds are
// left to the model, which owns them.
func (l Limits) Check(p Params) error {
	switch {
	case p.Ticks > l.MaxTicks:
		return fmt.Errorf("%w: ticks %d > %d", ErrOutOfLimits, p.Ticks, l.MaxTicks)
	case p.Control > l.MaxControl:
		return fmt.Errorf("%w: control points %d > %d", ErrOutOfLimits, p.Control, l.MaxControl)
	case p.Degree > l.MaxDegree:
		return fmt.Errorf("%w: degree %d > %d", ErrOutOfLimits, p.Degree, l.MaxDegree)
	}

	return nil
}
