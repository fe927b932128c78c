package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/sinspline/bspline"
	"github.com/katalvlaran/sinspline/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sinspline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.Params{Ticks: 200, Control: 10, Degree: 2}, cfg.Defaults)
	assert.Equal(t, 5, cfg.Limits.MaxDegree)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, bspline.Recursive, mode)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	path := writeFile(t, `
listen: 127.0.0.1:9000
read_timeout: 3s
cache_ttl: 0s
eval_mode: memoized
defaults:
  ticks: 500
  control: 7
  degree: 3
limits:
  max_ticks: 1000
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout, "untouched keys keep defaults")
	assert.Equal(t, time.Duration(0), cfg.CacheTTL)
	assert.Equal(t, config.Params{Ticks: 500, Control: 7, Degree: 3}, cfg.Defaults)
	assert.Equal(t, config.Limits{MaxTicks: 1000, MaxControl: 200, MaxDegree: 5}, cfg.Limits)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, bspline.Memoized, mode)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "listen: :9000\ndefaults:\n  degree: 3\n")
	t.Setenv("SINSPLINE_LISTEN", ":7000")
	t.Setenv("SINSPLINE_WRITE_TIMEOUT", "45s")
	t.Setenv("SINSPLINE_DEFAULTS_CONTROL", "12")
	t.Setenv("SINSPLINE_LIMITS_MAX_TICKS", "300")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Listen)
	assert.Equal(t, 45*time.Second, cfg.WriteTimeout)
	assert.Equal(t, config.Params{Ticks: 200, Control: 12, Degree: 3}, cfg.Defaults)
	assert.Equal(t, 300, cfg.Limits.MaxTicks)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "listen: [unterminated"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "eval_mode: iterative\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, bspline.ErrBadMode)

	t.Setenv("SINSPLINE_CACHE_TTL", "soon")
	_, err = config.Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"empty listen":          func(c *config.Config) { c.Listen = "" },
		"zero read timeout":     func(c *config.Config) { c.ReadTimeout = 0 },
		"negative cache ttl":    func(c *config.Config) { c.CacheTTL = -time.Second },
		"max degree zero":       func(c *config.Config) { c.Limits.MaxDegree = 0 },
		"max ticks one":         func(c *config.Config) { c.Limits.MaxTicks = 1 },
		"max control too small": func(c *config.Config) { c.Limits.MaxControl = 5 },
		"default degree zero":   func(c *config.Config) { c.Defaults.Degree = 0 },
		"default control small": func(c *config.Config) { c.Defaults.Control = 2 },
		"default over limit":    func(c *config.Config) { c.Defaults.Ticks = 10_000 },
	}
	for name, mutate := range cases {
		cfg := config.Default()
		mutate(cfg)
		assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig, name)
	}
}

func TestLimits_Check(t *testing.T) {
	lim := config.Limits{MaxTicks: 100, MaxControl: 20, MaxDegree: 5}

	assert.NoError(t, lim.Check(config.Params{Ticks: 100, Control: 20, Degree: 5}))
	assert.NoError(t, lim.Check(config.Params{Ticks: 1, Control: 1, Degree: 0}), "lower bounds belong to the model")
	assert.ErrorIs(t, lim.Check(config.Params{Ticks: 101, Control: 5, Degree: 2}), config.ErrOutOfLimits)
	assert.ErrorIs(t, lim.Check(config.Params{Ticks: 50, Control: 21, Degree: 2}), config.ErrOutOfLimits)
	assert.ErrorIs(t, lim.Check(config.Params{Ticks: 50, Control: 5, Degree: 6}), config.ErrOutOfLimits)
}
