package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sgrams/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sgrams.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// TestLoad_Defaults covers the empty path and a missing file.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Trace.DefaultSteps)
	assert.Equal(t, config.FormatASCII, cfg.Output.Format)
	assert.Equal(t, config.DefaultMaxSteps, cfg.Trace.MaxSteps)
}

// TestLoad_FileOverridesDefaults keeps unspecified defaults.
func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, "logging:\n  level: debug\ntrace:\n  default_steps: 3\nserver:\n  metrics_addr: \":9100\"\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 3, cfg.Trace.DefaultSteps)
	assert.Equal(t, ":9100", cfg.Server.MetricsAddr)
}

// TestLoad_Env wins over the file.
func TestLoad_Env(t *testing.T) {
	path := writeFile(t, "output:\n  format: ascii\n")
	t.Setenv("SGRAMS_OUTPUT_FORMAT", "markdown")
	t.Setenv("SGRAMS_TRACE_STEPS", "7")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.FormatMarkdown, cfg.Output.Format)
	assert.Equal(t, 7, cfg.Trace.DefaultSteps)

	t.Setenv("SGRAMS_TRACE_MAX_STEPS", "50")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Trace.MaxSteps)

	t.Setenv("SGRAMS_TRACE_STEPS", "many")
	_, err = config.Load(path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

// TestLoad_Invalid rejects bad values and bad YAML.
func TestLoad_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"level":  "logging:\n  level: loud\n",
		"format": "logging:\n  format: xml\n",
		"steps":  "trace:\n  default_steps: -2\n",
		"output": "output:\n  format: html\n",
		"max":    "trace:\n  max_steps: -1\n",
		"above":  "trace:\n  default_steps: 20\n  max_steps: 5\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Load(writeFile(t, "logging: [\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}
