// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration shared by the sgrams CLI and
// its MCP server. A missing file yields the defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats.
const (
	FormatASCII    = "ascii"
	FormatMarkdown = "markdown"
)

// Config is the root document.
type Config struct {
	Logging Logging `yaml:"logging"`
	Trace   Trace   `yaml:"trace"`
	Output  Output  `yaml:"output"`
	Server  Server  `yaml:"server"`
}

// Logging configures the zap logger.
type Logging struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// DefaultMaxSteps bounds trace requests from the CLI and MCP server.
const DefaultMaxSteps = 100_000

// Trace holds trace defaults.
type Trace struct {
	DefaultSteps int `yaml:"default_steps"`
	MaxSteps     int `yaml:"max_steps"` // 0 disables the bound
}

// Output selects how tables are rendered.
type Output struct {
	Format string `yaml:"format"` // ascii, markdown
}

// Server configures the long-running serve command.
type Server struct {
	MetricsAddr string `yaml:"metrics_addr"` // empty disables /metrics
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: Logging{Level: "info", Format: "console"},
		Trace:   Trace{DefaultSteps: 10, MaxSteps: DefaultMaxSteps},
		Output:  Output{Format: FormatASCII},
	}
}

// Load reads path over the defaults, applies SGRAMS_* environment overrides
// and validates the result. An empty path or a missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides lets SGRAMS_LOG_LEVEL, SGRAMS_LOG_FORMAT,
// SGRAMS_TRACE_STEPS, SGRAMS_TRACE_MAX_STEPS, SGRAMS_OUTPUT_FORMAT and SGRAMS_METRICS_ADDR win over
// the file.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("SGRAMS_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SGRAMS_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("SGRAMS_TRACE_STEPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SGRAMS_TRACE_STEPS=%q: %w", v, ErrInvalidConfig)
		}
		c.Trace.DefaultSteps = n
	}
	if v := os.Getenv("SGRAMS_TRACE_MAX_STEPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SGRAMS_TRACE_MAX_STEPS=%q: %w", v, ErrInvalidConfig)
		}
		c.Trace.MaxSteps = n
	}
	if v := os.Getenv("SGRAMS_OUTPUT_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v, ok := os.LookupEnv("SGRAMS_METRICS_ADDR"); ok {
		c.Server.MetricsAddr = v
	}

	return nil
}

// Validate checks every enumerated and numeric field.
func (c *Config) Validate() error {
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("logging.level %q: %w", c.Logging.Level, ErrInvalidConfig)
	}
	if !slices.Contains([]string{"console", "json"}, c.Logging.Format) {
		return fmt.Errorf("logging.format %q: %w", c.Logging.Format, ErrInvalidConfig)
	}
	if c.Trace.DefaultSteps < 0 {
		return fmt.Errorf("trace.default_steps %d: %w", c.Trace.DefaultSteps, ErrInvalidConfig)
	}
	if c.Trace.MaxSteps < 0 {
		return fmt.Errorf("trace.max_steps %d: %w", c.Trace.MaxSteps, ErrInvalidConfig)
	}
	if c.Trace.MaxSteps > 0 && c.Trace.DefaultSteps > c.Trace.MaxSteps {
		return fmt.Errorf("trace.default_steps %d above max_steps %d: %w", c.Trace.DefaultSteps, c.Trace.MaxSteps, ErrInvalidConfig)
	}
	if c.Output.Format != FormatASCII && c.Output.Format != FormatMarkdown {
		return fmt.Errorf("output.format %q: %w", c.Output.Format, ErrInvalidConfig)
	}

	return nil
}
