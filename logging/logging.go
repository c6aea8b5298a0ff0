// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the CLI, the engine and the
// MCP server from config.Logging.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/sgrams/config"
)

// New returns a logger writing to stderr. json uses the production encoder,
// console the development one. verbose forces debug level.
func New(cfg config.Logging, verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: level %q: %w", cfg.Level, config.ErrInvalidConfig)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	var zc zap.Config
	switch cfg.Format {
	case "json":
		zc = zap.NewProductionConfig()
	case "console", "":
		zc = zap.NewDevelopmentConfig()
		zc.Development = false
	default:
		return nil, fmt.Errorf("logging: format %q: %w", cfg.Format, config.ErrInvalidConfig)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}

	return l, nil
}
