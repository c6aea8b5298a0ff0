// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures an Engine.
type Option func(*Options)

// Options holds Engine dependencies.
type Options struct {
	// Logger receives debug logs for every query.
	Logger *zap.Logger

	// Registerer receives the engine's collectors. nil leaves them
	// unregistered.
	Registerer prometheus.Registerer
}

// DefaultOptions returns a no-op logger and no metrics registration.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRegisterer sets where metrics are registered.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *Options) { o.Registerer = r }
}
