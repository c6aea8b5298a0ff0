// SPDX-License-Identifier: MIT

package engine

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/sgrams/catalog"
	"github.com/katalvlaran/sgrams/cycle"
	"github.com/katalvlaran/sgrams/statespace"
	"github.com/katalvlaran/sgrams/trace"
)

// Result label values of sgrams_queries_total.
const (
	resultOK              = "ok"
	resultOutOfRange      = "out_of_range"
	resultPatternNotFound = "pattern_not_found"
	resultStateNotFound   = "state_not_found"
	resultInvalidArgument = "invalid_argument"
	resultUnreachable     = "unreachable"
	resultOther           = "other"
)

type metrics struct {
	queries     *prometheus.CounterVec
	traceLength prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sgrams_queries_total",
			Help: "Engine queries by operation and result",
		}, []string{"op", "result"}),
		traceLength: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "sgrams_trace_length",
			Help:    "Number of states returned per trace",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 1000},
		}),
	}
}

func (m *metrics) observe(op string, err error) {
	m.queries.WithLabelValues(op, resultOf(err)).Inc()
}

// resultOf maps an error to its metric label.
func resultOf(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, catalog.ErrIndexOutOfRange):
		return resultOutOfRange
	case errors.Is(err, catalog.ErrPatternNotFound):
		return resultPatternNotFound
	case errors.Is(err, cycle.ErrStateNotFound), errors.Is(err, statespace.ErrStateNotFound):
		return resultStateNotFound
	case errors.Is(err, trace.ErrNegativeSteps), errors.Is(err, trace.ErrStepLimit),
		errors.Is(err, trace.ErrBadDirection):
		return resultInvalidArgument
	case errors.Is(err, statespace.ErrUnreachable):
		return resultUnreachable
	default:
		return resultOther
	}
}
