package engine_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sgrams/catalog"
	"github.com/katalvlaran/sgrams/cycle"
	"github.com/katalvlaran/sgrams/engine"
	"github.com/katalvlaran/sgrams/statespace"
	"github.com/katalvlaran/sgrams/trace"
)

func newEngine(t *testing.T, opts ...engine.Option) *engine.Engine {
	t.Helper()
	e, err := engine.New(opts...)
	require.NoError(t, err)

	return e
}

// TestResolveInform covers the literal scenarios and the empty-key default.
func TestResolveInform(t *testing.T) {
	e := newEngine(t)

	next, err := e.Resolve(3, 1, "1/7")
	require.NoError(t, err)
	assert.Equal(t, 4, next)

	next, err = e.Resolve(3, 4, "1/7")
	require.NoError(t, err)
	assert.Equal(t, 2, next)

	prev, err := e.Inform(3, 4, "1/7")
	require.NoError(t, err)
	assert.Equal(t, 1, prev)

	next, err = e.Resolve(0, 0, "0/1")
	require.NoError(t, err)
	assert.Equal(t, 0, next)

	// "" selects the primary pattern: 1/13 on s5.
	next, err = e.Resolve(4, 13, "")
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	key, err := e.PrimaryKey(8)
	require.NoError(t, err)
	assert.Equal(t, "1/8", key)
}

// TestInverseLaw holds through the facade for every primary state.
func TestInverseLaw(t *testing.T) {
	e := newEngine(t)
	for _, s := range e.Structures() {
		for _, p := range s.Patterns() {
			for _, v := range p.Sequence() {
				n, err := e.Resolve(s.Index(), v, p.Divisor())
				require.NoError(t, err)
				back, err := e.Inform(s.Index(), n, p.Divisor())
				require.NoError(t, err)
				assert.Equal(t, v, back)
			}
		}
	}
}

// TestErrors fails fast with the right sentinel.
func TestErrors(t *testing.T) {
	e := newEngine(t)

	_, err := e.Resolve(12, 1, "1/7")
	assert.ErrorIs(t, err, catalog.ErrIndexOutOfRange)
	_, err = e.Inform(3, 1, "2/7")
	assert.ErrorIs(t, err, catalog.ErrPatternNotFound)
	_, err = e.Resolve(3, 99, "1/7")
	assert.ErrorIs(t, err, cycle.ErrStateNotFound)
	assert.Contains(t, err.Error(), "99")
	assert.Contains(t, err.Error(), "1/7")
	_, err = e.TracePath(3, 1, -1, "1/7", false)
	assert.ErrorIs(t, err, trace.ErrNegativeSteps)
	_, err = e.TracePath(-1, 1, -1, "1/7", false)
	assert.ErrorIs(t, err, trace.ErrNegativeSteps, "steps are validated first")
	_, err = e.Structure(42)
	assert.ErrorIs(t, err, catalog.ErrIndexOutOfRange)
	_, err = e.Analyze(-1)
	assert.ErrorIs(t, err, catalog.ErrIndexOutOfRange)
	_, err = e.Compare(1, 13)
	assert.ErrorIs(t, err, catalog.ErrIndexOutOfRange)
	_, err = e.Transitions(3, 9)
	assert.NoError(t, err, "9 lives in factor 1/1")
	_, err = e.Transitions(3, 10)
	assert.ErrorIs(t, err, cycle.ErrStateNotFound)
}

// TestTracePath covers both directions and the default key.
func TestTracePath(t *testing.T) {
	e := newEngine(t)

	path, err := e.TracePath(3, 1, 6, "1/7", false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 2, 8, 5, 7, 1}, path)

	path, err = e.TracePath(3, 1, 2, "", true)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 7, 5}, path)

	seq, err := e.Walk(2, 1, "1/3", false)
	require.NoError(t, err)
	var got []int
	for v := range seq {
		if got = append(got, v); len(got) == 5 {
			break
		}
	}
	assert.Equal(t, []int{1, 3, 1, 3, 1}, got)
}

// TestTransitions lists every pattern holding the state.
func TestTransitions(t *testing.T) {
	e := newEngine(t)

	got, err := e.Transitions(4, 4)
	require.NoError(t, err)
	want := []engine.Transition{
		{Ref: catalog.Ref{Namespace: catalog.Primary, Divisor: "1/4"}, Previous: 12, State: 4, Next: 8, CycleLength: 3},
		{Ref: catalog.Ref{Namespace: catalog.Factor, Divisor: "1/4"}, Previous: 12, State: 4, Next: 12, CycleLength: 2},
	}
	assert.Equal(t, want, got)
}

// TestAnalyze memoises reports.
func TestAnalyze(t *testing.T) {
	e := newEngine(t)

	r, err := e.Analyze(3)
	require.NoError(t, err)
	assert.Equal(t, "1/7", r.Primary.Divisor())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, r.AllStates)

	again, err := e.Analyze(3)
	require.NoError(t, err)
	assert.Equal(t, r, again)
}

// TestAnalyze_CallerCopies keeps the memo intact when a caller edits its report.
func TestAnalyze_CallerCopies(t *testing.T) {
	e := newEngine(t)

	r, err := e.Analyze(3)
	require.NoError(t, err)
	r.StateDistribution[1] = 999
	r.CycleLengthGroups[6][0] = "bogus"
	r.CycleLengthGroups[2] = []string{"bogus"}
	r.AllStates[0] = -42
	r.Singletons = append(r.Singletons[:0], -1)

	again, err := e.Analyze(3)
	require.NoError(t, err)
	assert.Equal(t, 1, again.StateDistribution[1])
	assert.Equal(t, []string{"1/7"}, again.CycleLengthGroups[6])
	assert.Equal(t, []string{"1/3"}, again.CycleLengthGroups[2])
	assert.Equal(t, 1, again.AllStates[0])
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, again.Singletons)
}

// TestCompare defaults to every structure.
func TestCompare(t *testing.T) {
	e := newEngine(t)

	r, err := e.Compare()
	require.NoError(t, err)
	assert.Len(t, r.GrowthSequence, catalog.Size)
	assert.Equal(t, "208012", r.GrowthSequence[11].String())

	r, err = e.Compare(7, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7}, r.Indices)
	assert.Len(t, r.CommonByDenominator[7], 2)
}

// TestRoute goes through the cached transition graphs.
func TestRoute(t *testing.T) {
	e := newEngine(t)

	r, err := e.Route(context.Background(), 3, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 7, 5}, r.States)

	_, err = e.Route(context.Background(), 4, 1, 4)
	assert.ErrorIs(t, err, statespace.ErrUnreachable)
	_, err = e.Route(context.Background(), 12, 1, 4)
	assert.ErrorIs(t, err, catalog.ErrIndexOutOfRange)
}

// TestConcurrentReaders hammers every operation from many goroutines.
func TestConcurrentReaders(t *testing.T) {
	e := newEngine(t, engine.WithRegisterer(prometheus.NewRegistry()))

	var g errgroup.Group
	for w := 0; w < 16; w++ {
		g.Go(func() error {
			for idx := catalog.MinIndex; idx <= catalog.MaxIndex; idx++ {
				if _, err := e.Analyze(idx); err != nil {
					return err
				}
				key, err := e.PrimaryKey(idx)
				if err != nil {
					return err
				}
				s, err := e.Structure(idx)
				if err != nil {
					return err
				}
				p, _ := s.Pattern(key)
				start := p.Sequence()[0]
				path, err := e.TracePath(idx, start, p.CycleLength(), key, w%2 == 1)
				if err != nil {
					return err
				}
				if path[len(path)-1] != start {
					return assert.AnError
				}
			}
			_, err := e.Compare()

			return err
		})
	}
	require.NoError(t, g.Wait())
}

// TestMetricsAndLogs checks the counter labels and the debug log.
func TestMetricsAndLogs(t *testing.T) {
	reg := prometheus.NewRegistry()
	core, logs := observer.New(zapcore.DebugLevel)
	e := newEngine(t, engine.WithRegisterer(reg), engine.WithLogger(zap.New(core)))

	_, _ = e.Resolve(3, 1, "1/7")
	_, _ = e.Resolve(3, 3, "1/7")
	_, _ = e.Resolve(3, 1, "9/9")
	_, _ = e.TracePath(3, 1, 4, "1/7", false)

	assert.Equal(t, 1.0, counter(t, reg, "resolve", "ok"))
	assert.Equal(t, 1.0, counter(t, reg, "resolve", "state_not_found"))
	assert.Equal(t, 1.0, counter(t, reg, "resolve", "pattern_not_found"))
	assert.Equal(t, 1.0, counter(t, reg, "trace", "ok"))

	assert.Equal(t, 2, logs.FilterMessage("resolve failed").Len())
	entries := logs.FilterMessage("trace").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "engine", entries[0].LoggerName)
	assert.Equal(t, int64(4), entries[0].ContextMap()["steps"])
}

// counter reads one sgrams_queries_total series from reg.
func counter(t *testing.T, reg *prometheus.Registry, op, result string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "sgrams_queries_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labels(m)["op"] == op && labels(m)["result"] == result {
				return m.GetCounter().GetValue()
			}
		}
	}

	return 0
}

func labels(m *dto.Metric) map[string]string {
	out := make(map[string]string, len(m.GetLabel()))
	for _, lp := range m.GetLabel() {
		out[lp.GetName()] = lp.GetValue()
	}

	return out
}
