// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"iter"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/sgrams/analysis"
	"github.com/katalvlaran/sgrams/catalog"
	"github.com/katalvlaran/sgrams/compare"
	"github.com/katalvlaran/sgrams/cycle"
	"github.com/katalvlaran/sgrams/statespace"
	"github.com/katalvlaran/sgrams/trace"
)

// Engine answers state-transformation queries over the catalog.
type Engine struct {
	cat     *catalog.Catalog
	log     *zap.Logger
	metrics *metrics
	graphs  []*statespace.Graph // position == index

	mu      sync.RWMutex
	reports map[int]analysis.Report
	group   singleflight.Group
}

// New loads the catalog and returns a ready Engine.
func New(opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	e := &Engine{
		cat:     cat,
		log:     o.Logger.Named("engine"),
		metrics: newMetrics(o.Registerer),
		graphs:  make([]*statespace.Graph, 0, cat.Len()),
		reports: make(map[int]analysis.Report, cat.Len()),
	}
	for s := range cat.Structures() {
		e.graphs = append(e.graphs, statespace.New(s))
	}

	return e, nil
}

// Structure returns the structure at index.
func (e *Engine) Structure(index int) (*catalog.Structure, error) {
	s, err := e.cat.Get(index)
	e.done("structure", err, zap.Int("index", index))

	return s, err
}

// Structures returns all structures in index order.
func (e *Engine) Structures() []*catalog.Structure {
	e.done("structures", nil)

	return e.cat.All()
}

// Resolve returns the successor of state along key. An empty key selects the
// primary pattern.
func (e *Engine) Resolve(index, state int, key string) (int, error) {
	next, err := e.step(index, state, key, trace.Forward)
	e.done("resolve", err, zap.Int("index", index), zap.Int("state", state), zap.String("key", key), zap.Int("next", next))

	return next, err
}

// Inform returns the predecessor of state along key. An empty key selects
// the primary pattern.
func (e *Engine) Inform(index, state int, key string) (int, error) {
	prev, err := e.step(index, state, key, trace.Backward)
	e.done("inform", err, zap.Int("index", index), zap.Int("state", state), zap.String("key", key), zap.Int("previous", prev))

	return prev, err
}

func (e *Engine) step(index, state int, key string, dir trace.Direction) (int, error) {
	s, key, err := e.lookup(index, key)
	if err != nil {
		return 0, err
	}
	if dir == trace.Backward {
		return s.Inform(key, state)
	}

	return s.Resolve(key, state)
}

// TracePath returns steps+1 states beginning at start.
func (e *Engine) TracePath(index, start, steps int, key string, reverse bool) ([]int, error) {
	path, err := e.tracePath(index, start, steps, key, reverse)
	if err == nil {
		e.metrics.traceLength.Observe(float64(len(path)))
	}
	e.done("trace", err, zap.Int("index", index), zap.Int("start", start), zap.Int("steps", steps),
		zap.String("key", key), zap.Bool("reverse", reverse))

	return path, err
}

func (e *Engine) tracePath(index, start, steps int, key string, reverse bool) ([]int, error) {
	if steps < 0 {
		return nil, fmt.Errorf("steps %d: %w", steps, trace.ErrNegativeSteps)
	}
	s, key, err := e.lookup(index, key)
	if err != nil {
		return nil, err
	}

	return trace.Trace(s, key, start, steps, trace.FromReverse(reverse))
}

// Walk returns an unbounded lazy path beginning at start.
func (e *Engine) Walk(index, start int, key string, reverse bool) (iter.Seq[int], error) {
	seq, err := e.walk(index, start, key, reverse)
	e.done("walk", err, zap.Int("index", index), zap.Int("start", start), zap.String("key", key), zap.Bool("reverse", reverse))

	return seq, err
}

func (e *Engine) walk(index, start int, key string, reverse bool) (iter.Seq[int], error) {
	s, key, err := e.lookup(index, key)
	if err != nil {
		return nil, err
	}

	return trace.Walk(s, key, start, trace.FromReverse(reverse))
}

// Transition is one pattern holding a state, with the state's neighbours.
type Transition struct {
	Ref         catalog.Ref
	Previous    int
	State       int
	Next        int
	CycleLength int
}

// Transitions lists every pattern of both namespaces that holds state.
// A state held by no pattern is reported as not found.
func (e *Engine) Transitions(index, state int) ([]Transition, error) {
	out, err := e.transitions(index, state)
	e.done("transitions", err, zap.Int("index", index), zap.Int("state", state), zap.Int("patterns", len(out)))

	return out, err
}

func (e *Engine) transitions(index, state int) ([]Transition, error) {
	s, err := e.cat.Get(index)
	if err != nil {
		return nil, err
	}

	var out []Transition
	for _, p := range s.AllPatterns() {
		i, ok := p.Cycle().Position(state)
		if !ok {
			continue
		}
		cyc := p.Cycle()
		out = append(out, Transition{Ref: p.Ref(), Previous: cyc.At(i - 1), State: state, Next: cyc.At(i + 1), CycleLength: cyc.Len()})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s state %d: %w", s.Symbol(), state, cycle.ErrStateNotFound)
	}

	return out, nil
}

// Analyze returns the analysis report of one structure. Reports are computed
// once per index; concurrent first requests share one computation. Every
// caller receives its own copy of the memoised report.
func (e *Engine) Analyze(index int) (analysis.Report, error) {
	r, err := e.analyze(index)
	e.done("analyze", err, zap.Int("index", index))

	return r, err
}

func (e *Engine) analyze(index int) (analysis.Report, error) {
	e.mu.RLock()
	r, ok := e.reports[index]
	e.mu.RUnlock()
	if ok {
		return r.Clone(), nil
	}

	v, err, _ := e.group.Do(strconv.Itoa(index), func() (any, error) {
		s, err := e.cat.Get(index)
		if err != nil {
			return analysis.Report{}, err
		}
		r := analysis.New(s).Report()

		e.mu.Lock()
		e.reports[index] = r
		e.mu.Unlock()

		return r, nil
	})
	if err != nil {
		return analysis.Report{}, err
	}

	return v.(analysis.Report).Clone(), nil
}

// Compare returns the cross-structure report of indices, or of every
// structure when none are given.
func (e *Engine) Compare(indices ...int) (compare.Report, error) {
	r, err := e.compare(indices)
	e.done("compare", err, zap.Ints("indices", indices))

	return r, err
}

func (e *Engine) compare(indices []int) (compare.Report, error) {
	if len(indices) == 0 {
		return compare.New(e.cat.All()).Report(), nil
	}
	structs := make([]*catalog.Structure, 0, len(indices))
	for _, i := range indices {
		s, err := e.cat.Get(i)
		if err != nil {
			return compare.Report{}, err
		}
		structs = append(structs, s)
	}

	return compare.New(structs).Report(), nil
}

// Route returns the shortest mixed resolve/inform path between two states
// of one structure.
func (e *Engine) Route(ctx context.Context, index, from, to int) (statespace.Route, error) {
	r, err := e.route(ctx, index, from, to)
	e.done("route", err, zap.Int("index", index), zap.Int("from", from), zap.Int("to", to), zap.Int("moves", r.Len()))

	return r, err
}

func (e *Engine) route(ctx context.Context, index, from, to int) (statespace.Route, error) {
	if _, err := e.cat.Get(index); err != nil {
		return statespace.Route{}, err
	}

	return e.graphs[index-catalog.MinIndex].Route(from, to, statespace.WithContext(ctx))
}

// PrimaryKey returns the divisor of the structure's primary pattern.
func (e *Engine) PrimaryKey(index int) (string, error) {
	s, err := e.cat.Get(index)
	if err != nil {
		return "", err
	}

	return analysis.New(s).PrimaryPattern().Divisor(), nil
}

// lookup fetches the structure and substitutes the primary key for "".
func (e *Engine) lookup(index int, key string) (*catalog.Structure, string, error) {
	s, err := e.cat.Get(index)
	if err != nil {
		return nil, "", err
	}
	if key == "" {
		key = analysis.New(s).PrimaryPattern().Divisor()
	}

	return s, key, nil
}

// done records one query in metrics and the debug log.
func (e *Engine) done(op string, err error, fields ...zap.Field) {
	e.metrics.observe(op, err)
	if err != nil {
		e.log.Debug(op+" failed", append(fields, zap.Error(err))...)
		return
	}
	e.log.Debug(op, fields...)
}
