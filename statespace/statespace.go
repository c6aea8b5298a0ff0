// SPDX-License-Identifier: MIT

package statespace

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/sgrams/catalog"
	"github.com/katalvlaran/sgrams/trace"
)

// Graph is the immutable transition graph of one structure.
type Graph struct {
	index int
	moves map[int][]Move // outgoing moves per state, deterministic order
}

// New builds the transition graph of s.
func New(s *catalog.Structure) *Graph {
	g := &Graph{index: s.Index(), moves: make(map[int][]Move)}
	for _, p := range s.AllPatterns() {
		for _, tr := range p.Cycle().Transitions() {
			out := g.moves[tr.State]
			if out == nil {
				out = []Move{}
			}
			if tr.Next != tr.State {
				out = append(out, Move{From: tr.State, To: tr.Next, Ref: p.Ref(), Direction: trace.Forward})
			}
			if tr.Previous != tr.State {
				out = append(out, Move{From: tr.State, To: tr.Previous, Ref: p.Ref(), Direction: trace.Backward})
			}
			g.moves[tr.State] = out
		}
	}

	return g
}

// Index returns the index of the underlying structure.
func (g *Graph) Index() int { return g.index }

// States returns every vertex, ascending.
func (g *Graph) States() []int { return slices.Sorted(maps.Keys(g.moves)) }

// Moves returns the outgoing moves of state.
func (g *Graph) Moves(state int) ([]Move, error) {
	out, ok := g.moves[state]
	if !ok {
		return nil, fmt.Errorf("s%d state %d: %w", g.index+1, state, ErrStateNotFound)
	}

	return slices.Clone(out), nil
}

// Route finds a fewest-moves path from 'from' to 'to'.
func (g *Graph) Route(from, to int, opts ...Option) (Route, error) {
	w, err := g.walker(from, opts)
	if err != nil {
		return Route{}, err
	}
	if _, ok := g.moves[to]; !ok {
		return Route{}, fmt.Errorf("s%d target %d: %w", g.index+1, to, ErrStateNotFound)
	}
	if err := w.run(to); err != nil {
		return Route{}, err
	}
	if _, ok := w.depth[to]; !ok {
		return Route{}, fmt.Errorf("s%d %d -> %d: %w", g.index+1, from, to, ErrUnreachable)
	}

	return w.routeTo(to), nil
}

// Reachable lists, ascending, every state reachable from 'from' (itself
// included).
func (g *Graph) Reachable(from int, opts ...Option) ([]int, error) {
	w, err := g.walker(from, opts)
	if err != nil {
		return nil, err
	}
	if err := w.run(noTarget); err != nil {
		return nil, err
	}

	return slices.Sorted(maps.Keys(w.depth)), nil
}

func (g *Graph) walker(from int, opts []Option) (*walker, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if _, ok := g.moves[from]; !ok {
		return nil, fmt.Errorf("s%d source %d: %w", g.index+1, from, ErrStateNotFound)
	}

	return newWalker(g, o, from), nil
}
