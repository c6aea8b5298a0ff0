// SPDX-License-Identifier: MIT

package statespace

import (
	"slices"

	"github.com/katalvlaran/sgrams/catalog"
)

// noTarget makes run explore the whole component.
const noTarget = -1

type queueItem struct {
	state int
	depth int
}

// walker holds the mutable state of one breadth-first search.
type walker struct {
	g      *Graph
	opts   Options
	queue  []queueItem
	depth  map[int]int
	parent map[int]Move // move that first reached the key
}

func newWalker(g *Graph, o Options, from int) *walker {
	w := &walker{
		g:      g,
		opts:   o,
		queue:  make([]queueItem, 0, len(g.moves)),
		depth:  make(map[int]int, len(g.moves)),
		parent: make(map[int]Move, len(g.moves)),
	}
	w.depth[from] = 0
	w.queue = append(w.queue, queueItem{state: from})

	return w
}

// run processes the queue until it drains, target is seen, or the context
// is cancelled.
func (w *walker) run(target int) error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if item.state == target {
			return nil
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		for _, m := range w.g.moves[item.state] {
			if !w.allowed(m) {
				continue
			}
			if _, seen := w.depth[m.To]; seen {
				continue
			}
			w.depth[m.To] = item.depth + 1
			w.parent[m.To] = m
			w.queue = append(w.queue, queueItem{state: m.To, depth: item.depth + 1})
		}
	}

	return nil
}

func (w *walker) allowed(m Move) bool {
	if w.opts.PrimaryOnly && m.Ref.Namespace != catalog.Primary {
		return false
	}
	if w.opts.Direction != nil && m.Direction != *w.opts.Direction {
		return false
	}

	return true
}

// routeTo rebuilds the path to a state already reached.
func (w *walker) routeTo(to int) Route {
	var moves []Move
	for cur := to; ; {
		m, ok := w.parent[cur]
		if !ok {
			break
		}
		moves = append(moves, m)
		cur = m.From
	}
	slices.Reverse(moves)

	r := Route{States: make([]int, 0, len(moves)+1), Moves: moves}
	if r.Moves == nil {
		r.Moves = []Move{}
	}
	r.States = append(r.States, to)
	if len(moves) > 0 {
		r.States[0] = moves[0].From
		for _, m := range moves {
			r.States = append(r.States, m.To)
		}
	}

	return r
}
