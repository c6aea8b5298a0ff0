// SPDX-License-Identifier: MIT

package trace

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/sgrams/catalog"
	"github.com/katalvlaran/sgrams/cycle"
)

var (
	// ErrNegativeSteps indicates a trace request with steps < 0.
	ErrNegativeSteps = errors.New("trace: steps must be non-negative")

	// ErrStepLimit indicates a step count above the caller's configured bound.
	ErrStepLimit = errors.New("trace: steps exceed limit")

	// ErrBadDirection indicates an unknown walking direction.
	ErrBadDirection = errors.New("trace: unknown direction")
)

// Direction selects resolve (Forward) or inform (Backward) steps.
type Direction int

const (
	// Forward applies resolve at every step.
	Forward Direction = iota
	// Backward applies inform at every step.
	Backward
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts "forward"/"resolve" and "backward"/"reverse"/"inform".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "resolve", "":
		return Forward, nil
	case "backward", "reverse", "inform":
		return Backward, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrBadDirection)
	}
}

// FromReverse maps the boolean reverse flag used by callers to a Direction.
func FromReverse(reverse bool) Direction {
	if reverse {
		return Backward
	}

	return Forward
}

// preallocLimit caps the capacity reserved up front by Trace; longer paths
// grow through append.
const preallocLimit = 1 << 16

// Trace returns steps+1 states starting at start.
func Trace(s *catalog.Structure, key string, start, steps int, dir Direction) ([]int, error) {
	if steps < 0 {
		return nil, fmt.Errorf("steps %d: %w", steps, ErrNegativeSteps)
	}
	w, err := newWalker(s, key, start, dir)
	if err != nil {
		return nil, err
	}

	path := make([]int, 0, min(steps, preallocLimit)+1)
	path = append(path, start)
	for range steps {
		path = append(path, w.step())
	}

	return path, nil
}

// CheckSteps validates a caller-supplied step count against limit. A
// non-positive limit disables the upper bound.
func CheckSteps(steps, limit int) error {
	if steps < 0 {
		return fmt.Errorf("steps %d: %w", steps, ErrNegativeSteps)
	}
	if limit > 0 && steps > limit {
		return fmt.Errorf("steps %d > %d: %w", steps, limit, ErrStepLimit)
	}

	return nil
}

// Walk returns a lazy, unbounded sequence beginning with start.
func Walk(s *catalog.Structure, key string, start int, dir Direction) (iter.Seq[int], error) {
	w, err := newWalker(s, key, start, dir)
	if err != nil {
		return nil, err
	}

	return func(yield func(int) bool) {
		if !yield(start) {
			return
		}
		// Each iteration gets its own cursor so the sequence can be replayed.
		cur := *w
		for yield(cur.step()) {
		}
	}, nil
}

// CycleLength walks forward from start and counts the steps until start
// reappears.
func CycleLength(s *catalog.Structure, key string, start int) (int, error) {
	w, err := newWalker(s, key, start, Forward)
	if err != nil {
		return 0, err
	}

	n := 1
	for w.step() != start {
		n++
	}

	return n, nil
}

// walker is a position cursor on one pattern's cycle.
type walker struct {
	cyc   *cycle.Cycle
	pos   int // always in [0, cyc.Len())
	delta int // +1 resolve, -1 inform
}

// newWalker resolves key and locates start in the pattern.
func newWalker(s *catalog.Structure, key string, start int, dir Direction) (*walker, error) {
	var delta int
	switch dir {
	case Forward:
		delta = 1
	case Backward:
		delta = -1
	default:
		return nil, fmt.Errorf("%s: %w", dir, ErrBadDirection)
	}

	p, err := s.Lookup(key)
	if err != nil {
		return nil, err
	}
	pos, ok := p.Cycle().Position(start)
	if !ok {
		// Next reports the absent state as a *catalog.StateError.
		_, err := p.Next(start)
		return nil, err
	}

	return &walker{cyc: p.Cycle(), pos: pos, delta: delta}, nil
}

// step advances the cursor once and returns the new state.
func (w *walker) step() int {
	w.pos = (w.pos + w.delta + w.cyc.Len()) % w.cyc.Len()

	return w.cyc.At(w.pos)
}
