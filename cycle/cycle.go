// SPDX-License-Identifier: MIT

package cycle

import (
	"fmt"
	"slices"
)

// Cycle is an immutable closed sequence of distinct states.
type Cycle struct {
	seq []int       // states in traversal order
	pos map[int]int // state → zero-based index in seq
}

// Transition is one row of a cycle's transition table.
type Transition struct {
	State    int // current state
	Previous int // inform(State)
	Next     int // resolve(State)
}

// New validates seq and returns a Cycle over a private copy of it.
// Complexity: O(n).
func New(seq []int) (*Cycle, error) {
	// 1) Reject the empty cycle up front; nothing can be navigated.
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}

	// 2) Copy so that later mutation of the caller's slice cannot leak in.
	c := &Cycle{
		seq: slices.Clone(seq),
		pos: make(map[int]int, len(seq)),
	}

	// 3) Build the position index, validating each element on the way.
	for i, v := range c.seq {
		if v < 0 {
			return nil, fmt.Errorf("index %d value %d: %w", i, v, ErrNegativeState)
		}
		if j, dup := c.pos[v]; dup {
			return nil, fmt.Errorf("value %d at %d and %d: %w", v, j, i, ErrDuplicateState)
		}
		c.pos[v] = i
	}

	return c, nil
}

// MustNew is like New but panics on invalid input.
// It is meant for literal tables known to be valid at compile time.
func MustNew(seq []int) *Cycle {
	c, err := New(seq)
	if err != nil {
		panic(fmt.Sprintf("cycle: MustNew(%v): %v", seq, err))
	}

	return c
}

// Len returns the cycle length.
func (c *Cycle) Len() int { return len(c.seq) }

// States returns a copy of the sequence in traversal order.
func (c *Cycle) States() []int { return slices.Clone(c.seq) }

// At returns the state at position i modulo the cycle length.
// Negative i counts backward from the start.
func (c *Cycle) At(i int) int { return c.seq[mod(i, len(c.seq))] }

// Contains reports whether v is one of the cycle's states.
func (c *Cycle) Contains(v int) bool {
	_, ok := c.pos[v]

	return ok
}

// Position returns the zero-based index of v, or (-1, false) if absent.
func (c *Cycle) Position(v int) (int, bool) {
	i, ok := c.pos[v]
	if !ok {
		return -1, false
	}

	return i, true
}

// Next returns the successor of v: seq[(i+1) mod n].
func (c *Cycle) Next(v int) (int, error) {
	return c.Step(v, 1)
}

// Previous returns the predecessor of v: seq[(i-1) mod n].
func (c *Cycle) Previous(v int) (int, error) {
	return c.Step(v, -1)
}

// Step moves k positions from v; positive k walks forward, negative backward.
// Step(v, 0) returns v itself when v is in the cycle.
func (c *Cycle) Step(v, k int) (int, error) {
	i, ok := c.pos[v]
	if !ok {
		return 0, fmt.Errorf("state %d: %w", v, ErrStateNotFound)
	}

	return c.seq[mod(i+k, len(c.seq))], nil
}

// Distance returns the number of forward steps from 'from' to 'to',
// always in [0, Len()).
func (c *Cycle) Distance(from, to int) (int, error) {
	i, ok := c.pos[from]
	if !ok {
		return 0, fmt.Errorf("from state %d: %w", from, ErrStateNotFound)
	}
	j, ok := c.pos[to]
	if !ok {
		return 0, fmt.Errorf("to state %d: %w", to, ErrStateNotFound)
	}

	return mod(j-i, len(c.seq)), nil
}

// Transitions returns the (previous, next) pair of every state, in
// sequence order.
func (c *Cycle) Transitions() []Transition {
	n := len(c.seq)
	out := make([]Transition, n)
	for i, v := range c.seq {
		out[i] = Transition{
			State:    v,
			Previous: c.seq[mod(i-1, n)],
			Next:     c.seq[mod(i+1, n)],
		}
	}

	return out
}

// Equal reports whether c and other hold the same sequence starting at the
// same state.
func (c *Cycle) Equal(other *Cycle) bool {
	if c == nil || other == nil {
		return c == other
	}

	return slices.Equal(c.seq, other.seq)
}

// SameShape reports whether c and other describe the same cycle up to the
// choice of starting state.
func (c *Cycle) SameShape(other *Cycle) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.seq) != len(other.seq) {
		return false
	}

	return slices.Equal(c.Canonical(), other.Canonical())
}

// String renders the states separated by single spaces.
func (c *Cycle) String() string {
	return joinInts(c.seq, " ")
}

// mod is the non-negative remainder of a by n (n > 0).
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}
