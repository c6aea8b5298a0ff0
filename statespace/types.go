// SPDX-License-Identifier: MIT

package statespace

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/sgrams/catalog"
	"github.com/katalvlaran/sgrams/trace"
)

// Sentinel errors for route search.
var (
	// ErrStateNotFound is returned when an endpoint is in no pattern.
	ErrStateNotFound = errors.New("statespace: state not found")

	// ErrUnreachable is returned when no route links the endpoints.
	ErrUnreachable = errors.New("statespace: target unreachable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("statespace: invalid option supplied")
)

// Move is one labelled edge of the transition graph.
type Move struct {
	From      int
	To        int
	Ref       catalog.Ref
	Direction trace.Direction
}

// String renders "4 -resolve 1/7-> 2".
func (m Move) String() string {
	verb := "resolve"
	if m.Direction == trace.Backward {
		verb = "inform"
	}

	return fmt.Sprintf("%d -%s %s-> %d", m.From, verb, m.Ref, m.To)
}

// Route is a path of moves and the states it visits.
type Route struct {
	States []int  // len(Moves)+1, starting at the source
	Moves  []Move // empty when source == target
}

// Len returns the number of moves.
func (r Route) Len() int { return len(r.Moves) }

// Option configures a search.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds search parameters.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// MaxDepth, if > 0, bounds the number of moves. 0 disables the limit.
	MaxDepth int

	// PrimaryOnly ignores moves along additionalFactors patterns.
	PrimaryOnly bool

	// Direction, when set, restricts moves to one direction.
	Direction *trace.Direction

	err error
}

// DefaultOptions returns an unlimited search over both namespaces and both
// directions.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds the route length. Negative d is invalid.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithPrimaryOnly drops additionalFactors moves.
func WithPrimaryOnly() Option {
	return func(o *Options) { o.PrimaryOnly = true }
}

// WithDirection restricts moves to d.
func WithDirection(d trace.Direction) Option {
	return func(o *Options) {
		if d != trace.Forward && d != trace.Backward {
			o.err = fmt.Errorf("%w: %s", ErrOptionViolation, d)
			return
		}
		o.Direction = &d
	}
}
