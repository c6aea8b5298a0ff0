// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/sgrams/cycle"
)

// Namespace distinguishes the two pattern mappings of a structure.
type Namespace int

const (
	// Primary is the "patterns" namespace.
	Primary Namespace = iota
	// Factor is the "additionalFactors" namespace, keyed by factor divisors
	// of the formula result.
	Factor
)

// String returns the namespace name as used in reports.
func (n Namespace) String() string {
	switch n {
	case Primary:
		return "patterns"
	case Factor:
		return "additionalFactors"
	default:
		return "namespace(" + strconv.Itoa(int(n)) + ")"
	}
}

// Ref names a pattern unambiguously within one structure.
type Ref struct {
	Namespace Namespace
	Divisor   string
}

// String renders primary refs as the bare key and factor refs with a prefix.
func (r Ref) String() string {
	if r.Namespace == Factor {
		return "factor " + r.Divisor
	}

	return r.Divisor
}

// Pattern is a named closed cycle of states belonging to one structure.
type Pattern struct {
	owner     int
	namespace Namespace
	divisor   string
	num, den  int64
	cyc       *cycle.Cycle
}

// newPattern validates the divisor and sequence of one literal entry.
func newPattern(owner int, ns Namespace, divisor string, seq []int) (*Pattern, error) {
	num, den, err := ParseDivisor(divisor)
	if err != nil {
		return nil, err
	}
	c, err := cycle.New(seq)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", divisor, err)
	}

	return &Pattern{
		owner:     owner,
		namespace: ns,
		divisor:   divisor,
		num:       num,
		den:       den,
		cyc:       c,
	}, nil
}

// ParseDivisor splits a "numerator/denominator" key.
// The denominator must be positive and the numerator non-negative.
func ParseDivisor(key string) (num, den int64, err error) {
	a, b, ok := strings.Cut(key, "/")
	if !ok {
		return 0, 0, fmt.Errorf("%q: missing '/': %w", key, ErrBadDivisor)
	}
	num, err = strconv.ParseInt(a, 10, 64)
	if err != nil || num < 0 {
		return 0, 0, fmt.Errorf("%q: numerator: %w", key, ErrBadDivisor)
	}
	den, err = strconv.ParseInt(b, 10, 64)
	if err != nil || den <= 0 {
		return 0, 0, fmt.Errorf("%q: denominator: %w", key, ErrBadDivisor)
	}

	return num, den, nil
}

// Divisor returns the pattern key.
func (p *Pattern) Divisor() string { return p.divisor }

// Namespace returns the namespace the pattern belongs to.
func (p *Pattern) Namespace() Namespace { return p.namespace }

// Ref returns the namespace-qualified name of the pattern.
func (p *Pattern) Ref() Ref { return Ref{Namespace: p.namespace, Divisor: p.divisor} }

// StructureIndex returns the index of the owning structure.
func (p *Pattern) StructureIndex() int { return p.owner }

// Numerator returns the numerator of the divisor key.
func (p *Pattern) Numerator() int64 { return p.num }

// Denominator returns the denominator of the divisor key.
func (p *Pattern) Denominator() int64 { return p.den }

// Cycle returns the underlying immutable cycle.
func (p *Pattern) Cycle() *cycle.Cycle { return p.cyc }

// Sequence returns a copy of the states in traversal order.
func (p *Pattern) Sequence() []int { return p.cyc.States() }

// CycleLength returns the number of states before the sequence repeats.
func (p *Pattern) CycleLength() int { return p.cyc.Len() }

// Contains reports whether state is part of the cycle.
func (p *Pattern) Contains(state int) bool { return p.cyc.Contains(state) }

// Next resolves state one step forward.
func (p *Pattern) Next(state int) (int, error) {
	v, err := p.cyc.Next(state)
	if err != nil {
		return 0, p.stateError(state)
	}

	return v, nil
}

// Previous informs state one step backward.
func (p *Pattern) Previous(state int) (int, error) {
	v, err := p.cyc.Previous(state)
	if err != nil {
		return 0, p.stateError(state)
	}

	return v, nil
}

// String renders "divisor | s1 s2 ...".
func (p *Pattern) String() string {
	return p.divisor + " | " + p.cyc.String()
}

func (p *Pattern) stateError(state int) error {
	return &StateError{
		Index:     p.owner,
		Namespace: p.namespace,
		Pattern:   p.divisor,
		State:     state,
	}
}
