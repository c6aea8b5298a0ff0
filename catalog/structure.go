// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"math/big"
	"slices"
)

// Structure is one immutable S-Gram.
type Structure struct {
	index          int
	catalan        *big.Int
	fraction       Fraction
	base           int
	expansion      int
	notation       string
	transformation string

	patterns []*Pattern // listing order of the literal table
	factors  []*Pattern // listing order of the literal table

	patternByKey map[string]*Pattern
	factorByKey  map[string]*Pattern
}

// Index returns the structure index in [0, 11].
func (s *Structure) Index() int { return s.index }

// Symbol returns the s-notation label, "s1" for index 0.
func (s *Structure) Symbol() string { return Symbol(s.index) }

// Catalan returns a copy of the associated Catalan number.
func (s *Structure) Catalan() *big.Int { return new(big.Int).Set(s.catalan) }

// Fraction returns the unreduced index/index² fraction.
func (s *Structure) Fraction() Fraction { return s.fraction }

// FormulaResult returns 1 + (1+index)².
func (s *Structure) FormulaResult() int { return FormulaResult(s.index) }

// Formula renders the formula with its intermediate square, for example
// "1+(1+3)^2 = 1+16 = 17".
func (s *Structure) Formula() string {
	sq := (1 + s.index) * (1 + s.index)

	return fmt.Sprintf("1+(1+%d)^2 = 1+%d = %d", s.index, sq, 1+sq)
}

// Base returns the literal "base" formula part.
func (s *Structure) Base() int { return s.base }

// Expansion returns the literal "expansion" formula part, which is the
// modulus generating the structure's six-cycles from index 3 onward.
func (s *Structure) Expansion() int { return s.expansion }

// Notation returns the symbolic bracket notation.
func (s *Structure) Notation() string { return s.notation }

// Transformation returns the visual bracket transformation.
func (s *Structure) Transformation() string { return s.transformation }

// Patterns returns the primary namespace in listing order.
func (s *Structure) Patterns() []*Pattern { return slices.Clone(s.patterns) }

// AdditionalFactors returns the factor namespace in listing order.
func (s *Structure) AdditionalFactors() []*Pattern { return slices.Clone(s.factors) }

// AllPatterns returns both namespaces, primary first.
func (s *Structure) AllPatterns() []*Pattern {
	out := make([]*Pattern, 0, len(s.patterns)+len(s.factors))
	out = append(out, s.patterns...)

	return append(out, s.factors...)
}

// PatternKeys returns the primary keys in listing order.
func (s *Structure) PatternKeys() []string { return keysOf(s.patterns) }

// FactorKeys returns the additional-factor keys in listing order.
func (s *Structure) FactorKeys() []string { return keysOf(s.factors) }

// Pattern returns the primary pattern keyed by key.
func (s *Structure) Pattern(key string) (*Pattern, bool) {
	p, ok := s.patternByKey[key]

	return p, ok
}

// Factor returns the additional-factor pattern keyed by key.
func (s *Structure) Factor(key string) (*Pattern, bool) {
	p, ok := s.factorByKey[key]

	return p, ok
}

// Lookup resolves key against patterns first, then additionalFactors.
func (s *Structure) Lookup(key string) (*Pattern, error) {
	if p, ok := s.patternByKey[key]; ok {
		return p, nil
	}
	if p, ok := s.factorByKey[key]; ok {
		return p, nil
	}

	return nil, fmt.Errorf("%s: key %q: %w", s.Symbol(), key, ErrPatternNotFound)
}

// LookupRef resolves a namespace-qualified reference.
func (s *Structure) LookupRef(ref Ref) (*Pattern, error) {
	var (
		p  *Pattern
		ok bool
	)
	switch ref.Namespace {
	case Primary:
		p, ok = s.patternByKey[ref.Divisor]
	case Factor:
		p, ok = s.factorByKey[ref.Divisor]
	}
	if !ok {
		return nil, fmt.Errorf("%s: %s %q: %w", s.Symbol(), ref.Namespace, ref.Divisor, ErrPatternNotFound)
	}

	return p, nil
}

// Resolve steps state forward along the pattern named key.
func (s *Structure) Resolve(key string, state int) (int, error) {
	p, err := s.Lookup(key)
	if err != nil {
		return 0, err
	}

	return p.Next(state)
}

// Inform steps state backward along the pattern named key.
func (s *Structure) Inform(key string, state int) (int, error) {
	p, err := s.Lookup(key)
	if err != nil {
		return 0, err
	}

	return p.Previous(state)
}

// String renders a one-line header such as "3 s4 [14] 3/9".
func (s *Structure) String() string {
	return fmt.Sprintf("%d %s [%s] %s", s.index, s.Symbol(), s.catalan, s.fraction)
}

// Symbol returns the s-notation label for index.
func Symbol(index int) string { return fmt.Sprintf("s%d", index+1) }

func keysOf(ps []*Pattern) []string {
	keys := make([]string, len(ps))
	for i, p := range ps {
		keys[i] = p.divisor
	}

	return keys
}
