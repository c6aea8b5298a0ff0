// SPDX-License-Identifier: MIT

package compare

import (
	"cmp"
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/katalvlaran/sgrams/analysis"
	"github.com/katalvlaran/sgrams/catalog"
)

// ErrCatalanGrowth indicates a Catalan number that breaks the growth law.
var ErrCatalanGrowth = errors.New("compare: catalan growth law violated")

// Comparator holds an index-ordered, duplicate-free set of structures.
type Comparator struct {
	structs []*catalog.Structure
}

// New orders structs by index and drops duplicates and nils.
func New(structs []*catalog.Structure) *Comparator {
	out := make([]*catalog.Structure, 0, len(structs))
	for _, s := range structs {
		if s != nil {
			out = append(out, s)
		}
	}
	slices.SortFunc(out, func(a, b *catalog.Structure) int { return cmp.Compare(a.Index(), b.Index()) })
	out = slices.CompactFunc(out, func(a, b *catalog.Structure) bool { return a.Index() == b.Index() })

	return &Comparator{structs: out}
}

// Indices returns the compared indices in ascending order.
func (c *Comparator) Indices() []int {
	out := make([]int, len(c.structs))
	for i, s := range c.structs {
		out[i] = s.Index()
	}

	return out
}

// Member is one (structure, pattern) pair.
type Member struct {
	Index   int    `json:"index"`
	Divisor string `json:"divisor"`
}

// CommonByDenominator groups primary patterns by divisor denominator.
func (c *Comparator) CommonByDenominator() map[int64][]Member {
	out := make(map[int64][]Member)
	for _, s := range c.structs {
		for _, p := range s.Patterns() {
			out[p.Denominator()] = append(out[p.Denominator()], Member{Index: s.Index(), Divisor: p.Divisor()})
		}
	}

	return out
}

// GrowthSequence returns copies of the Catalan numbers, index-ascending.
func (c *Comparator) GrowthSequence() []*big.Int {
	out := make([]*big.Int, len(c.structs))
	for i, s := range c.structs {
		out[i] = s.Catalan()
	}

	return out
}

// CommonCycleLengths groups primary patterns by cycle length.
func (c *Comparator) CommonCycleLengths() map[int][]Member {
	out := make(map[int][]Member)
	for _, s := range c.structs {
		for _, p := range s.Patterns() {
			out[p.CycleLength()] = append(out[p.CycleLength()], Member{Index: s.Index(), Divisor: p.Divisor()})
		}
	}

	return out
}

// Shared is a divisor key that occurs in several structures.
type Shared struct {
	Divisor string
	Indices []int // ascending, each index once
}

// SharedDivisors lists divisor keys from either namespace found in more than
// one structure, most widespread first, then by key.
func (c *Comparator) SharedDivisors() []Shared {
	byKey := make(map[string][]int)
	for _, s := range c.structs {
		for _, p := range s.AllPatterns() {
			idx := byKey[p.Divisor()]
			if len(idx) > 0 && idx[len(idx)-1] == s.Index() {
				continue
			}
			byKey[p.Divisor()] = append(idx, s.Index())
		}
	}

	var out []Shared
	for key, idx := range byKey {
		if len(idx) > 1 {
			out = append(out, Shared{Divisor: key, Indices: idx})
		}
	}
	slices.SortFunc(out, func(a, b Shared) int {
		if n := cmp.Compare(len(b.Indices), len(a.Indices)); n != 0 {
			return n
		}

		return cmp.Compare(a.Divisor, b.Divisor)
	})

	return out
}

// Primary is the primary pattern of one structure.
type Primary struct {
	Index       int
	Divisor     string
	CycleLength int
	Sequence    []int
}

// PrimaryPatterns returns the primary pattern of every structure.
func (c *Comparator) PrimaryPatterns() []Primary {
	out := make([]Primary, 0, len(c.structs))
	for _, s := range c.structs {
		p := analysis.New(s).PrimaryPattern()
		out = append(out, Primary{
			Index:       s.Index(),
			Divisor:     p.Divisor(),
			CycleLength: p.CycleLength(),
			Sequence:    p.Sequence(),
		})
	}

	return out
}

// Growth tracks how per-structure quantities evolve with the index.
type Growth struct {
	Catalan      []*big.Int
	Denominators []int64
	Expansions   []int
	TotalStates  []int // distinct primary states
}

// Growth collects the growth columns.
func (c *Comparator) Growth() Growth {
	g := Growth{
		Catalan:      c.GrowthSequence(),
		Denominators: make([]int64, len(c.structs)),
		Expansions:   make([]int, len(c.structs)),
		TotalStates:  make([]int, len(c.structs)),
	}
	for i, s := range c.structs {
		g.Denominators[i] = s.Fraction().Denominator
		g.Expansions[i] = s.Expansion()
		g.TotalStates[i] = len(analysis.New(s).AllStates())
	}

	return g
}

// VerifyCatalanGrowth checks every Catalan number against the closed form,
// and each index-adjacent pair against the ratio recurrence.
func (c *Comparator) VerifyCatalanGrowth() error {
	for i, s := range c.structs {
		got := s.Catalan()
		if want := catalog.StructureCatalan(s.Index()); got.Cmp(want) != 0 {
			return fmt.Errorf("%s: %s, want %s: %w", s.Symbol(), got, want, ErrCatalanGrowth)
		}
		if i == 0 || c.structs[i-1].Index() != s.Index()-1 {
			continue
		}
		// Structure index k carries C(k+1); C(n+1)·(n+2) == C(n)·2(2n+1) with n = k.
		n := int64(s.Index())
		lhs := new(big.Int).Mul(got, big.NewInt(n+2))
		rhs := new(big.Int).Mul(c.structs[i-1].Catalan(), big.NewInt(2*(2*n+1)))
		if lhs.Cmp(rhs) != 0 {
			return fmt.Errorf("%s: ratio to %s: %w", s.Symbol(), c.structs[i-1].Symbol(), ErrCatalanGrowth)
		}
	}

	return nil
}

// Report is the result of the compare operation.
type Report struct {
	Indices             []int
	CommonByDenominator map[int64][]Member
	GrowthSequence      []*big.Int
	Shared              []Shared
	Primaries           []Primary
}

// Report assembles the compare result.
func (c *Comparator) Report() Report {
	return Report{
		Indices:             c.Indices(),
		CommonByDenominator: c.CommonByDenominator(),
		GrowthSequence:      c.GrowthSequence(),
		Shared:              c.SharedDivisors(),
		Primaries:           c.PrimaryPatterns(),
	}
}

// Denominators returns the keys of groups, ascending.
func Denominators(groups map[int64][]Member) []int64 {
	keys := make([]int64, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
