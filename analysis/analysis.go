// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/sgrams/catalog"
)

// Analyzer answers questions about a single structure.
type Analyzer struct {
	s *catalog.Structure
}

// New returns an Analyzer over s.
func New(s *catalog.Structure) *Analyzer { return &Analyzer{s: s} }

// Structure returns the analysed structure.
func (a *Analyzer) Structure() *catalog.Structure { return a.s }

// PatternsContaining lists, in listing order and primary namespace first,
// every pattern whose cycle holds state. No match yields an empty slice.
func (a *Analyzer) PatternsContaining(state int) []catalog.Ref {
	out := []catalog.Ref{}
	for _, p := range a.s.AllPatterns() {
		if p.Contains(state) {
			out = append(out, p.Ref())
		}
	}

	return out
}

// PrimaryPattern returns the longest primary pattern, breaking ties by the
// lexicographically smallest divisor key.
func (a *Analyzer) PrimaryPattern() *catalog.Pattern {
	var best *catalog.Pattern
	for _, p := range a.s.Patterns() {
		switch {
		case best == nil,
			p.CycleLength() > best.CycleLength(),
			p.CycleLength() == best.CycleLength() && p.Divisor() < best.Divisor():
			best = p
		}
	}

	return best
}

// AllStates returns the sorted distinct states of the primary namespace.
func (a *Analyzer) AllStates() []int {
	return slices.Sorted(maps.Keys(a.StateDistribution()))
}

// CycleLengthGroups maps each cycle length to the primary keys of that
// length, each group in listing order.
func (a *Analyzer) CycleLengthGroups() map[int][]string {
	groups := make(map[int][]string)
	for _, p := range a.s.Patterns() {
		groups[p.CycleLength()] = append(groups[p.CycleLength()], p.Divisor())
	}

	return groups
}

// StateDistribution counts, for each state, the primary patterns holding it.
func (a *Analyzer) StateDistribution() map[int]int {
	dist := make(map[int]int)
	for _, p := range a.s.Patterns() {
		for _, v := range p.Sequence() {
			dist[v]++
		}
	}

	return dist
}

// SingletonStates returns, sorted, the states held by exactly one primary
// pattern.
func (a *Analyzer) SingletonStates() []int {
	var out []int
	for v, n := range a.StateDistribution() {
		if n == 1 {
			out = append(out, v)
		}
	}
	slices.Sort(out)

	return out
}

// Unique lists the states found in one pattern and in no other.
type Unique struct {
	Ref    catalog.Ref
	States []int // sorted
}

// UniqueStates reports, for every pattern of both namespaces in listing
// order, the states no other pattern holds.
func (a *Analyzer) UniqueStates() []Unique {
	all := a.s.AllPatterns()
	count := make(map[int]int)
	for _, p := range all {
		for _, v := range p.Sequence() {
			count[v]++
		}
	}

	out := make([]Unique, 0, len(all))
	for _, p := range all {
		u := Unique{Ref: p.Ref(), States: []int{}}
		for _, v := range p.Sequence() {
			if count[v] == 1 {
				u.States = append(u.States, v)
			}
		}
		slices.Sort(u.States)
		out = append(out, u)
	}

	return out
}

// Overlap returns the sorted states held by both referenced patterns.
func (a *Analyzer) Overlap(x, y catalog.Ref) ([]int, error) {
	px, err := a.s.LookupRef(x)
	if err != nil {
		return nil, err
	}
	py, err := a.s.LookupRef(y)
	if err != nil {
		return nil, err
	}

	out := []int{}
	for _, v := range px.Sequence() {
		if py.Contains(v) {
			out = append(out, v)
		}
	}
	slices.Sort(out)

	return out, nil
}

// CycleSummary aggregates cycle lengths over both namespaces.
type CycleSummary struct {
	GCD   int // greatest common divisor of all lengths
	Max   int
	Min   int
	Total int // number of patterns
}

// CycleSummary computes the aggregate over every pattern of the structure.
func (a *Analyzer) CycleSummary() CycleSummary {
	var sum CycleSummary
	for i, p := range a.s.AllPatterns() {
		n := p.CycleLength()
		if i == 0 {
			sum.Min, sum.Max = n, n
		}
		sum.GCD = gcd(sum.GCD, n)
		sum.Max = max(sum.Max, n)
		sum.Min = min(sum.Min, n)
		sum.Total++
	}

	return sum
}

// Crossing describes a state that is handed over from one pattern to
// another at a shared point.
type Crossing struct {
	State int
	From  catalog.Ref
	To    catalog.Ref
	Next  int // resolve(State) in To
	Prev  int // inform(State) in To
}

// CrossTransition carries state from pattern from into pattern to. The state
// must lie in both cycles.
func (a *Analyzer) CrossTransition(state int, from, to catalog.Ref) (Crossing, error) {
	pf, err := a.s.LookupRef(from)
	if err != nil {
		return Crossing{}, err
	}
	if _, err := pf.Next(state); err != nil {
		return Crossing{}, err
	}
	pt, err := a.s.LookupRef(to)
	if err != nil {
		return Crossing{}, err
	}
	i, ok := pt.Cycle().Position(state)
	if !ok {
		_, err := pt.Next(state)
		return Crossing{}, fmt.Errorf("crossing %s -> %s: %w", from, to, err)
	}
	cyc := pt.Cycle()

	return Crossing{State: state, From: from, To: to, Next: cyc.At(i + 1), Prev: cyc.At(i - 1)}, nil
}

// Report is the result of the analyze operation.
type Report struct {
	Index             int
	Symbol            string
	Primary           *catalog.Pattern
	AllStates         []int
	CycleLengthGroups map[int][]string
	StateDistribution map[int]int
	Singletons        []int
	Cycles            CycleSummary
}

// Report assembles the analyze result.
func (a *Analyzer) Report() Report {
	return Report{
		Index:             a.s.Index(),
		Symbol:            a.s.Symbol(),
		Primary:           a.PrimaryPattern(),
		AllStates:         a.AllStates(),
		CycleLengthGroups: a.CycleLengthGroups(),
		StateDistribution: a.StateDistribution(),
		Singletons:        a.SingletonStates(),
		Cycles:            a.CycleSummary(),
	}
}

// Clone returns a deep copy whose slices and maps share nothing with r.
// Primary is immutable and shared.
func (r Report) Clone() Report {
	out := r
	out.AllStates = slices.Clone(r.AllStates)
	out.Singletons = slices.Clone(r.Singletons)
	out.StateDistribution = maps.Clone(r.StateDistribution)
	if r.CycleLengthGroups != nil {
		out.CycleLengthGroups = make(map[int][]string, len(r.CycleLengthGroups))
		for n, keys := range r.CycleLengthGroups {
			out.CycleLengthGroups[n] = slices.Clone(keys)
		}
	}

	return out
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
