// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sgrams/analysis"
	"github.com/katalvlaran/sgrams/catalog"
	"github.com/katalvlaran/sgrams/compare"
	"github.com/katalvlaran/sgrams/engine"
	"github.com/katalvlaran/sgrams/statespace"
	"github.com/katalvlaran/sgrams/trace"
)

// transitionTables is how many primary patterns get a transition table in
// the structure detail view.
const transitionTables = 3

// Renderer composes tables into report views.
type Renderer struct {
	mode Mode
}

// New returns a Renderer for m.
func New(m Mode) *Renderer { return &Renderer{mode: m} }

// Mode returns the output mode.
func (r *Renderer) Mode() Mode { return r.mode }

// Summary renders one row per structure.
func (r *Renderer) Summary(structs []*catalog.Structure) string {
	sec := NewSection(r.mode, 2, "S-Grams summary",
		"Index", "Symbol", "Catalan", "Fraction", "Reduced", "Formula result", "Patterns").Numeric(1, 3, 6, 7)
	for _, s := range structs {
		sec.Row(s.Index(), s.Symbol(), s.Catalan().String(), s.Fraction(), reduced(s.Fraction()),
			s.FormulaResult(), len(s.Patterns())+len(s.AdditionalFactors()))
	}

	return sec.String()
}

// Structure renders the full detail view of one structure.
func (r *Renderer) Structure(s *catalog.Structure) string {
	var b strings.Builder

	info := NewSection(r.mode, 2, fmt.Sprintf("S-Gram %s (index %d)", s.Symbol(), s.Index()), "Property", "Value")
	info.Row("Catalan number", s.Catalan().String())
	info.Row("Fraction", fmt.Sprintf("%s -> %s", s.Fraction(), reduced(s.Fraction())))
	info.Row("Formula", s.Formula())
	info.Row("Base / expansion", fmt.Sprintf("%d / %d", s.Base(), s.Expansion()))
	info.Row("Symbolic notation", s.Notation())
	info.Row("Transformation", s.Transformation())
	b.WriteString(info.String())

	b.WriteString(r.patternSection("Fraction patterns", s.Patterns()).String())
	if fs := s.AdditionalFactors(); len(fs) > 0 {
		b.WriteString(r.patternSection("Additional factors", fs).String())
	}

	a := analysis.New(s)
	primary := a.PrimaryPattern()
	cycles := NewSection(r.mode, 3, "Cycle information", "Pattern", "Cycle length", "Type").Numeric(2)
	for _, p := range s.AllPatterns() {
		kind := "Standard"
		switch {
		case p.Namespace() == catalog.Factor:
			kind = "Additional factor"
		case p == primary:
			kind = "Primary"
		}
		cycles.Row(p.Divisor(), p.CycleLength(), kind)
	}
	sum := a.CycleSummary()
	cycles.Footer("gcd "+fmt.Sprint(sum.GCD), fmt.Sprintf("max %d / min %d", sum.Max, sum.Min), fmt.Sprintf("%d patterns", sum.Total))
	b.WriteString(cycles.String())

	for i, p := range s.Patterns() {
		if i == transitionTables {
			break
		}
		b.WriteString(r.Transitions(p))
	}

	return b.String()
}

func (r *Renderer) patternSection(title string, ps []*catalog.Pattern) *Section {
	sec := NewSection(r.mode, 3, title, "Divisor", "Sequence", "Length").Numeric(1, 3)
	for _, p := range ps {
		sec.Row(p.Divisor(), joinInts(p.Sequence(), ", "), p.CycleLength())
	}

	return sec
}

// Transitions renders the previous/next table of one pattern.
func (r *Renderer) Transitions(p *catalog.Pattern) string {
	sec := NewSection(r.mode, 4, "State transitions ("+p.Ref().String()+")",
		"State", "Previous", "Next", "Resolving", "Informing").Numeric(1, 2, 3)
	for _, t := range p.Cycle().Transitions() {
		sec.Row(t.State, t.Previous, t.Next,
			fmt.Sprintf("%d → %d", t.State, t.Next),
			fmt.Sprintf("%d ← %d", t.Previous, t.State))
	}

	return sec.String()
}

// StateTransitions renders every pattern holding one state.
func (r *Renderer) StateTransitions(s *catalog.Structure, state int, ts []engine.Transition) string {
	sec := NewSection(r.mode, 3, fmt.Sprintf("Transitions of state %d in %s", state, s.Symbol()),
		"Pattern", "Inform", "State", "Resolve", "Cycle length")
	for _, t := range ts {
		sec.Row(t.Ref.String(), t.Previous, t.State, t.Next, t.CycleLength)
	}

	return sec.String()
}

// Trace renders a path with one row per step.
func (r *Renderer) Trace(s *catalog.Structure, key string, path []int, dir trace.Direction) string {
	arrow := "→"
	if dir == trace.Backward {
		arrow = "←"
	}
	sec := NewSection(r.mode, 3, fmt.Sprintf("Trace %s %s (%s, %d steps)", s.Symbol(), key, dir, max(len(path)-1, 0)),
		"Step", "State").Numeric(1, 2)
	for i, v := range path {
		sec.Row(i, v)
	}
	sec.Footer("path", joinInts(path, " "+arrow+" "))

	return sec.String()
}

// Analysis renders an analyze report.
func (r *Renderer) Analysis(rep analysis.Report) string {
	sec := NewSection(r.mode, 3, "Analysis of "+rep.Symbol, "Property", "Value")
	sec.Row("Primary pattern", rep.Primary.String())
	sec.Row("Distinct states", len(rep.AllStates))
	sec.Row("Singleton states", len(rep.Singletons))
	sec.Row("Cycle gcd / max / min", fmt.Sprintf("%d / %d / %d", rep.Cycles.GCD, rep.Cycles.Max, rep.Cycles.Min))
	for _, n := range sortedKeys(rep.CycleLengthGroups) {
		sec.Row(fmt.Sprintf("Length %d", n), strings.Join(rep.CycleLengthGroups[n], ", "))
	}

	return sec.String()
}

// Comparison renders a compare report and the growth columns.
func (r *Renderer) Comparison(rep compare.Report, g compare.Growth) string {
	var b strings.Builder

	prim := NewSection(r.mode, 2, "S-Grams pattern comparison",
		"Index", "Primary", "Cycle length", "Catalan", "Denominator", "Expansion", "States")
	for i, p := range rep.Primaries {
		prim.Row(p.Index, p.Divisor, p.CycleLength, g.Catalan[i].String(), g.Denominators[i], g.Expansions[i], g.TotalStates[i])
	}
	b.WriteString(prim.String())

	den := NewSection(r.mode, 3, "Patterns by denominator", "Denominator", "Members")
	for _, d := range compare.Denominators(rep.CommonByDenominator) {
		ms := rep.CommonByDenominator[d]
		parts := make([]string, len(ms))
		for i, m := range ms {
			parts[i] = fmt.Sprintf("%s:%s", catalog.Symbol(m.Index), m.Divisor)
		}
		den.Row(d, strings.Join(parts, " "))
	}
	b.WriteString(den.String())

	if len(rep.Shared) > 0 {
		sh := NewSection(r.mode, 3, "Shared divisors", "Divisor", "Structures")
		for _, s := range rep.Shared {
			sh.Row(s.Divisor, joinInts(s.Indices, ", "))
		}
		b.WriteString(sh.String())
	}

	return b.String()
}

// Route renders a statespace route.
func (r *Renderer) Route(s *catalog.Structure, rt statespace.Route) string {
	sec := NewSection(r.mode, 3, fmt.Sprintf("Route in %s (%d moves)", s.Symbol(), rt.Len()),
		"Move", "From", "Via", "Direction", "To")
	for i, m := range rt.Moves {
		sec.Row(i+1, m.From, m.Ref.String(), m.Direction, m.To)
	}
	sec.Footer("", "", "", "states", joinInts(rt.States, " "))

	return sec.String()
}

// Document renders the complete export: summary then every structure.
func (r *Renderer) Document(structs []*catalog.Structure) string {
	var b strings.Builder
	if r.mode == Markdown {
		b.WriteString("# S-Grams State Transformation Tables\n\n")
		b.WriteString("Complete reference for S-Grams (2nd power N-Grams) from 0 to 11.\n\n---\n\n")
	}
	b.WriteString(r.Summary(structs))
	for _, s := range structs {
		if r.mode == Markdown {
			b.WriteString("---\n\n")
		}
		b.WriteString(r.Structure(s))
	}

	return b.String()
}
