// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sgrams/analysis"
	"github.com/katalvlaran/sgrams/catalog"
)

// Export is the document written by YAML; the JSON tags serve tool outputs.
type Export struct {
	Structures []StructureDoc `yaml:"structures" json:"structures"`
}

// StructureDoc is the exported form of one structure.
type StructureDoc struct {
	Index             int          `yaml:"index" json:"index"`
	Symbol            string       `yaml:"symbol" json:"symbol"`
	Catalan           string       `yaml:"catalan" json:"catalan"` // decimal, arbitrary precision
	Fraction          string       `yaml:"fraction" json:"fraction"`
	Reduced           string       `yaml:"reduced" json:"reduced"`
	FormulaResult     int          `yaml:"formula_result" json:"formula_result"`
	Formula           string       `yaml:"formula" json:"formula"`
	Base              int          `yaml:"base" json:"base"`
	Expansion         int          `yaml:"expansion" json:"expansion"`
	Notation          string       `yaml:"notation" json:"notation"`
	Transformation    string       `yaml:"transformation" json:"transformation"`
	Primary           string       `yaml:"primary" json:"primary"`
	Patterns          []PatternDoc `yaml:"patterns" json:"patterns"`
	AdditionalFactors []PatternDoc `yaml:"additional_factors,omitempty" json:"additional_factors,omitempty"`
}

// PatternDoc is the exported form of one pattern.
type PatternDoc struct {
	Divisor     string `yaml:"divisor" json:"divisor"`
	CycleLength int    `yaml:"cycle_length" json:"cycle_length"`
	Sequence    []int  `yaml:"sequence,flow" json:"sequence"`
}

// NewExport converts structures to their export form.
func NewExport(structs []*catalog.Structure) Export {
	out := Export{Structures: make([]StructureDoc, 0, len(structs))}
	for _, s := range structs {
		out.Structures = append(out.Structures, NewStructureDoc(s))
	}

	return out
}

// NewStructureDoc converts one structure to its export form.
func NewStructureDoc(s *catalog.Structure) StructureDoc {
	return StructureDoc{
		Index:             s.Index(),
		Symbol:            s.Symbol(),
		Catalan:           s.Catalan().String(),
		Fraction:          s.Fraction().String(),
		Reduced:           reduced(s.Fraction()),
		FormulaResult:     s.FormulaResult(),
		Formula:           s.Formula(),
		Base:              s.Base(),
		Expansion:         s.Expansion(),
		Notation:          s.Notation(),
		Transformation:    s.Transformation(),
		Primary:           analysis.New(s).PrimaryPattern().Divisor(),
		Patterns:          patternDocs(s.Patterns()),
		AdditionalFactors: patternDocs(s.AdditionalFactors()),
	}
}

func patternDocs(ps []*catalog.Pattern) []PatternDoc {
	if len(ps) == 0 {
		return nil
	}
	out := make([]PatternDoc, len(ps))
	for i, p := range ps {
		out[i] = PatternDoc{Divisor: p.Divisor(), CycleLength: p.CycleLength(), Sequence: p.Sequence()}
	}

	return out
}

// YAML writes structs to w as a YAML document.
func YAML(w io.Writer, structs []*catalog.Structure) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewExport(structs)); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return nil
}

// MarkdownDocument writes the complete Markdown reference document to w.
func MarkdownDocument(w io.Writer, structs []*catalog.Structure) error {
	if _, err := io.WriteString(w, New(Markdown).Document(structs)); err != nil {
		return fmt.Errorf("report: write markdown: %w", err)
	}

	return nil
}
