package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sgrams/analysis"
	"github.com/katalvlaran/sgrams/catalog"
	"github.com/katalvlaran/sgrams/compare"
	"github.com/katalvlaran/sgrams/engine"
	"github.com/katalvlaran/sgrams/report"
	"github.com/katalvlaran/sgrams/trace"
)

func structs(t *testing.T) []*catalog.Structure {
	t.Helper()
	ss, err := catalog.All()
	require.NoError(t, err)

	return ss
}

// TestSection_Modes renders heading and table in both modes.
func TestSection_Modes(t *testing.T) {
	sec := report.NewSection(report.ASCII, 3, "Patterns", "Divisor", "Sequence", "Length").Numeric(3)
	sec.Row("1/7", "1 4 2 8 5 7", 6)
	assert.Equal(t, 1, sec.Len())
	out := sec.String()
	assert.True(t, strings.HasPrefix(out, "PATTERNS\n========\n"), out)
	assert.Contains(t, out, "───")
	assert.Contains(t, out, "1 4 2 8 5 7")

	sec = report.NewSection(report.Markdown, 2, "Patterns", "Divisor", "Sequence")
	sec.Row("1/7", "1 4 2 8 5 7")
	sec.Footer("total", 1)
	out = sec.String()
	assert.True(t, strings.HasPrefix(out, "## Patterns\n\n| Divisor"), out)
	assert.Contains(t, out, "---")
	assert.Contains(t, out, "total")
	assert.True(t, strings.HasSuffix(out, "\n\n"))

	out = report.NewSection(report.Markdown, 0, "ignored", "A").String()
	assert.NotContains(t, out, "ignored")
}

// TestParseMode accepts the configured names.
func TestParseMode(t *testing.T) {
	m, err := report.ParseMode("markdown")
	require.NoError(t, err)
	assert.Equal(t, report.Markdown, m)
	m, err = report.ParseMode("ASCII")
	require.NoError(t, err)
	assert.Equal(t, report.ASCII, m)
	_, err = report.ParseMode("html")
	assert.Error(t, err)
}

// TestSummary lists every structure and never divides 0/0.
func TestSummary(t *testing.T) {
	out := report.New(report.ASCII).Summary(structs(t))
	assert.Contains(t, out, "S-GRAMS SUMMARY")
	assert.Contains(t, out, "208012")
	assert.Contains(t, out, "degenerate")
	assert.Contains(t, out, "s12")
}

// TestStructure_Detail renders every section of s4.
func TestStructure_Detail(t *testing.T) {
	s, err := catalog.Get(3)
	require.NoError(t, err)

	out := report.New(report.Markdown).Structure(s)
	for _, want := range []string{
		"## S-Gram s4 (index 3)",
		"1+(1+3)^2 = 1+16 = 17",
		"3/9 -> 1/3",
		"### Fraction patterns",
		"1, 4, 2, 8, 5, 7",
		"### Additional factors",
		"### Cycle information",
		"Primary",
		"#### State transitions (1/7)",
		"#### State transitions (1/3)",
		"1 → 4",
		"7 ← 1",
	} {
		assert.Contains(t, out, want)
	}
}

// TestStructure_TransitionLimit caps transition tables at three patterns.
func TestStructure_TransitionLimit(t *testing.T) {
	s, err := catalog.Get(11)
	require.NoError(t, err)

	out := report.New(report.Markdown).Structure(s)
	assert.Equal(t, 3, strings.Count(out, "#### State transitions"))
}

// TestViews covers the engine-facing views.
func TestViews(t *testing.T) {
	e, err := engine.New()
	require.NoError(t, err)
	s, err := e.Structure(3)
	require.NoError(t, err)
	r := report.New(report.ASCII)

	path, err := e.TracePath(3, 1, 6, "1/7", false)
	require.NoError(t, err)
	out := r.Trace(s, "1/7", path, trace.Forward)
	assert.Contains(t, out, "1 → 4 → 2 → 8 → 5 → 7 → 1")
	assert.Contains(t, out, "6 STEPS")

	ts, err := e.Transitions(3, 9)
	require.NoError(t, err)
	assert.Contains(t, r.StateTransitions(s, 9, ts), "factor 1/1")

	rep, err := e.Analyze(3)
	require.NoError(t, err)
	assert.Contains(t, r.Analysis(rep), "1/7 | 1 4 2 8 5 7")

	rt, err := e.Route(t.Context(), 3, 1, 5)
	require.NoError(t, err)
	out = r.Route(s, rt)
	assert.Contains(t, out, "backward")
	assert.Contains(t, out, "1 7 5")
}

// TestComparison renders primaries, denominators and shared divisors.
func TestComparison(t *testing.T) {
	c := compare.New(structs(t))
	out := report.New(report.Markdown).Comparison(c.Report(), c.Growth())
	assert.Contains(t, out, "## S-Grams pattern comparison")
	assert.Contains(t, out, "s4:1/7 s8:1/7")
	assert.Contains(t, out, "### Shared divisors")
	assert.Contains(t, out, "1/43")
}

// TestDocument_Markdown opens with the reference title.
func TestDocument_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.MarkdownDocument(&buf, structs(t)))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# S-Grams State Transformation Tables"))
	assert.Equal(t, catalog.Size, strings.Count(out, "### Cycle information"))
}

// TestYAML decodes back to the same literal data.
func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.YAML(&buf, structs(t)))

	var doc report.Export
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Structures, catalog.Size)

	s3 := doc.Structures[3]
	assert.Equal(t, "s4", s3.Symbol)
	assert.Equal(t, "14", s3.Catalan)
	assert.Equal(t, "1/3", s3.Reduced)
	assert.Equal(t, "1/7", s3.Primary)
	assert.Equal(t, []int{1, 4, 2, 8, 5, 7}, s3.Patterns[0].Sequence)
	assert.Equal(t, []int{9}, s3.AdditionalFactors[0].Sequence)

	assert.Empty(t, doc.Structures[0].AdditionalFactors)
	assert.Equal(t, "degenerate", doc.Structures[0].Reduced)
	assert.Contains(t, buf.String(), "sequence: [1, 4, 2, 8, 5, 7]")
}

// TestAnalysis_Groups lists length groups in ascending order.
func TestAnalysis_Groups(t *testing.T) {
	s, err := catalog.Get(5)
	require.NoError(t, err)
	out := report.New(report.ASCII).Analysis(analysis.New(s).Report())
	i2 := strings.Index(out, "Length 2")
	i4 := strings.Index(out, "Length 4")
	i6 := strings.Index(out, "Length 6")
	assert.True(t, i2 >= 0 && i2 < i4 && i4 < i6, out)
}

