// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // fixed-width terminal tables, underlined upper-case titles
	Markdown             // GitHub-flavoured Markdown tables, "#" titles
)

// ParseMode maps "ascii" and "markdown" (also "md") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "ascii", "":
		return ASCII, nil
	case "markdown", "md":
		return Markdown, nil
	default:
		return 0, fmt.Errorf("report: unknown format %q", s)
	}
}

// Section is a titled table, the unit every report view is composed of.
// The title is rendered as a heading of the given level: "##" style in
// Markdown, an upper-case line underlined with "=" in ASCII.
type Section struct {
	mode  Mode
	level int
	title string
	w     table.Writer
}

// NewSection starts a section with its heading and column names.
// A level of 0 omits the heading.
func NewSection(m Mode, level int, title string, columns ...string) *Section {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	header := make(table.Row, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	w.AppendHeader(header)

	return &Section{mode: m, level: level, title: title, w: w}
}

// Numeric right-aligns the given 1-based columns.
func (s *Section) Numeric(cols ...int) *Section {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, n := range cols {
		cfgs[i] = table.ColumnConfig{Number: n, Align: text.AlignRight}
	}
	s.w.SetColumnConfigs(cfgs)

	return s
}

// Row appends one data row.
func (s *Section) Row(vals ...any) { s.w.AppendRow(table.Row(vals)) }

// Footer appends the footer row.
func (s *Section) Footer(vals ...any) { s.w.AppendFooter(table.Row(vals)) }

// Len returns the number of data rows.
func (s *Section) Len() int { return s.w.Length() }

// String renders the heading, the table and a trailing blank line.
func (s *Section) String() string {
	var b strings.Builder
	if s.level > 0 {
		b.WriteString(heading(s.mode, s.level, s.title))
	}
	if s.mode == Markdown {
		b.WriteString(s.w.RenderMarkdown())
	} else {
		b.WriteString(s.w.Render())
	}
	b.WriteString("\n\n")

	return b.String()
}

func heading(m Mode, level int, title string) string {
	if m == Markdown {
		return fmt.Sprintf("%s %s\n\n", strings.Repeat("#", level), title)
	}
	t := strings.ToUpper(title)

	return fmt.Sprintf("%s\n%s\n", t, strings.Repeat("=", len([]rune(t))))
}
