// Package format owns the textual rendering rules shared by the CLI and
// the engine's derivation steps: one numeric display rule (Number) and a
// small table abstraction over go-pretty.
package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode selects the table output format.
type Mode int

const (
	ASCII    Mode = iota // box-drawing terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// Table collects rows and renders them in the Mode set at creation.
type Table struct {
	writer table.Writer
	mode   Mode
	cfgs   []table.ColumnConfig
}

// NewTable returns an empty table for the given Mode.
func NewTable(m Mode) *Table {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return &Table{writer: w, mode: m}
}

// Header sets the column headers.
func (t *Table) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.writer.AppendHeader(row)
}

// Row appends a data row; values render via fmt.Sprint.
func (t *Table) Row(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	t.writer.AppendRow(row)
}

// Footer appends a footer row, typically totals.
func (t *Table) Footer(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	t.writer.AppendFooter(row)
}

// RightAlign right-aligns the given 1-based columns (numeric columns).
func (t *Table) RightAlign(cols ...int) {
	for _, n := range cols {
		t.cfgs = append(t.cfgs, table.ColumnConfig{Number: n, Align: text.AlignRight})
	}
}

// MaxWidth caps the width of the given 1-based column.
func (t *Table) MaxWidth(col, width int) {
	t.cfgs = append(t.cfgs, table.ColumnConfig{Number: col, WidthMax: width})
}

// String renders the table.
func (t *Table) String() string {
	t.writer.SetColumnConfigs(t.cfgs)
	if t.mode == Markdown {
		return t.writer.RenderMarkdown()
	}
	return t.writer.Render()
}
