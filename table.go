package colfmt

import (
	"io"
	"strings"
)

// Table renders a model like [Screen] but prepends a header line built from
// the column headings and, unless disabled with [HideSeparator], a dash
// separator line sized to each column's width.
type Table struct {
	screen *Screen
}

// NewTable returns a Table for m.
func NewTable(m *Model, opts ...Option) *Table {
	return &Table{screen: NewScreen(m, opts...)}
}

// Render writes the header, optional separator, and aligned data rows to w.
func (t *Table) Render(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}

// String returns the rendered table. Headings are padded to the column
// width with the same alignment rule as data cells; missing headings render
// as empty strings. Each separator segment is a run of dashes exactly as
// wide as its column, joined by the spacer.
func (t *Table) String() string {
	cols := t.screen.model.cols
	if len(cols) == 0 {
		return ""
	}
	widths := columnWidths(cols)
	spacer := t.screen.opts.spacer

	lines := make([]string, 0, len(cols[0].Data)+2)
	head := make([]string, len(cols))
	for i, c := range cols {
		head[i] = pad(c.Heading, widths[i], c.Align)
	}
	lines = append(lines, strings.Join(head, spacer))

	if t.screen.opts.showSep {
		sep := make([]string, len(cols))
		for i, w := range widths {
			sep[i] = strings.Repeat("-", w)
		}
		lines = append(lines, strings.Join(sep, spacer))
	}

	lines = append(lines, dataLines(cols, widths, spacer)...)
	return strings.Join(lines, "\n")
}
