package colfmt

import "fmt"

// AlignSpec selects per-column alignments at Model construction time. The
// zero value aligns every column left. Use [AutoAlign] to infer each
// column's alignment from its content, [AlignAll] to broadcast a single
// alignment, or [AlignEach] for an explicit per-column list.
type AlignSpec struct {
	kind alignKind
	one  Alignment
	list []Alignment
}

type alignKind int

const (
	alignDefault alignKind = iota
	alignAuto
	alignOne
	alignList
)

// AutoAlign requests content-based alignment detection for every column.
func AutoAlign() AlignSpec { return AlignSpec{kind: alignAuto} }

// AlignAll applies one alignment to every column.
func AlignAll(a Alignment) AlignSpec { return AlignSpec{kind: alignOne, one: a} }

// AlignEach sets an explicit per-column alignment list. Its length must
// equal the column count of the model being constructed.
func AlignEach(aligns ...Alignment) AlignSpec { return AlignSpec{kind: alignList, list: aligns} }

func (s AlignSpec) check(ncols int) error {
	if s.kind == alignList && len(s.list) != ncols {
		return fmt.Errorf("%w: %d alignments for %d columns", ErrConfig, len(s.list), ncols)
	}
	return nil
}

func (s AlignSpec) resolve(i int, cells []string) Alignment {
	switch s.kind {
	case alignAuto:
		return AlignmentFor(cells)
	case alignOne:
		return s.one
	case alignList:
		return s.list[i]
	default:
		return AlignLeft
	}
}

// Model is the full table: an ordered collection of columns with a uniform
// row count. Models are immutable once constructed; transformations return
// new values.
type Model struct {
	cols   []Column
	headed bool
}

// FromRows builds a Model from row-major data. With headers, the first row
// becomes the column headings and is excluded from the data. All remaining
// rows must have the same length.
func FromRows(rows [][]string, headers bool, align AlignSpec) (*Model, error) {
	var headings []string
	if headers && len(rows) > 0 {
		headings = rows[0]
		rows = rows[1:]
	}

	ncols := len(headings)
	if headings == nil && len(rows) > 0 {
		ncols = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != ncols {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrShape, i+1, len(row), ncols)
		}
	}
	if err := align.check(ncols); err != nil {
		return nil, err
	}

	cols := make([]Column, ncols)
	for c := range cols {
		data := make([]string, len(rows))
		for r, row := range rows {
			data[r] = row[c]
		}
		cols[c] = Column{Data: data, Align: align.resolve(c, data)}
		if headings != nil {
			cols[c].Heading = headings[c]
		}
	}
	return &Model{cols: cols, headed: headings != nil}, nil
}

// FromColumns builds a Model from column-major data: each inner slice is one
// column's cells. All columns must have the same length. A nil headings
// slice means no headings; otherwise its length must equal the column count.
func FromColumns(columns [][]string, headings []string, align AlignSpec) (*Model, error) {
	nrows := 0
	if len(columns) > 0 {
		nrows = len(columns[0])
	}
	for i, col := range columns {
		if len(col) != nrows {
			return nil, fmt.Errorf("%w: column %d has %d cells, want %d", ErrShape, i, len(col), nrows)
		}
	}
	if headings != nil && len(headings) != len(columns) {
		return nil, fmt.Errorf("%w: %d headings for %d columns", ErrShape, len(headings), len(columns))
	}
	if err := align.check(len(columns)); err != nil {
		return nil, err
	}

	cols := make([]Column, len(columns))
	for i, col := range columns {
		data := make([]string, len(col))
		copy(data, col)
		cols[i] = Column{Data: data, Align: align.resolve(i, data)}
		if headings != nil {
			cols[i].Heading = headings[i]
		}
	}
	return &Model{cols: cols, headed: headings != nil}, nil
}

// WithAligns returns a new Model sharing the receiver's cell data and
// headings but with the given per-column alignments. The receiver is not
// modified. The list length must equal the column count.
func (m *Model) WithAligns(aligns []Alignment) (*Model, error) {
	if len(aligns) != len(m.cols) {
		return nil, fmt.Errorf("%w: %d alignments for %d columns", ErrConfig, len(aligns), len(m.cols))
	}
	cols := make([]Column, len(m.cols))
	copy(cols, m.cols)
	for i := range cols {
		cols[i].Align = aligns[i]
	}
	return &Model{cols: cols, headed: m.headed}, nil
}

// Columns returns a copy of the model's columns in display order.
func (m *Model) Columns() []Column {
	out := make([]Column, len(m.cols))
	copy(out, m.cols)
	return out
}

// ColumnCount returns the number of columns.
func (m *Model) ColumnCount() int { return len(m.cols) }

// RowCount returns the number of data rows, headings excluded.
func (m *Model) RowCount() int {
	if len(m.cols) == 0 {
		return 0
	}
	return len(m.cols[0].Data)
}

// Headed reports whether the model carries column headings.
func (m *Model) Headed() bool { return m.headed }
