// Package colfmt formats two-dimensional string data into visually aligned
// columns.
//
// A [Model] is the table abstraction: an ordered collection of columns with
// a uniform row count, each column holding its cells, an optional heading,
// and an [Alignment]. Models are built from row-major data ([FromRows]),
// column-major data ([FromColumns]), or delimited text ([FromCSV],
// [FromStream], [FromColumnLines]) and are immutable once constructed.
// [Model.WithAligns] derives a new model with different alignments without
// touching the original.
//
// # Rendering
//
// Two renderers turn a model into text:
//
//   - [Screen] — data rows only, each cell padded to its column width and
//     columns joined by a spacer (default two spaces).
//   - [Table] — like Screen, preceded by a header line and an optional dash
//     separator line sized to each column.
//
// Both are cheap, stateless views over a model:
//
//	m, err := colfmt.FromRows(rows, true, colfmt.AutoAlign())
//	if err != nil { ... }
//	fmt.Println(colfmt.NewTable(m, colfmt.Spacer(" | ")))
//
// # Alignment
//
// Columns align left, right, or center. The [AlignSpec] passed at
// construction decides how: the zero value aligns everything left,
// [AlignAll] broadcasts one alignment, [AlignEach] takes a per-column list,
// and [AutoAlign] inspects each column's content — a column whose non-empty
// cells are all numeric literals aligns right, anything else left. Center
// is only reachable by explicit request.
//
// # Errors
//
// All validation happens at construction; rendering a valid model cannot
// fail. The package exports sentinel errors for programmatic handling:
//
//   - [ErrShape] — inconsistent row or column lengths
//   - [ErrParse] — a delimited line with the wrong field count
//   - [ErrConfig] — alignment list length mismatch or unknown token
package colfmt
