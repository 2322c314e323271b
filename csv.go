package colfmt

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// FromCSV reads delimiter-separated lines from r and builds a Model as
// [FromRows] would. Every line must split into the same number of fields as
// the first line; blank lines are skipped.
func FromCSV(r io.Reader, delimiter rune, headers bool, align AlignSpec) (*Model, error) {
	rows, err := readRows(r, delimiter)
	if err != nil {
		return nil, err
	}
	return FromRows(rows, headers, align)
}

// FromStream is [FromCSV] with a comma delimiter.
func FromStream(r io.Reader, headers bool, align AlignSpec) (*Model, error) {
	return FromCSV(r, ',', headers, align)
}

// FromColumnLines reads column-major input: each line holds one column's
// cells, split on delimiter. With headers, the first field of each line is
// that column's heading.
func FromColumnLines(r io.Reader, delimiter rune, headers bool, align AlignSpec) (*Model, error) {
	lines, err := readRows(r, delimiter)
	if err != nil {
		return nil, err
	}
	columns := make([][]string, len(lines))
	var headings []string
	if headers {
		headings = make([]string, len(lines))
	}
	for i, fields := range lines {
		if headers {
			headings[i] = fields[0]
			fields = fields[1:]
		}
		columns[i] = fields
	}
	return FromColumns(columns, headings, align)
}

func readRows(r io.Reader, delimiter rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	rows, err := cr.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) && errors.Is(perr.Err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("%w: line %d: %v", ErrParse, perr.Line, csv.ErrFieldCount)
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return rows, nil
}
