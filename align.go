package colfmt

import "strings"

// AlignmentFor infers an alignment from a column's cell values. A column
// aligns right when it has at least one non-empty cell and every non-empty
// cell, after trimming surrounding whitespace, is a plain numeric literal.
// Anything else aligns left. Center is never inferred.
func AlignmentFor(cells []string) Alignment {
	sawNumber := false
	for _, cell := range cells {
		v := strings.TrimSpace(cell)
		if v == "" {
			continue
		}
		if !isNumeric(v) {
			return AlignLeft
		}
		sawNumber = true
	}
	if sawNumber {
		return AlignRight
	}
	return AlignLeft
}

// isNumeric reports whether s is an optionally signed integer or decimal
// literal. Narrower than strconv.ParseFloat: exponents, hex, "Inf", and
// "NaN" do not count as numbers here.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}
