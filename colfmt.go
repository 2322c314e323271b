package colfmt

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrShape  = errors.New("inconsistent shape")
	ErrParse  = errors.New("malformed input")
	ErrConfig = errors.New("invalid configuration")
)

// Alignment controls how a cell is padded to its column width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// String returns the lowercase alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "left"
	}
}

// ParseAlignment parses an alignment token. It recognizes the full names and
// the short forms used on the command line: "l"/"<", "r"/">", "c"/"^".
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l", "<":
		return AlignLeft, nil
	case "right", "r", ">":
		return AlignRight, nil
	case "center", "centre", "c", "^":
		return AlignCenter, nil
	}
	return AlignLeft, fmt.Errorf("%w: unknown alignment %q", ErrConfig, s)
}
