package colfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Column is a single vertical slice of the table: its cells in row order, an
// optional heading, and the alignment used when padding.
type Column struct {
	Data    []string
	Heading string
	Align   Alignment
}

// Width returns the display width of the column: the widest of the heading
// and all cells. It is recomputed on every call, never cached.
func (c Column) Width() int {
	w := runewidth.StringWidth(c.Heading)
	for _, cell := range c.Data {
		if cw := runewidth.StringWidth(cell); cw > w {
			w = cw
		}
	}
	return w
}

// pad formats s to exactly width display cells. When the padding amount is
// odd for center alignment, the extra space goes on the right.
func pad(s string, width int, align Alignment) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}
