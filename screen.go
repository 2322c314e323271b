package colfmt

import (
	"io"
	"strings"
)

// DefaultSpacer is the string placed between adjacent columns unless
// overridden with [Spacer].
const DefaultSpacer = "  "

// Option configures a renderer at construction time.
type Option func(*options)

type options struct {
	spacer  string
	showSep bool
}

func newOptions(opts []Option) options {
	o := options{spacer: DefaultSpacer, showSep: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Spacer sets the string inserted between adjacent rendered columns.
func Spacer(s string) Option { return func(o *options) { o.spacer = s } }

// HideSeparator suppresses the dash line between a table's header and data.
// It has no effect on [Screen].
func HideSeparator() Option { return func(o *options) { o.showSep = false } }

// Screen renders a model's data rows as aligned columns. It holds a
// reference to the model and never modifies it; rendering is pure and
// produces the same output on every call.
type Screen struct {
	model *Model
	opts  options
}

// NewScreen returns a Screen for m.
func NewScreen(m *Model, opts ...Option) *Screen {
	return &Screen{model: m, opts: newOptions(opts)}
}

// Render writes the aligned data rows to w.
func (s *Screen) Render(w io.Writer) error {
	_, err := io.WriteString(w, s.String())
	return err
}

// String returns the aligned data rows, one line per row, joined by
// newlines with no trailing newline. Padding is exact per column width, so
// trailing spaces on a line are kept. A model with no columns renders as
// the empty string.
func (s *Screen) String() string {
	cols := s.model.cols
	if len(cols) == 0 {
		return ""
	}
	return strings.Join(dataLines(cols, columnWidths(cols), s.opts.spacer), "\n")
}

func columnWidths(cols []Column) []int {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = c.Width()
	}
	return widths
}

func dataLines(cols []Column, widths []int, spacer string) []string {
	nrows := len(cols[0].Data)
	lines := make([]string, nrows)
	parts := make([]string, len(cols))
	for r := 0; r < nrows; r++ {
		for i, c := range cols {
			parts[i] = pad(c.Data[r], widths[i], c.Align)
		}
		lines[r] = strings.Join(parts, spacer)
	}
	return lines
}
