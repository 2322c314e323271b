package cli

import (
	"fmt"
	"strings"

	"github.com/bjaus/colfmt"
)

// alignToken is one parsed --align element: either a concrete alignment or a
// request to auto-detect from column content.
type alignToken struct {
	auto  bool
	align colfmt.Alignment
}

func parseAlignTokens(s string) ([]alignToken, error) {
	parts := strings.Split(s, ",")
	tokens := make([]alignToken, 0, len(parts))
	for _, p := range parts {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "auto", "a":
			tokens = append(tokens, alignToken{auto: true})
		default:
			a, err := colfmt.ParseAlignment(p)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, alignToken{align: a})
		}
	}
	return tokens, nil
}

// overrideAligns applies a per-column token list to an already-built model.
// Auto tokens keep the alignment detected at construction.
func overrideAligns(m *colfmt.Model, tokens []alignToken) (*colfmt.Model, error) {
	if len(tokens) != m.ColumnCount() {
		return nil, fmt.Errorf("%w: %d alignments for %d columns", colfmt.ErrConfig, len(tokens), m.ColumnCount())
	}
	aligns := make([]colfmt.Alignment, len(tokens))
	for i, col := range m.Columns() {
		if tokens[i].auto {
			aligns[i] = col.Align
		} else {
			aligns[i] = tokens[i].align
		}
	}
	return m.WithAligns(aligns)
}
