package colfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumeric(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  bool
	}{
		"integer":        {input: "123", want: true},
		"decimal":        {input: "12.34", want: true},
		"negative":       {input: "-5", want: true},
		"positive sign":  {input: "+5", want: true},
		"leading dot":    {input: ".5", want: true},
		"trailing dot":   {input: "5.", want: true},
		"empty":          {input: "", want: false},
		"bare sign":      {input: "-", want: false},
		"bare dot":       {input: ".", want: false},
		"two dots":       {input: "1.2.3", want: false},
		"exponent":       {input: "1e5", want: false},
		"hex":            {input: "0x1f", want: false},
		"word":           {input: "abc", want: false},
		"trailing junk":  {input: "12a", want: false},
		"embedded space": {input: "1 2", want: false},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isNumeric(tt.input))
		})
	}
}

func TestPad(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		width int
		align Alignment
		want  string
	}{
		"left":              {input: "ab", width: 5, align: AlignLeft, want: "ab   "},
		"right":             {input: "ab", width: 5, align: AlignRight, want: "   ab"},
		"center even gap":   {input: "ab", width: 4, align: AlignCenter, want: " ab "},
		"center odd gap":    {input: "ab", width: 5, align: AlignCenter, want: " ab  "},
		"center empty cell": {input: "", width: 3, align: AlignCenter, want: "   "},
		"exact fit":         {input: "ab", width: 2, align: AlignRight, want: "ab"},
		"no truncation":     {input: "abc", width: 2, align: AlignLeft, want: "abc"},
		"zero width":        {input: "", width: 0, align: AlignLeft, want: ""},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pad(tt.input, tt.width, tt.align))
		})
	}
}
