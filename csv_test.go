package colfmt_test

import (
	"strings"
	"testing"

	"github.com/bjaus/colfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCSV(t *testing.T) {
	t.Parallel()

	t.Run("comma separated rows", func(t *testing.T) {
		t.Parallel()
		m, err := colfmt.FromCSV(strings.NewReader("a,b\n1,2\n"), ',', false, colfmt.AlignSpec{})
		require.NoError(t, err)
		cols := m.Columns()
		require.Len(t, cols, 2)
		assert.Equal(t, []string{"a", "1"}, cols[0].Data)
		assert.Equal(t, []string{"b", "2"}, cols[1].Data)
	})

	t.Run("custom delimiter", func(t *testing.T) {
		t.Parallel()
		m, err := colfmt.FromCSV(strings.NewReader("a;b\n1;2\n"), ';', false, colfmt.AlignSpec{})
		require.NoError(t, err)
		assert.Equal(t, 2, m.ColumnCount())
	})

	t.Run("first line becomes headings", func(t *testing.T) {
		t.Parallel()
		m, err := colfmt.FromCSV(strings.NewReader("Name,Age\nAlice,25\n"), ',', true, colfmt.AlignSpec{})
		require.NoError(t, err)
		cols := m.Columns()
		assert.Equal(t, "Name", cols[0].Heading)
		assert.Equal(t, []string{"Alice"}, cols[0].Data)
	})

	t.Run("field count mismatch rejected", func(t *testing.T) {
		t.Parallel()
		_, err := colfmt.FromCSV(strings.NewReader("a,b\nc\n"), ',', false, colfmt.AlignSpec{})
		assert.ErrorIs(t, err, colfmt.ErrParse)
	})

	t.Run("trailing blank lines ignored", func(t *testing.T) {
		t.Parallel()
		m, err := colfmt.FromCSV(strings.NewReader("a,b\n1,2\n\n\n"), ',', false, colfmt.AlignSpec{})
		require.NoError(t, err)
		assert.Equal(t, 2, m.RowCount())
	})

	t.Run("quoted field keeps delimiter", func(t *testing.T) {
		t.Parallel()
		m, err := colfmt.FromCSV(strings.NewReader("\"x,y\",b\n1,2\n"), ',', false, colfmt.AlignSpec{})
		require.NoError(t, err)
		assert.Equal(t, "x,y", m.Columns()[0].Data[0])
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		m, err := colfmt.FromCSV(strings.NewReader(""), ',', false, colfmt.AlignSpec{})
		require.NoError(t, err)
		assert.Equal(t, 0, m.ColumnCount())
	})
}

func TestFromStream(t *testing.T) {
	t.Parallel()
	m, err := colfmt.FromStream(strings.NewReader("a,b\n1,2\n"), false, colfmt.AlignSpec{})
	require.NoError(t, err)
	assert.Equal(t, 2, m.ColumnCount())
	assert.Equal(t, []string{"a", "1"}, m.Columns()[0].Data)
}

func TestFromColumnLines(t *testing.T) {
	t.Parallel()

	t.Run("each line is one column", func(t *testing.T) {
		t.Parallel()
		m, err := colfmt.FromColumnLines(strings.NewReader("a,b,c\n1,2,3\n"), ',', false, colfmt.AlignSpec{})
		require.NoError(t, err)
		cols := m.Columns()
		require.Len(t, cols, 2)
		assert.Equal(t, []string{"a", "b", "c"}, cols[0].Data)
		assert.Equal(t, []string{"1", "2", "3"}, cols[1].Data)
		assert.Equal(t, 3, m.RowCount())
	})

	t.Run("first field is the heading", func(t *testing.T) {
		t.Parallel()
		m, err := colfmt.FromColumnLines(strings.NewReader("Name,Alice,Bob\nAge,25,30\n"), ',', true, colfmt.AlignSpec{})
		require.NoError(t, err)
		cols := m.Columns()
		require.Len(t, cols, 2)
		assert.Equal(t, "Name", cols[0].Heading)
		assert.Equal(t, []string{"Alice", "Bob"}, cols[0].Data)
		assert.Equal(t, "Age", cols[1].Heading)
		assert.Equal(t, []string{"25", "30"}, cols[1].Data)
	})

	t.Run("uneven lines rejected", func(t *testing.T) {
		t.Parallel()
		_, err := colfmt.FromColumnLines(strings.NewReader("a,b\nc\n"), ',', false, colfmt.AlignSpec{})
		assert.ErrorIs(t, err, colfmt.ErrParse)
	})
}
