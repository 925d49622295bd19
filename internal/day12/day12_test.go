package day12

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/advent/internal/grid"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi`

func TestParse(t *testing.T) {
	hm, err := Parse(sample)
	require.NoError(t, err)

	want := grid.Grid[int8]{
		{0, 0, 1, 16, 15, 14, 13, 12},
		{0, 1, 2, 17, 24, 23, 23, 11},
		{0, 2, 2, 18, 25, 25, 23, 10},
		{0, 2, 2, 19, 20, 21, 22, 9},
		{0, 1, 3, 4, 5, 6, 7, 8},
	}
	assert.Equal(t, want, hm.Heights)
	assert.Equal(t, grid.Pt{X: 0, Y: 0}, hm.Start)
	assert.Equal(t, grid.Pt{X: 5, Y: 2}, hm.End)
}

func TestParts(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 31, got)

	got, err = Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 29, got)
}

func TestUnreachable(t *testing.T) {
	_, err := Part1("Sbz\nazE")
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"two starts", "SaS\naaE", "line 1, column 3: expected height a-z, or a single S and E, found \"S\""},
		{"bad char", "Sa1E", "line 1, column 3: expected height a-z, or a single S and E"},
		{"ragged", "Sab\naE", "line 2, column 3: expected row of 3 squares"},
		{"no end", "Sab\nabc", "line 2, column 4: expected map with both S and E"},
		{"empty", "", "line 1, column 1: expected height a-z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
