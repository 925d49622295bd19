package day09

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/advent/internal/grid"
)

const sample = `R 4
U 4
L 3
D 1
R 4
D 1
L 5
R 2`

const largerSample = `R 5
U 8
L 8
D 3
R 17
D 10
L 25
U 20`

func TestParse(t *testing.T) {
	motions, err := Parse("R 4\nU 12\n")
	require.NoError(t, err)
	assert.Equal(t, []Motion{{grid.Right, 4}, {grid.Up, 12}}, motions)
}

func TestParts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		part  func(string) (int, error)
		want  int
	}{
		{"part 1", sample, Part1, 13},
		{"part 2", sample, Part2, 1},
		{"part 2 larger", largerSample, Part2, 36},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.part(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStepDiagonal(t *testing.T) {
	r := NewRope(2)
	r.Step(grid.Right)
	r.Step(grid.Up)
	assert.Equal(t, grid.Pt{}, r.Tail(), "still touching diagonally")

	r.Step(grid.Up)
	assert.Equal(t, grid.Pt{X: 1, Y: -1}, r.Tail(), "catches up diagonally")
}

func TestShortRopePanics(t *testing.T) {
	assert.Panics(t, func() { NewRope(1) })
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("X 4")
	assert.ErrorContains(t, err, "line 1, column 1: expected one of U, R, D, L")

	_, err = Parse("R 4\nU")
	assert.ErrorContains(t, err, "line 2, column 2: expected \" \", found end of input")

	_, err = Parse("R -4")
	assert.ErrorContains(t, err, "line 1, column 3: expected digit")
}
