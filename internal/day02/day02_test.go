package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "A Y\nB X\nC Z\n"

func TestParse(t *testing.T) {
	rounds, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, []Round{{0, 1}, {1, 0}, {2, 2}}, rounds)
}

func TestParts(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 15, got)

	got, err = Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestOutcome(t *testing.T) {
	for them := range 3 {
		assert.Equal(t, 3, outcome(them, them), "draw")
		assert.Equal(t, 6, outcome(them, (them+1)%3), "win")
		assert.Equal(t, 0, outcome(them, (them+2)%3), "loss")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"D X", "line 1, column 1: expected 'A', 'B' or 'C', found \"D\""},
		{"A W", "line 1, column 3: expected 'X', 'Y' or 'Z', found \"W\""},
		{"A\tX", "line 1, column 2: expected \" \""},
		{"A X\nB", "line 2, column 2: expected \" \", found end of input"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
