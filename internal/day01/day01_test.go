package day01

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adverrors "github.com/aledsdavies/advent/internal/errors"
)

const sample = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

func TestParse(t *testing.T) {
	groups, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, [][]uint64{
		{1000, 2000, 3000},
		{4000},
		{5000, 6000},
		{7000, 8000, 9000},
		{10000},
	}, groups)
}

func TestParts(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, uint64(24000), got)

	got, err = Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, uint64(45000), got)
}

func TestFewerThanThreeElves(t *testing.T) {
	got, err := Part2("5\n\n7")
	require.NoError(t, err)
	assert.Equal(t, uint64(12), got)
}

func TestCRLF(t *testing.T) {
	got, err := Part1("1\r\n2\r\n\r\n4\r\n")
	require.NoError(t, err)
	assert.Equal(t, uint64(4), got)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "line 1, column 1: expected digit, found end of input"},
		{"word", "100\nabc", "line 1, column 4: expected end of input, found newline"},
		{"triple blank", "1\n\n\n2", "line 1, column 2: expected end of input, found newline"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Part1(tt.input)
			require.Error(t, err)
			assert.True(t, adverrors.IsErrorType(err, adverrors.ErrFileParse))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
