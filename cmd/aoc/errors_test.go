package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	adverrors "github.com/aledsdavies/advent/internal/errors"
)

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "plain",
			err:  errors.New("boom"),
			want: "Error: boom\n",
		},
		{
			name: "day not found",
			err:  adverrors.NewDayNotFoundError("distres", []string{"13 Distress Signal", "6 Tuning Trouble"}),
			want: "Error: Day 'distres' not found\n" +
				"  Did you mean:\n" +
				"    13 Distress Signal\n" +
				"    6 Tuning Trouble\n" +
				"Hint: Run 'aoc list' to see every day.\n",
		},
		{
			name: "file not found",
			err:  adverrors.NewFileNotFoundError(3, []string{"inputs/day03.txt", "day03/input.txt"}),
			want: "Error: No input file for day 3\n" +
				"  Tried:\n" +
				"    inputs/day03.txt\n" +
				"    day03/input.txt\n" +
				"Hint: Save the puzzle input to one of the paths above, or pass --input PATH.\n",
		},
		{
			name: "parse error keeps snippet aligned",
			err:  adverrors.NewParseError(4, errors.New("line 1, column 4: expected \",\", found \";\"\n2-4;6-8\n   ^")),
			want: "Error: Failed to parse input for day 4\n" +
				"\n" +
				"  line 1, column 4: expected \",\", found \";\"\n" +
				"  2-4;6-8\n" +
				"     ^\n" +
				"Hint: Check the input was saved completely, without extra text.\n",
		},
		{
			name: "solve error has no hint",
			err:  adverrors.NewSolveError(6, 1, errors.New("no marker")),
			want: "Error: Day 6 part 1 failed\n\n  no marker\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			FormatError(&buf, tt.err, false)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestFormatErrorColor(t *testing.T) {
	var buf bytes.Buffer
	FormatError(&buf, errors.New("boom"), true)
	assert.Equal(t, ColorRed+"Error: "+ColorReset+"boom\n", buf.String())
}

func TestFormatNilError(t *testing.T) {
	var buf bytes.Buffer
	FormatError(&buf, nil, true)
	assert.Empty(t, buf.String())
}
