package day05

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Built by concatenation so the trailing spaces of the drawing survive.
const sample = "    [D]    \n" +
	"[N] [C]    \n" +
	"[Z] [M] [P]\n" +
	" 1   2   3 \n" +
	"\n" +
	"move 1 from 2 to 1\n" +
	"move 3 from 1 to 3\n" +
	"move 2 from 2 to 1\n" +
	"move 1 from 1 to 2\n"

func TestParse(t *testing.T) {
	st, moves, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, Stacks{[]byte("ZN"), []byte("MCD"), []byte("P")}, st)
	assert.Equal(t, []Move{
		{Count: 1, From: 1, To: 0},
		{Count: 3, From: 0, To: 2},
		{Count: 2, From: 1, To: 0},
		{Count: 1, From: 0, To: 1},
	}, moves)
}

func TestParseWithoutTrailingSpaces(t *testing.T) {
	input := "    [D]\n[N] [C]\n[Z] [M] [P]\n 1   2   3\n\nmove 1 from 2 to 1"
	st, moves, err := Parse(input)
	require.NoError(t, err)
	assert.Equal(t, Stacks{[]byte("ZN"), []byte("MCD"), []byte("P")}, st)
	assert.Len(t, moves, 1)
}

func TestParts(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, "CMZ", got)

	got, err = Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, "MCD", got)
}

func TestApply(t *testing.T) {
	st := Stacks{[]byte("ABC"), nil}
	require.NoError(t, st.Apply(Move{Count: 2, From: 0, To: 1}, false))
	assert.Equal(t, Stacks{[]byte("A"), []byte("CB")}, st)

	st = Stacks{[]byte("ABC"), nil}
	require.NoError(t, st.Apply(Move{Count: 2, From: 0, To: 1}, true))
	assert.Equal(t, Stacks{[]byte("A"), []byte("BC")}, st)

	err := st.Apply(Move{Count: 2, From: 0, To: 1}, true)
	assert.EqualError(t, err, "cannot move 2 crates from stack 1 holding 1")
}

func TestApplyMoves(t *testing.T) {
	tests := []struct {
		name    string
		move    Move
		bulk    bool
		want    Stacks
		wantErr string
	}{
		{
			name: "onto itself one at a time",
			move: Move{Count: 2, From: 1, To: 1},
			want: Stacks{[]byte("ZN"), []byte("MCD"), []byte("P")},
		},
		{
			name: "onto itself in bulk",
			move: Move{Count: 3, From: 1, To: 1},
			bulk: true,
			want: Stacks{[]byte("ZN"), []byte("MCD"), []byte("P")},
		},
		{
			name:    "more than the stack holds",
			move:    Move{Count: 4, From: 1, To: 0},
			wantErr: "cannot move 4 crates from stack 2 holding 3",
		},
		{
			name:    "more than the stack holds onto itself",
			move:    Move{Count: 2, From: 2, To: 2},
			wantErr: "cannot move 2 crates from stack 3 holding 1",
		},
		{
			name:    "negative count",
			move:    Move{Count: -1, From: 0, To: 1},
			wantErr: "cannot move -1 crates from stack 1 holding 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Stacks{[]byte("ZN"), []byte("MCD"), []byte("P")}
			err := st.Apply(tt.move, tt.bulk)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, st)
		})
	}
}

func TestCrateCountTooLarge(t *testing.T) {
	input := "[A]\n 1\n\nmove 18446744073709551615 from 1 to 1"
	for _, part := range []func(string) (string, error){Part1, Part2} {
		var err error
		assert.NotPanics(t, func() { _, err = part(input) })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 4, column 6: expected crate count")
	}
}

func TestEmptyStackError(t *testing.T) {
	input := "[A]    \n 1   2 \n\nmove 1 from 2 to 1"
	_, err := Part1(input)
	assert.EqualError(t, err, "move 1: cannot move 1 crates from stack 2 holding 0")
}

func TestTopsSkipsEmptyStacks(t *testing.T) {
	assert.Equal(t, "AC", Stacks{[]byte("A"), nil, []byte("BC")}.Tops())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no numbered row", "[A]\n[B]", "line 2, column 4: expected numbered stack row, found end of input"},
		{"bad label", "[A] [B]\n 1   3\n\nmove 1 from 1 to 2", "line 2, column 6: expected stack number 2"},
		{"bad crate", "[A] (B)\n 1   2\n\nmove 1 from 1 to 2", "line 1, column 6: expected crate letter"},
		{"stack out of range", "[A]\n 1\n\nmove 1 from 1 to 2", "line 4, column 18: expected stack number between 1 and 1, found \"2\""},
		{"missing blank line", "[A]\n 1\nmove 1 from 1 to 1", "line 3, column 1: expected newline"},
		{"bad move", "[A]\n 1\n\nmove 1 to 1", "line 4, column 7: expected \" from \""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
