package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *AdventError
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrDayNotFound, "Day 'x' not found"),
			want: "DAY_NOT_FOUND: Day 'x' not found",
		},
		{
			name: "with cause",
			err:  NewInputError("inputs/day01.txt", fs.ErrPermission),
			want: "INPUT_READ_ERROR: Failed to read input 'inputs/day01.txt' (caused by: permission denied)",
		},
		{
			name: "solve error",
			err:  NewSolveError(6, 2, fmt.Errorf("no marker found")),
			want: "SOLVE_ERROR: Day 6 part 2 failed (caused by: no marker found)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestUnwrap(t *testing.T) {
	err := NewInputError("inputs/day02.txt", fs.ErrNotExist)
	assert.True(t, stderrors.Is(err, fs.ErrNotExist))
}

func TestContext(t *testing.T) {
	err := NewDayNotFoundError("dsitress", []string{"13 Distress Signal"})

	query, ok := err.GetContext("query")
	require.True(t, ok)
	assert.Equal(t, "dsitress", query)

	suggestions, ok := err.GetContext("suggestions")
	require.True(t, ok)
	assert.Equal(t, []string{"13 Distress Signal"}, suggestions)

	_, ok = err.GetContext("missing")
	assert.False(t, ok)
}

func TestIsErrorType(t *testing.T) {
	base := NewParseError(13, fmt.Errorf("unexpected ']'"))
	wrapped := fmt.Errorf("running: %w", base)

	assert.True(t, IsErrorType(base, ErrFileParse))
	assert.True(t, IsErrorType(wrapped, ErrFileParse))
	assert.False(t, IsErrorType(wrapped, ErrSolve))
	assert.False(t, IsErrorType(fmt.Errorf("plain"), ErrFileParse))
	assert.False(t, IsErrorType(nil, ErrFileParse))
}
