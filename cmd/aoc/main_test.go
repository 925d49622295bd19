package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aledsdavies/advent/internal/calendar"
	"github.com/aledsdavies/advent/internal/config"
	adverrors "github.com/aledsdavies/advent/internal/errors"
)

const day13Sample = `[1,1,3,1,1]
[1,1,5,1,1]

[[1],[2,3,4]]
[[1],4]

[9]
[[8,7,6]]

[[4,4],4,4]
[[4,4],4,4,4]

[7,7,7,7]
[7,7,7]

[]
[3]

[[[]]]
[[]]

[1,[2,[3,[4,[5,6,7]]]],8,9]
[1,[2,[3,[4,[5,6,0]]]],8,9]
`

type result struct {
	stdout string
	err    error
}

// execute runs the CLI in a temp dir holding the given input files.
func execute(t *testing.T, files map[string]string, stdin string, args ...string) result {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	t.Chdir(dir)

	var stdout bytes.Buffer
	a := &app{
		stdin:    strings.NewReader(stdin),
		stdout:   &stdout,
		stderr:   &bytes.Buffer{},
		registry: calendar.Registry(),
		logger:   zap.NewNop(),
	}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	err := cmd.Execute()
	return result{stdout: stdout.String(), err: err}
}

func TestRunByNumber(t *testing.T) {
	r := execute(t, map[string]string{"inputs/day13.txt": day13Sample}, "", "run", "13")
	require.NoError(t, r.err)
	assert.Equal(t, "Part 1: 13\nPart 2: 140\n", r.stdout)
}

func TestRunByTitle(t *testing.T) {
	r := execute(t, map[string]string{"inputs/day02.txt": "A Y\nB X\nC Z\n"}, "", "run", "paper")
	require.NoError(t, r.err)
	assert.Equal(t, "Part 1: 15\nPart 2: 12\n", r.stdout)
}

func TestRunFallbackLayout(t *testing.T) {
	r := execute(t, map[string]string{"day06/input.txt": "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n"}, "", "run", "day06")
	require.NoError(t, r.err)
	assert.Equal(t, "Part 1: 7\nPart 2: 19\n", r.stdout)
}

func TestRunStdin(t *testing.T) {
	r := execute(t, nil, "2-4,6-8\n2-3,4-5\n5-7,7-9\n2-8,3-7\n6-6,4-6\n2-6,4-8\n", "run", "4", "--input", "-")
	require.NoError(t, r.err)
	assert.Equal(t, "Part 1: 2\nPart 2: 4\n", r.stdout)
}

func TestRunSeveralDaysPrintsHeaders(t *testing.T) {
	files := map[string]string{
		"inputs/day02.txt": "A Y\nB X\nC Z\n",
		"inputs/day13.txt": day13Sample,
	}
	r := execute(t, files, "", "run", "2", "13")
	require.NoError(t, r.err)
	assert.Equal(t,
		"Day 2: Rock Paper Scissors\nPart 1: 15\nPart 2: 12\n\n"+
			"Day 13: Distress Signal\nPart 1: 13\nPart 2: 140\n",
		r.stdout)
}

func TestRunUsesConfig(t *testing.T) {
	files := map[string]string{
		"aoc.yaml":     "input_dir: puzzles\ninput_pattern: \"%d.in\"\n",
		"puzzles/2.in": "A Y\n",
	}
	r := execute(t, files, "", "run", "2")
	require.NoError(t, r.err)
	assert.Equal(t, "Part 1: 8\nPart 2: 4\n", r.stdout)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		args    []string
		errType string
		want    string
	}{
		{"unknown day", nil, []string{"run", "25"}, adverrors.ErrDayNotFound, "Day '25' not found"},
		{"missing input", nil, []string{"run", "1"}, adverrors.ErrFileNotFound, "No input file for day 1"},
		{"bad input", map[string]string{"inputs/day02.txt": "A Q\n"}, []string{"run", "2"}, adverrors.ErrFileParse, "expected 'X', 'Y' or 'Z'"},
		{"solver failure", map[string]string{"inputs/day06.txt": "aaaa\n"}, []string{"run", "6"}, adverrors.ErrSolve, "no run of 4 distinct characters"},
		{"bad config", map[string]string{"aoc.yaml": "color: purple\n"}, []string{"run", "1"}, adverrors.ErrConfig, "color must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := execute(t, tt.files, "", tt.args...)
			require.Error(t, r.err)
			assert.True(t, adverrors.IsErrorType(r.err, tt.errType), "got %v", r.err)
			assert.Contains(t, r.err.Error(), tt.want)
		})
	}
}

func TestRunFlagValidation(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"run"}, "name at least one day"},
		{[]string{"run", "--all", "3"}, "--all cannot be combined"},
		{[]string{"run", "1", "2", "-i", "x.txt"}, "--input needs exactly one day"},
		{[]string{"watch", "1", "-i", "-"}, "watch needs a file"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			r := execute(t, nil, "", tt.args...)
			require.Error(t, r.err)
			assert.Contains(t, r.err.Error(), tt.want)
		})
	}
}

func TestList(t *testing.T) {
	r := execute(t, nil, "", "list", "--no-color")
	require.NoError(t, r.err)

	lines := strings.Split(strings.TrimSuffix(r.stdout, "\n"), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, " 1  Calorie Counting", lines[0])
	assert.Equal(t, "13  Distress Signal", lines[12])
}

func TestShouldUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ShouldUseColor(config.ColorAlways, false, &buf))
	assert.False(t, ShouldUseColor(config.ColorAlways, true, &buf))
	assert.False(t, ShouldUseColor(config.ColorNever, false, &buf))
	assert.False(t, ShouldUseColor(config.ColorAuto, false, &buf), "buffers are not terminals")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ShouldUseColor(config.ColorAlways, false, &buf))
}
