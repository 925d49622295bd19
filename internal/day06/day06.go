// Package day06 solves "Tuning Trouble".
package day06

import (
	"fmt"
	"strings"

	adverrors "github.com/aledsdavies/advent/internal/errors"
	"github.com/aledsdavies/advent/internal/puzzle"
	"github.com/aledsdavies/advent/internal/scan"
)

const number = 6

// Day is the calendar entry.
var Day = puzzle.Day{
	Number: number,
	Title:  "Tuning Trouble",
	Part1:  puzzle.Solver(Part1),
	Part2:  puzzle.Solver(Part2),
}

// Parse returns the datastream, which must be a single line of lowercase
// letters.
func Parse(input string) (string, error) {
	s := scan.New(strings.TrimSpace(scan.Normalize(input)))
	stream, err := s.TakeWhile1("lowercase letter", scan.IsLower)
	if err == nil {
		err = s.ExpectEOF()
	}
	if err != nil {
		return "", adverrors.NewParseError(number, err)
	}
	return stream, nil
}

// Marker returns the number of characters read when the last size
// characters are first all different.
func Marker(stream string, size int) (int, error) {
	var seen [26]int
	dupes := 0
	for i := range len(stream) {
		c := stream[i] - 'a'
		seen[c]++
		if seen[c] == 2 {
			dupes++
		}
		if i >= size {
			old := stream[i-size] - 'a'
			seen[old]--
			if seen[old] == 1 {
				dupes--
			}
		}
		if i >= size-1 && dupes == 0 {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("no run of %d distinct characters in %d characters", size, len(stream))
}

func solve(input string, size int) (int, error) {
	stream, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Marker(stream, size)
}

// Part1 finds the start-of-packet marker.
func Part1(input string) (int, error) {
	return solve(input, 4)
}

// Part2 finds the start-of-message marker.
func Part2(input string) (int, error) {
	return solve(input, 14)
}
