// Package day01 solves "Calorie Counting": blank-line separated groups of
// calorie counts, one group per elf.
package day01

import (
	"slices"

	adverrors "github.com/aledsdavies/advent/internal/errors"
	"github.com/aledsdavies/advent/internal/puzzle"
	"github.com/aledsdavies/advent/internal/scan"
)

const number = 1

// Day is the calendar entry.
var Day = puzzle.Day{
	Number: number,
	Title:  "Calorie Counting",
	Part1:  puzzle.Solver(Part1),
	Part2:  puzzle.Solver(Part2),
}

// Parse reads the groups of calories carried by each elf.
func Parse(input string) ([][]uint64, error) {
	s := scan.New(scan.Normalize(input))
	groups, err := scan.SeparatedList(s, "\n\n", func(s *scan.Scanner) ([]uint64, error) {
		return scan.SeparatedList(s, "\n", (*scan.Scanner).Uint)
	})
	if err == nil {
		err = s.ExpectEOF()
	}
	if err != nil {
		return nil, adverrors.NewParseError(number, err)
	}
	return groups, nil
}

// totals returns each elf's total, largest first.
func totals(groups [][]uint64) []uint64 {
	out := make([]uint64, len(groups))
	for i, g := range groups {
		for _, c := range g {
			out[i] += c
		}
	}
	slices.Sort(out)
	slices.Reverse(out)
	return out
}

// Part1 returns the most calories carried by one elf.
func Part1(input string) (uint64, error) {
	groups, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return totals(groups)[0], nil
}

// Part2 returns the calories carried by the top three elves.
func Part2(input string) (uint64, error) {
	groups, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var sum uint64
	for _, t := range totals(groups)[:min(3, len(groups))] {
		sum += t
	}
	return sum, nil
}
