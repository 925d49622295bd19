// Package day03 solves "Rucksack Reorganization".
package day03

import (
	"fmt"
	"math/bits"

	adverrors "github.com/aledsdavies/advent/internal/errors"
	"github.com/aledsdavies/advent/internal/puzzle"
	"github.com/aledsdavies/advent/internal/scan"
)

const number = 3

// Day is the calendar entry.
var Day = puzzle.Day{
	Number: number,
	Title:  "Rucksack Reorganization",
	Part1:  puzzle.Solver(Part1),
	Part2:  puzzle.Solver(Part2),
}

// Parse returns one string of item letters per rucksack.
func Parse(input string) ([]string, error) {
	s := scan.New(scan.Normalize(input))
	sacks, err := scan.Lines(s, func(s *scan.Scanner) (string, error) {
		return s.TakeWhile1("item letter", scan.IsLetter)
	})
	if err != nil {
		return nil, adverrors.NewParseError(number, err)
	}
	return sacks, nil
}

// Priority maps a-z to 1-26 and A-Z to 27-52.
func Priority(item byte) int {
	if scan.IsLower(item) {
		return int(item-'a') + 1
	}
	return int(item-'A') + 27
}

// set is a bitset of priorities.
type set uint64

func items(s string) set {
	var out set
	for i := range len(s) {
		out |= 1 << Priority(s[i])
	}
	return out
}

// only returns the priority of the single item in x.
func (x set) only() (int, bool) {
	if bits.OnesCount64(uint64(x)) != 1 {
		return 0, false
	}
	return bits.TrailingZeros64(uint64(x)), true
}

// Part1 sums the priority of the item found in both compartments of each
// rucksack.
func Part1(input string) (int, error) {
	sacks, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for i, sack := range sacks {
		if len(sack)%2 != 0 {
			return 0, fmt.Errorf("rucksack %d has an odd number of items (%d)", i+1, len(sack))
		}
		half := len(sack) / 2
		p, ok := (items(sack[:half]) & items(sack[half:])).only()
		if !ok {
			return 0, fmt.Errorf("rucksack %d: compartments do not share exactly one item", i+1)
		}
		total += p
	}
	return total, nil
}

// Part2 sums the priority of the badge carried by every group of three.
func Part2(input string) (int, error) {
	sacks, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if len(sacks)%3 != 0 {
		return 0, fmt.Errorf("%d rucksacks cannot be split into groups of three", len(sacks))
	}
	total := 0
	for i := 0; i < len(sacks); i += 3 {
		p, ok := (items(sacks[i]) & items(sacks[i+1]) & items(sacks[i+2])).only()
		if !ok {
			return 0, fmt.Errorf("group %d does not share exactly one badge", i/3+1)
		}
		total += p
	}
	return total, nil
}
