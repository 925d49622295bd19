// Package day02 solves "Rock Paper Scissors".
package day02

import (
	adverrors "github.com/aledsdavies/advent/internal/errors"
	"github.com/aledsdavies/advent/internal/puzzle"
	"github.com/aledsdavies/advent/internal/scan"
)

const number = 2

// Day is the calendar entry.
var Day = puzzle.Day{
	Number: number,
	Title:  "Rock Paper Scissors",
	Part1:  puzzle.Solver(Part1),
	Part2:  puzzle.Solver(Part2),
}

// Round is one line of the strategy guide. Both columns are 0, 1 or 2: the
// opponent's shape (rock, paper, scissors) and the second column, whose
// meaning depends on the part.
type Round struct {
	Them int
	Me   int
}

// Parse reads lines of the form "A X".
func Parse(input string) ([]Round, error) {
	s := scan.New(scan.Normalize(input))
	rounds, err := scan.Lines(s, round)
	if err != nil {
		return nil, adverrors.NewParseError(number, err)
	}
	return rounds, nil
}

func round(s *scan.Scanner) (Round, error) {
	them, err := letter(s, 'A', "'A', 'B' or 'C'")
	if err != nil {
		return Round{}, err
	}
	if err := s.Literal(" "); err != nil {
		return Round{}, err
	}
	me, err := letter(s, 'X', "'X', 'Y' or 'Z'")
	if err != nil {
		return Round{}, err
	}
	return Round{Them: them, Me: me}, nil
}

func letter(s *scan.Scanner, base byte, what string) (int, error) {
	b := s.Peek()
	if b < base || b > base+2 {
		return 0, s.Errorf("%s", what)
	}
	s.Skip(1)
	return int(b - base), nil
}

// outcome scores a game from my side: 0 loss, 3 draw, 6 win.
func outcome(them, me int) int {
	return (me - them + 4) % 3 * 3
}

// Part1 reads the second column as my shape.
func Part1(input string) (int, error) {
	rounds, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range rounds {
		total += r.Me + 1 + outcome(r.Them, r.Me)
	}
	return total, nil
}

// Part2 reads the second column as the outcome: lose, draw, win.
func Part2(input string) (int, error) {
	rounds, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range rounds {
		shape := (r.Them + r.Me + 2) % 3
		total += shape + 1 + r.Me*3
	}
	return total, nil
}
