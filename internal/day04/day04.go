// Package day04 solves "Camp Cleanup".
package day04

import (
	adverrors "github.com/aledsdavies/advent/internal/errors"
	"github.com/aledsdavies/advent/internal/puzzle"
	"github.com/aledsdavies/advent/internal/scan"
)

const number = 4

// Day is the calendar entry.
var Day = puzzle.Day{
	Number: number,
	Title:  "Camp Cleanup",
	Part1:  puzzle.Solver(Part1),
	Part2:  puzzle.Solver(Part2),
}

// Range is an inclusive range of section IDs.
type Range struct {
	Lo, Hi uint64
}

// Contains reports whether o lies entirely within r.
func (r Range) Contains(o Range) bool {
	return r.Lo <= o.Lo && o.Hi <= r.Hi
}

// Overlaps reports whether r and o share at least one section.
func (r Range) Overlaps(o Range) bool {
	return r.Lo <= o.Hi && o.Lo <= r.Hi
}

// Pair is the two assignments on one line.
type Pair [2]Range

// Parse reads lines of the form "2-4,6-8".
func Parse(input string) ([]Pair, error) {
	s := scan.New(scan.Normalize(input))
	pairs, err := scan.Lines(s, pair)
	if err != nil {
		return nil, adverrors.NewParseError(number, err)
	}
	return pairs, nil
}

func pair(s *scan.Scanner) (Pair, error) {
	a, err := sectionRange(s)
	if err != nil {
		return Pair{}, err
	}
	if err := s.Literal(","); err != nil {
		return Pair{}, err
	}
	b, err := sectionRange(s)
	if err != nil {
		return Pair{}, err
	}
	return Pair{a, b}, nil
}

func sectionRange(s *scan.Scanner) (Range, error) {
	lo, err := s.Uint()
	if err != nil {
		return Range{}, err
	}
	if err := s.Literal("-"); err != nil {
		return Range{}, err
	}
	end := *s
	hi, err := s.Uint()
	if err != nil {
		return Range{}, err
	}
	if hi < lo {
		return Range{}, end.Errorf("section at least %d", lo)
	}
	return Range{lo, hi}, nil
}

func count(input string, pred func(Pair) bool) (int, error) {
	pairs, err := Parse(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range pairs {
		if pred(p) {
			n++
		}
	}
	return n, nil
}

// Part1 counts pairs where one range fully contains the other.
func Part1(input string) (int, error) {
	return count(input, func(p Pair) bool {
		return p[0].Contains(p[1]) || p[1].Contains(p[0])
	})
}

// Part2 counts pairs that overlap at all.
func Part2(input string) (int, error) {
	return count(input, func(p Pair) bool {
		return p[0].Overlaps(p[1])
	})
}
