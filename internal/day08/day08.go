// Package day08 solves "Treetop Tree House".
package day08

import (
	adverrors "github.com/aledsdavies/advent/internal/errors"
	"github.com/aledsdavies/advent/internal/grid"
	"github.com/aledsdavies/advent/internal/puzzle"
	"github.com/aledsdavies/advent/internal/scan"
)

const number = 8

// Day is the calendar entry.
var Day = puzzle.Day{
	Number: number,
	Title:  "Treetop Tree House",
	Part1:  puzzle.Solver(Part1),
	Part2:  puzzle.Solver(Part2),
}

// Parse reads a rectangular grid of tree heights 0-9.
func Parse(input string) (grid.Grid[int8], error) {
	s := scan.New(scan.Normalize(input))
	g, err := parse(s)
	if err != nil {
		return nil, adverrors.NewParseError(number, err)
	}
	return g, nil
}

func parse(s *scan.Scanner) (grid.Grid[int8], error) {
	var width int
	rows, err := scan.Lines(s, func(s *scan.Scanner) ([]int8, error) {
		at := *s
		digits, err := s.TakeWhile1("tree height", scan.IsDigit)
		if err != nil {
			return nil, err
		}
		if width == 0 {
			width = len(digits)
		} else if len(digits) != width {
			at.Skip(min(width, len(digits)))
			return nil, at.Errorf("row of %d trees", width)
		}
		row := make([]int8, len(digits))
		for i := range len(digits) {
			row[i] = int8(digits[i] - '0')
		}
		return row, nil
	})
	if err != nil {
		return nil, err
	}
	return grid.Grid[int8](rows), nil
}

// lowerRun returns how many trees in line are seen before one at least h
// tall blocks the view, counting the blocker, and whether the line was clear
// all the way to the edge.
func lowerRun(line []int8, h int8) (seen int, clear bool) {
	for _, t := range line {
		seen++
		if t >= h {
			return seen, false
		}
	}
	return seen, true
}

// Visible reports whether the tree at p can be seen from outside the grid.
func Visible(g grid.Grid[int8], p grid.Pt) bool {
	for _, d := range grid.Directions {
		if _, clear := lowerRun(g.Walk(p, d), g.At(p)); clear {
			return true
		}
	}
	return false
}

// ScenicScore multiplies the viewing distances in all four directions.
func ScenicScore(g grid.Grid[int8], p grid.Pt) int {
	score := 1
	for _, d := range grid.Directions {
		seen, _ := lowerRun(g.Walk(p, d), g.At(p))
		score *= seen
	}
	return score
}

func each(g grid.Grid[int8], f func(p grid.Pt)) {
	for y := range g {
		for x := range g[y] {
			f(grid.Pt{X: x, Y: y})
		}
	}
}

// Part1 counts the trees visible from outside the grid.
func Part1(input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	n := 0
	each(g, func(p grid.Pt) {
		if Visible(g, p) {
			n++
		}
	})
	return n, nil
}

// Part2 returns the highest scenic score.
func Part2(input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	best := 0
	each(g, func(p grid.Pt) {
		best = max(best, ScenicScore(g, p))
	})
	return best, nil
}
