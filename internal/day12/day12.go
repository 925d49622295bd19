// Package day12 solves "Hill Climbing Algorithm" with a breadth-first search
// over the heightmap.
package day12

import (
	"errors"

	adverrors "github.com/aledsdavies/advent/internal/errors"
	"github.com/aledsdavies/advent/internal/grid"
	"github.com/aledsdavies/advent/internal/puzzle"
	"github.com/aledsdavies/advent/internal/scan"
)

const number = 12

// Day is the calendar entry.
var Day = puzzle.Day{
	Number: number,
	Title:  "Hill Climbing Algorithm",
	Part1:  puzzle.Solver(Part1),
	Part2:  puzzle.Solver(Part2),
}

// ErrUnreachable is returned when no path reaches the target.
var ErrUnreachable = errors.New("no path to the target")

// Heightmap is the parsed map. Heights run from 0 ('a') to 25 ('z').
type Heightmap struct {
	Heights grid.Grid[int8]
	Start   grid.Pt
	End     grid.Pt
}

// Parse reads the map. S marks the start at height a, E the end at height z.
func Parse(input string) (Heightmap, error) {
	s := scan.New(scan.Normalize(input))
	hm, err := parse(s)
	if err != nil {
		return Heightmap{}, adverrors.NewParseError(number, err)
	}
	return hm, nil
}

func parse(s *scan.Scanner) (Heightmap, error) {
	var (
		hm               Heightmap
		sawStart, sawEnd bool
		width            int
	)
	rows, err := scan.Lines(s, func(s *scan.Scanner) ([]int8, error) {
		y := s.Pos().Line - 1
		var row []int8
		for !s.AtEOF() && s.Peek() != '\n' {
			x := len(row)
			switch b := s.Peek(); {
			case scan.IsLower(b):
				row = append(row, int8(b-'a'))
			case b == 'S' && !sawStart:
				sawStart, hm.Start = true, grid.Pt{X: x, Y: y}
				row = append(row, 0)
			case b == 'E' && !sawEnd:
				sawEnd, hm.End = true, grid.Pt{X: x, Y: y}
				row = append(row, 'z'-'a')
			default:
				return nil, s.Errorf("height a-z, or a single S and E")
			}
			s.Skip(1)
		}
		switch {
		case len(row) == 0:
			return nil, s.Errorf("height a-z")
		case width == 0:
			width = len(row)
		case len(row) != width:
			return nil, s.Errorf("row of %d squares", width)
		}
		return row, nil
	})
	if err != nil {
		return Heightmap{}, err
	}
	if !sawStart || !sawEnd {
		return Heightmap{}, s.Errorf("map with both S and E")
	}
	hm.Heights = grid.Grid[int8](rows)
	return hm, nil
}

// Steps returns the fewest steps from any square where from reports true to
// to, moving to a neighbour at most one higher each step.
func (hm Heightmap) Steps(from func(p grid.Pt) bool, to grid.Pt) (int, error) {
	// Search backwards from the target so every start square is handled by
	// one pass; a reverse step may drop by at most one.
	dist := grid.Make[int](len(hm.Heights[0]), len(hm.Heights))
	for y := range dist {
		for x := range dist[y] {
			dist[y][x] = -1
		}
	}
	dist.Set(to, 0)
	queue := []grid.Pt{to}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if from(p) {
			return dist.At(p), nil
		}
		hm.Heights.ForImmediateNeighbors(p, func(n grid.Pt) bool {
			if dist.At(n) < 0 && hm.Heights.At(p)-hm.Heights.At(n) <= 1 {
				dist.Set(n, dist.At(p)+1)
				queue = append(queue, n)
			}
			return true
		})
	}
	return 0, ErrUnreachable
}

// Part1 climbs from S to E.
func Part1(input string) (int, error) {
	hm, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return hm.Steps(func(p grid.Pt) bool { return p == hm.Start }, hm.End)
}

// Part2 climbs to E from the best square at height a.
func Part2(input string) (int, error) {
	hm, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return hm.Steps(func(p grid.Pt) bool { return hm.Heights.At(p) == 0 }, hm.End)
}
