// Package day09 solves "Rope Bridge".
package day09

import (
	adverrors "github.com/aledsdavies/advent/internal/errors"
	"github.com/aledsdavies/advent/internal/grid"
	"github.com/aledsdavies/advent/internal/invariant"
	"github.com/aledsdavies/advent/internal/puzzle"
	"github.com/aledsdavies/advent/internal/scan"
)

const number = 9

// Day is the calendar entry.
var Day = puzzle.Day{
	Number: number,
	Title:  "Rope Bridge",
	Part1:  puzzle.Solver(Part1),
	Part2:  puzzle.Solver(Part2),
}

// Motion moves the head Steps times in direction Dir.
type Motion struct {
	Dir   grid.Direction
	Steps int
}

var directions = map[byte]grid.Direction{
	'U': grid.Up,
	'R': grid.Right,
	'D': grid.Down,
	'L': grid.Left,
}

// Parse reads lines like "R 4".
func Parse(input string) ([]Motion, error) {
	s := scan.New(scan.Normalize(input))
	motions, err := scan.Lines(s, motion)
	if err != nil {
		return nil, adverrors.NewParseError(number, err)
	}
	return motions, nil
}

func motion(s *scan.Scanner) (Motion, error) {
	d, ok := directions[s.Peek()]
	if !ok {
		return Motion{}, s.Errorf("one of U, R, D, L")
	}
	s.Skip(1)
	if err := s.Literal(" "); err != nil {
		return Motion{}, err
	}
	at := *s
	n, err := s.Uint()
	if err != nil {
		return Motion{}, err
	}
	if n > 1<<31 {
		return Motion{}, at.Errorf("step count below %d", 1<<31)
	}
	return Motion{Dir: d, Steps: int(n)}, nil
}

// Rope is a chain of knots; knot 0 is the head.
type Rope []grid.Pt

// NewRope returns a rope of n knots at the origin.
func NewRope(n int) Rope {
	invariant.Precondition(n >= 2, "a rope needs at least 2 knots, got %d", n)
	return make(Rope, n)
}

// Step moves the head one square in d and lets every following knot catch
// up with the one ahead of it.
func (r Rope) Step(d grid.Direction) {
	r[0] = r[0].Add(d.Delta())
	for i := 1; i < len(r); i++ {
		if r[i].Touching(r[i-1]) {
			break
		}
		r[i] = r[i].Toward(r[i-1])
		invariant.Invariant(r[i].Touching(r[i-1]), "knot %d at %v detached from %v", i, r[i], r[i-1])
	}
}

// Tail returns the last knot.
func (r Rope) Tail() grid.Pt {
	return r[len(r)-1]
}

// TailVisits simulates a rope of the given length and counts the distinct
// squares its tail visits, including the start.
func TailVisits(motions []Motion, knots int) int {
	r := NewRope(knots)
	seen := map[grid.Pt]bool{r.Tail(): true}
	for _, m := range motions {
		for range m.Steps {
			r.Step(m.Dir)
			seen[r.Tail()] = true
		}
	}
	return len(seen)
}

func solve(input string, knots int) (int, error) {
	motions, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return TailVisits(motions, knots), nil
}

// Part1 follows a two-knot rope.
func Part1(input string) (int, error) {
	return solve(input, 2)
}

// Part2 follows a ten-knot rope.
func Part2(input string) (int, error) {
	return solve(input, 10)
}
