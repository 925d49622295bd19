// Package day10 solves "Cathode-Ray Tube".
package day10

import (
	"math"
	"strings"

	adverrors "github.com/aledsdavies/advent/internal/errors"
	"github.com/aledsdavies/advent/internal/invariant"
	"github.com/aledsdavies/advent/internal/puzzle"
	"github.com/aledsdavies/advent/internal/scan"
)

const number = 10

// Screen dimensions.
const (
	Width  = 40
	Height = 6
)

// Day is the calendar entry.
var Day = puzzle.Day{
	Number: number,
	Title:  "Cathode-Ray Tube",
	Part1:  puzzle.Solver(Part1),
	Part2:  puzzle.Solver(Part2),
}

// Op is a CPU instruction.
type Op int

const (
	Noop Op = iota
	Addx
)

// Cycles returns how many cycles op takes to complete.
func (op Op) Cycles() int {
	if op == Addx {
		return 2
	}
	return 1
}

// Instruction is one line of the program.
type Instruction struct {
	Op  Op
	Arg int
}

// Parse reads "noop" and "addx N" lines.
func Parse(input string) ([]Instruction, error) {
	s := scan.New(scan.Normalize(input))
	prog, err := scan.Lines(s, instruction)
	if err != nil {
		return nil, adverrors.NewParseError(number, err)
	}
	return prog, nil
}

func instruction(s *scan.Scanner) (Instruction, error) {
	switch {
	case s.Accept("noop"):
		return Instruction{Op: Noop}, nil
	case s.Accept("addx "):
		at := *s
		n, err := s.Int()
		if err != nil {
			return Instruction{}, err
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return Instruction{}, at.Errorf("32-bit operand")
		}
		return Instruction{Op: Addx, Arg: int(n)}, nil
	}
	return Instruction{}, s.Errorf("\"noop\" or \"addx\"")
}

// Trace runs prog and returns the value of X during each cycle; element 0 is
// cycle 1. X starts at 1 and an addx changes it after its second cycle.
func Trace(prog []Instruction) []int {
	x := 1
	var out []int
	for _, in := range prog {
		for range in.Op.Cycles() {
			out = append(out, x)
		}
		if in.Op == Addx {
			x += in.Arg
		}
	}
	return out
}

// SignalStrength sums cycle*X over cycles 20, 60, 100, ... that the program
// reaches.
func SignalStrength(trace []int) int {
	total := 0
	for cycle := 20; cycle <= len(trace); cycle += 40 {
		total += cycle * trace[cycle-1]
	}
	return total
}

// Render draws the screen. A pixel is lit when the 3-wide sprite centred on X
// covers the column being drawn in that cycle. Pixels after the program ends
// stay dark.
func Render(trace []int) string {
	var b strings.Builder
	b.Grow((Width + 1) * Height)
	for row := range Height {
		for col := range Width {
			cycle := row*Width + col
			if cycle < len(trace) && abs(trace[cycle]-col) <= 1 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	invariant.Postcondition(b.Len() == (Width+1)*Height, "raster has %d bytes, want %d", b.Len(), (Width+1)*Height)
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Part1 returns the sum of the six signal strengths.
func Part1(input string) (int, error) {
	prog, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return SignalStrength(Trace(prog)), nil
}

// Part2 returns the rendered screen.
func Part2(input string) (string, error) {
	prog, err := Parse(input)
	if err != nil {
		return "", err
	}
	return Render(Trace(prog)), nil
}
