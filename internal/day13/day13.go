// Package day13 solves "Distress Signal": pairs of nested list packets
// compared with the packet ordering.
package day13

import (
	"errors"
	"strings"

	adverrors "github.com/aledsdavies/advent/internal/errors"
	"github.com/aledsdavies/advent/internal/packet"
	"github.com/aledsdavies/advent/internal/puzzle"
	"github.com/aledsdavies/advent/internal/scan"
)

const number = 13

// Day is the calendar entry.
var Day = puzzle.Day{
	Number: number,
	Title:  "Distress Signal",
	Part1:  puzzle.Solver(Part1),
	Part2:  puzzle.Solver(Part2),
}

// Dividers are the two extra packets inserted before sorting.
var Dividers = [2]packet.Value{
	packet.List(packet.List(packet.Num(2))),
	packet.List(packet.List(packet.Num(6))),
}

// Pair is a left and right packet.
type Pair struct {
	Left, Right packet.Value
}

// InOrder reports whether the left packet does not sort after the right one.
func (p Pair) InOrder() bool {
	return packet.Compare(p.Left, p.Right) <= 0
}

// Parse reads pairs of packets, one per line, separated by blank lines.
func Parse(input string) ([]Pair, error) {
	s := scan.New(scan.Normalize(input))
	pairs, err := parse(s)
	if err != nil {
		return nil, adverrors.NewParseError(number, err)
	}
	return pairs, nil
}

func parse(s *scan.Scanner) ([]Pair, error) {
	var pairs []Pair
	for {
		left, err := packetLine(s)
		if err != nil {
			return nil, err
		}
		if err := s.Newline(); err != nil {
			return nil, err
		}
		right, err := packetLine(s)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{left, right})

		if s.AtEOF() {
			return pairs, nil
		}
		if err := s.Newline(); err != nil {
			return nil, err
		}
		if s.SkipBlankLines() == 0 {
			return nil, s.Errorf("blank line between pairs")
		}
	}
}

// packetLine parses one packet with the packet grammar and moves s past it.
// Parse failures are re-reported at their line and column in the whole input.
func packetLine(s *scan.Scanner) (packet.Value, error) {
	line := s.Rest()
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	v, tail, err := packet.ParsePrefix(line)
	if err != nil {
		var perr *packet.ParseError
		if errors.As(err, &perr) {
			s.Skip(perr.Offset)
			return packet.Value{}, s.Errorf("%s", perr.Expected)
		}
		return packet.Value{}, err
	}
	s.Skip(len(line) - len(tail))
	return v, nil
}

// OrderedPairs returns the 1-based indices of the pairs already in order.
func OrderedPairs(pairs []Pair) []int {
	var out []int
	for i, p := range pairs {
		if p.InOrder() {
			out = append(out, i+1)
		}
	}
	return out
}

// DecoderKey sorts every packet together with the dividers and multiplies
// the dividers' 1-based positions.
func DecoderKey(pairs []Pair) int {
	all := make([]packet.Value, 0, 2*len(pairs)+len(Dividers))
	for _, p := range pairs {
		all = append(all, p.Left, p.Right)
	}
	all = append(all, Dividers[:]...)
	packet.Sort(all)

	key := 1
	for _, d := range Dividers {
		for i, v := range all {
			if packet.Equal(v, d) {
				key *= i + 1
				break
			}
		}
	}
	return key
}

// Part1 sums the indices of the pairs in the right order.
func Part1(input string) (int, error) {
	pairs, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, i := range OrderedPairs(pairs) {
		sum += i
	}
	return sum, nil
}

// Part2 returns the decoder key.
func Part2(input string) (int, error) {
	pairs, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return DecoderKey(pairs), nil
}
