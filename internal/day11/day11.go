// Package day11 solves "Monkey in the Middle".
package day11

import (
	"fmt"
	"math/bits"
	"slices"

	adverrors "github.com/aledsdavies/advent/internal/errors"
	"github.com/aledsdavies/advent/internal/invariant"
	"github.com/aledsdavies/advent/internal/puzzle"
	"github.com/aledsdavies/advent/internal/scan"
)

const number = 11

// Day is the calendar entry.
var Day = puzzle.Day{
	Number: number,
	Title:  "Monkey in the Middle",
	Part1:  puzzle.Solver(Part1),
	Part2:  puzzle.Solver(Part2),
}

// OpKind is the arithmetic a monkey applies to a worry level.
type OpKind int

const (
	OpAdd OpKind = iota
	OpMul
	OpSquare
)

// Operation computes a new worry level from the old one.
type Operation struct {
	Kind    OpKind
	Operand uint64
}

// Apply returns the new worry level, or false if it does not fit in 64 bits.
func (op Operation) Apply(old uint64) (uint64, bool) {
	switch op.Kind {
	case OpAdd:
		v, carry := bits.Add64(old, op.Operand, 0)
		return v, carry == 0
	case OpMul:
		hi, lo := bits.Mul64(old, op.Operand)
		return lo, hi == 0
	case OpSquare:
		hi, lo := bits.Mul64(old, old)
		return lo, hi == 0
	}
	panic(fmt.Sprintf("unknown operation kind %d", op.Kind))
}

func (op Operation) String() string {
	switch op.Kind {
	case OpAdd:
		return fmt.Sprintf("old + %d", op.Operand)
	case OpMul:
		return fmt.Sprintf("old * %d", op.Operand)
	}
	return "old * old"
}

// Monkey is one monkey's description and its current items.
type Monkey struct {
	Items   []uint64
	Op      Operation
	Divisor uint64
	IfTrue  int
	IfFalse int
}

// Target returns the monkey that receives an item with worry level w.
func (m Monkey) Target(w uint64) int {
	if w%m.Divisor == 0 {
		return m.IfTrue
	}
	return m.IfFalse
}

// Parse reads the blank-line separated monkey descriptions.
func Parse(input string) ([]Monkey, error) {
	s := scan.New(scan.Normalize(input))
	monkeys, err := parse(s)
	if err != nil {
		return nil, adverrors.NewParseError(number, err)
	}
	return monkeys, nil
}

func parse(s *scan.Scanner) ([]Monkey, error) {
	type target struct {
		at  scan.Scanner
		idx int
	}
	var (
		monkeys []Monkey
		targets []target
	)
	for {
		if err := s.Literal("Monkey "); err != nil {
			return nil, err
		}
		at := *s
		id, err := s.Uint()
		if err != nil {
			return nil, err
		}
		if id != uint64(len(monkeys)) {
			return nil, at.Errorf("monkey %d", len(monkeys))
		}
		if err := s.Literal(":\n  Starting items: "); err != nil {
			return nil, err
		}
		items, err := scan.SeparatedList(s, ", ", (*scan.Scanner).Uint)
		if err != nil {
			return nil, err
		}
		if err := s.Literal("\n  Operation: new = old "); err != nil {
			return nil, err
		}
		op, err := operation(s)
		if err != nil {
			return nil, err
		}
		if err := s.Literal("\n  Test: divisible by "); err != nil {
			return nil, err
		}
		at = *s
		div, err := s.Uint()
		if err != nil {
			return nil, err
		}
		if div == 0 {
			return nil, at.Errorf("non-zero divisor")
		}

		m := Monkey{Items: items, Op: op, Divisor: div}
		for _, branch := range []struct {
			prefix string
			dst    *int
		}{
			{"\n    If true: throw to monkey ", &m.IfTrue},
			{"\n    If false: throw to monkey ", &m.IfFalse},
		} {
			if err := s.Literal(branch.prefix); err != nil {
				return nil, err
			}
			at := *s
			idx, err := s.Uint()
			if err != nil {
				return nil, err
			}
			if idx == id {
				return nil, at.Errorf("another monkey")
			}
			if idx > 1<<20 {
				return nil, at.Errorf("monkey number")
			}
			*branch.dst = int(idx)
			targets = append(targets, target{at, *branch.dst})
		}
		monkeys = append(monkeys, m)

		if s.AtEOF() {
			break
		}
		if err := s.Literal("\n\n"); err != nil {
			return nil, err
		}
	}

	for _, t := range targets {
		if t.idx >= len(monkeys) {
			return nil, t.at.Errorf("monkey between 0 and %d", len(monkeys)-1)
		}
	}
	return monkeys, nil
}

func operation(s *scan.Scanner) (Operation, error) {
	var kind OpKind
	switch {
	case s.Accept("+ "):
		kind = OpAdd
	case s.Accept("* "):
		kind = OpMul
	default:
		return Operation{}, s.Errorf("\"+\" or \"*\"")
	}
	if s.Accept("old") {
		if kind == OpAdd {
			// old + old is old * 2
			return Operation{Kind: OpMul, Operand: 2}, nil
		}
		return Operation{Kind: OpSquare}, nil
	}
	n, err := s.Uint()
	if err != nil {
		return Operation{}, s.Errorf("number or \"old\"")
	}
	return Operation{Kind: kind, Operand: n}, nil
}

// Simulate plays the given number of rounds and returns how many items each
// monkey inspected. With relief the worry level is divided by three after
// each inspection; without it levels are kept modulo the product of the
// divisors, which preserves every divisibility test. Monkeys take turns in
// order, so an item thrown to a later monkey is inspected again the same
// round.
func Simulate(monkeys []Monkey, rounds int, relief bool) ([]int, error) {
	invariant.Precondition(len(monkeys) > 0, "no monkeys to simulate")

	ms := make([]Monkey, len(monkeys))
	modulus := uint64(1)
	for i, m := range monkeys {
		ms[i] = m
		ms[i].Items = slices.Clone(m.Items)
		if relief {
			continue
		}
		var ok bool
		if modulus, ok = lcm(modulus, m.Divisor); !ok {
			return nil, fmt.Errorf("monkey %d: least common multiple of the divisors overflows 64 bits", i)
		}
	}

	counts := make([]int, len(ms))
	for round := range rounds {
		for i := range ms {
			m := &ms[i]
			for _, item := range m.Items {
				counts[i]++
				w := item
				if !relief {
					w %= modulus
				}
				w, ok := m.Op.Apply(w)
				if !ok {
					return nil, fmt.Errorf("round %d: monkey %d worry level overflows with %s", round+1, i, m.Op)
				}
				if relief {
					w /= 3
				} else {
					w %= modulus
				}
				dst := m.Target(w)
				invariant.InRange(dst, 0, len(ms)-1, "throw target")
				ms[dst].Items = append(ms[dst].Items, w)
			}
			m.Items = m.Items[:0]
		}
	}
	return counts, nil
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm reports false when the result does not fit in 64 bits.
func lcm(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a/gcd(a, b), b)
	return lo, hi == 0
}

// MonkeyBusiness multiplies the two highest inspection counts.
func MonkeyBusiness(counts []int) int {
	sorted := slices.Clone(counts)
	slices.Sort(sorted)
	slices.Reverse(sorted)
	if len(sorted) < 2 {
		return sorted[0]
	}
	return sorted[0] * sorted[1]
}

func solve(input string, rounds int, relief bool) (int, error) {
	monkeys, err := Parse(input)
	if err != nil {
		return 0, err
	}
	counts, err := Simulate(monkeys, rounds, relief)
	if err != nil {
		return 0, err
	}
	return MonkeyBusiness(counts), nil
}

// Part1 plays 20 rounds with relief.
func Part1(input string) (int, error) {
	return solve(input, 20, true)
}

// Part2 plays 10000 rounds without relief.
func Part2(input string) (int, error) {
	return solve(input, 10000, false)
}
