// Package day05 solves "Supply Stacks": a drawing of crate stacks followed by
// a list of crane moves.
package day05

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	adverrors "github.com/aledsdavies/advent/internal/errors"
	"github.com/aledsdavies/advent/internal/invariant"
	"github.com/aledsdavies/advent/internal/puzzle"
	"github.com/aledsdavies/advent/internal/scan"
)

const number = 5

// Day is the calendar entry.
var Day = puzzle.Day{
	Number: number,
	Title:  "Supply Stacks",
	Part1:  puzzle.Solver(Part1),
	Part2:  puzzle.Solver(Part2),
}

// Move takes Count crates from stack From to stack To. Stacks are 0-based.
type Move struct {
	Count int
	From  int
	To    int
}

// Stacks holds the crates of each stack, bottom first.
type Stacks [][]byte

// Tops returns the letter on top of each non-empty stack.
func (st Stacks) Tops() string {
	var b strings.Builder
	for _, s := range st {
		if len(s) > 0 {
			b.WriteByte(s[len(s)-1])
		}
	}
	return b.String()
}

// Apply performs m. With bulk the crates keep their order, otherwise they are
// moved one at a time and end up reversed. Moving a stack onto itself leaves
// it as it was either way.
func (st Stacks) Apply(m Move, bulk bool) error {
	invariant.InRange(m.From, 0, len(st)-1, "source stack")
	invariant.InRange(m.To, 0, len(st)-1, "destination stack")
	from := st[m.From]
	if m.Count < 0 || m.Count > len(from) {
		return fmt.Errorf("cannot move %d crates from stack %d holding %d", m.Count, m.From+1, len(from))
	}
	if m.From == m.To {
		return nil
	}
	moved := from[len(from)-m.Count:]
	st[m.From] = from[:len(from)-m.Count]
	if bulk {
		st[m.To] = append(st[m.To], moved...)
		return nil
	}
	for i := len(moved) - 1; i >= 0; i-- {
		st[m.To] = append(st[m.To], moved[i])
	}
	return nil
}

// Parse reads the drawing, the numbered row, a blank line and the moves.
func Parse(input string) (Stacks, []Move, error) {
	s := scan.New(scan.Normalize(input))
	st, moves, err := parse(s)
	if err != nil {
		return nil, nil, adverrors.NewParseError(number, err)
	}
	return st, moves, nil
}

func parse(s *scan.Scanner) (Stacks, []Move, error) {
	st, err := drawing(s)
	if err != nil {
		return nil, nil, err
	}
	if err := s.Newline(); err != nil {
		return nil, nil, err
	}
	moves, err := scan.Lines(s, func(s *scan.Scanner) (Move, error) {
		return move(s, len(st))
	})
	if err != nil {
		return nil, nil, err
	}
	return st, moves, nil
}

// drawing reads crate rows up to and including the numbered row. Crate
// letters sit at byte offset 4*i+1 of each row.
func drawing(s *scan.Scanner) (Stacks, error) {
	type row struct {
		at   scan.Scanner
		text string
	}
	var rows []row
	for {
		if s.AtEOF() {
			return nil, s.Errorf("numbered stack row")
		}
		at := *s
		text := s.Line()
		trimmed := strings.TrimLeft(text, " ")
		if trimmed == "" || !scan.IsDigit(trimmed[0]) {
			rows = append(rows, row{at, text})
			continue
		}

		n, err := stackCount(&at, text)
		if err != nil {
			return nil, err
		}
		st := make(Stacks, n)
		for i := len(rows) - 1; i >= 0; i-- {
			if err := fillRow(st, &rows[i].at, rows[i].text); err != nil {
				return nil, err
			}
		}
		return st, nil
	}
}

// stackCount checks the numbered row reads 1 2 ... n and returns n.
func stackCount(at *scan.Scanner, text string) (int, error) {
	n := 0
	for col := 0; col < len(text); {
		if text[col] == ' ' {
			col++
			continue
		}
		end := col
		for end < len(text) && text[end] != ' ' {
			end++
		}
		n++
		if text[col:end] != strconv.Itoa(n) {
			at.Skip(col)
			return 0, at.Errorf("stack number %d", n)
		}
		col = end
	}
	return n, nil
}

func fillRow(st Stacks, at *scan.Scanner, text string) error {
	for i := range st {
		col := 4*i + 1
		if col >= len(text) || text[col] == ' ' {
			continue
		}
		if !scan.IsLetter(text[col]) || text[col-1] != '[' {
			at.Skip(col)
			return at.Errorf("crate letter")
		}
		st[i] = append(st[i], text[col])
	}
	if len(text) > 4*len(st) {
		at.Skip(4 * len(st))
		return at.Errorf("end of row")
	}
	return nil
}

func move(s *scan.Scanner, stacks int) (Move, error) {
	if err := s.Literal("move "); err != nil {
		return Move{}, err
	}
	at := *s
	count, err := s.Uint()
	if err != nil {
		return Move{}, err
	}
	if count > math.MaxInt {
		return Move{}, at.Errorf("crate count")
	}
	if err := s.Literal(" from "); err != nil {
		return Move{}, err
	}
	from, err := stackIndex(s, stacks)
	if err != nil {
		return Move{}, err
	}
	if err := s.Literal(" to "); err != nil {
		return Move{}, err
	}
	to, err := stackIndex(s, stacks)
	if err != nil {
		return Move{}, err
	}
	return Move{Count: int(count), From: from, To: to}, nil
}

func stackIndex(s *scan.Scanner, stacks int) (int, error) {
	at := *s
	n, err := s.Uint()
	if err != nil {
		return 0, err
	}
	if n < 1 || n > uint64(stacks) {
		return 0, at.Errorf("stack number between 1 and %d", stacks)
	}
	return int(n - 1), nil
}

func solve(input string, bulk bool) (string, error) {
	st, moves, err := Parse(input)
	if err != nil {
		return "", err
	}
	for i, m := range moves {
		if err := st.Apply(m, bulk); err != nil {
			return "", fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return st.Tops(), nil
}

// Part1 moves crates one at a time.
func Part1(input string) (string, error) {
	return solve(input, false)
}

// Part2 moves each group of crates at once.
func Part2(input string) (string, error) {
	return solve(input, true)
}
