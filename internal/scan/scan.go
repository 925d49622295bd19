// Package scan is a small byte cursor used to write the puzzle grammars as
// recursive-descent parsers. It tracks line and column so that every failure
// can point at the offending input, and offers a handful of combinators
// (SeparatedList, TakeWhile, Uint, Int) that cover the line-oriented formats.
package scan

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a location in the input. Line and Column are 1-based.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Scanner walks over an input string.
type Scanner struct {
	src  string
	pos  int
	line int
	col  int
}

// New returns a scanner positioned at the start of src.
func New(src string) *Scanner {
	return &Scanner{src: src, line: 1, col: 1}
}

// Normalize converts CRLF line endings to LF and drops trailing newlines.
// Leading and trailing spaces on a line are significant in some grammars
// (crate drawings), so only newlines are trimmed.
func Normalize(input string) string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	return strings.TrimRight(input, "\n")
}

// Pos returns the current position.
func (s *Scanner) Pos() Position {
	return Position{Line: s.line, Column: s.col, Offset: s.pos}
}

// AtEOF reports whether all input has been consumed.
func (s *Scanner) AtEOF() bool {
	return s.pos >= len(s.src)
}

// Peek returns the next byte without consuming it, or 0 at EOF.
func (s *Scanner) Peek() byte {
	if s.AtEOF() {
		return 0
	}
	return s.src[s.pos]
}

// Rest returns the unconsumed input.
func (s *Scanner) Rest() string {
	return s.src[s.pos:]
}

// Skip consumes n bytes. It is used to splice in sub-parsers that work on
// Rest() and report how much they consumed.
func (s *Scanner) Skip(n int) {
	end := min(s.pos+n, len(s.src))
	for s.pos < end {
		if s.src[s.pos] == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
		s.pos++
	}
}

// HasPrefix reports whether the unconsumed input starts with lit.
func (s *Scanner) HasPrefix(lit string) bool {
	return strings.HasPrefix(s.Rest(), lit)
}

// Accept consumes lit if the input starts with it.
func (s *Scanner) Accept(lit string) bool {
	if !s.HasPrefix(lit) {
		return false
	}
	s.Skip(len(lit))
	return true
}

// Literal consumes lit or fails.
func (s *Scanner) Literal(lit string) error {
	if !s.Accept(lit) {
		return s.Errorf("%q", lit)
	}
	return nil
}

// Newline consumes a single '\n'.
func (s *Scanner) Newline() error {
	if !s.Accept("\n") {
		return s.Errorf("newline")
	}
	return nil
}

// SkipBlankLines consumes consecutive newlines and returns how many it skipped.
func (s *Scanner) SkipBlankLines() int {
	n := 0
	for s.Accept("\n") {
		n++
	}
	return n
}

// TakeWhile consumes bytes while pred holds and returns them.
func (s *Scanner) TakeWhile(pred func(byte) bool) string {
	start := s.pos
	for !s.AtEOF() && pred(s.src[s.pos]) {
		s.Skip(1)
	}
	return s.src[start:s.pos]
}

// TakeWhile1 is TakeWhile that requires at least one byte. what names the
// expected token in the error.
func (s *Scanner) TakeWhile1(what string, pred func(byte) bool) (string, error) {
	if s.AtEOF() || !pred(s.src[s.pos]) {
		return "", s.Errorf("%s", what)
	}
	return s.TakeWhile(pred), nil
}

// Line consumes the rest of the current line and its terminating newline, if
// any, returning the line without the newline.
func (s *Scanner) Line() string {
	text := s.TakeWhile(func(b byte) bool { return b != '\n' })
	s.Accept("\n")
	return text
}

// Uint consumes an unsigned decimal integer.
func (s *Scanner) Uint() (uint64, error) {
	start := s.Pos()
	digits, err := s.TakeWhile1("digit", IsDigit)
	if err != nil {
		return 0, err
	}
	n, perr := strconv.ParseUint(digits, 10, 64)
	if perr != nil {
		return 0, s.errorAt(start, "integer in range", digits)
	}
	return n, nil
}

// Int consumes an optionally negative decimal integer.
func (s *Scanner) Int() (int64, error) {
	start := s.Pos()
	neg := s.Accept("-")
	digits, err := s.TakeWhile1("digit", IsDigit)
	if err != nil {
		return 0, err
	}
	if neg {
		digits = "-" + digits
	}
	n, perr := strconv.ParseInt(digits, 10, 64)
	if perr != nil {
		return 0, s.errorAt(start, "integer in range", digits)
	}
	return n, nil
}

// ExpectEOF fails if any input remains.
func (s *Scanner) ExpectEOF() error {
	if !s.AtEOF() {
		return s.Errorf("end of input")
	}
	return nil
}

// SeparatedList parses item (sep item)*. A separator is only committed to if
// the item after it consumes input; otherwise the scanner is rewound to before
// the separator and the list ends there. This lets "\n" separated items sit
// inside "\n\n" separated groups.
func SeparatedList[T any](s *Scanner, sep string, item func(*Scanner) (T, error)) ([]T, error) {
	first, err := item(s)
	if err != nil {
		return nil, err
	}
	out := []T{first}
	for {
		mark := *s
		if !s.Accept(sep) {
			return out, nil
		}
		afterSep := s.pos
		v, err := item(s)
		if err != nil {
			if s.pos == afterSep {
				*s = mark
				return out, nil
			}
			return nil, err
		}
		out = append(out, v)
	}
}

// Lines parses one item per line until the input runs out. It never
// backtracks, so a malformed line is reported where it goes wrong rather than
// as leftover input.
func Lines[T any](s *Scanner, item func(*Scanner) (T, error)) ([]T, error) {
	var out []T
	for {
		v, err := item(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		if s.AtEOF() {
			return out, nil
		}
		if err := s.Newline(); err != nil {
			return nil, err
		}
	}
}

// IsDigit reports whether b is an ASCII digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsLower reports whether b is an ASCII lowercase letter.
func IsLower(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// IsLetter reports whether b is an ASCII letter.
func IsLetter(b byte) bool {
	return IsLower(b) || (b >= 'A' && b <= 'Z')
}
