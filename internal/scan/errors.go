package scan

import (
	"fmt"
	"strings"
)

// Error is a syntax error at a position in the input.
type Error struct {
	Pos      Position
	Expected string // What the grammar wanted, e.g. `"move "` or "digit"
	Found    string // What was there instead
	Context  string // The full source line containing Pos
}

// Error formats the error with the offending line and a caret under the column.
func (e *Error) Error() string {
	msg := fmt.Sprintf("line %d, column %d: expected %s, found %s",
		e.Pos.Line, e.Pos.Column, e.Expected, e.Found)
	if e.Context == "" {
		return msg
	}
	pointer := strings.Repeat(" ", e.Pos.Column-1) + "^"
	return fmt.Sprintf("%s\n%s\n%s", msg, e.Context, pointer)
}

// Errorf builds an Error at the current position describing what was expected.
func (s *Scanner) Errorf(format string, args ...any) *Error {
	return s.errorAt(s.Pos(), fmt.Sprintf(format, args...), describe(s.Rest()))
}

func (s *Scanner) errorAt(pos Position, expected, found string) *Error {
	return &Error{
		Pos:      pos,
		Expected: expected,
		Found:    found,
		Context:  lineAt(s.src, pos.Offset),
	}
}

// describe names the token at the start of rest for error messages.
func describe(rest string) string {
	if rest == "" {
		return "end of input"
	}
	switch rest[0] {
	case '\n':
		return "newline"
	case ' ':
		return "space"
	}
	word := rest
	if i := strings.IndexAny(word, " \n,"); i > 0 {
		word = word[:i]
	}
	if len(word) > 16 {
		word = word[:16] + "..."
	}
	return fmt.Sprintf("%q", word)
}

// lineAt returns the source line containing offset.
func lineAt(src string, offset int) string {
	if offset > len(src) {
		offset = len(src)
	}
	start := strings.LastIndexByte(src[:offset], '\n') + 1
	end := strings.IndexByte(src[offset:], '\n')
	if end < 0 {
		return src[start:]
	}
	return src[start : offset+end]
}
