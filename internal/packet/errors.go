package packet

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of parsing errors
type ErrorType int

const (
	ErrorUnexpected ErrorType = iota // A byte the grammar does not allow here
	ErrorMissing                     // Input ended early
	ErrorInvalid                     // Well-formed but out of range
)

func (e ErrorType) String() string {
	switch e {
	case ErrorUnexpected:
		return "unexpected input"
	case ErrorMissing:
		return "unexpected end of input"
	case ErrorInvalid:
		return "invalid value"
	default:
		return "syntax error"
	}
}

// ParseError is a syntax error in packet text.
type ParseError struct {
	Type     ErrorType
	Input    string
	Offset   int    // Byte offset of the error in Input
	Expected string // What the grammar wanted at Offset
	OpenedAt int    // Offset of the innermost unclosed '[' for end-of-input errors, or -1
}

func newError(typ ErrorType, input string, offset int, expected string) *ParseError {
	return &ParseError{
		Type:     typ,
		Input:    input,
		Offset:   offset,
		Expected: expected,
		OpenedAt: -1,
	}
}

// withOpenedAt records the innermost open bracket on end-of-input errors.
func withOpenedAt(err error, open int) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Type == ErrorMissing && pe.OpenedAt < 0 {
		pe.OpenedAt = open
	}
	return err
}

// Found describes the input at the error offset.
func (e *ParseError) Found() string {
	if e.Offset >= len(e.Input) {
		return "end of input"
	}
	return fmt.Sprintf("%q", e.Input[e.Offset])
}

// Error formats the error with the packet text and a caret at the offset.
func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at offset %d: expected %s, found %s",
		e.Type, e.Offset, e.Expected, e.Found())
	if e.OpenedAt >= 0 {
		fmt.Fprintf(&b, " (list opened at offset %d)", e.OpenedAt)
	}
	b.WriteString("\n")
	b.WriteString(e.Input)
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", e.Offset))
	b.WriteString("^")
	return b.String()
}
