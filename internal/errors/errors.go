package errors

import (
	stderrors "errors"
	"fmt"
)

// Error types for different categories of failures
const (
	// Input errors
	ErrInputRead    = "INPUT_READ_ERROR"
	ErrFileNotFound = "FILE_NOT_FOUND"
	ErrFileParse    = "FILE_PARSE_ERROR"

	// Calendar errors
	ErrDayNotFound = "DAY_NOT_FOUND"

	// Solver errors
	ErrSolve = "SOLVE_ERROR"

	// Configuration errors
	ErrConfig = "CONFIG_ERROR"
)

// AdventError represents a structured error with type and context
type AdventError struct {
	Type    string
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface
func (e *AdventError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap allows error unwrapping
func (e *AdventError) Unwrap() error {
	return e.Cause
}

// New creates a new AdventError
func New(errorType, message string) *AdventError {
	return &AdventError{
		Type:    errorType,
		Message: message,
		Context: make(map[string]any),
	}
}

// Wrap creates a new AdventError wrapping an existing error
func Wrap(errorType, message string, cause error) *AdventError {
	return &AdventError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error
func (e *AdventError) WithContext(key string, value any) *AdventError {
	e.Context[key] = value
	return e
}

// GetContext returns context value by key
func (e *AdventError) GetContext(key string) (any, bool) {
	value, exists := e.Context[key]
	return value, exists
}

// NewInputError creates an input-related error
func NewInputError(path string, cause error) *AdventError {
	return Wrap(ErrInputRead, fmt.Sprintf("Failed to read input '%s'", path), cause).
		WithContext("path", path)
}

// NewFileNotFoundError reports that none of the candidate input paths exist.
func NewFileNotFoundError(day int, tried []string) *AdventError {
	return New(ErrFileNotFound, fmt.Sprintf("No input file for day %d", day)).
		WithContext("day", day).
		WithContext("tried", tried)
}

// NewParseError creates a parsing error for a day's input
func NewParseError(day int, cause error) *AdventError {
	return Wrap(ErrFileParse, fmt.Sprintf("Failed to parse input for day %d", day), cause).
		WithContext("day", day)
}

// NewDayNotFoundError creates a lookup error with the closest known days
func NewDayNotFoundError(query string, suggestions []string) *AdventError {
	return New(ErrDayNotFound, fmt.Sprintf("Day '%s' not found", query)).
		WithContext("query", query).
		WithContext("suggestions", suggestions)
}

// NewSolveError wraps a failure from one part of a day
func NewSolveError(day int, part int, cause error) *AdventError {
	return Wrap(ErrSolve, fmt.Sprintf("Day %d part %d failed", day, part), cause).
		WithContext("day", day).
		WithContext("part", part)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AdventError {
	return Wrap(ErrConfig, message, cause)
}

// IsErrorType checks if err, or any error it wraps, is of a specific type
func IsErrorType(err error, errorType string) bool {
	var advErr *AdventError
	if stderrors.As(err, &advErr) {
		return advErr.Type == errorType
	}
	return false
}
