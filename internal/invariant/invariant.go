// Package invariant holds the assertions used once puzzle input has been
// parsed.
//
// Bad input is an error and is reported by each day's parser. The simulations
// that run afterwards depend on what the parser checked, so a failed assertion
// here is a bug in the solver and panics with a *Violation.
package invariant

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
)

// Kind names the sort of contract that was broken.
type Kind string

const (
	KindPrecondition  Kind = "PRECONDITION"
	KindPostcondition Kind = "POSTCONDITION"
	KindInvariant     Kind = "INVARIANT"
)

// Violation is the panic value raised by every assertion in this package.
type Violation struct {
	Kind    Kind
	Message string
	File    string
	Line    int
}

func (v *Violation) Error() string {
	s := fmt.Sprintf("%s VIOLATION: %s", v.Kind, v.Message)
	if v.File != "" {
		s += fmt.Sprintf("\n  at %s:%d", v.File, v.Line)
	}
	return s
}

// Precondition checks what a function expects of its arguments.
//
//	invariant.Precondition(n >= 2, "a rope needs at least 2 knots, got %d", n)
func Precondition(ok bool, format string, args ...any) {
	if !ok {
		raise(KindPrecondition, format, args...)
	}
}

// Postcondition checks what a function promises about its result.
func Postcondition(ok bool, format string, args ...any) {
	if !ok {
		raise(KindPostcondition, format, args...)
	}
}

// Invariant checks state that must hold between steps of a simulation.
func Invariant(ok bool, format string, args ...any) {
	if !ok {
		raise(KindInvariant, format, args...)
	}
}

// NotNil rejects nil, including typed nils such as a nil map or func.
func NotNil(value any, name string) {
	if isNil(value) {
		raise(KindPrecondition, "%s must not be nil", name)
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}

// InRange requires lo <= value <= hi.
//
//	invariant.InRange(dst, 0, len(monkeys)-1, "throw target")
func InRange(value, lo, hi int, name string) {
	if value < lo || value > hi {
		raise(KindPrecondition, "%s must be in range [%d, %d], got %d", name, lo, hi, value)
	}
}

// Positive requires value > 0.
func Positive(value int, name string) {
	if value <= 0 {
		raise(KindPrecondition, "%s must be positive, got %d", name, value)
	}
}

// ContextNotBackground rejects a nil or Background context. Loops that run
// until interrupted, like the input watcher, need the command's context.
func ContextNotBackground(ctx context.Context, where string) {
	switch ctx {
	case nil:
		raise(KindPrecondition, "%s: context must not be nil", where)
	case context.Background():
		raise(KindPrecondition, "%s: context must not be Background(), pass the caller's context", where)
	}
}

// raise panics with a Violation pointing at the caller of the assertion.
func raise(kind Kind, format string, args ...any) {
	v := &Violation{Kind: kind, Message: fmt.Sprintf(format, args...)}
	if _, file, line, ok := runtime.Caller(2); ok {
		v.File, v.Line = file, line
	}
	panic(v)
}
