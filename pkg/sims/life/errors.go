package life

import (
	"fmt"
	"strings"
)

// Kind categorizes an engine error.
type Kind string

const (
	KindInvalidDimensions  Kind = "invalid_dimensions"
	KindInvalidProbability Kind = "invalid_probability"
	KindOutOfBounds        Kind = "out_of_bounds"
	KindUnknownPattern     Kind = "unknown_pattern"
)

// Error is the structured error returned by engine operations.
type Error struct {
	Kind   Kind
	Op     string
	Detail string
}

// Sentinels for errors.Is matching. Any *Error with the same Kind matches.
var (
	ErrInvalidDimensions  = &Error{Kind: KindInvalidDimensions}
	ErrInvalidProbability = &Error{Kind: KindInvalidProbability}
	ErrOutOfBounds        = &Error{Kind: KindOutOfBounds}
	ErrUnknownPattern     = &Error{Kind: KindUnknownPattern}
)

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("life: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Is reports whether target has the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

func newError(op string, kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Detail: fmt.Sprintf(format, args...)}
}
