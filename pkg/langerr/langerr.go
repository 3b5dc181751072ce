// Package langerr defines the diagnostic type shared by the lexer,
// parser, and evaluator (§7 of SPEC_FULL.md). Every failure the language
// itself can produce is an *Error; anything else is a host/Go bug.
package langerr

import (
	"fmt"

	"github.com/Frawstcrabs/IndividualProject/pkg/lexer"
)

// Kind identifies one of the error categories the spec enumerates.
type Kind string

const (
	Parse        Kind = "parse error"
	Name         Kind = "name error"
	Type         Kind = "type error"
	Arity        Kind = "arity error"
	Index        Kind = "index error"
	ValueErr     Kind = "value error"
	ControlFlow  Kind = "control-flow error"
	Recursion    Kind = "recursion error"
)

// Error is the diagnostic the CLI host reports on stderr. It always
// names the error kind, a source position, the offending directive head
// (when known), and a human message; it optionally wraps an underlying
// Go error.
type Error struct {
	Kind    Kind
	Pos     lexer.Position
	Head    string // offending directive head / identifier, "" if none
	Message string
	Cause   error
}

func (e *Error) Error() string {
	loc := "?"
	if e.Pos.Filename != "" || e.Pos.Line != 0 {
		loc = fmt.Sprintf("%s:%d:%d", nonEmpty(e.Pos.Filename, "<input>"), e.Pos.Line, e.Pos.Column)
	}
	msg := fmt.Sprintf("%s at %s: %s", e.Kind, loc, e.Message)
	if e.Head != "" {
		msg += fmt.Sprintf(" (in {%s...})", e.Head)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// New constructs an *Error without a wrapped cause.
func New(kind Kind, pos lexer.Position, head, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Pos: pos, Head: head, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs an *Error around an existing cause.
func Wrap(kind Kind, pos lexer.Position, head string, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Pos: pos, Head: head, Message: fmt.Sprintf(format, args...), Cause: cause}
}
