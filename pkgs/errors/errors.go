// Package errors defines the interpreter's single structured error type.
// Every core operation returns either a value or one of these; the
// evaluator unwinds on the first one it sees, and try*/catch* is the
// only thing that stops the unwind.
//
// A MalError is a tagged error with a Cause chain and, for UserThrow, a
// carried Value payload that an ordinary Go error has no room for.
package errors

import (
	"fmt"

	"github.com/aledsdavies/malgo/pkgs/types"
)

// Kind is the tag distinguishing the error categories defined in the
// language's failure semantics.
type Kind string

const (
	KindRead       Kind = "ReadError"
	KindSymbol     Kind = "SymbolNotFound"
	KindArity      Kind = "ArityError"
	KindType       Kind = "TypeError"
	KindIndex      Kind = "IndexError"
	KindArithmetic Kind = "ArithmeticError"
	KindFile       Kind = "FileError"
	KindThrow      Kind = "UserThrow"
	KindGeneric    Kind = "Generic"
)

// Position locates a ReadError in source text, for the Clang/Rust-style
// snippet the reader attaches to parse failures.
type Position struct {
	Line   int
	Column int
}

// MalError is the interpreter's only error type. Message is always a
// plain description; for KindThrow it additionally carries Value, the
// thrown payload, which the printer renders readably at the top level
// instead of the Message string (spec: "Error: <message> for all kinds
// except UserThrow, which prints the thrown value through the readable
// printer").
type MalError struct {
	Kind    Kind
	Message string
	Cause   error
	Value   *types.Value // populated only for KindThrow
	Pos     *Position    // populated only for KindRead, when known
}

func (e *MalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *MalError) Unwrap() error { return e.Cause }

// New creates an error of the given kind with a plain message.
func New(kind Kind, message string) *MalError {
	return &MalError{Kind: kind, Message: message}
}

// Newf is New with fmt.Sprintf-style formatting.
func Newf(kind Kind, format string, args ...any) *MalError {
	return &MalError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind wrapping an existing error as
// its cause.
func Wrap(kind Kind, message string, cause error) *MalError {
	return &MalError{Kind: kind, Message: message, Cause: cause}
}

// AtPosition attaches source location to a ReadError, returning e for
// chaining.
func (e *MalError) AtPosition(line, col int) *MalError {
	e.Pos = &Position{Line: line, Column: col}
	return e
}

// Throw creates the error raised by the `throw` builtin and the `throw`
// special-case payload of try*/catch*.
func Throw(v *types.Value) *MalError {
	return &MalError{Kind: KindThrow, Message: "user code threw a value", Value: v}
}

// CatchPayload returns the value that should be bound in a catch*
// handler for err. A UserThrow yields its carried value; any other
// error's message becomes a string, per the try*/catch* contract.
func CatchPayload(err error) *types.Value {
	if me, ok := err.(*MalError); ok && me.Kind == KindThrow {
		return me.Value
	}
	return types.NewStr(err.Error())
}

// Is reports whether err is a MalError of the given kind.
func Is(err error, kind Kind) bool {
	me, ok := err.(*MalError)
	return ok && me.Kind == kind
}
