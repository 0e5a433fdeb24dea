package squarecalc

import (
	"errors"
	"strconv"
)

// SyntaxError is an error indicating malformed input: an unexpected
// character, an unbalanced parenthesis, or a missing operand. It implements
// InputError.
type SyntaxError struct {
	// Offset is the byte offset of the token that caused the error.
	Offset int
	// Msg describes the problem.
	Msg string
}

func (err *SyntaxError) Error() string {
	return "syntax error at position " + strconv.Itoa(err.Offset) + ": " + err.Msg
}

// Pos returns the byte offset of the token that caused the error.
func (err *SyntaxError) Pos() int {
	return err.Offset
}

// NameError is an error from a lookup for a variable that is missing from the
// evaluation table.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + err.Name
}

// DomainError is an error returned when a function or operator is applied
// to arguments for which it has no finite real result.
type DomainError struct {
	// Func is a name identifying the function or operator, e.g. "sqrt" or
	// "^". It is "number" for a literal too large to represent.
	Func string
	// X is the offending argument, or the non-finite result if the arguments
	// were each valid.
	X float64
}

func (err *DomainError) Error() string {
	return "domain error: " + strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Func
}

// ErrDivisionByZero is returned when the divisor of a division evaluates to
// zero.
var ErrDivisionByZero = errors.New("division by zero")

// InputError is an error with position information. Every error resulting from
// malformed input implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset of the start of the token that caused the
	// error.
	Pos() int
}

var _ InputError = (*SyntaxError)(nil)
