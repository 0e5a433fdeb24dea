// Package squarecalc implements a scientific calculator over float64.
//
// An expression is one line of text like "sin(PI/2) + 3^2". The usual
// precedence applies, with "^" binding tightest and associating to the right,
// so "2^3^2" is "2^(3^2)". Unary minus binds looser than "^" on its operand,
// so "-2^2" is "-(2^2)" and "2^-1" is "2^(-1)".
//
// The functions sin, cos, tan, asin, acos, atan, sinh, cosh, tanh, sec, csc,
// cot, log, and sqrt take exactly one parenthesized argument. PI and E are
// constants. Any other name is a variable, looked up in the Vars passed to
// Eval or Evaluate.
//
// Evaluation never produces NaN or infinities. Inputs outside a function's
// domain, overflows, and singularities are reported as a *DomainError, and
// division by zero as ErrDivisionByZero.
package squarecalc
