package squarecalc

import (
	"errors"
	"strconv"
)

// Format renders a result for display as "= " followed by the shortest
// decimal representation that parses back to v.
func Format(v float64) string {
	return "= " + strconv.FormatFloat(v, 'g', -1, 64)
}

// Message renders an evaluation error for display. Errors from this package
// keep their own text even when wrapped; anything else is prefixed with
// "error: ".
func Message(err error) string {
	var (
		se *SyntaxError
		ne *NameError
		de *DomainError
	)
	switch {
	case errors.As(err, &se):
		return se.Error()
	case errors.As(err, &ne):
		return ne.Error()
	case errors.As(err, &de):
		if de.Func == "number" {
			return "domain error: number out of range"
		}
		if !finite(de.X) {
			return "domain error: " + de.Func + " result out of range"
		}
		return "domain error: " + de.Func + "(" + strconv.FormatFloat(de.X, 'g', -1, 64) + ")"
	case errors.Is(err, ErrDivisionByZero):
		return ErrDivisionByZero.Error()
	default:
		return "error: " + err.Error()
	}
}

// Display evaluates text and renders the outcome, whether a result or an
// error, as one line of text.
func Display(text string, vars Vars) string {
	r, err := Evaluate(text, vars)
	if err != nil {
		return Message(err)
	}
	return Format(r)
}
