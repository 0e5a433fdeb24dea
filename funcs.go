package squarecalc

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// FunctionKind is a built-in function of one argument.
type FunctionKind int8

const (
	FuncNone FunctionKind = iota
	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
	Sinh
	Cosh
	Tanh
	Sec
	Csc
	Cot
	Log
	Sqrt
)

var funcnames = [...]string{
	FuncNone: "",
	Sin:      "sin",
	Cos:      "cos",
	Tan:      "tan",
	Asin:     "asin",
	Acos:     "acos",
	Atan:     "atan",
	Sinh:     "sinh",
	Cosh:     "cosh",
	Tanh:     "tanh",
	Sec:      "sec",
	Csc:      "csc",
	Cot:      "cot",
	Log:      "log",
	Sqrt:     "sqrt",
}

// String returns the keyword that names the function.
func (f FunctionKind) String() string {
	if f < 0 || int(f) >= len(funcnames) {
		return "FunctionKind(?)"
	}
	return funcnames[f]
}

// ConstantKind is a named mathematical constant.
type ConstantKind int8

const (
	ConstNone ConstantKind = iota
	Pi
	E
)

var constnames = [...]string{
	ConstNone: "",
	Pi:        "PI",
	E:         "E",
}

func (c ConstantKind) String() string {
	if c < 0 || int(c) >= len(constnames) {
		return "ConstantKind(?)"
	}
	return constnames[c]
}

// Value returns the float64 nearest the constant.
func (c ConstantKind) Value() float64 {
	return constvals[c]
}

// keywords maps reserved identifiers to their tokens. It is never modified
// after initialization.
var keywords = func() map[string]Token {
	m := make(map[string]Token, len(funcnames)+len(constnames))
	for i, s := range funcnames {
		if s != "" {
			m[s] = Token{Kind: TokenFunc, Text: s, Func: FunctionKind(i)}
		}
	}
	for i, s := range constnames {
		if s != "" {
			m[s] = Token{Kind: TokenConst, Text: s, Const: ConstantKind(i)}
		}
	}
	return m
}()

// constprec is the precision in bits at which constants are computed before
// rounding to float64.
const constprec = 256

// redprec is the precision in bits of π used for argument reduction. It
// covers the largest float64 exponent with 256 bits to spare, so the
// fractional part of x/π is exact to well beyond float64 for any finite x.
const redprec = 1024 + 256

var (
	bigpi   = bigfloat.Pi(new(big.Float).SetPrec(redprec))
	bighalf = new(big.Float).SetPrec(redprec).SetFloat64(0.5)
)

var constvals = [...]float64{
	Pi: round(bigpi),
	E: round(bigfloat.Exp(
		new(big.Float).SetPrec(constprec),
		new(big.Float).SetPrec(constprec).SetInt64(1),
	)),
}

func round(x *big.Float) float64 {
	f, _ := x.Float64()
	return f
}

// singtol is the absolute distance within which an argument is considered to
// sit on a trigonometric singularity.
const singtol = 1e-12

// near reports whether x is within singtol of kπ for some integer k, or of
// π/2 + kπ if half is set.
func near(x float64, half bool) bool {
	if !finite(x) {
		return false
	}
	q := new(big.Float).SetPrec(redprec).SetFloat64(x)
	q.Quo(q, bigpi)
	if half {
		q.Sub(q, bighalf)
	}
	// Keep only the signed distance to the nearest integer.
	i, _ := q.Int(nil)
	q.Sub(q, new(big.Float).SetInt(i))
	r, _ := q.Float64()
	switch {
	case r > 0.5:
		r--
	case r < -0.5:
		r++
	}
	return math.Abs(r)*math.Pi <= singtol
}

// call applies a built-in function, checking its domain first.
func call(f FunctionKind, x float64) (float64, error) {
	switch f {
	case Sin:
		return math.Sin(x), nil
	case Cos:
		return math.Cos(x), nil
	case Tan:
		if near(x, true) {
			return 0, &DomainError{Func: f.String(), X: x}
		}
		return math.Tan(x), nil
	case Asin:
		if x < -1 || x > 1 {
			return 0, &DomainError{Func: f.String(), X: x}
		}
		return math.Asin(x), nil
	case Acos:
		if x < -1 || x > 1 {
			return 0, &DomainError{Func: f.String(), X: x}
		}
		return math.Acos(x), nil
	case Atan:
		return math.Atan(x), nil
	case Sinh:
		return math.Sinh(x), nil
	case Cosh:
		return math.Cosh(x), nil
	case Tanh:
		return math.Tanh(x), nil
	case Sec:
		if near(x, true) {
			return 0, &DomainError{Func: f.String(), X: x}
		}
		return 1 / math.Cos(x), nil
	case Csc:
		if near(x, false) {
			return 0, &DomainError{Func: f.String(), X: x}
		}
		return 1 / math.Sin(x), nil
	case Cot:
		if near(x, false) {
			return 0, &DomainError{Func: f.String(), X: x}
		}
		// cos/sin rather than 1/tan so that cot(π/2) is 0.
		return math.Cos(x) / math.Sin(x), nil
	case Log:
		if x <= 0 {
			return 0, &DomainError{Func: f.String(), X: x}
		}
		return math.Log(x), nil
	case Sqrt:
		if x < 0 {
			return 0, &DomainError{Func: f.String(), X: x}
		}
		return math.Sqrt(x), nil
	default:
		panic("squarecalc: invalid function " + f.String())
	}
}
