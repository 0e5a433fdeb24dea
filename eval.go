package squarecalc

import (
	"math"
)

// Vars is a table of variable bindings for evaluation. A nil Vars has no
// bindings.
type Vars map[string]float64

// Eval evaluates the expression with the given variable bindings. The result
// is always finite when the error is nil. Eval does not modify vars.
func (e *Expr) Eval(vars Vars) (float64, error) {
	return e.n.eval(vars)
}

// eval computes the node's value, children first.
func (n *node) eval(vars Vars) (float64, error) {
	var r float64
	switch n.kind {
	case nodeNum:
		r = n.num
		if !finite(r) {
			return 0, &DomainError{Func: "number", X: r}
		}
		return r, nil
	case nodeConst:
		return n.konst.Value(), nil
	case nodeName:
		v, ok := vars[n.name]
		if !ok {
			return 0, &NameError{Name: n.name}
		}
		if !finite(v) {
			return 0, &DomainError{Func: n.name, X: v}
		}
		return v, nil
	case nodeCall:
		x, err := n.left.eval(vars)
		if err != nil {
			return 0, err
		}
		r, err = call(n.fn, x)
		if err != nil {
			return 0, err
		}
		if !finite(r) {
			return 0, &DomainError{Func: n.fn.String(), X: x}
		}
		return r, nil
	case nodeNeg:
		x, err := n.left.eval(vars)
		if err != nil {
			return 0, err
		}
		return -x, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		// handled below
	default:
		panic("squarecalc: invalid AST node " + n.kind.String())
	}

	l, err := n.left.eval(vars)
	if err != nil {
		return 0, err
	}
	rv, err := n.right.eval(vars)
	if err != nil {
		return 0, err
	}
	switch n.kind {
	case nodeAdd:
		r = l + rv
	case nodeSub:
		r = l - rv
	case nodeMul:
		r = l * rv
	case nodeDiv:
		if rv == 0 {
			return 0, ErrDivisionByZero
		}
		r = l / rv
	case nodePow:
		// Guard against non-real powers, i.e. negative base with fractional
		// exponent.
		if l < 0 && rv != math.Trunc(rv) {
			return 0, &DomainError{Func: "^", X: l}
		}
		r = math.Pow(l, rv)
	}
	if !finite(r) {
		return 0, &DomainError{Func: binsym[n.kind][1:2], X: r}
	}
	return r, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Evaluate is a shortcut to parse and evaluate the first expression in text
// with the given variable bindings.
func Evaluate(text string, vars Vars) (float64, error) {
	a, err := ParseString(text)
	if err != nil {
		return 0, err
	}
	return a.Eval(vars)
}
