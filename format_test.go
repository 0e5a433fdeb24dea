package squarecalc_test

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/zephyrtronium/squarecalc"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0, "= 0"},
		{3, "= 3"},
		{-4, "= -4"},
		{0.1, "= 0.1"},
		{3.141592653589793, "= 3.141592653589793"},
		{1e21, "= 1e+21"},
		{6.02e-23, "= 6.02e-23"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, squarecalc.Format(c.v))
	}
}

func TestDisplay(t *testing.T) {
	cases := []struct {
		src  string
		vars squarecalc.Vars
		want string
	}{
		{"2+3*4", nil, "= 14"},
		{"sqrt(16)", nil, "= 4"},
		{"x*2", squarecalc.Vars{"x": 1.5}, "= 3"},
		{"x+1", nil, "undefined variable: x"},
		{"1/0", nil, "division by zero"},
		{"sqrt(-1)", nil, "domain error: sqrt(-1)"},
		{"acos(2)", nil, "domain error: acos(2)"},
		{"10^400", nil, "domain error: ^ result out of range"},
		{"cosh(1000)", nil, "domain error: cosh(1000)"},
		{"1e999", nil, "domain error: number out of range"},
		{"(2+3", nil, "syntax error at position 4: unbalanced parenthesis: ( at position 0 is not closed"},
		{"1 $", nil, "syntax error at position 2: unexpected character '$'"},
		{"", nil, "syntax error at position 0: empty expression"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			assert.Equal(t, c.want, squarecalc.Display(c.src, c.vars))
		})
	}
}

func TestMessageWrapped(t *testing.T) {
	_, err := squarecalc.Evaluate("1/0", nil)
	assert.Equal(t, "division by zero", squarecalc.Message(errors.Wrap(err, "line 2")))

	_, err = squarecalc.Evaluate("y", nil)
	assert.Equal(t, "undefined variable: y", squarecalc.Message(fmt.Errorf("wrapped: %w", err)))

	assert.Equal(t, "error: boom", squarecalc.Message(errors.New("boom")))
}
