package squarecalc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstants(t *testing.T) {
	assert.InDelta(t, math.Pi, Pi.Value(), 1e-15)
	assert.InDelta(t, math.E, E.Value(), 1e-15)
}

func TestKeywords(t *testing.T) {
	for f := Sin; f <= Sqrt; f++ {
		tok, ok := keywords[f.String()]
		require.True(t, ok, "no keyword for %v", f)
		assert.Equal(t, TokenFunc, tok.Kind)
		assert.Equal(t, f, tok.Func)
	}
	for c := Pi; c <= E; c++ {
		tok, ok := keywords[c.String()]
		require.True(t, ok, "no keyword for %v", c)
		assert.Equal(t, TokenConst, tok.Kind)
		assert.Equal(t, c, tok.Const)
	}
	assert.Len(t, keywords, int(Sqrt)+int(E))
}

func TestNear(t *testing.T) {
	cases := []struct {
		x    float64
		half bool
		want bool
	}{
		{0, false, true},
		{math.Pi, false, true},
		{-math.Pi, false, true},
		{100 * math.Pi, false, true},
		{-2 * math.Pi, false, true},
		{math.Pi / 2, true, true},
		{-math.Pi / 2, true, true},
		{3 * math.Pi / 2, true, true},
		{5 * math.Pi / 2, true, true},
		{1, false, false},
		{math.Pi / 2, false, false},
		{0, true, false},
		{math.Pi, true, false},
		{1e-6, false, false},
		{math.Pi + 1e-9, false, false},
		// Large arguments are reduced exactly, not by a tolerance that grows
		// with x.
		{2e12, true, false},
		{1e13, true, false},
		{1e13, false, false},
		{math.Inf(1), false, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, near(c.x, c.half), "near(%g, %t)", c.x, c.half)
	}
}

func TestReductionPi(t *testing.T) {
	assert.Equal(t, uint(redprec), bigpi.Prec())
	assert.Equal(t, math.Pi, round(bigpi))
	// The float64 product is about 1.2e-3 away from the true multiple of π.
	x := 1e13 * math.Pi
	assert.Greater(t, math.Abs(math.Sin(x)), 1e-6)
	assert.False(t, near(x, false), "near(%g, false)", x)
	_, err := call(Csc, x)
	assert.NoError(t, err)
}

func TestCallDomains(t *testing.T) {
	cases := []struct {
		f  FunctionKind
		ok []float64
		no []float64
	}{
		{Sin, []float64{0, 1, -1e10}, nil},
		{Cos, []float64{0, 1, -1e10}, nil},
		{Tan, []float64{0, 1, math.Pi, 2e12, 1e13}, []float64{math.Pi / 2, -math.Pi / 2}},
		{Asin, []float64{-1, 0, 1}, []float64{-1.0000001, 1.0000001}},
		{Acos, []float64{-1, 0, 1}, []float64{-2, 2}},
		{Atan, []float64{-1e300, 0, 1e300}, nil},
		{Sec, []float64{0, math.Pi, 1e13}, []float64{math.Pi / 2, 5 * math.Pi / 2}},
		{Csc, []float64{math.Pi / 2, 1, 1e13}, []float64{0, math.Pi, -2 * math.Pi}},
		{Cot, []float64{math.Pi / 2, 1, 1e13}, []float64{0, math.Pi}},
		{Log, []float64{1e-300, 1, 1e300}, []float64{0, -1}},
		{Sqrt, []float64{0, 1, 1e300}, []float64{-1e-300, -1}},
	}
	for _, c := range cases {
		t.Run(c.f.String(), func(t *testing.T) {
			for _, x := range c.ok {
				_, err := call(c.f, x)
				assert.NoError(t, err, "%v(%g)", c.f, x)
			}
			for _, x := range c.no {
				_, err := call(c.f, x)
				var de *DomainError
				if assert.ErrorAs(t, err, &de, "%v(%g)", c.f, x) {
					assert.Equal(t, c.f.String(), de.Func)
					assert.Equal(t, x, de.X)
				}
			}
		})
	}
}

func TestCallInvalid(t *testing.T) {
	assert.Panics(t, func() { call(FuncNone, 0) })
}
