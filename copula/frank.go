// SPDX-License-Identifier: MIT

package copula

import (
	"math"

	"github.com/katalvlaran/rvine/numeric"
)

// Frank is the Frank copula with d ∈ [-100, 100]. With
// A = e^(-dx)-1, B = e^(-dy)-1 and D = e^(-d)-1:
//
//	C(x, y)  = -log(1 + AB/D) / d
//	H1(x, y) = (B+1)·A / (D + AB)
//	c(x, y)  = -d·D·e^(-d(x+y)) / (D + AB)²
//
// All exponentials go through math.Expm1. d = 0 is independence.
//
// For d < 0 the terms A, B and D are positive and D + AB cannot cancel. A
// positive d is evaluated on the negative branch through
// C_d(x, y) = x - C_{-d}(x, 1-y).
type Frank struct {
	params
}

// NewFrank returns a Frank copula with parameter d.
func NewFrank(d float64) (*Frank, error) {
	p, err := newParams(Bounds{
		Lower: []float64{-100},
		Upper: []float64{100},
		Start: []float64{0},
	}, []float64{d})
	if err != nil {
		return nil, err
	}

	return &Frank{params: p}, nil
}

// Name returns "F".
func (c *Frank) Name() string { return NameFrank }

func (c *Frank) d() float64 { return c.values[0] }

// CDF returns C(x, y).
func (c *Frank) CDF(x, y float64) float64 {
	x, y = clamp2(x, y)
	d := c.d()
	if d == 0 {
		return x * y
	}
	if d > 0 {
		return clampUnit(x - frankCDF(x, 1-y, -d))
	}

	return clampUnit(frankCDF(x, y, d))
}

// Density returns c(x, y).
func (c *Frank) Density(x, y float64) float64 {
	d := c.d()
	if d == 0 {
		return 1
	}
	x, y = clamp2(x, y)
	if d > 0 {
		return frankDensity(x, 1-y, -d)
	}

	return frankDensity(x, y, d)
}

// H1 returns P(U ≤ x | V = y).
func (c *Frank) H1(x, y float64) float64 {
	x, y = clamp2(x, y)
	d := c.d()
	if d == 0 {
		return x
	}
	if d > 0 {
		return clampUnit(frankH1(x, 1-y, -d))
	}

	return clampUnit(frankH1(x, y, d))
}

// H2 is H1 with the arguments exchanged.
func (c *Frank) H2(x, y float64) float64 { return c.H1(y, x) }

// H1Inverse returns -log(1 + wD/(1 + B(1-w)))/d.
func (c *Frank) H1Inverse(w, y float64) float64 {
	w, y = clamp2(w, y)
	d := c.d()
	if d == 0 {
		return w
	}
	if d > 0 {
		return clampUnit(frankH1Inverse(w, 1-y, -d))
	}

	return clampUnit(frankH1Inverse(w, y, d))
}

// H2Inverse is H1Inverse with the conditioning coordinate first.
func (c *Frank) H2Inverse(x, w float64) float64 { return c.H1Inverse(w, x) }

// Tau returns 1 - 4/d·(1 - D₁(d)), D₁ the first Debye function.
func (c *Frank) Tau() float64 {
	d := c.d()
	if d == 0 {
		return 0
	}

	return 1 - 4/d*(1-debye1(d))
}

// Clone returns an independent copy.
func (c *Frank) Clone() Family { return &Frank{params: c.params.clone()} }

// debye1 returns (1/d)∫₀^d t/(e^t - 1) dt.
func debye1(d float64) float64 {
	f := func(t float64) float64 {
		if t == 0 {
			return 1
		}
		return t / math.Expm1(t)
	}

	return numeric.Simpson(f, numeric.DefaultNodes, 0, d) / d
}

// The frank* kernels require d < 0.

func frankCDF(x, y, d float64) float64 {
	a := math.Expm1(-d * x)
	b := math.Expm1(-d * y)

	return -math.Log1p(a*b/math.Expm1(-d)) / d
}

func frankDensity(x, y, d float64) float64 {
	a := math.Expm1(-d * x)
	b := math.Expm1(-d * y)
	dd := math.Expm1(-d)
	den := dd + a*b

	return -d * dd * math.Exp(-d*(x+y)) / (den * den)
}

func frankH1(x, y, d float64) float64 {
	a := math.Expm1(-d * x)
	b := math.Expm1(-d * y)

	return (b + 1) * a / (math.Expm1(-d) + a*b)
}

func frankH1Inverse(w, y, d float64) float64 {
	b := math.Expm1(-d * y)

	return -math.Log1p(w*math.Expm1(-d)/(1+b*(1-w))) / d
}
