// SPDX-License-Identifier: MIT

package copula

import "math"

// FGM is the Farlie-Gumbel-Morgenstern copula with θ ∈ [-1, 1]:
//
//	C(x, y) = xy(1 + θ(1-x)(1-y))
//
// It only covers weak dependence, |τ| ≤ 2/9.
type FGM struct {
	params
}

// NewFGM returns an FGM copula with parameter theta.
func NewFGM(theta float64) (*FGM, error) {
	p, err := newParams(Bounds{
		Lower: []float64{-1},
		Upper: []float64{1},
		Start: []float64{0},
	}, []float64{theta})
	if err != nil {
		return nil, err
	}

	return &FGM{params: p}, nil
}

// Name returns "FGM".
func (c *FGM) Name() string { return NameFGM }

func (c *FGM) theta() float64 { return c.values[0] }

func (c *FGM) CDF(x, y float64) float64 {
	x, y = clamp2(x, y)
	return clampUnit(x * y * (1 + c.theta()*(1-x)*(1-y)))
}

func (c *FGM) Density(x, y float64) float64 {
	x, y = clamp2(x, y)
	return math.Max(0, 1+c.theta()*(1-2*x)*(1-2*y))
}

// H2 returns y(1 + θ(1-2x)(1-y)).
func (c *FGM) H2(x, y float64) float64 {
	x, y = clamp2(x, y)
	return clampUnit(y * (1 + c.theta()*(1-2*x)*(1-y)))
}

func (c *FGM) H1(x, y float64) float64 { return c.H2(y, x) }

// H2Inverse solves the quadratic a·y² - (1+a)·y + w = 0 with a = θ(1-2x).
func (c *FGM) H2Inverse(x, w float64) float64 {
	x, w = clamp2(x, w)
	a := c.theta() * (1 - 2*x)
	if math.Abs(a) < 1e-12 {
		return w
	}
	b := 1 + a

	return clampUnit((b - math.Sqrt(b*b-4*a*w)) / (2 * a))
}

func (c *FGM) H1Inverse(w, y float64) float64 { return c.H2Inverse(y, w) }

// Tau returns 2θ/9.
func (c *FGM) Tau() float64 { return 2 * c.theta() / 9 }

func (c *FGM) Clone() Family { return &FGM{params: c.params.clone()} }
