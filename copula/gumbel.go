// SPDX-License-Identifier: MIT

package copula

import "math"

// Gumbel is the Gumbel copula with θ ∈ [1, 17]:
//
//	C(x, y) = exp(-((-ln x)^θ + (-ln y)^θ)^(1/θ))
//
// θ = 1 is independence. The h-function has no closed-form inverse; it is
// inverted by bisection.
type Gumbel struct {
	params
}

// NewGumbel returns a Gumbel copula with parameter theta.
func NewGumbel(theta float64) (*Gumbel, error) {
	p, err := newParams(Bounds{
		Lower: []float64{1},
		Upper: []float64{17},
		Start: []float64{2},
	}, []float64{theta})
	if err != nil {
		return nil, err
	}

	return &Gumbel{params: p}, nil
}

// Name returns "Gu".
func (c *Gumbel) Name() string { return NameGumbel }

func (c *Gumbel) theta() float64 { return c.values[0] }

// parts returns -ln x, -ln y, A = (-ln x)^θ + (-ln y)^θ and C = exp(-A^(1/θ)).
func (c *Gumbel) parts(x, y float64) (lx, ly, a, cdf float64) {
	t := c.theta()
	lx, ly = -math.Log(x), -math.Log(y)
	a = math.Pow(lx, t) + math.Pow(ly, t)
	cdf = math.Exp(-math.Pow(a, 1/t))

	return lx, ly, a, cdf
}

// CDF returns C(x, y).
func (c *Gumbel) CDF(x, y float64) float64 {
	x, y = clamp2(x, y)
	_, _, _, cdf := c.parts(x, y)

	return clampUnit(cdf)
}

// Density returns C·(lx·ly)^(θ-1)/(xy)·A^(2/θ-2)·(1 + (θ-1)A^(-1/θ)).
func (c *Gumbel) Density(x, y float64) float64 {
	x, y = clamp2(x, y)
	t := c.theta()
	lx, ly, a, cdf := c.parts(x, y)

	return cdf * math.Pow(lx*ly, t-1) / (x * y) *
		math.Pow(a, 2/t-2) * (1 + (t-1)*math.Pow(a, -1/t))
}

// H2 returns C·A^(1/θ-1)·(-ln x)^(θ-1)/x.
func (c *Gumbel) H2(x, y float64) float64 {
	x, y = clamp2(x, y)
	t := c.theta()
	lx, _, a, cdf := c.parts(x, y)

	return clampUnit(cdf * math.Pow(a, 1/t-1) * math.Pow(lx, t-1) / x)
}

// H1 is H2 with the arguments exchanged.
func (c *Gumbel) H1(x, y float64) float64 { return c.H2(y, x) }

// H2Inverse inverts H2 in y by bisection.
func (c *Gumbel) H2Inverse(x, w float64) float64 { return invertH2(c.H2, x, w) }

// H1Inverse inverts H1 in x by bisection.
func (c *Gumbel) H1Inverse(w, y float64) float64 { return invertH2(c.H2, y, w) }

// Tau returns 1 - 1/θ.
func (c *Gumbel) Tau() float64 { return 1 - 1/c.theta() }

// Clone returns an independent copy.
func (c *Gumbel) Clone() Family { return &Gumbel{params: c.params.clone()} }
