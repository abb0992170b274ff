// SPDX-License-Identifier: MIT

package copula

import (
	"math"

	"github.com/katalvlaran/rvine/numeric"
)

// Galambos is the Galambos extreme-value copula with δ ∈ [1e-4, 25].
// With X = (-ln x)^-δ, Y = (-ln y)^-δ and S = (X+Y)^(-1/δ):
//
//	C(x, y)  = xy·e^S
//	H1(x, y) = x·e^S·(1 - (1 + X/Y)^(-1-1/δ))
//
// The inverse h-function is computed by bisection, tau by quadrature.
type Galambos struct {
	params
}

// NewGalambos returns a Galambos copula with parameter delta.
func NewGalambos(delta float64) (*Galambos, error) {
	p, err := newParams(Bounds{
		Lower: []float64{paramTol},
		Upper: []float64{25},
		Start: []float64{1},
	}, []float64{delta})
	if err != nil {
		return nil, err
	}

	return &Galambos{params: p}, nil
}

// Name returns "Ga".
func (c *Galambos) Name() string { return NameGalambos }

func (c *Galambos) delta() float64 { return c.values[0] }

func (c *Galambos) parts(x, y float64) (xl, yl, bx, by, s float64) {
	d := c.delta()
	xl, yl = -math.Log(x), -math.Log(y)
	bx, by = math.Pow(xl, -d), math.Pow(yl, -d)
	s = math.Pow(bx+by, -1/d)

	return xl, yl, bx, by, s
}

// CDF returns xy·e^S.
func (c *Galambos) CDF(x, y float64) float64 {
	x, y = clamp2(x, y)
	_, _, _, _, s := c.parts(x, y)

	return clampUnit(x * y * math.Exp(s))
}

// Density returns c(x, y).
func (c *Galambos) Density(x, y float64) float64 {
	x, y = clamp2(x, y)
	d := c.delta()
	xl, yl, bx, by, s := c.parts(x, y)
	sum := bx + by

	// cancellation near the axes at large δ can go slightly negative
	return math.Max(0, math.Exp(s)*(1-s/sum*(bx/xl+by/yl)+
		s/(sum*sum)*math.Pow(xl*yl, -d-1)*(1+d+s)))
}

// H1 returns P(U ≤ x | V = y).
func (c *Galambos) H1(x, y float64) float64 {
	x, y = clamp2(x, y)
	d := c.delta()
	_, _, bx, by, s := c.parts(x, y)

	return clampUnit(x * math.Exp(s) * (1 - math.Pow(1+bx/by, -1-1/d)))
}

// H2 is H1 with the arguments exchanged.
func (c *Galambos) H2(x, y float64) float64 { return c.H1(y, x) }

// H2Inverse inverts H2 in y by bisection.
func (c *Galambos) H2Inverse(x, w float64) float64 { return invertH2(c.H2, x, w) }

// H1Inverse inverts H1 in x by bisection.
func (c *Galambos) H1Inverse(w, y float64) float64 { return invertH2(c.H2, y, w) }

// Tau integrates the Pickands-function form
//
//	τ = 2∫₀^½ (1+δ)·s·(1+s)^(-1/δ-2) / ((1-t)(1 - t(1+s)^(-1/δ))) dt,  s = (t/(1-t))^δ
//
// which uses the symmetry of the Galambos dependence function about ½.
func (c *Galambos) Tau() float64 {
	d := c.delta()
	f := func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		s := math.Pow(t/(1-t), d)
		return (1 + d) * s * math.Pow(1+s, -1/d-2) / ((1 - t) * (1 - t*math.Pow(1+s, -1/d)))
	}

	return 2 * numeric.Simpson(f, numeric.DefaultNodes, 0, 0.5)
}

// Clone returns an independent copy.
func (c *Galambos) Clone() Family { return &Galambos{params: c.params.clone()} }
