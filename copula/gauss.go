// SPDX-License-Identifier: MIT

package copula

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/rvine/numeric"
)

// Gauss is the Gaussian copula with correlation ρ ∈ (-1, 1).
//
// The density, h-function and inverse follow Aas et al. (2009). The CDF uses
// Plackett's identity ∂Φ₂/∂ρ = φ₂:
//
//	C(x, y) = xy + 1/(2π) ∫₀^ρ exp(-(a²-2abr+b²)/(2(1-r²))) / sqrt(1-r²) dr
//
// with a = Φ⁻¹(x), b = Φ⁻¹(y). ρ = 0 is special-cased as independence.
type Gauss struct {
	params
}

// NewGauss returns a Gaussian copula with correlation rho.
func NewGauss(rho float64) (*Gauss, error) {
	p, err := newParams(Bounds{
		Lower: []float64{-1 + paramTol},
		Upper: []float64{1 - paramTol},
		Start: []float64{0},
	}, []float64{rho})
	if err != nil {
		return nil, err
	}

	return &Gauss{params: p}, nil
}

// Name returns "G".
func (c *Gauss) Name() string { return NameGauss }

func (c *Gauss) rho() float64 { return c.values[0] }

// CDF evaluates Φ₂(Φ⁻¹(x), Φ⁻¹(y); ρ).
func (c *Gauss) CDF(x, y float64) float64 {
	x, y = clamp2(x, y)
	rho := c.rho()
	if rho == 0 {
		return x * y
	}
	a := distuv.UnitNormal.Quantile(x)
	b := distuv.UnitNormal.Quantile(y)
	phi2 := func(r float64) float64 {
		s := 1 - r*r
		return math.Exp(-(a*a-2*a*b*r+b*b)/(2*s)) / math.Sqrt(s)
	}

	return clampUnit(x*y + numeric.Simpson(phi2, cdfNodes, 0, rho)/(2*math.Pi))
}

// Density returns c(x, y).
func (c *Gauss) Density(x, y float64) float64 {
	rho := c.rho()
	if rho == 0 {
		return 1
	}
	x, y = clamp2(x, y)
	a := distuv.UnitNormal.Quantile(x)
	b := distuv.UnitNormal.Quantile(y)
	rr := rho * rho

	return math.Exp(-(rr*(a*a+b*b)-2*rho*a*b)/(2*(1-rr))) / math.Sqrt(1-rr)
}

// H1 returns Φ((Φ⁻¹(x) - ρΦ⁻¹(y)) / sqrt(1-ρ²)).
func (c *Gauss) H1(x, y float64) float64 {
	x, y = clamp2(x, y)
	rho := c.rho()
	if rho == 0 {
		return x
	}
	a := distuv.UnitNormal.Quantile(x)
	b := distuv.UnitNormal.Quantile(y)

	return distuv.UnitNormal.CDF((a - rho*b) / math.Sqrt(1-rho*rho))
}

// H2 is H1 with the arguments exchanged.
func (c *Gauss) H2(x, y float64) float64 { return c.H1(y, x) }

// H1Inverse returns Φ(Φ⁻¹(w)·sqrt(1-ρ²) + ρΦ⁻¹(y)).
func (c *Gauss) H1Inverse(w, y float64) float64 {
	w, y = clamp2(w, y)
	rho := c.rho()
	if rho == 0 {
		return w
	}
	a := distuv.UnitNormal.Quantile(w)
	b := distuv.UnitNormal.Quantile(y)

	return numeric.Clamp(distuv.UnitNormal.CDF(a*math.Sqrt(1-rho*rho) + rho*b))
}

// H2Inverse is H1Inverse with the conditioning coordinate first.
func (c *Gauss) H2Inverse(x, w float64) float64 { return c.H1Inverse(w, x) }

// Tau returns (2/π)·arcsin(ρ).
func (c *Gauss) Tau() float64 { return 2 / math.Pi * math.Asin(c.rho()) }

// Clone returns an independent copy.
func (c *Gauss) Clone() Family { return &Gauss{params: c.params.clone()} }
