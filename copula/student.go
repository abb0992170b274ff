// SPDX-License-Identifier: MIT

package copula

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/rvine/numeric"
)

// Student is the Student-t copula with correlation ρ ∈ (-1, 1) and
// ν ∈ [1, 30] degrees of freedom. Parameters are ordered (ρ, ν).
//
// With a = t_ν⁻¹(x), b = t_ν⁻¹(y):
//
//	H1(x, y) = t_{ν+1}((a - ρb) / sqrt((ν+b²)(1-ρ²)/(ν+1)))
//
// and the inverse is closed-form. The CDF integrates H1 over the second
// coordinate, C(x, y) = ∫₀^y H1(x, s) ds.
type Student struct {
	params
}

// NewStudent returns a Student-t copula.
func NewStudent(rho, nu float64) (*Student, error) {
	p, err := newParams(Bounds{
		Lower: []float64{-1 + paramTol, 1},
		Upper: []float64{1 - paramTol, 30},
		Start: []float64{0, 4},
	}, []float64{rho, nu})
	if err != nil {
		return nil, err
	}

	return &Student{params: p}, nil
}

// Name returns "T".
func (c *Student) Name() string { return NameStudent }

func (c *Student) rho() float64 { return c.values[0] }
func (c *Student) nu() float64  { return c.values[1] }

func (c *Student) marginal() distuv.StudentsT {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: c.nu()}
}

// CDF integrates the h-function over the conditioning coordinate.
func (c *Student) CDF(x, y float64) float64 {
	x, y = clamp2(x, y)
	return clampUnit(numeric.Simpson(func(s float64) float64 { return c.H1(x, s) }, cdfNodes, 0, y))
}

// Density returns the bivariate t density divided by its marginals.
func (c *Student) Density(x, y float64) float64 {
	x, y = clamp2(x, y)
	rho, nu := c.rho(), c.nu()
	t := c.marginal()
	a := t.Quantile(x)
	b := t.Quantile(y)
	s := 1 - rho*rho

	logJoint := -math.Log(2*math.Pi) - 0.5*math.Log(s) -
		(nu+2)/2*math.Log1p((a*a-2*rho*a*b+b*b)/(nu*s))

	return math.Exp(logJoint - t.LogProb(a) - t.LogProb(b))
}

// H1 returns P(U ≤ x | V = y).
func (c *Student) H1(x, y float64) float64 {
	x, y = clamp2(x, y)
	rho, nu := c.rho(), c.nu()
	t := c.marginal()
	a := t.Quantile(x)
	b := t.Quantile(y)
	scale := math.Sqrt((nu + b*b) * (1 - rho*rho) / (nu + 1))
	t1 := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu + 1}

	return t1.CDF((a - rho*b) / scale)
}

// H2 is H1 with the arguments exchanged.
func (c *Student) H2(x, y float64) float64 { return c.H1(y, x) }

// H1Inverse returns x such that H1(x, y) = w.
func (c *Student) H1Inverse(w, y float64) float64 {
	w, y = clamp2(w, y)
	rho, nu := c.rho(), c.nu()
	t := c.marginal()
	b := t.Quantile(y)
	t1 := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu + 1}
	scale := math.Sqrt((nu + b*b) * (1 - rho*rho) / (nu + 1))

	return numeric.Clamp(t.CDF(t1.Quantile(w)*scale + rho*b))
}

// H2Inverse is H1Inverse with the conditioning coordinate first.
func (c *Student) H2Inverse(x, w float64) float64 { return c.H1Inverse(w, x) }

// Tau returns (2/π)·arcsin(ρ); it does not depend on ν.
func (c *Student) Tau() float64 { return 2 / math.Pi * math.Asin(c.rho()) }

// Clone returns an independent copy.
func (c *Student) Clone() Family { return &Student{params: c.params.clone()} }
