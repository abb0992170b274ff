// SPDX-License-Identifier: MIT

package copula

import "math"

// Clayton is the Clayton copula with θ ∈ [1e-4, 28]:
//
//	C(x, y) = (x^-θ + y^-θ - 1)^(-1/θ)
//
// It has lower-tail dependence; Rotate provides the other three corners.
type Clayton struct {
	params
}

// NewClayton returns a Clayton copula with parameter theta.
func NewClayton(theta float64) (*Clayton, error) {
	p, err := newParams(Bounds{
		Lower: []float64{paramTol},
		Upper: []float64{28},
		Start: []float64{1},
	}, []float64{theta})
	if err != nil {
		return nil, err
	}

	return &Clayton{params: p}, nil
}

// Name returns "C".
func (c *Clayton) Name() string { return NameClayton }

func (c *Clayton) theta() float64 { return c.values[0] }

// sum returns x^-θ + y^-θ - 1.
func (c *Clayton) sum(x, y float64) float64 {
	t := c.theta()
	return math.Pow(x, -t) + math.Pow(y, -t) - 1
}

// CDF returns C(x, y).
func (c *Clayton) CDF(x, y float64) float64 {
	x, y = clamp2(x, y)
	return clampUnit(math.Pow(c.sum(x, y), -1/c.theta()))
}

// Density returns (1+θ)(xy)^(-1-θ)(x^-θ + y^-θ - 1)^(-2-1/θ), evaluated in log space.
func (c *Clayton) Density(x, y float64) float64 {
	x, y = clamp2(x, y)
	t := c.theta()
	logc := math.Log1p(t) - (1+t)*(math.Log(x)+math.Log(y)) - (2+1/t)*math.Log(c.sum(x, y))

	return math.Exp(logc)
}

// H2 returns x^(-θ-1)(x^-θ + y^-θ - 1)^(-1-1/θ).
func (c *Clayton) H2(x, y float64) float64 {
	x, y = clamp2(x, y)
	t := c.theta()
	logh := -(t+1)*math.Log(x) - (1+1/t)*math.Log(c.sum(x, y))

	return clampUnit(math.Exp(logh))
}

// H1 is H2 with the arguments exchanged.
func (c *Clayton) H1(x, y float64) float64 { return c.H2(y, x) }

// H2Inverse returns ((w·x^(θ+1))^(-θ/(1+θ)) + 1 - x^-θ)^(-1/θ).
func (c *Clayton) H2Inverse(x, w float64) float64 {
	x, w = clamp2(x, w)
	t := c.theta()
	s := math.Pow(w*math.Pow(x, t+1), -t/(1+t)) + 1 - math.Pow(x, -t)

	return clampUnit(math.Pow(s, -1/t))
}

// H1Inverse is H2Inverse with the conditioning coordinate second.
func (c *Clayton) H1Inverse(w, y float64) float64 { return c.H2Inverse(y, w) }

// Tau returns θ/(θ+2).
func (c *Clayton) Tau() float64 {
	t := c.theta()
	return t / (t + 2)
}

// Clone returns an independent copy.
func (c *Clayton) Clone() Family { return &Clayton{params: c.params.clone()} }
