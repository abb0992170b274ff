// SPDX-License-Identifier: MIT

package copula

import "github.com/katalvlaran/rvine/numeric"

// Independence is the product copula C(x, y) = x·y. It has no parameters.
type Independence struct {
	params
}

// NewIndependence returns the product copula.
func NewIndependence() *Independence {
	return &Independence{}
}

// Name returns "I".
func (c *Independence) Name() string { return NameIndependence }

// CDF returns x·y.
func (c *Independence) CDF(x, y float64) float64 {
	x, y = clamp2(x, y)
	return x * y
}

// Density is identically 1.
func (c *Independence) Density(x, y float64) float64 { return 1 }

// H1 returns x.
func (c *Independence) H1(x, y float64) float64 { return numeric.Clamp(x) }

// H2 returns y.
func (c *Independence) H2(x, y float64) float64 { return numeric.Clamp(y) }

// H1Inverse returns w.
func (c *Independence) H1Inverse(w, y float64) float64 { return numeric.Clamp(w) }

// H2Inverse returns w.
func (c *Independence) H2Inverse(x, w float64) float64 { return numeric.Clamp(w) }

// Tau is identically 0.
func (c *Independence) Tau() float64 { return 0 }

// Clone returns a new product copula.
func (c *Independence) Clone() Family { return &Independence{params: c.params.clone()} }
