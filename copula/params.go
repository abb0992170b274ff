// SPDX-License-Identifier: MIT

package copula

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rvine/numeric"
)

// params is the shared parameter/bounds helper embedded by every family.
// It promotes Params, SetParams and Bounds; families read values directly.
type params struct {
	values []float64
	bounds Bounds
}

// newParams validates init against b and returns the helper.
func newParams(b Bounds, init []float64) (params, error) {
	p := params{bounds: b}
	if err := p.SetParams(init); err != nil {
		return params{}, err
	}

	return p, nil
}

// Params returns a copy of the parameter vector.
func (p *params) Params() []float64 {
	return append([]float64(nil), p.values...)
}

// SetParams validates v against the bounds and stores a copy.
func (p *params) SetParams(v []float64) error {
	if len(v) != p.bounds.Dim() {
		return fmt.Errorf("%w: got %d, want %d", ErrParamCount, len(v), p.bounds.Dim())
	}
	if !p.bounds.Contains(v) {
		return fmt.Errorf("%w: %v not in [%v, %v]", ErrParamOutOfBounds, v, p.bounds.Lower, p.bounds.Upper)
	}
	p.values = append(p.values[:0], v...)

	return nil
}

// Bounds returns a copy of the admissible box.
func (p *params) Bounds() Bounds {
	return p.bounds.clone()
}

// clone deep-copies the helper for Family.Clone implementations.
func (p *params) clone() params {
	return params{
		values: append([]float64(nil), p.values...),
		bounds: p.bounds.clone(),
	}
}

// clamp2 clamps both coordinates.
func clamp2(x, y float64) (float64, float64) {
	return numeric.Clamp(x), numeric.Clamp(y)
}

// invertH2 numerically inverts h in its second argument on [0, 1].
// h is monotone increasing in y for every family in this package.
//
// The unit bracket shrinks below numeric.DefaultTolerance after 41 halvings,
// so the width criterion always stops Bisect before DefaultBisectIter and
// the result is always flagged converged.
func invertH2(h func(x, y float64) float64, x, w float64) float64 {
	res := numeric.Bisect(func(y float64) float64 { return h(x, y) }, w, 0, 1)

	return numeric.Clamp(res.X)
}

// clampUnit clips rounding overshoot of closed-form results to [0, 1].
func clampUnit(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
