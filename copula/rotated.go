// SPDX-License-Identifier: MIT

package copula

import "fmt"

// Rotation is a counter-clockwise rotation of a copula density, in degrees.
type Rotation int

// Supported rotations.
const (
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// Rotated wraps a base family and reflects its coordinates:
//
//	90°:  (U, V) = (1-U', V')     C(x, y) = y - C'(1-x, y)
//	180°: (U, V) = (1-U', 1-V')   C(x, y) = x + y - 1 + C'(1-x, 1-y)
//	270°: (U, V) = (U', 1-V')     C(x, y) = x - C'(x, 1-y)
//
// The 90° and 270° rotations carry negative dependence: their parameter
// vector is the negated base vector, and Tau is the negated base tau.
type Rotated struct {
	base  Family
	angle Rotation
}

// Rotate returns f rotated by angle. Only Clayton and Gumbel have rotated
// forms; any other base, or an angle outside {90, 180, 270}, yields
// ErrUnsupported. f is owned by the result.
func Rotate(f Family, angle Rotation) (*Rotated, error) {
	switch f.(type) {
	case *Clayton, *Gumbel:
	default:
		return nil, fmt.Errorf("%w: rotation of %q", ErrUnsupported, f.Name())
	}
	switch angle {
	case Rotate90, Rotate180, Rotate270:
	default:
		return nil, fmt.Errorf("%w: rotation by %d degrees", ErrUnsupported, angle)
	}

	return &Rotated{base: f, angle: angle}, nil
}

// Name returns the base tag followed by the angle, e.g. "C90".
func (r *Rotated) Name() string { return fmt.Sprintf("%s%d", r.base.Name(), r.angle) }

// Base returns the wrapped family.
func (r *Rotated) Base() Family { return r.base }

// Angle returns the rotation.
func (r *Rotated) Angle() Rotation { return r.angle }

// negated reports whether the parameter vector is mirrored.
func (r *Rotated) negated() bool { return r.angle != Rotate180 }

func (r *Rotated) Params() []float64 {
	p := r.base.Params()
	if r.negated() {
		negate(p)
	}

	return p
}

func (r *Rotated) SetParams(p []float64) error {
	if !r.negated() {
		return r.base.SetParams(p)
	}
	q := append([]float64(nil), p...)
	negate(q)

	return r.base.SetParams(q)
}

// Bounds mirrors the base box for 90° and 270°.
func (r *Rotated) Bounds() Bounds {
	b := r.base.Bounds()
	if !r.negated() {
		return b
	}
	negate(b.Lower)
	negate(b.Upper)
	negate(b.Start)
	b.Lower, b.Upper = b.Upper, b.Lower

	return b
}

func (r *Rotated) CDF(x, y float64) float64 {
	x, y = clamp2(x, y)
	switch r.angle {
	case Rotate90:
		return clampUnit(y - r.base.CDF(1-x, y))
	case Rotate180:
		return clampUnit(x + y - 1 + r.base.CDF(1-x, 1-y))
	default:
		return clampUnit(x - r.base.CDF(x, 1-y))
	}
}

func (r *Rotated) Density(x, y float64) float64 {
	x, y = clamp2(x, y)
	switch r.angle {
	case Rotate90:
		return r.base.Density(1-x, y)
	case Rotate180:
		return r.base.Density(1-x, 1-y)
	default:
		return r.base.Density(x, 1-y)
	}
}

func (r *Rotated) H1(x, y float64) float64 {
	x, y = clamp2(x, y)
	switch r.angle {
	case Rotate90:
		return 1 - r.base.H1(1-x, y)
	case Rotate180:
		return 1 - r.base.H1(1-x, 1-y)
	default:
		return r.base.H1(x, 1-y)
	}
}

func (r *Rotated) H2(x, y float64) float64 {
	x, y = clamp2(x, y)
	switch r.angle {
	case Rotate90:
		return r.base.H2(1-x, y)
	case Rotate180:
		return 1 - r.base.H2(1-x, 1-y)
	default:
		return 1 - r.base.H2(x, 1-y)
	}
}

func (r *Rotated) H1Inverse(w, y float64) float64 {
	w, y = clamp2(w, y)
	switch r.angle {
	case Rotate90:
		return 1 - r.base.H1Inverse(1-w, y)
	case Rotate180:
		return 1 - r.base.H1Inverse(1-w, 1-y)
	default:
		return r.base.H1Inverse(w, 1-y)
	}
}

func (r *Rotated) H2Inverse(x, w float64) float64 {
	x, w = clamp2(x, w)
	switch r.angle {
	case Rotate90:
		return r.base.H2Inverse(1-x, w)
	case Rotate180:
		return 1 - r.base.H2Inverse(1-x, 1-w)
	default:
		return 1 - r.base.H2Inverse(x, 1-w)
	}
}

func (r *Rotated) Tau() float64 {
	if r.negated() {
		return -r.base.Tau()
	}

	return r.base.Tau()
}

func (r *Rotated) Clone() Family {
	return &Rotated{base: r.base.Clone(), angle: r.angle}
}

func negate(v []float64) {
	for i := range v {
		v[i] = -v[i]
	}
}
