// SPDX-License-Identifier: MIT

package copula

import "errors"

// Sentinel errors for copula operations.
var (
	// ErrUnsupported marks a family/operation combination with no implementation,
	// e.g. an unknown family tag or a rotation of a family without a rotated form.
	// Callers must treat it as a hard stop for that family.
	ErrUnsupported = errors.New("copula: unsupported operation")

	// ErrParamCount indicates a parameter vector of the wrong length.
	ErrParamCount = errors.New("copula: wrong number of parameters")

	// ErrParamOutOfBounds indicates a parameter outside the admissible interval.
	ErrParamOutOfBounds = errors.New("copula: parameter out of bounds")

	// ErrLengthMismatch indicates observation sequences of different lengths.
	ErrLengthMismatch = errors.New("copula: observation length mismatch")

	// ErrEmptySample indicates an empty observation pair.
	ErrEmptySample = errors.New("copula: empty sample")

	// ErrSelectionLength indicates a family selection vector whose length is
	// not LibrarySize.
	ErrSelectionLength = errors.New("copula: selection vector length mismatch")
)

// Family tags.
const (
	NameIndependence = "I"
	NameGauss        = "G"
	NameStudent      = "T"
	NameClayton      = "C"
	NameFrank        = "F"
	NameGumbel       = "Gu"
	NameFGM          = "FGM"
	NameGalambos     = "Ga"
)

// Family is the pair-copula capability contract.
//
// All coordinate arguments are expected in (0, 1); implementations clamp them
// to [numeric.BoundaryEps, 1-numeric.BoundaryEps] before any computation.
type Family interface {
	// Name returns the family tag, including the rotation suffix ("C90", "Gu270").
	Name() string

	// Params returns a copy of the current parameter vector.
	Params() []float64

	// SetParams replaces the parameter vector.
	// Returns ErrParamCount or ErrParamOutOfBounds on invalid input.
	SetParams(p []float64) error

	// Bounds returns the admissible parameter box and the estimator start point.
	Bounds() Bounds

	// CDF is the bivariate distribution function C(x, y).
	CDF(x, y float64) float64

	// Density is the copula density c(x, y) ≥ 0.
	Density(x, y float64) float64

	// H1 is the conditional distribution of the first coordinate given the second.
	H1(x, y float64) float64

	// H2 is the conditional distribution of the second coordinate given the first.
	H2(x, y float64) float64

	// H1Inverse returns x such that H1(x, y) = w.
	H1Inverse(w, y float64) float64

	// H2Inverse returns y such that H2(x, y) = w.
	H2Inverse(x, w float64) float64

	// Tau returns the Kendall's tau implied by the current parameters.
	Tau() float64

	// Clone returns an independent copy, parameters included.
	Clone() Family
}

// Bounds describes the admissible parameter box of a family.
// Lower, Upper and Start have one entry per parameter; a family without
// parameters has empty slices.
type Bounds struct {
	Lower []float64
	Upper []float64
	Start []float64
}

// Dim returns the number of parameters.
func (b Bounds) Dim() int { return len(b.Lower) }

// Contains reports whether p lies inside the box.
func (b Bounds) Contains(p []float64) bool {
	if len(p) != len(b.Lower) {
		return false
	}
	for i, v := range p {
		if !(v >= b.Lower[i] && v <= b.Upper[i]) {
			return false
		}
	}

	return true
}

// clone deep-copies the bound slices.
func (b Bounds) clone() Bounds {
	return Bounds{
		Lower: append([]float64(nil), b.Lower...),
		Upper: append([]float64(nil), b.Upper...),
		Start: append([]float64(nil), b.Start...),
	}
}

// paramTol keeps open parameter intervals strictly inside their limits.
const paramTol = 1e-4

// cdfNodes is the number of Simpson subintervals used by the CDFs that are
// computed by quadrature (Gauss, Student-t). They run inside bootstrap loops.
const cdfNodes = 200
