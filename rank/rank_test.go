package rank_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rvine/rank"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

// TestNormalize_Ties covers the tie-correction scenario [10,20,20,30].
func TestNormalize_Ties(t *testing.T) {
	got := rank.Normalize([]float64{10, 20, 20, 30})
	want := []float64{0.25, 0.625, 0.625, 1.0}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

// TestNormalize_TopTie divides by the averaged rank of a tied maximum.
func TestNormalize_TopTie(t *testing.T) {
	got := rank.Normalize([]float64{3, 1, 3})
	// ranks: 1 -> 1, 3,3 -> 2.5; max rank 2.5
	want := []float64{1, 0.4, 1}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

// TestNormalize_Properties checks range, order preservation and the unit maximum
// on random input with injected ties.
func TestNormalize_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	data := make([]float64, 200)
	for i := range data {
		data[i] = math.Round(r.NormFloat64()*10) / 2 // coarse grid ⇒ many ties
	}
	out := rank.Normalize(data)
	require.Len(t, out, len(data))

	maxIn := math.Inf(-1)
	for _, v := range data {
		maxIn = math.Max(maxIn, v)
	}
	for i := range data {
		assert.True(t, out[i] > 0 && out[i] <= 1, "out[%d]=%v outside (0,1]", i, out[i])
		if data[i] == maxIn {
			assert.Equal(t, 1.0, out[i])
		}
		for j := range data {
			switch {
			case data[i] < data[j]:
				assert.Less(t, out[i], out[j])
			case data[i] == data[j]:
				assert.Equal(t, out[i], out[j])
			}
		}
	}
}

// TestNormalize_Empty returns an empty slice.
func TestNormalize_Empty(t *testing.T) {
	assert.Empty(t, rank.Normalize(nil))
}

// TestKendallTau_PerfectDiscordance is the concrete scenario.
func TestKendallTau_PerfectDiscordance(t *testing.T) {
	tau := rank.KendallTau([]float64{1, 2, 3, 4, 5}, []float64{5, 4, 3, 2, 1})
	assert.Equal(t, -1.0, tau)
}

// TestKendallTau_PerfectConcordance maps a monotone transform to exactly 1.
func TestKendallTau_PerfectConcordance(t *testing.T) {
	a := []float64{0.3, 0.1, 0.9, 0.5, 0.7}
	b := make([]float64, len(a))
	for i, v := range a {
		b[i] = math.Exp(3 * v)
	}
	assert.Equal(t, 1.0, rank.KendallTau(a, b))
}

// TestKendallTau_TauB checks the tie-corrected denominator.
func TestKendallTau_TauB(t *testing.T) {
	// P=4, Q=0, T=1, U=1 ⇒ 4 / sqrt(5·5) = 0.8
	tau := rank.KendallTau([]float64{1, 2, 2, 3}, []float64{1, 2, 3, 3})
	assert.InDelta(t, 0.8, tau, 1e-15)
}

// TestKendallTau_Symmetric compares tau(a,b) with tau(b,a) on random data.
func TestKendallTau_Symmetric(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	a := make([]float64, 100)
	b := make([]float64, 100)
	for i := range a {
		a[i] = r.Float64()
		b[i] = a[i] + r.NormFloat64()
	}
	assert.InDelta(t, rank.KendallTau(a, b), rank.KendallTau(b, a), 1e-15)
}

// TestKendallTau_IndependentNearZero checks the expectation under independence.
func TestKendallTau_IndependentNearZero(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	a := make([]float64, 1000)
	b := make([]float64, 1000)
	for i := range a {
		a[i] = r.Float64()
		b[i] = r.Float64()
	}
	// sd of tau under H0 ≈ sqrt(2(2n+5)/(9n(n-1))) ≈ 0.021
	assert.InDelta(t, 0.0, rank.KendallTau(a, b), 0.08)
}

// TestKendallTau_LengthMismatch returns the NaN sentinel.
func TestKendallTau_LengthMismatch(t *testing.T) {
	assert.True(t, math.IsNaN(rank.KendallTau([]float64{1, 2}, []float64{1})))
}

// TestKendallTau_AllTied has no comparable pair.
func TestKendallTau_AllTied(t *testing.T) {
	assert.True(t, math.IsNaN(rank.KendallTau([]float64{1, 1, 1}, []float64{2, 2, 2})))
}

// TestTauMatrix builds a 3×3 matrix and checks symmetry and entries.
func TestTauMatrix(t *testing.T) {
	cols := [][]float64{
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{1, 2, 3, 5, 4},
	}
	m, err := rank.TauMatrix(cols)
	require.NoError(t, err)
	assert.Equal(t, 3, m.SymmetricDim())
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, -1.0, m.At(0, 1))
	assert.Equal(t, m.At(0, 2), m.At(2, 0))
	assert.InDelta(t, 0.8, m.At(0, 2), 1e-15)
}

// TestTauMatrix_Errors covers the validation sentinels.
func TestTauMatrix_Errors(t *testing.T) {
	_, err := rank.TauMatrix([][]float64{{1, 2}})
	assert.ErrorIs(t, err, rank.ErrTooFewSamples)

	_, err = rank.TauMatrix([][]float64{{1}, {2}})
	assert.ErrorIs(t, err, rank.ErrTooFewSamples)

	_, err = rank.TauMatrix([][]float64{{1, 2, 3}, {1, 2}})
	assert.ErrorIs(t, err, rank.ErrLengthMismatch)
}
