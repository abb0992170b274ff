package selection_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rvine/copula"
	"github.com/katalvlaran/rvine/rank"
	"github.com/katalvlaran/rvine/selection"
)

// draw samples n pseudo-observations from f by conditional inversion.
func draw(f copula.Family, n int, seed int64) (a, b []float64) {
	r := rand.New(rand.NewSource(seed))
	a = make([]float64, n)
	b = make([]float64, n)
	for i := range a {
		a[i] = r.Float64()
		b[i] = f.H2Inverse(a[i], r.Float64())
	}
	return rank.Normalize(a), rank.Normalize(b)
}

func family(t *testing.T, tag string) copula.Family {
	t.Helper()
	f, err := copula.New(tag)
	require.NoError(t, err)
	return f
}

// unsupported fails every parameter update with copula.ErrUnsupported.
type unsupported struct {
	copula.Family
}

func (u unsupported) SetParams([]float64) error { return copula.ErrUnsupported }

// TestSelect_RecoversGauss repeats the Gauss ρ=0.7 scenario over 20 seeds
// and requires at least 19 correct picks.
func TestSelect_RecoversGauss(t *testing.T) {
	truth, err := copula.NewGauss(0.7)
	require.NoError(t, err)

	const trials = 20
	var hits int
	for seed := int64(1); seed <= trials; seed++ {
		a, b := draw(truth, 2000, seed)
		cands := []copula.Family{family(t, "I"), family(t, "G"), family(t, "F"), family(t, "C")}

		got, err := selection.Select(context.Background(), cands, a, b)
		require.NoError(t, err)
		require.Len(t, got.Scores, 4)
		assert.Zero(t, got.Scores[0])
		for i, s := range got.Scores {
			assert.False(t, math.IsInf(s, 1) || math.IsNaN(s), "seed %d candidate %d score %v", seed, i, s)
		}
		if got.Family.Name() == "G" {
			hits++
			assert.Equal(t, 1, got.Index)
			assert.InDelta(t, 0.7, got.Family.Params()[0], 0.05)
		}
	}
	assert.GreaterOrEqual(t, hits, trials-1)
}

// TestSelect_SharedTopObservation places one observation at the top rank of
// both coordinates, which puts a point at the clamp corner (1, 1).
func TestSelect_SharedTopObservation(t *testing.T) {
	truth, err := copula.NewGauss(0.7)
	require.NoError(t, err)
	a, b := draw(truth, 500, 11)
	a = append(a, 2)
	b = append(b, 2)
	a, b = rank.Normalize(a), rank.Normalize(b)

	cands := []copula.Family{family(t, "I"), family(t, "G"), family(t, "F")}
	got, err := selection.Select(context.Background(), cands, a, b)
	require.NoError(t, err)
	assert.Equal(t, "G", got.Family.Name(), "scores %v", got.Scores)
	for _, s := range got.Scores {
		assert.False(t, math.IsInf(s, 0) || math.IsNaN(s), "scores %v", got.Scores)
	}
	assert.Less(t, got.Scores[2], got.Scores[1])
}

func TestSelect_TieKeepsFirst(t *testing.T) {
	a, b := draw(family(t, "C"), 200, 9)
	cands := []copula.Family{family(t, "F"), family(t, "C"), family(t, "C")}

	got, err := selection.Select(context.Background(), cands, a, b, selection.WithWorkers(3))
	require.NoError(t, err)
	assert.Equal(t, 1, got.Index)
	assert.Equal(t, got.Scores[1], got.Scores[2])
}

func TestSelect_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := selection.Select(ctx, nil, []float64{0.5}, []float64{0.5})
	assert.ErrorIs(t, err, selection.ErrNoCandidates)

	cands := []copula.Family{copula.NewIndependence()}
	_, err = selection.Select(ctx, cands, []float64{0.5}, nil)
	assert.ErrorIs(t, err, copula.ErrLengthMismatch)
	_, err = selection.Select(ctx, cands, nil, nil)
	assert.ErrorIs(t, err, copula.ErrEmptySample)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = selection.Select(cancelled, cands, []float64{0.5}, []float64{0.5})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSelect_SkipsUnsupported(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	a, b := draw(family(t, "C"), 100, 4)

	cands := []copula.Family{unsupported{family(t, "G")}, family(t, "F")}
	got, err := selection.Select(context.Background(), cands, a, b, selection.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 1, got.Index)
	assert.True(t, math.IsNaN(got.Scores[0]))
	assert.Contains(t, buf.String(), "candidate skipped")

	_, err = selection.Select(context.Background(), cands[:1], a, b)
	assert.ErrorIs(t, err, selection.ErrNoCandidates)
}

func TestEmpirical(t *testing.T) {
	a := []float64{0.25, 0.5, 0.75, 1}
	b := []float64{0.5, 0.25, 1, 0.75}
	got := selection.Empirical(a, b)
	want := []float64{0.25, 0.25, 0.75, 0.75}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("Empirical mismatch (-want +got):\n%s", diff)
	}
}

// TestGoodnessOfFit_IndependentData expects a high adequacy for the true model.
func TestGoodnessOfFit_IndependentData(t *testing.T) {
	var sum float64
	const seeds = 10
	for s := int64(1); s <= seeds; s++ {
		a, b := draw(copula.NewIndependence(), 100, s)
		got, err := selection.GoodnessOfFit(context.Background(), []copula.Family{copula.NewIndependence()}, a, b,
			selection.WithSeed(s))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.Score, 0.0)
		assert.LessOrEqual(t, got.Score, 1.0)
		sum += got.Score
	}
	assert.Greater(t, sum/seeds, 0.25)
}

// TestGoodnessOfFit_RejectsMisspecified feeds strongly dependent data.
func TestGoodnessOfFit_RejectsMisspecified(t *testing.T) {
	truth, err := copula.NewClayton(5)
	require.NoError(t, err)
	a, b := draw(truth, 200, 21)

	cands := []copula.Family{family(t, "C"), copula.NewIndependence()}
	got, err := selection.GoodnessOfFit(context.Background(), cands, a, b, selection.WithSeed(3))
	require.NoError(t, err)
	assert.Less(t, got.Scores[1], 0.05)
	assert.Equal(t, 0, got.Index)
	assert.Equal(t, "C", got.Family.Name())
}

// TestGoodnessOfFit_KeepsObservedFit checks that bootstrap refits do not leak
// into the returned family.
func TestGoodnessOfFit_KeepsObservedFit(t *testing.T) {
	a, b := draw(family(t, "F"), 150, 8)

	ref := family(t, "F")
	_, err := copula.Fit(ref, a, b)
	require.NoError(t, err)

	got, err := selection.GoodnessOfFit(context.Background(), []copula.Family{family(t, "F")}, a, b,
		selection.WithBootstrap(20))
	require.NoError(t, err)
	assert.Equal(t, ref.Params(), got.Family.Params())
}

// TestGoodnessOfFit_Deterministic compares serial and parallel runs.
func TestGoodnessOfFit_Deterministic(t *testing.T) {
	a, b := draw(family(t, "Gu"), 120, 5)
	run := func(workers int) []float64 {
		cands := []copula.Family{family(t, "Gu"), family(t, "F"), copula.NewIndependence()}
		got, err := selection.GoodnessOfFit(context.Background(), cands, a, b,
			selection.WithSeed(77), selection.WithWorkers(workers), selection.WithBootstrap(30))
		require.NoError(t, err)
		return got.Scores
	}
	assert.Equal(t, run(1), run(8))
}
