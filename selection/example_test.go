package selection_test

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/rvine/copula"
	"github.com/katalvlaran/rvine/rank"
	"github.com/katalvlaran/rvine/selection"
)

// ExampleSelect picks the Clayton family for lower-tail dependent data.
func ExampleSelect() {
	truth, _ := copula.NewClayton(4)
	r := rand.New(rand.NewSource(1))
	a := make([]float64, 500)
	b := make([]float64, 500)
	for i := range a {
		a[i] = r.Float64()
		b[i] = truth.H2Inverse(a[i], r.Float64())
	}
	a, b = rank.Normalize(a), rank.Normalize(b)

	sel := make([]bool, copula.LibrarySize)
	sel[0], sel[3], sel[4] = true, true, true // I, C (+rotations), F
	cands, _ := copula.Library(sel)

	got, err := selection.Select(context.Background(), cands, a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(got.Family.Name())
	// Output: C
}
