package vine_test

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/katalvlaran/rvine/copula"
	"github.com/katalvlaran/rvine/vine"
)

// ExampleMaxSpanningTree keeps the two strongest links of a triangle; the sign
// of a weight does not matter.
func ExampleMaxSpanningTree() {
	g := vine.NewGraph()
	var nodes []*vine.Node
	for i := 0; i < 3; i++ {
		n := vine.NewNode(fmt.Sprint(i), []int{i}, nil)
		_ = g.AddNode(n)
		nodes = append(nodes, n)
	}
	_, _ = g.AddEdge(nodes[0], nodes[1], 0.9)
	_, _ = g.AddEdge(nodes[1], nodes[2], -0.8)
	_, _ = g.AddEdge(nodes[0], nodes[2], 0.1)

	tree, err := vine.MaxSpanningTree(g, rand.New(rand.NewSource(1)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	var labels []string
	for _, e := range tree.Edges() {
		labels = append(labels, e.Label())
	}
	sort.Strings(labels)
	fmt.Printf("%s %.2f\n", strings.Join(labels, " "), tree.AbsWeight())
	// Output: 0,1 1,2 1.70
}

// ExampleBuild fits a three-variable chain 0 - 1 - 2.
func ExampleBuild() {
	link, _ := copula.NewGauss(0.9)
	r := rand.New(rand.NewSource(3))
	data := [][]float64{make([]float64, 500), make([]float64, 500), make([]float64, 500)}
	for k := 0; k < 500; k++ {
		data[0][k] = r.Float64()
		data[1][k] = link.H2Inverse(data[0][k], r.Float64())
		data[2][k] = link.H2Inverse(data[1][k], r.Float64())
	}

	sel := make([]bool, copula.LibrarySize)
	sel[0], sel[1], sel[4] = true, true, true // I, G, F
	v, err := vine.Build(context.Background(), data, vine.WithFamilies(sel))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, t := range v.Trees {
		fmt.Printf("tree %d: %d edges\n", t.Level, len(t.Pairs))
	}
	fmt.Println(v.Trees[1].Pairs[0].Edge.Label())
	// Output:
	// tree 0: 2 edges
	// tree 1: 1 edges
	// 0,2|1
}
