package vine_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rvine/vine"
)

// randomGraph builds a connected graph over n singleton nodes: a random chain
// plus each remaining pair with probability density, weights in (-1, 1).
func randomGraph(n int, density float64, r *rand.Rand) *vine.Graph {
	g := vine.NewGraph()
	nodes := make([]*vine.Node, n)
	for i := range nodes {
		nodes[i] = vine.NewNode(fmt.Sprint(i), []int{i}, nil)
		_ = g.AddNode(nodes[i])
	}
	perm := r.Perm(n)
	linked := map[[2]int]bool{}
	for i := 1; i < n; i++ {
		u, v := perm[i-1], perm[i]
		_, _ = g.AddEdge(nodes[u], nodes[v], 2*r.Float64()-1)
		linked[[2]int{u, v}], linked[[2]int{v, u}] = true, true
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if linked[[2]int{u, v}] || r.Float64() > density {
				continue
			}
			_, _ = g.AddEdge(nodes[u], nodes[v], 2*r.Float64()-1)
		}
	}
	return g
}

// bruteForceMax enumerates every (n-1)-edge subset and returns the best total
// |w| among those forming a spanning tree.
func bruteForceMax(g *vine.Graph) float64 {
	nodes := g.Nodes()
	edges := g.Edges()
	idx := map[*vine.Node]int{}
	for i, n := range nodes {
		idx[n] = i
	}
	n, m := len(nodes), len(edges)
	best := math.Inf(-1)

	var rec func(start int, chosen []int)
	rec = func(start int, chosen []int) {
		if len(chosen) == n-1 {
			parent := make([]int, n)
			for i := range parent {
				parent[i] = i
			}
			var find func(int) int
			find = func(x int) int {
				if parent[x] != x {
					parent[x] = find(parent[x])
				}
				return parent[x]
			}
			var total float64
			for _, k := range chosen {
				a, b := find(idx[edges[k].From]), find(idx[edges[k].To])
				if a == b {
					return
				}
				parent[a] = b
				total += math.Abs(edges[k].Weight)
			}
			best = math.Max(best, total)
			return
		}
		for k := start; k < m; k++ {
			rec(k+1, append(chosen, k))
		}
	}
	rec(0, nil)
	return best
}

// assertSpanning checks |V|-1 edges touching every node.
func assertSpanning(t *testing.T, g, tree *vine.Graph) {
	t.Helper()
	require.Equal(t, g.Order(), tree.Order())
	require.Equal(t, g.Order()-1, tree.Size())
	for _, n := range tree.Nodes() {
		if g.Order() > 1 {
			assert.NotEmpty(t, tree.Incident(n), "node %s untouched", n.ID)
		}
	}
}

func TestMaxSpanningTree_BruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 40; trial++ {
		n := 2 + trial%5 // 2..6
		g := randomGraph(n, 0.2+0.8*r.Float64(), r)
		want := bruteForceMax(g)

		prim, err := vine.MaxSpanningTree(g, rand.New(rand.NewSource(int64(trial))))
		require.NoError(t, err)
		assertSpanning(t, g, prim)
		assert.InDelta(t, want, prim.AbsWeight(), 1e-12, "prim trial %d", trial)

		kr, err := vine.MaxSpanningTreeKruskal(g)
		require.NoError(t, err)
		assertSpanning(t, g, kr)
		assert.InDelta(t, want, kr.AbsWeight(), 1e-12, "kruskal trial %d", trial)
	}
}

// TestMaxSpanningTree_TieBreak fixes the start node and checks that the first
// edge encountered wins among equal absolute weights.
func TestMaxSpanningTree_TieBreak(t *testing.T) {
	g := vine.NewGraph()
	a := vine.NewNode("A", []int{0}, nil)
	b := vine.NewNode("B", []int{1}, nil)
	c := vine.NewNode("C", []int{2}, nil)
	for _, n := range []*vine.Node{a, b, c} {
		require.NoError(t, g.AddNode(n))
	}
	_, _ = g.AddEdge(a, b, 1)
	_, _ = g.AddEdge(a, c, -1)
	_, _ = g.AddEdge(b, c, 1)

	want := map[string][]string{
		"A": {"A-B", "A-C"},
		"B": {"A-B", "B-C"},
		"C": {"A-C", "B-C"},
	}
	for seed := int64(1); seed <= 6; seed++ {
		start := g.Nodes()[rand.New(rand.NewSource(seed)).Intn(3)].ID

		tree, err := vine.MaxSpanningTree(g, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		var got []string
		for _, e := range tree.Edges() {
			got = append(got, e.From.ID+"-"+e.To.ID)
		}
		assert.Equal(t, want[start], got, "start %s", start)
	}
}

func TestMaxSpanningTree_Errors(t *testing.T) {
	_, err := vine.MaxSpanningTree(nil, nil)
	assert.ErrorIs(t, err, vine.ErrEmptyGraph)
	_, err = vine.MaxSpanningTree(vine.NewGraph(), nil)
	assert.ErrorIs(t, err, vine.ErrEmptyGraph)
	_, err = vine.MaxSpanningTreeKruskal(nil)
	assert.ErrorIs(t, err, vine.ErrEmptyGraph)

	g := vine.NewGraph()
	a := vine.NewNode("a", []int{0}, nil)
	b := vine.NewNode("b", []int{1}, nil)
	c := vine.NewNode("c", []int{2}, nil)
	for _, n := range []*vine.Node{a, b, c} {
		require.NoError(t, g.AddNode(n))
	}
	_, _ = g.AddEdge(a, b, 0.5)

	tree, err := vine.MaxSpanningTree(g, nil)
	assert.ErrorIs(t, err, vine.ErrDisconnected)
	assert.Nil(t, tree)
	_, err = vine.SpanningTree(g, vine.MethodKruskal, nil)
	assert.ErrorIs(t, err, vine.ErrDisconnected)
}

func TestMaxSpanningTree_SingleNode(t *testing.T) {
	g := vine.NewGraph()
	require.NoError(t, g.AddNode(vine.NewNode("only", []int{0}, nil)))

	for _, m := range []vine.Method{vine.MethodPrim, vine.MethodKruskal} {
		tree, err := vine.SpanningTree(g, m, nil)
		require.NoError(t, err, m.String())
		assert.Equal(t, 1, tree.Order())
		assert.Zero(t, tree.Size())
	}
}

// TestMaxSpanningTree_NaNWeight treats an undefined weight as zero dependence.
func TestMaxSpanningTree_NaNWeight(t *testing.T) {
	g := vine.NewGraph()
	a := vine.NewNode("a", []int{0}, nil)
	b := vine.NewNode("b", []int{1}, nil)
	require.NoError(t, g.AddNode(a))
	require.NoError(t, g.AddNode(b))
	_, _ = g.AddEdge(a, b, math.NaN())

	tree, err := vine.MaxSpanningTree(g, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Size())
}

func TestMaxSpanningTree_LeavesInputIntact(t *testing.T) {
	g := randomGraph(5, 1, rand.New(rand.NewSource(5)))
	before := g.Size()
	tree, err := vine.MaxSpanningTree(g, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, before, g.Size())
	for _, e := range tree.Edges() {
		for _, orig := range g.Edges() {
			assert.False(t, e == orig, "tree shares edge %s with its input", e.Label())
		}
	}
}
