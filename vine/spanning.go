// SPDX-License-Identifier: MIT

package vine

import (
	"math/rand"

	"github.com/katalvlaran/rvine/numeric"
)

// MaxSpanningTree returns the maximum-absolute-weight spanning tree of g by
// Prim's algorithm. The result is a new Graph holding g's nodes and copies of
// the selected edges, in selection order.
//
// Error Conditions:
//   - ErrEmptyGraph   : g is nil or has no nodes.
//   - ErrDisconnected : some node is unreachable; no partial tree is returned.
//
// Steps:
//  1. Pick the start node uniformly with rng (nil ⇒ numeric.DefaultSeed stream).
//  2. Scan the tree nodes in insertion order and, for each, its incident edges
//     in insertion order; keep the first edge with the strictly greatest |w|
//     among those leaving the tree.
//  3. Add that edge and its far endpoint; repeat until every node is in.
//
// A single-node graph yields a tree without edges.
//
// Complexity: O(V·E) time, O(V) memory. Level graphs are small and complete,
// and the scan order is what fixes the tie-break.
func MaxSpanningTree(g *Graph, rng *rand.Rand) (*Graph, error) {
	if g.IsEmpty() {
		return nil, ErrEmptyGraph
	}
	if rng == nil {
		rng = numeric.NewRand(numeric.DefaultSeed)
	}

	n := g.Order()
	tree := g.nodesOnly()
	start := g.nodes[rng.Intn(n)]
	inTree := map[*Node]bool{start: true}
	order := make([]*Node, 1, n)
	order[0] = start

	for len(order) < n {
		var (
			best *Edge
			next *Node
		)
		bestW := -1.0
		for _, u := range order {
			for _, e := range g.adjacency[u] {
				v := e.Other(u)
				if inTree[v] {
					continue
				}
				if w := e.absWeight(); w > bestW {
					best, bestW, next = e, w, v
				}
			}
		}
		if best == nil {
			return nil, ErrDisconnected
		}

		c := *best
		tree.link(&c)
		inTree[next] = true
		order = append(order, next)
	}

	return tree, nil
}

// SpanningTree dispatches to the algorithm selected by m.
func SpanningTree(g *Graph, m Method, rng *rand.Rand) (*Graph, error) {
	if m == MethodKruskal {
		return MaxSpanningTreeKruskal(g)
	}

	return MaxSpanningTree(g, rng)
}
