// SPDX-License-Identifier: MIT

package vine

import "sort"

// MaxSpanningTreeKruskal returns the maximum-absolute-weight spanning tree of g
// using a disjoint-set forest with path compression and union by rank.
//
// Error Conditions:
//   - ErrEmptyGraph   : g is nil or has no nodes.
//   - ErrDisconnected : fewer than |V|-1 edges could be merged.
//
// Steps:
//  1. Collect the edges and sort them by descending |w| (stable, so equal
//     weights keep insertion order).
//  2. Every node starts as its own component.
//  3. Take each edge joining two components, merge them, stop at |V|-1 edges.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func MaxSpanningTreeKruskal(g *Graph) (*Graph, error) {
	if g.IsEmpty() {
		return nil, ErrEmptyGraph
	}

	n := g.Order()
	tree := g.nodesOnly()
	if n == 1 {
		return tree, nil
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].absWeight() > edges[j].absWeight()
	})

	index := make(map[*Node]int, n)
	for i, v := range g.nodes {
		index[v] = i
	}
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	for _, e := range edges {
		ru, rv := find(index[e.From]), find(index[e.To])
		if ru == rv {
			continue
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		c := *e
		tree.link(&c)
		if tree.Size() == n-1 {
			break
		}
	}

	if tree.Size() < n-1 {
		return nil, ErrDisconnected
	}

	return tree, nil
}
