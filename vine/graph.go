// SPDX-License-Identifier: MIT

package vine

import (
	"fmt"
	"math"
)

// Node is a vertex of a level graph: a set of variable indices and the
// pseudo-observations available for some of them.
//
// At level 0 a node is one variable and carries its sample. At level k a node
// is a tree edge of level k-1; it carries the two conditional samples
// F(x | y, D) and F(y | x, D) keyed by x and y.
type Node struct {
	// ID is unique within a Graph.
	ID string

	// Set is the sorted index set the node represents.
	Set []int

	samples map[int][]float64
	origin  *Edge
}

// NewNode returns a node over set (sorted and deduplicated) with the given
// samples. samples is retained, not copied.
func NewNode(id string, set []int, samples map[int][]float64) *Node {
	return &Node{ID: id, Set: normalizeSet(set), samples: samples}
}

// Sample returns the pseudo-observations of variable index, or
// ErrMissingSample.
func (n *Node) Sample(index int) ([]float64, error) {
	s, ok := n.samples[index]
	if !ok {
		return nil, fmt.Errorf("%w: node %q, variable %d", ErrMissingSample, n.ID, index)
	}

	return s, nil
}

// Origin returns the previous-level edge this node stands for, nil at level 0.
func (n *Node) Origin() *Edge { return n.origin }

// Edge is an undirected weighted edge between two nodes of one Graph.
type Edge struct {
	From, To *Node

	// Weight is the signed dependence measure of the conditioned pair.
	Weight float64

	// Conditioned is the symmetric difference of the endpoint sets.
	Conditioned []int

	// Conditioning is the intersection of the endpoint sets.
	Conditioning []int
}

func newEdge(from, to *Node, weight float64) *Edge {
	return &Edge{
		From:         from,
		To:           to,
		Weight:       weight,
		Conditioned:  symmetricDifference(from.Set, to.Set),
		Conditioning: intersection(from.Set, to.Set),
	}
}

// Label renders "i,j|k,l", or "i,j" when the conditioning set is empty.
func (e *Edge) Label() string {
	if len(e.Conditioning) == 0 {
		return joinInts(e.Conditioned)
	}

	return joinInts(e.Conditioned) + "|" + joinInts(e.Conditioning)
}

// Other returns the endpoint opposite n, or nil if n is not an endpoint.
func (e *Edge) Other(n *Node) *Node {
	switch n {
	case e.From:
		return e.To
	case e.To:
		return e.From
	}

	return nil
}

// absWeight orders edges for spanning trees; NaN weights rank as zero.
func (e *Edge) absWeight() float64 {
	if math.IsNaN(e.Weight) {
		return 0
	}

	return math.Abs(e.Weight)
}

// Graph is an undirected weighted graph. Node and edge order is insertion order.
type Graph struct {
	nodes     []*Node
	byID      map[string]*Node
	adjacency map[*Node][]*Edge
	edges     []*Edge
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		byID:      make(map[string]*Node),
		adjacency: make(map[*Node][]*Edge),
	}
}

// AddNode appends n. Returns ErrNodeNotFound for nil, ErrDuplicateNode if the ID exists.
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return ErrNodeNotFound
	}
	if _, ok := g.byID[n.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
	}
	g.nodes = append(g.nodes, n)
	g.byID[n.ID] = n
	g.adjacency[n] = nil

	return nil
}

// AddEdge connects two nodes of g and derives the edge's set annotations.
// Returns ErrNodeNotFound if either endpoint is not in g and ErrLoop if
// from == to.
func (g *Graph) AddEdge(from, to *Node, weight float64) (*Edge, error) {
	if !g.has(from) || !g.has(to) {
		return nil, ErrNodeNotFound
	}
	if from == to {
		return nil, ErrLoop
	}
	e := newEdge(from, to, weight)
	g.link(e)

	return e, nil
}

func (g *Graph) has(n *Node) bool {
	if n == nil {
		return false
	}
	_, ok := g.adjacency[n]

	return ok
}

func (g *Graph) link(e *Edge) {
	g.edges = append(g.edges, e)
	g.adjacency[e.From] = append(g.adjacency[e.From], e)
	g.adjacency[e.To] = append(g.adjacency[e.To], e)
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []*Node { return append([]*Node(nil), g.nodes...) }

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []*Edge { return append([]*Edge(nil), g.edges...) }

// Incident returns the edges touching n in insertion order.
func (g *Graph) Incident(n *Node) []*Edge { return append([]*Edge(nil), g.adjacency[n]...) }

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.nodes) }

// Size returns the number of edges.
func (g *Graph) Size() int { return len(g.edges) }

// IsEmpty reports whether g is nil or has no nodes.
func (g *Graph) IsEmpty() bool { return g == nil || len(g.nodes) == 0 }

// AbsWeight returns Σ|w| over the edges, NaN weights counted as zero.
func (g *Graph) AbsWeight() float64 {
	var s float64
	for _, e := range g.edges {
		s += e.absWeight()
	}

	return s
}

// nodesOnly returns a graph with g's nodes and no edges.
func (g *Graph) nodesOnly() *Graph {
	out := NewGraph()
	for _, n := range g.nodes {
		out.nodes = append(out.nodes, n)
		out.byID[n.ID] = n
		out.adjacency[n] = nil
	}

	return out
}
