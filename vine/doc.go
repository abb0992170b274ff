// Package vine builds R-Vine structures: a sequence of trees whose edges carry
// fitted pair-copulas.
//
// What:
//
//   - Graph, Node, Edge: a weighted undirected graph over variable index sets.
//     Every Edge derives its conditioned set (symmetric difference of the
//     endpoint sets) and conditioning set (their intersection) on creation.
//   - MaxSpanningTree: Prim's algorithm, maximum absolute weight variant, from
//     a seeded random start node. MaxSpanningTreeKruskal is the union-find
//     alternative.
//   - Build: the level driver. Level 0 is the complete graph over the
//     variables weighted by Kendall's tau; each level extracts the maximum
//     spanning tree, selects a pair-copula per tree edge, and derives the
//     conditional pseudo-observations that feed the next level.
//
// Determinism:
//
//	Prim breaks ties between equal absolute weights by the first edge
//	encountered, scanning tree nodes in insertion order and each node's
//	incident edges in insertion order. All randomness flows from one seed.
//
// Conventions:
//
//	Level-0 node IDs are the decimal variable indices. A node at level k ≥ 1
//	is the tree edge of level k-1 it stands for, identified by its label
//	"i,j|k,l" (conditioned|conditioning).
//
// Concurrency:
//
//	Graph is not safe for concurrent mutation. Nodes and edges are read-only
//	once added; a spanning tree shares the Node values of its input graph.
package vine
