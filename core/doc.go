// SPDX-License-Identifier: MIT
// Package core provides the graph primitives a die is built from: faces are
// vertices, touching faces are joined by edges.
//
// The Graph G = (V,E) supports:
//
//   - Undirected (default) or directed edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Index-addressed storage: Vertex.Index is a dense 0-based slot, so callers
//     can keep per-face state (weights, distances) in plain slices
//   - A single sync.RWMutex; reads may run concurrently once the graph is built
//
// Identity:
//
//	Vertex identity is its Name (the 1-based face label). Two vertices with the
//	same Name are equal regardless of Index. Vertex.Compare gives the total order
//	used for canonical path and cycle forms.
//
//	Edge.Equal treats undirected edges as unordered pairs and directed edges as
//	ordered pairs. Comparisons are statically typed: a Vertex can only be compared
//	with a Vertex and an Edge with an Edge.
//
// Traversal:
//
//	Edge.Follow(v) returns the opposite endpoint, or ErrInvalidTraversal when v is
//	not an endpoint (or not the source of a directed edge). Cycle enumeration
//	treats that error as "extension not viable"; Edge.MustFollow panics for code
//	paths where a bad traversal can only be a bug.
//
// Core Methods:
//
//	AddVertex(name int) (Vertex, error)       // O(1)
//	AddEdge(from, to int) (*Edge, error)      // O(d)
//	Vertex(name int) (Vertex, error)          // O(1)
//	Vertices() []Vertex                       // O(V), Index order
//	Edges() []*Edge                           // O(E), insertion order
//	Neighbors(v Vertex) ([]*Edge, error)      // O(d)
//	NeighborVertices(v Vertex) ([]Vertex, error)
//	Degree(v Vertex) (int, error)
//
// Errors:
//
//	ErrInvalidTraversal    – Follow from a non-endpoint
//	ErrBadVertexName       – face label < 1
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
