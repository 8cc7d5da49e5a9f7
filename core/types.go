// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, and Edge types used to
// describe a die as a face-adjacency graph.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidTraversal    - Follow called with a vertex that is not a usable endpoint.
//	ErrBadVertexName       - vertex name is not a positive face label.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidTraversal indicates Edge.Follow was called with a vertex that is
	// not an endpoint of the edge (or, for directed edges, not its source).
	ErrInvalidTraversal = errors.New("core: invalid traversal")

	// ErrBadVertexName indicates a vertex name that is not a positive face label.
	ErrBadVertexName = errors.New("core: vertex name must be positive")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is one face of a die seen as a graph node.
//
// Name is the immutable 1-based face label and is the vertex identity.
// Index is the 0-based storage slot assigned by the owning Graph; it is a
// position, not part of identity.
type Vertex struct {
	// Name is the face label (1..N). Equality and ordering use Name only.
	Name int

	// Index is the 0-based slot of this vertex inside its Graph.
	Index int
}

// Edge connects two vertices.
//
// For undirected edges (the default) {From, To} is an unordered pair.
// For directed edges order matters and only From may be followed.
type Edge struct {
	// From is the source endpoint.
	From Vertex

	// To is the destination endpoint.
	To Vertex

	// Directed marks the edge as one-way.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all new edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a compact, index-addressed graph of face vertices.
//
// Vertices live in a slice ordered by insertion (Vertex.Index); byName maps a
// face label to its slot. adjacency[i] lists the edges incident to vertex i:
// undirected edges appear in both endpoint buckets, directed edges only in
// the source bucket. mu guards every field.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool // directedness of new edges
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	vertices  []Vertex
	byName    map[int]int
	edges     []*Edge
	adjacency [][]*Edge
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, with no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		byName: make(map[int]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the directedness applied to new edges.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}
