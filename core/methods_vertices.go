// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex identity (Equal/Compare/String) and vertex lifecycle on Graph.
// Determinism:
//   - Vertices() returns vertices in Index order (insertion order).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"cmp"
	"strconv"
)

// Equal reports whether v and other denote the same face.
// Index is a storage position and is ignored.
func (v Vertex) Equal(other Vertex) bool {
	return v.Name == other.Name
}

// Compare orders vertices by Name.
// Returns -1 if v < other, 0 if equal, +1 if v > other.
func (v Vertex) Compare(other Vertex) int {
	return cmp.Compare(v.Name, other.Name)
}

// String renders the face label.
func (v Vertex) String() string {
	return strconv.Itoa(v.Name)
}

// AddVertex registers a face label and returns its vertex.
// Adding an existing name is a no-op that returns the stored vertex.
//
// Errors:
//   - ErrBadVertexName: if name < 1.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(name int) (Vertex, error) {
	if name < 1 {
		return Vertex{}, ErrBadVertexName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked(name), nil
}

// addVertexLocked inserts name if missing. Caller holds mu.
func (g *Graph) addVertexLocked(name int) Vertex {
	if idx, ok := g.byName[name]; ok {
		return g.vertices[idx]
	}
	v := Vertex{Name: name, Index: len(g.vertices)}
	g.vertices = append(g.vertices, v)
	g.adjacency = append(g.adjacency, nil)
	g.byName[name] = v.Index

	return v
}

// HasVertex reports whether a face label is present.
func (g *Graph) HasVertex(name int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.byName[name]

	return ok
}

// Vertex returns the vertex registered under name.
//
// Errors:
//   - ErrVertexNotFound: if name was never added.
func (g *Graph) Vertex(name int) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.byName[name]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return g.vertices[idx], nil
}

// Vertices returns a copy of all vertices in Index order.
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Vertex(nil), g.vertices...)
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges incident to v under the neighborhood
// policy of Neighbors.
//
// Errors:
//   - ErrVertexNotFound: if v is not part of g.
func (g *Graph) Degree(v Vertex) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.indexOfLocked(v)
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[idx]), nil
}

// indexOfLocked resolves v to its slot by Name. Caller holds mu.
func (g *Graph) indexOfLocked(v Vertex) (int, bool) {
	idx, ok := g.byName[v.Name]

	return idx, ok
}
