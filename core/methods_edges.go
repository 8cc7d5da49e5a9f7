// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge identity and traversal (Equal/Follow/String) plus edge lifecycle
//       and neighborhood queries on Graph.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Neighbors() returns incident edges in insertion order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// Equal reports whether e and other connect the same faces.
// Undirected edges compare as unordered pairs; directed edges compare
// endpoint by endpoint. Edges of different directedness are never equal.
func (e Edge) Equal(other Edge) bool {
	if e.Directed != other.Directed {
		return false
	}
	if e.From.Equal(other.From) && e.To.Equal(other.To) {
		return true
	}

	return !e.Directed && e.From.Equal(other.To) && e.To.Equal(other.From)
}

// Follow returns the endpoint reached by traversing e from v.
//
// Errors:
//   - ErrInvalidTraversal: v is not an endpoint of e, or e is directed and v is not its source.
//
// Complexity: O(1).
func (e Edge) Follow(v Vertex) (Vertex, error) {
	switch {
	case e.From.Equal(v):
		return e.To, nil
	case !e.Directed && e.To.Equal(v):
		return e.From, nil
	}

	return Vertex{}, fmt.Errorf("follow %s from %s: %w", e, v, ErrInvalidTraversal)
}

// MustFollow is like Follow but panics on an invalid traversal.
// Use it where reaching a non-endpoint is a programming error.
func (e Edge) MustFollow(v Vertex) Vertex {
	next, err := e.Follow(v)
	if err != nil {
		panic(err)
	}

	return next
}

// String renders "a--b" for undirected and "a->b" for directed edges.
func (e Edge) String() string {
	if e.Directed {
		return e.From.String() + "->" + e.To.String()
	}

	return e.From.String() + "--" + e.To.String()
}

// AddEdge connects the faces named from and to, registering missing vertices.
//
// Steps:
//  1. Validate names and the loop policy.
//  2. Register endpoints.
//  3. Reject a parallel edge unless multi-edges are enabled.
//  4. Store the edge and link it into the adjacency of both endpoints
//     (only the source for directed edges, once for loops).
//
// Complexity: O(d) for the multi-edge check, d = degree of from.
func (g *Graph) AddEdge(from, to int) (*Edge, error) {
	if from < 1 || to < 1 {
		return nil, ErrBadVertexName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return nil, ErrLoopNotAllowed
	}

	u := g.addVertexLocked(from)
	v := g.addVertexLocked(to)
	e := &Edge{From: u, To: v, Directed: g.directed}

	if !g.allowMulti {
		for _, existing := range g.adjacency[u.Index] {
			if existing.Equal(*e) {
				return nil, ErrMultiEdgeNotAllowed
			}
		}
	}

	g.edges = append(g.edges, e)
	g.adjacency[u.Index] = append(g.adjacency[u.Index], e)
	if !e.Directed && u.Index != v.Index {
		g.adjacency[v.Index] = append(g.adjacency[v.Index], e)
	}

	return e, nil
}

// HasEdge reports whether an edge from→to exists (either orientation for
// undirected graphs).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ui, ok := g.byName[from]
	if !ok {
		return false
	}
	for _, e := range g.adjacency[ui] {
		if next, err := e.Follow(g.vertices[ui]); err == nil && next.Name == to {
			return true
		}
	}

	return false
}

// Edges returns all edges in insertion order.
// The returned pointers are shared with the graph; treat them as read-only.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]*Edge(nil), g.edges...)
}

// EdgeCount returns the number of stored edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns the edges that can be followed from v.
//
// Neighborhood policy:
//   - Undirected edges: every incident edge, loops once.
//   - Directed edges: only edges whose source is v.
//
// Errors:
//   - ErrVertexNotFound: if v is not part of g.
//
// Complexity: O(d).
func (g *Graph) Neighbors(v Vertex) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.indexOfLocked(v)
	if !ok {
		return nil, ErrVertexNotFound
	}

	return append([]*Edge(nil), g.adjacency[idx]...), nil
}

// NeighborVertices returns the distinct vertices reachable from v by one
// edge, in first-seen order.
//
// Errors:
//   - ErrVertexNotFound: if v is not part of g.
func (g *Graph) NeighborVertices(v Vertex) ([]Vertex, error) {
	edges, err := g.Neighbors(v)
	if err != nil {
		return nil, err
	}
	seen := make(map[int]struct{}, len(edges))
	out := make([]Vertex, 0, len(edges))
	for _, e := range edges {
		next := e.MustFollow(v) // adjacency only holds edges followable from v
		if _, dup := seen[next.Name]; dup {
			continue
		}
		seen[next.Name] = struct{}{}
		out = append(out, next)
	}

	return out, nil
}
