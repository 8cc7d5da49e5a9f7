// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dicebalance/core"
)

// queueItem pairs a face with its BFS depth.
type queueItem struct {
	v     core.Vertex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[int]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from face start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any error returned by the OnVisit hook.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	root, err := g.Vertex(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.enqueue(root, 0, nil)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d and records its parent.
func (w *walker) enqueue(v core.Vertex, d int, parent *core.Vertex) {
	w.visited[v.Name] = true
	w.res.Depth[v.Name] = d
	if parent != nil {
		w.res.Parent[v.Name] = parent.Name
	}
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v.Name)
		if err := w.opts.OnVisit(item.v.Name, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v.Name, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors walks the edges of item, applying filter and MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	edges, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %d: %v", ErrNeighbors, item.v.Name, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, e := range edges {
		nbr, err := e.Follow(item.v)
		if err != nil {
			continue // directed edge pointing at item
		}
		if w.visited[nbr.Name] || !w.opts.FilterNeighbor(item.v.Name, nbr.Name) {
			continue
		}
		w.enqueue(nbr, next, &item.v)
	}

	return nil
}
