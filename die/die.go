// SPDX-License-Identifier: MIT

package die

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/dicebalance/core"
	"github.com/katalvlaran/dicebalance/dfs"
	"github.com/katalvlaran/dicebalance/walk"
)

// Option configures die construction.
type Option func(*options)

type options struct {
	ctx context.Context
}

// WithContext bounds corner enumeration by ctx. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Die is a convex die modeled as its face-adjacency graph. Corners are
// computed once at construction; weights (face values) start at zero.
// A Die is not safe for concurrent Assign; the scoring methods
// CornerAverages and Spread are pure and may be called concurrently.
type Die struct {
	name     string
	graph    *core.Graph
	faces    []core.Vertex
	corners  []walk.Cycle
	rings    [][]int // corners as 0-based face indices
	opposite [][2]int
	weights  []int
}

// New validates desc, builds the adjacency graph and enumerates corners.
//
// Steps:
//  1. desc.Validate.
//  2. Faces 1..N become vertices with Index = label-1.
//  3. Corners: dfs.CornerCycles over CornerSizes; an empty size fails with
//     ErrNoCorners.
//  4. ExtraCorners are checked against the graph and merged, skipping any
//     already present by canonical key.
func New(desc Descriptor, opts ...Option) (*Die, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	g := core.NewGraph()
	faces := make([]core.Vertex, desc.Faces)
	for i := range faces {
		v, err := g.AddVertex(i + 1)
		if err != nil {
			return nil, fmt.Errorf("die: face %d: %w", i+1, err)
		}
		faces[i] = v
	}
	for _, e := range desc.Adjacent {
		if g.HasEdge(e[0], e[1]) {
			continue
		}
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("die: adjacent %d-%d: %w", e[0], e[1], err)
		}
	}

	var corners []walk.Cycle
	if len(desc.CornerSizes) > 0 {
		var err error
		corners, err = dfs.CornerCycles(g, desc.CornerSizes, dfs.WithContext(o.ctx))
		if errors.Is(err, dfs.ErrNoCycles) {
			return nil, fmt.Errorf("%w: %v", ErrNoCorners, err)
		}
		if err != nil {
			return nil, fmt.Errorf("die: corners: %w", err)
		}
	}

	seen := make(map[string]struct{}, len(corners))
	for _, c := range corners {
		seen[c.Key()] = struct{}{}
	}
	for _, ring := range desc.ExtraCorners {
		c, err := extraCorner(g, faces, ring)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[c.Key()]; dup {
			continue
		}
		seen[c.Key()] = struct{}{}
		corners = append(corners, c)
	}

	d := &Die{
		name:     desc.Name,
		graph:    g,
		faces:    faces,
		corners:  corners,
		rings:    make([][]int, len(corners)),
		opposite: append([][2]int(nil), desc.Opposite...),
		weights:  make([]int, desc.Faces),
	}
	for i, c := range corners {
		vs := c.Vertices()
		d.rings[i] = make([]int, len(vs))
		for j, v := range vs {
			d.rings[i][j] = v.Index
		}
	}

	return d, nil
}

// extraCorner turns a ring of labels into a canonical cycle, requiring at
// least three distinct faces with every consecutive pair adjacent.
func extraCorner(g *core.Graph, faces []core.Vertex, ring []int) (walk.Cycle, error) {
	if len(ring) < dfs.MinCycleLength {
		return walk.Cycle{}, fmt.Errorf("%w: %v has fewer than %d faces", ErrExtraCorner, ring, dfs.MinCycleLength)
	}
	vs := make([]core.Vertex, len(ring))
	for i, l := range ring {
		vs[i] = faces[l-1]
		next := ring[(i+1)%len(ring)]
		if !g.HasEdge(l, next) {
			return walk.Cycle{}, fmt.Errorf("%w: %v: faces %d and %d are not adjacent", ErrExtraCorner, ring, l, next)
		}
	}
	c, err := walk.NewCycle(vs...)
	if err != nil {
		return walk.Cycle{}, fmt.Errorf("%w: %v: %v", ErrExtraCorner, ring, err)
	}

	return c.Canonical(), nil
}

// Name returns the display name given in the descriptor.
func (d *Die) Name() string { return d.name }

// FaceCount returns N.
func (d *Die) FaceCount() int { return len(d.faces) }

// Faces returns a copy of the face vertices in label order.
func (d *Die) Faces() []core.Vertex {
	return append([]core.Vertex(nil), d.faces...)
}

// Corners returns a copy of the corner cycles, in canonical form.
func (d *Die) Corners() []walk.Cycle {
	return append([]walk.Cycle(nil), d.corners...)
}

// Opposite returns a copy of the opposite-face pairs.
func (d *Die) Opposite() [][2]int {
	return append([][2]int(nil), d.opposite...)
}

// Graph returns the underlying adjacency graph. Callers must not mutate it.
func (d *Die) Graph() *core.Graph { return d.graph }

// Assign stores a copy of weights as the current face values, weights[i]
// belonging to face i+1.
func (d *Die) Assign(weights []int) error {
	if len(weights) != len(d.faces) {
		return fmt.Errorf("%w: got %d, want %d", ErrWeightCount, len(weights), len(d.faces))
	}
	copy(d.weights, weights)

	return nil
}

// Weights returns a copy of the current face values.
func (d *Die) Weights() []int {
	return append([]int(nil), d.weights...)
}

// FacesString renders every face with its value, e.g. "[1|1 2|5 3|3]".
func (d *Die) FacesString() string {
	parts := make([]string, len(d.faces))
	for i, f := range d.faces {
		parts[i] = fmt.Sprintf("%d|%d", f.Name, d.weights[i])
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// CornersString renders one corner per line as its faces with values.
func (d *Die) CornersString() string {
	lines := make([]string, len(d.rings))
	for i, ring := range d.rings {
		parts := make([]string, len(ring))
		for j, idx := range ring {
			parts[j] = fmt.Sprintf("%d|%d", d.faces[idx].Name, d.weights[idx])
		}
		lines[i] = "[" + strings.Join(parts, " ") + "]"
	}

	return strings.Join(lines, "\n")
}
