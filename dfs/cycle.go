// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/dicebalance/core"
	"github.com/katalvlaran/dicebalance/walk"
)

// SimpleCycles returns every distinct simple cycle of exactly length vertices.
//
// Steps:
//  1. Validate graph and length.
//  2. For every edge, seed the path with both orientations (only From→To for
//     directed edges) so every cycle through that edge is reachable.
//  3. Extend the path depth-first by unvisited neighbors until it holds length
//     vertices, then try to close it back to the first vertex.
//  4. Convert the closed path to a Cycle and insert its canonical form into
//     an ordered set to drop rotations and reflections.
//  5. Backtrack by popping the shared path buffer.
//
// An empty result is not an error here; see CornerCycles.
func SimpleCycles(g *core.Graph, length int, opts ...Option) ([]walk.Cycle, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if length < MinCycleLength {
		return nil, fmt.Errorf("dfs: SimpleCycles(%d): %w", length, ErrBadLength)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := &cycleFinder{
		graph:  g,
		length: length,
		opts:   o,
		found:  redblacktree.NewWith(compareRings),
	}
	for _, e := range g.Edges() {
		// cancellation check (once per starting edge)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		starts := [][2]core.Vertex{{e.From, e.To}}
		if !e.Directed {
			starts = append(starts, [2]core.Vertex{e.To, e.From})
		}
		for _, s := range starts {
			if s[0].Equal(s[1]) {
				continue // self-loop never starts a simple cycle of length ≥ 3
			}
			f.path.Push(s[0])
			f.path.Push(s[1])
			err := f.extend()
			f.path.Pop()
			f.path.Pop()
			if err != nil {
				return nil, fmt.Errorf("dfs: SimpleCycles(%d): %w", length, err)
			}
		}
	}

	out := make([]walk.Cycle, 0, f.found.Size())
	for _, v := range f.found.Values() {
		out = append(out, v.(walk.Cycle))
	}

	return out, nil
}

// CornerCycles enumerates cycles for each requested length and concatenates
// the results, lengths in the given order (duplicates ignored).
//
// Errors:
//   - ErrBadLength: a length below MinCycleLength.
//   - ErrNoCycles:  a length that yields no cycle at all.
func CornerCycles(g *core.Graph, lengths []int, opts ...Option) ([]walk.Cycle, error) {
	var all []walk.Cycle
	seen := make(map[int]struct{}, len(lengths))
	for _, l := range lengths {
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}

		cycles, err := SimpleCycles(g, l, opts...)
		if err != nil {
			return nil, err
		}
		if len(cycles) == 0 {
			return nil, fmt.Errorf("dfs: CornerCycles: length %d: %w", l, ErrNoCycles)
		}
		all = append(all, cycles...)
	}

	return all, nil
}

// cycleFinder holds the mutable state of one enumeration.
type cycleFinder struct {
	graph  *core.Graph
	length int
	opts   Options
	path   walk.Path
	found  *redblacktree.Tree // canonical ring → walk.Cycle
}

// extend grows the current path from its last vertex.
func (f *cycleFinder) extend() error {
	last := f.path.Last()
	edges, err := f.graph.Neighbors(last)
	if err != nil {
		return fmt.Errorf("Neighbors(%s): %w", last, err)
	}

	for _, e := range edges {
		next, err := e.Follow(last)
		if errors.Is(err, core.ErrInvalidTraversal) {
			continue // this edge cannot extend the walk
		}

		// Full length: the only viable step closes the ring.
		if f.path.Len() == f.length {
			if !next.Equal(f.path.First()) {
				continue
			}
			f.path.Push(next)
			err = f.record()
			f.path.Pop()
			if err != nil {
				return err
			}
			continue
		}

		if f.path.Contains(next) {
			continue
		}
		f.path.Push(next)
		err = f.extend()
		f.path.Pop()
		if err != nil {
			return err
		}
	}

	return nil
}

// record canonicalizes the closed path and stores it if new. extend only
// closes paths of distinct vertices, so a conversion failure is a broken
// invariant and is reported.
func (f *cycleFinder) record() error {
	c, err := f.path.Cycle()
	if err != nil {
		return fmt.Errorf("record: %w", err)
	}
	canon := c.Canonical()
	key := canon.Vertices()
	if _, exists := f.found.Get(key); exists {
		return nil
	}
	f.found.Put(key, canon)
	if f.opts.OnCycle != nil {
		return f.opts.OnCycle(canon)
	}

	return nil
}

// compareRings orders canonical rings lexicographically by face label.
func compareRings(a, b interface{}) int {
	return walk.Compare(a.([]core.Vertex), b.([]core.Vertex))
}

// SortCycles orders cycles by length, then by canonical sequence.
func SortCycles(cycles []walk.Cycle) {
	slices.SortStableFunc(cycles, func(a, b walk.Cycle) int {
		if a.Len() != b.Len() {
			return a.Len() - b.Len()
		}

		return walk.Compare(a.Canonical().Vertices(), b.Canonical().Vertices())
	})
}
