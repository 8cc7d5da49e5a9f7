// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dicebalance/core"
)

// Distances returns the edge distance from face from to every face, indexed
// by Vertex.Index. Unreachable faces get -1.
func Distances(g *core.Graph, from int) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	res, err := BFS(g, from)
	if err != nil {
		return nil, err
	}

	vs := g.Vertices()
	out := make([]int, len(vs))
	for _, v := range vs {
		d, ok := res.Depth[v.Name]
		if !ok {
			d = -1
		}
		out[v.Index] = d
	}

	return out, nil
}

// Antipodes pairs every face with its unique farthest face. On the
// face-adjacency graph of a centrally symmetric die this is the opposite
// face. Pairs are returned as (low, high) sorted by low.
//
// Errors:
//   - ErrDisconnected: some face is unreachable from another.
//   - ErrNoAntipode:   a face has several farthest faces, or a's farthest
//     face b does not have a as its farthest face.
func Antipodes(g *core.Graph) ([][2]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	vs := g.Vertices()
	far := make(map[int]int, len(vs))
	for _, v := range vs {
		dist, err := Distances(g, v.Name)
		if err != nil {
			return nil, err
		}
		best, bestDist, count := 0, -1, 0
		for _, u := range vs {
			d := dist[u.Index]
			switch {
			case d < 0:
				return nil, fmt.Errorf("%w: %d cannot reach %d", ErrDisconnected, v.Name, u.Name)
			case d > bestDist:
				best, bestDist, count = u.Name, d, 1
			case d == bestDist:
				count++
			}
		}
		if count != 1 || best == v.Name {
			return nil, fmt.Errorf("%w: face %d has %d farthest faces", ErrNoAntipode, v.Name, count)
		}
		far[v.Name] = best
	}

	pairs := make([][2]int, 0, len(vs)/2)
	for a, b := range far {
		if far[b] != a {
			return nil, fmt.Errorf("%w: %d→%d but %d→%d", ErrNoAntipode, a, b, b, far[b])
		}
		if a < b {
			pairs = append(pairs, [2]int{a, b})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })

	return pairs, nil
}
