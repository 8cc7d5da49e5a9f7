// SPDX-License-Identifier: MIT
// Package: dicebalance/builder
//
// catalog.go - Standard(kind) and New(kind) constructors.
//
// Contract:
//   • Faces are labeled 1..N; adjacency comes from shells.go.
//   • Opposite faces are the unique farthest faces on the adjacency graph
//     (bfs.Antipodes), except the d4 whose pairing is fixed.
//   • Returns only wrapped sentinels; never panics.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dicebalance/bfs"
	"github.com/katalvlaran/dicebalance/core"
	"github.com/katalvlaran/dicebalance/die"
)

const methodStandard = "Standard"

// Standard returns the descriptor of a catalog die.
//
// Complexity: O(V·(V+E)) for the antipode pass; V ≤ 20, E ≤ 30.
func Standard(kind Kind) (die.Descriptor, error) {
	gen, ok := shells[kind]
	if !ok {
		return die.Descriptor{}, fmt.Errorf("%s: %w: %d", methodStandard, ErrUnknownKind, int(kind))
	}
	s := gen()
	sort.Slice(s.edges, func(i, j int) bool {
		if s.edges[i][0] != s.edges[j][0] {
			return s.edges[i][0] < s.edges[j][0]
		}
		return s.edges[i][1] < s.edges[j][1]
	})

	opposite := s.opposite
	if opposite == nil {
		g := core.NewGraph()
		for f := 1; f <= s.faces; f++ {
			if _, err := g.AddVertex(f); err != nil {
				return die.Descriptor{}, fmt.Errorf("%s(%s): AddVertex(%d): %w: %v", methodStandard, kind, f, ErrConstructFailed, err)
			}
		}
		for _, e := range s.edges {
			if _, err := g.AddEdge(e[0], e[1]); err != nil {
				return die.Descriptor{}, fmt.Errorf("%s(%s): AddEdge(%d,%d): %w: %v", methodStandard, kind, e[0], e[1], ErrConstructFailed, err)
			}
		}
		var err error
		if opposite, err = bfs.Antipodes(g); err != nil {
			return die.Descriptor{}, fmt.Errorf("%s(%s): %w: %v", methodStandard, kind, ErrConstructFailed, err)
		}
	}

	return die.Descriptor{
		Name:         kind.String(),
		Faces:        s.faces,
		Adjacent:     s.edges,
		CornerSizes:  s.cornerSizes,
		Opposite:     opposite,
		ExtraCorners: s.extraCorners,
	}, nil
}

// New builds the catalog die of the given kind.
func New(kind Kind, opts ...die.Option) (*die.Die, error) {
	desc, err := Standard(kind)
	if err != nil {
		return nil, err
	}

	return die.New(desc, opts...)
}
