// SPDX-License-Identifier: MIT
// Package core_test verifies vertex/edge identity, traversal and graph options.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dicebalance/core"
)

// TestVertex_Equality checks that identity is the face label only.
func TestVertex_Equality(t *testing.T) {
	v1 := core.Vertex{Name: 1, Index: 0}
	v2 := core.Vertex{Name: 1, Index: 7} // same face, different slot
	v3 := core.Vertex{Name: 2, Index: 0}

	assert.True(t, v1.Equal(v2))
	assert.False(t, v1.Equal(v3))
	assert.Equal(t, 0, v1.Compare(v2))
	assert.Equal(t, -1, v1.Compare(v3))
	assert.Equal(t, 1, v3.Compare(v1))
	assert.Equal(t, "1", v1.String())
}

func TestEdge_UndirectedEquality(t *testing.T) {
	a, b, c := core.Vertex{Name: 1}, core.Vertex{Name: 2}, core.Vertex{Name: 3}

	e1 := core.Edge{From: a, To: b}
	e2 := core.Edge{From: b, To: a}
	e3 := core.Edge{From: a, To: c}

	assert.False(t, e1.Directed, "edges are undirected by default")
	assert.True(t, e1.Equal(e2))
	assert.False(t, e1.Equal(e3))
}

func TestEdge_DirectedEquality(t *testing.T) {
	a, b, c := core.Vertex{Name: 1}, core.Vertex{Name: 2}, core.Vertex{Name: 3}

	e1 := core.Edge{From: a, To: b, Directed: true}
	e2 := core.Edge{From: b, To: a, Directed: true}
	e3 := core.Edge{From: a, To: c, Directed: true}

	assert.False(t, e1.Equal(e2))
	assert.False(t, e1.Equal(e3))
	assert.True(t, e1.Equal(core.Edge{From: a, To: b, Directed: true}))
	// same endpoints, different directedness
	assert.False(t, e1.Equal(core.Edge{From: a, To: b}))
}

func TestEdge_Follow(t *testing.T) {
	a, b, c := core.Vertex{Name: 1}, core.Vertex{Name: 2}, core.Vertex{Name: 3}

	tests := []struct {
		name    string
		edge    core.Edge
		from    core.Vertex
		want    core.Vertex
		wantErr bool
	}{
		{"undirected from source", core.Edge{From: a, To: b}, a, b, false},
		{"undirected from target", core.Edge{From: a, To: b}, b, a, false},
		{"undirected non-endpoint", core.Edge{From: a, To: b}, c, core.Vertex{}, true},
		{"directed from source", core.Edge{From: a, To: b, Directed: true}, a, b, false},
		{"directed from target", core.Edge{From: a, To: b, Directed: true}, b, core.Vertex{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.edge.Follow(tt.from)
			if tt.wantErr {
				require.ErrorIs(t, err, core.ErrInvalidTraversal)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestEdge_MustFollowPanics(t *testing.T) {
	e := core.Edge{From: core.Vertex{Name: 1}, To: core.Vertex{Name: 2}}
	assert.Panics(t, func() { e.MustFollow(core.Vertex{Name: 9}) })
	assert.Equal(t, 2, e.MustFollow(core.Vertex{Name: 1}).Name)
}

func TestEdge_String(t *testing.T) {
	a, b := core.Vertex{Name: 4}, core.Vertex{Name: 6}
	assert.Equal(t, "4--6", core.Edge{From: a, To: b}.String())
	assert.Equal(t, "4->6", core.Edge{From: a, To: b, Directed: true}.String())
}

func TestGraph_Options(t *testing.T) {
	g := core.NewGraph()
	assert.False(t, g.Directed())
	assert.False(t, g.Looped())
	assert.False(t, g.Multigraph())

	dg := core.NewGraph(core.WithDirected(true), core.WithLoops(), core.WithMultiEdges())
	assert.True(t, dg.Directed())
	assert.True(t, dg.Looped())
	assert.True(t, dg.Multigraph())
}
