// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dicebalance/builder"
	"github.com/katalvlaran/dicebalance/die"
)

func TestKind_StringAndParse(t *testing.T) {
	for _, k := range builder.All() {
		got, err := builder.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	k, err := builder.ParseKind(" D20 ")
	require.NoError(t, err)
	assert.Equal(t, builder.D20, k)
	k, err = builder.ParseKind("8")
	require.NoError(t, err)
	assert.Equal(t, builder.D8, k)

	_, err = builder.ParseKind("d7")
	assert.ErrorIs(t, err, builder.ErrUnknownKind)
	assert.Equal(t, "Kind(42)", builder.Kind(42).String())
}

func TestStandard_Unknown(t *testing.T) {
	_, err := builder.Standard(builder.Kind(-1))
	assert.ErrorIs(t, err, builder.ErrUnknownKind)
	_, err = builder.New(builder.Kind(99))
	assert.ErrorIs(t, err, builder.ErrUnknownKind)
}

func TestStandard_Shapes(t *testing.T) {
	tests := []struct {
		kind    builder.Kind
		faces   int
		edges   int
		degree  int
		corners int
	}{
		{builder.D4, 4, 6, 3, 4},
		{builder.D6, 6, 12, 4, 8},
		{builder.D8, 8, 12, 3, 6},
		{builder.D10, 10, 20, 4, 12},
		{builder.D12, 12, 30, 5, 20},
		{builder.D20, 20, 30, 3, 12},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			desc, err := builder.Standard(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.kind.String(), desc.Name)
			assert.Equal(t, tt.faces, desc.Faces)
			assert.Len(t, desc.Adjacent, tt.edges)
			require.NoError(t, desc.Validate())
			require.NoError(t, die.CheckOpposition(desc.Faces, desc.Opposite))

			d, err := die.New(desc)
			require.NoError(t, err)
			assert.Len(t, d.Corners(), tt.corners)
			assert.Equal(t, tt.edges, d.Graph().EdgeCount(), "no duplicate adjacencies")

			for _, f := range d.Faces() {
				deg, err := d.Graph().Degree(f)
				require.NoError(t, err)
				assert.Equal(t, tt.degree, deg, "face %d", f.Name)
			}

			// a face with k sides touches k neighbors and k corners
			onCorners := map[int]int{}
			for _, c := range d.Corners() {
				for _, v := range c.Vertices() {
					onCorners[v.Name]++
				}
			}
			for f := 1; f <= tt.faces; f++ {
				assert.Equal(t, tt.degree, onCorners[f], "face %d", f)
			}

			if tt.kind == builder.D4 {
				return
			}
			for _, p := range desc.Opposite {
				assert.False(t, d.Graph().HasEdge(p[0], p[1]), "opposite faces %v touch", p)
			}
		})
	}
}

func TestStandard_Pairs(t *testing.T) {
	for _, tt := range []struct {
		kind builder.Kind
		want [][2]int
	}{
		{builder.D4, [][2]int{{1, 3}, {2, 4}}},
		{builder.D6, [][2]int{{1, 6}, {2, 5}, {3, 4}}},
		{builder.D8, [][2]int{{1, 8}, {2, 7}, {3, 6}, {4, 5}}},
		{builder.D10, [][2]int{{1, 9}, {2, 10}, {3, 6}, {4, 7}, {5, 8}}},
	} {
		desc, err := builder.Standard(tt.kind)
		require.NoError(t, err)
		assert.Equal(t, tt.want, desc.Opposite, tt.kind.String())
	}
}

func TestStandard_Deterministic(t *testing.T) {
	for _, k := range builder.All() {
		a, err := builder.Standard(k)
		require.NoError(t, err)
		b, err := builder.Standard(k)
		require.NoError(t, err)
		assert.Equal(t, a, b, k.String())
	}
}
