// SPDX-License-Identifier: MIT

package dfs

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dicebalance/core"
	"github.com/katalvlaran/dicebalance/walk"
)

func TestRecord_RejectsBrokenPath(t *testing.T) {
	f := &cycleFinder{
		length: 3,
		opts:   DefaultOptions(),
		found:  redblacktree.NewWith(compareRings),
	}

	// open walk: endpoints differ
	f.path = walk.NewPath(core.Vertex{Name: 1}, core.Vertex{Name: 2}, core.Vertex{Name: 3}, core.Vertex{Name: 4})
	err := f.record()
	require.Error(t, err)
	assert.ErrorIs(t, err, walk.ErrInvalidCycle)
	assert.Zero(t, f.found.Size())

	// inner repeat
	f.path = walk.NewPath(core.Vertex{Name: 1}, core.Vertex{Name: 2}, core.Vertex{Name: 2}, core.Vertex{Name: 1})
	assert.ErrorIs(t, f.record(), walk.ErrInvalidCycle)
	assert.Zero(t, f.found.Size())
}

func TestRecord_StoresOnce(t *testing.T) {
	calls := 0
	f := &cycleFinder{
		length: 3,
		opts: Options{OnCycle: func(walk.Cycle) error {
			calls++
			return nil
		}},
		found: redblacktree.NewWith(compareRings),
	}
	for _, ring := range [][]int{{1, 2, 3, 1}, {2, 3, 1, 2}, {3, 2, 1, 3}} {
		vs := make([]core.Vertex, len(ring))
		for i, n := range ring {
			vs[i] = core.Vertex{Name: n, Index: n - 1}
		}
		f.path = walk.NewPath(vs...)
		require.NoError(t, f.record())
	}
	assert.Equal(t, 1, f.found.Size())
	assert.Equal(t, 1, calls)
}
