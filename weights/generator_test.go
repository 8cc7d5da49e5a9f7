// SPDX-License-Identifier: MIT

package weights_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dicebalance/die"
	"github.com/katalvlaran/dicebalance/weights"
)

// pairing returns opposite pairs (i, n+1-i) for i = 1..n/2.
func pairing(n int) [][2]int {
	out := make([][2]int, 0, n/2)
	for i := 1; i <= n/2; i++ {
		out = append(out, [2]int{i, n + 1 - i})
	}

	return out
}

func collect(t *testing.T, g *weights.Generator) [][]int {
	t.Helper()
	var out [][]int
	for w := range g.All() {
		out = append(out, w)
	}

	return out
}

func TestLockedOne_D4(t *testing.T) {
	g, err := weights.LockedOne(4, [][2]int{{1, 3}, {2, 4}})
	require.NoError(t, err)
	assert.Equal(t, 1, g.Count())
	assert.Equal(t, [][]int{{1, 2, 4, 3}}, collect(t, g))
}

func TestLockedOne_D6Order(t *testing.T) {
	g, err := weights.LockedOne(6, [][2]int{{1, 6}, {2, 5}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{1, 2, 3, 4, 5, 6},
		{1, 3, 2, 5, 4, 6},
	}, collect(t, g))
}

func TestLockedOne_PairOrderIndependent(t *testing.T) {
	a, err := weights.LockedOne(6, [][2]int{{3, 4}, {6, 1}, {5, 2}})
	require.NoError(t, err)
	b, err := weights.LockedOne(6, [][2]int{{1, 6}, {2, 5}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, collect(t, b), collect(t, a))
}

func TestLockedOne_Counts(t *testing.T) {
	for _, tt := range []struct{ n, want int }{
		{2, 1}, {4, 1}, {6, 2}, {8, 6}, {10, 24}, {12, 120}, {20, 362880},
	} {
		g, err := weights.LockedOne(tt.n, pairing(tt.n))
		require.NoError(t, err)
		assert.Equal(t, tt.want, g.Count(), "n=%d", tt.n)

		got := collect(t, g)
		assert.Len(t, got, tt.want, "n=%d", tt.n)
	}
}

func TestLockedOne_D20Exhaustive(t *testing.T) {
	if testing.Short() {
		t.Skip("enumerates 362880 candidates")
	}
	n := 20
	opp := pairing(n)
	g, err := weights.LockedOne(n, opp)
	require.NoError(t, err)

	var (
		prev  []int
		count int
	)
	g.Each(func(ord int, w []int) bool {
		require.Equal(t, count, ord)
		require.NoError(t, weights.Validate(w, opp), "candidate %d", ord)
		if prev != nil {
			// strictly increasing order also rules out duplicates
			require.Negative(t, slices.Compare(prev, w), "candidate %d: %v after %v", ord, w, prev)
		}
		prev = w
		count++

		return true
	})
	assert.Equal(t, 362880, count)
	assert.Equal(t, []int{1, 10, 9, 8, 7, 6, 5, 4, 3, 2, 19, 18, 17, 16, 15, 14, 13, 12, 11, 20}, prev)
}

func TestLockedOne_LexicographicOrder(t *testing.T) {
	g, err := weights.LockedOne(10, pairing(10))
	require.NoError(t, err)
	got := collect(t, g)
	require.Len(t, got, 24)

	assert.True(t, slices.IsSortedFunc(got, slices.Compare[[]int]))
	assert.Equal(t, []int{1, 2, 3, 5, 4, 7, 6, 8, 9, 10}, got[1])
	assert.Equal(t, []int{1, 5, 4, 3, 2, 9, 8, 7, 6, 10}, got[23])
}

func TestLockedOne_Properties(t *testing.T) {
	n := 12
	opp := pairing(n)
	g, err := weights.LockedOne(n, opp)
	require.NoError(t, err)

	seen := map[string]bool{}
	var prev []int
	g.Each(func(ord int, w []int) bool {
		require.NoError(t, weights.Validate(w, opp), "candidate %d", ord)
		assert.Equal(t, 1, w[0])
		assert.Equal(t, n, w[n-1])

		key := fmt.Sprint(w)
		assert.False(t, seen[key], "duplicate candidate %v", w)
		seen[key] = true

		if prev != nil {
			assert.False(t, &prev[0] == &w[0], "candidates must not share storage")
		}
		prev = w

		return true
	})
	assert.Len(t, seen, 120)
}

func TestLockedOne_Restartable(t *testing.T) {
	g, err := weights.LockedOne(10, pairing(10))
	require.NoError(t, err)
	first := collect(t, g)
	second := collect(t, g)
	assert.Equal(t, first, second)

	// mutating a yielded slice does not leak into later runs
	first[0][1] = 99
	assert.Equal(t, second, collect(t, g))
}

func TestLockedOne_EarlyStop(t *testing.T) {
	g, err := weights.LockedOne(12, pairing(12))
	require.NoError(t, err)

	var ords []int
	g.Each(func(ord int, _ []int) bool {
		ords = append(ords, ord)
		return ord < 4
	})
	assert.Equal(t, []int{0, 1, 2, 3, 4}, ords)

	n := 0
	for range g.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestLockedOne_Rejects(t *testing.T) {
	_, err := weights.LockedOne(5, [][2]int{{1, 5}, {2, 4}})
	assert.ErrorIs(t, err, die.ErrOddFaces)

	_, err = weights.LockedOne(6, [][2]int{{1, 6}, {2, 5}})
	assert.ErrorIs(t, err, die.ErrOpposition)

	_, err = weights.LockedOne(6, [][2]int{{1, 6}, {2, 5}, {2, 4}})
	assert.ErrorIs(t, err, die.ErrOpposition)

	_, err = weights.LockedOne(6, [][2]int{{1, 6}, {2, 5}, {3, 7}})
	assert.ErrorIs(t, err, die.ErrFaceOutOfRange)

	_, err = weights.LockedOne(0, nil)
	assert.ErrorIs(t, err, die.ErrFaceCount)

	_, err = weights.LockedOne(44, pairing(44))
	assert.ErrorIs(t, err, weights.ErrTooManyCandidates)
}

func TestValidate(t *testing.T) {
	opp := [][2]int{{1, 6}, {2, 5}, {3, 4}}
	assert.NoError(t, weights.Validate([]int{1, 3, 2, 5, 4, 6}, opp))
	assert.ErrorIs(t, weights.Validate([]int{1, 1, 2, 5, 4, 6}, opp), weights.ErrNotBijection)
	assert.ErrorIs(t, weights.Validate([]int{1, 2, 3, 4, 5, 9}, opp), weights.ErrNotBijection)
	assert.ErrorIs(t, weights.Validate([]int{1, 2, 3, 5, 4, 6}, opp), weights.ErrAntipodalSum)
}

func TestLockedOne_FirstCandidateIsAscending(t *testing.T) {
	g, err := weights.LockedOne(8, pairing(8))
	require.NoError(t, err)
	var first []int
	for w := range g.All() {
		first = w
		break
	}
	assert.True(t, slices.IsSorted(first), "%v", first)
}
