// SPDX-License-Identifier: MIT

package walk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dicebalance/core"
	"github.com/katalvlaran/dicebalance/walk"
)

// vs turns face labels into vertices.
func vs(names ...int) []core.Vertex {
	out := make([]core.Vertex, len(names))
	for i, n := range names {
		out[i] = core.Vertex{Name: n, Index: n - 1}
	}

	return out
}

// names extracts face labels.
func names(v []core.Vertex) []int {
	out := make([]int, len(v))
	for i, x := range v {
		out[i] = x.Name
	}

	return out
}

// bruteCanonical scans all 2N windows of the doubled forward and reversed
// rings and returns the smallest.
func bruteCanonical(ring []core.Vertex) []core.Vertex {
	n := len(ring)
	var best []core.Vertex
	for _, seq := range [][]core.Vertex{ring, walk.Reverse(ring)} {
		doubled := append(append([]core.Vertex(nil), seq...), seq...)
		for i := 0; i < n; i++ {
			w := doubled[i : i+n]
			if best == nil || walk.Compare(w, best) < 0 {
				best = append([]core.Vertex(nil), w...)
			}
		}
	}

	return best
}

func TestMinimalRotation(t *testing.T) {
	tests := []struct {
		in   []int
		want []int
	}{
		{[]int{3, 1, 2}, []int{1, 2, 3}},
		{[]int{5, 4, 1, 9, 2}, []int{1, 9, 2, 5, 4}},
		{[]int{2, 1, 2, 1, 1}, []int{1, 1, 2, 1, 2}},
		{[]int{7}, []int{7}},
		{[]int{}, []int{}},
	}
	for _, tt := range tests {
		got := walk.MinimalRotation(vs(tt.in...))
		assert.Equal(t, tt.want, names(got), "MinimalRotation(%v)", tt.in)
	}
}

func TestMinimalRotation_DoesNotAliasInput(t *testing.T) {
	backing := make([]core.Vertex, 3, 10)
	copy(backing, vs(3, 1, 2))
	_ = walk.MinimalRotation(backing)
	assert.Equal(t, []int{3, 1, 2}, names(backing[:3]))
	assert.Equal(t, 0, backing[:4][3].Name, "spare capacity must stay untouched")
}

func TestCycle_RotationAndReflectionEquivalence(t *testing.T) {
	base := vs(4, 2, 7, 1, 5)
	c, err := walk.NewCycle(base...)
	require.NoError(t, err)

	n := len(base)
	for shift := 0; shift < n; shift++ {
		rot := append(append([]core.Vertex(nil), base[shift:]...), base[:shift]...)
		for _, seq := range [][]core.Vertex{rot, walk.Reverse(rot)} {
			other, err := walk.NewCycle(seq...)
			require.NoError(t, err)
			assert.True(t, c.Equal(other), "%v vs %v", names(base), names(seq))
			assert.Equal(t, c.Key(), other.Key())
		}
	}
}

func TestCycle_CanonicalMatchesAllWindows(t *testing.T) {
	rings := [][]int{
		{1, 2, 3},
		{3, 2, 1},
		{6, 3, 5, 2},
		{10, 9, 8, 7, 6},
		{2, 11, 5, 1, 8},
	}
	for _, r := range rings {
		c, err := walk.NewCycle(vs(r...)...)
		require.NoError(t, err)
		assert.Equal(t, names(bruteCanonical(vs(r...))), names(c.Canonical().Vertices()), "ring %v", r)
	}
}

func TestCycle_CanonicalIsIdempotent(t *testing.T) {
	c, err := walk.NewCycle(vs(5, 3, 9, 1)...)
	require.NoError(t, err)
	once := c.Canonical()
	twice := once.Canonical()
	assert.Equal(t, once.Vertices(), twice.Vertices())
	assert.Equal(t, []int{1, 5, 3, 9}, names(once.Vertices()))
}

func TestCycle_DistinctCyclesDiffer(t *testing.T) {
	a, err := walk.NewCycle(vs(1, 2, 3, 4)...)
	require.NoError(t, err)
	b, err := walk.NewCycle(vs(1, 3, 2, 4)...) // same vertex set, different ring
	require.NoError(t, err)
	c, err := walk.NewCycle(vs(1, 2, 3)...)
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Key(), b.Key())
	assert.False(t, a.Equal(c))
}

func TestNewCycle(t *testing.T) {
	open, err := walk.NewCycle(vs(1, 2, 3)...)
	require.NoError(t, err)
	closed, err := walk.NewCycle(vs(1, 2, 3, 1)...)
	require.NoError(t, err)
	assert.Equal(t, 3, open.Len())
	assert.True(t, open.Equal(closed))
	assert.Equal(t, "[1 2 3 1]", closed.String())
	assert.True(t, closed.Contains(core.Vertex{Name: 2}))
	assert.False(t, closed.Contains(core.Vertex{Name: 4}))
	assert.Equal(t, 4, closed.Closed().Len())

	_, err = walk.NewCycle()
	assert.ErrorIs(t, err, walk.ErrInvalidCycle)
	_, err = walk.NewCycle(vs(1, 2, 2, 3)...)
	assert.ErrorIs(t, err, walk.ErrInvalidCycle)
}

func TestPath_Equality(t *testing.T) {
	p := walk.NewPath(vs(3, 1, 2)...)
	q := walk.NewPath(vs(2, 1, 3)...)
	r := walk.NewPath(vs(1, 3, 2)...)

	assert.True(t, p.Equal(q), "a path equals its reverse")
	assert.False(t, p.Equal(r))
	assert.Equal(t, p.Key(), q.Key())
	assert.Equal(t, []int{2, 1, 3}, names(p.Canonical().Vertices()))
	assert.Equal(t, "[3 1 2]", p.String())
	assert.False(t, p.Equal(walk.NewPath(vs(3, 1)...)))
}

func TestPath_PushPop(t *testing.T) {
	var p walk.Path
	_, ok := p.Pop()
	assert.False(t, ok)

	p.Push(core.Vertex{Name: 1})
	p.Push(core.Vertex{Name: 2})
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 1, p.First().Name)
	assert.Equal(t, 2, p.Last().Name)
	assert.True(t, p.Contains(core.Vertex{Name: 2}))

	v, ok := p.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, v.Name)
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 1, p.At(0).Name)
}

func TestPath_CanBeSimpleCycle(t *testing.T) {
	tests := []struct {
		name string
		path []int
		want bool
	}{
		{"triangle", []int{1, 2, 3, 1}, true},
		{"square", []int{1, 2, 3, 4, 1}, true},
		{"open", []int{1, 2, 3}, false},
		{"inner repeat", []int{1, 2, 3, 2, 1}, false},
		{"empty", nil, false},
		{"single", []int{1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := walk.NewPath(vs(tt.path...)...)
			assert.Equal(t, tt.want, p.CanBeSimpleCycle())
		})
	}
}

func TestPath_Cycle(t *testing.T) {
	c, err := walk.NewPath(vs(2, 3, 1, 2)...).Cycle()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1}, names(c.Vertices()))

	_, err = walk.NewPath(vs(1, 2, 3)...).Cycle()
	assert.ErrorIs(t, err, walk.ErrInvalidCycle)
}
