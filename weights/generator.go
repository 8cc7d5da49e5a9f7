// SPDX-License-Identifier: MIT

package weights

import (
	"errors"
	"fmt"
	"iter"
	"sort"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/dicebalance/die"
)

// Sentinel errors for candidate generation and validation.
var (
	// ErrTooManyCandidates is returned when ((N-2)/2)! does not fit an int.
	ErrTooManyCandidates = errors.New("weights: candidate count overflows")

	// ErrNotBijection is returned when a weight vector is not a permutation
	// of 1..N.
	ErrNotBijection = errors.New("weights: not a bijection onto 1..N")

	// ErrAntipodalSum is returned when an opposite pair does not sum to N+1.
	ErrAntipodalSum = errors.New("weights: opposite faces do not sum to N+1")
)

// maxFreePairs is the largest m with m! representable in a 64-bit int.
const maxFreePairs = 20

// Generator enumerates antipodally symmetric weight vectors with face 1
// fixed to value 1. See LockedOne.
type Generator struct {
	faces    int
	lockLow  int      // 0-based index of face 1
	lockHigh int      // 0-based index of face 1's opposite
	pairs    [][2]int // remaining pairs, 0-based (low, high), sorted by low
	count    int
}

// LockedOne returns the generator of all weight vectors w over faces 1..n
// such that w is a bijection onto 1..n, every opposite pair sums to n+1,
// face 1 holds 1 and its opposite holds n.
//
// The remaining n/2-1 pairs, ordered by their lower face, receive the value
// pairs (k, n+1-k) for k = 2..n/2 in every order; the lower face of a pair
// takes the smaller value. Orders are enumerated lexicographically, so the
// first candidate assigns k = 2, 3, ... to the pairs in face order.
//
// Errors (fail fast, before any candidate is produced):
//   - die.ErrOddFaces, die.ErrOpposition, die.ErrFaceOutOfRange
//   - ErrTooManyCandidates when n/2-1 > 20
func LockedOne(n int, opposite [][2]int) (*Generator, error) {
	if n < 2 {
		return nil, fmt.Errorf("weights: %w: got %d", die.ErrFaceCount, n)
	}
	if err := die.CheckOpposition(n, opposite); err != nil {
		return nil, fmt.Errorf("weights: %w", err)
	}

	g := &Generator{faces: n, pairs: make([][2]int, 0, len(opposite)-1)}
	for _, p := range opposite {
		lo, hi := min(p[0], p[1])-1, max(p[0], p[1])-1
		if lo == 0 {
			g.lockLow, g.lockHigh = lo, hi
			continue
		}
		g.pairs = append(g.pairs, [2]int{lo, hi})
	}
	sort.Slice(g.pairs, func(i, j int) bool { return g.pairs[i][0] < g.pairs[j][0] })

	if len(g.pairs) > maxFreePairs {
		return nil, fmt.Errorf("%w: %d free pairs", ErrTooManyCandidates, len(g.pairs))
	}
	g.count = combin.NumPermutations(len(g.pairs), len(g.pairs))

	return g, nil
}

// Faces returns N.
func (g *Generator) Faces() int { return g.faces }

// Count returns the number of candidates, ((N-2)/2)!.
func (g *Generator) Count() int { return g.count }

// All returns the candidates as a lazy sequence. Each yielded slice is
// freshly allocated and owned by the consumer. The sequence can be ranged
// over any number of times and always yields the same order.
func (g *Generator) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		g.Each(func(_ int, w []int) bool { return yield(w) })
	}
}

// Each calls fn with every candidate and its 0-based ordinal, stopping
// early when fn returns false. The ordinal is the lexicographic rank of the
// pair ordering, starting from the identity.
func (g *Generator) Each(fn func(ordinal int, w []int) bool) {
	m := len(g.pairs)
	perms := combin.NewPermutationGenerator(m, m)
	order := make([]int, m)
	for ordinal := 0; perms.Next(); ordinal++ {
		if !fn(ordinal, g.build(perms.Permutation(order))) {
			return
		}
	}
}

// build materializes the candidate for one ordering of value pairs:
// pairs[j] gets the value pair with k = order[j]+2.
func (g *Generator) build(order []int) []int {
	w := make([]int, g.faces)
	w[g.lockLow], w[g.lockHigh] = 1, g.faces
	for j, p := range g.pairs {
		k := order[j] + 2
		w[p[0]], w[p[1]] = k, g.faces+1-k
	}

	return w
}

// Validate checks that w is a bijection onto 1..len(w) and that every
// opposite pair sums to len(w)+1.
func Validate(w []int, opposite [][2]int) error {
	n := len(w)
	seen := make([]bool, n+1)
	for i, v := range w {
		if v < 1 || v > n || seen[v] {
			return fmt.Errorf("%w: face %d holds %d", ErrNotBijection, i+1, v)
		}
		seen[v] = true
	}
	for _, p := range opposite {
		if p[0] < 1 || p[0] > n || p[1] < 1 || p[1] > n {
			return fmt.Errorf("weights: %w: pair %v", die.ErrFaceOutOfRange, p)
		}
		if s := w[p[0]-1] + w[p[1]-1]; s != n+1 {
			return fmt.Errorf("%w: faces %d+%d = %d, want %d", ErrAntipodalSum, p[0], p[1], s, n+1)
		}
	}

	return nil
}
