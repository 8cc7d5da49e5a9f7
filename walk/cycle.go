// SPDX-License-Identifier: MIT

package walk

import (
	"fmt"

	"github.com/katalvlaran/dicebalance/core"
)

// Cycle is an undirected simple cycle stored as an open ring: the closing
// vertex is not repeated. Two cycles are equal when one is a rotation or a
// reflection of the other.
type Cycle struct {
	ring []core.Vertex
}

// NewCycle builds a cycle from its vertices. Both the open form [a b c] and
// the closed form [a b c a] are accepted.
//
// Errors:
//   - ErrInvalidCycle: no vertices, or a vertex repeats inside the ring.
func NewCycle(vs ...core.Vertex) (Cycle, error) {
	if len(vs) == 0 {
		return Cycle{}, fmt.Errorf("empty ring: %w", ErrInvalidCycle)
	}
	if len(vs) > 1 && vs[0].Equal(vs[len(vs)-1]) {
		vs = vs[:len(vs)-1]
	}
	closed := append(append(make([]core.Vertex, 0, len(vs)+1), vs...), vs[0])

	return NewPath(closed...).Cycle()
}

// Len returns the number of distinct vertices on the cycle.
func (c Cycle) Len() int { return len(c.ring) }

// Vertices returns a copy of the open ring in stored order.
func (c Cycle) Vertices() []core.Vertex {
	return append([]core.Vertex(nil), c.ring...)
}

// Contains reports whether v lies on the cycle.
func (c Cycle) Contains(v core.Vertex) bool {
	for _, x := range c.ring {
		if x.Equal(v) {
			return true
		}
	}

	return false
}

// Closed returns the cycle as a closed path [v0 ... v0].
func (c Cycle) Closed() Path {
	if len(c.ring) == 0 {
		return Path{}
	}
	p := NewPath(c.ring...)
	p.Push(c.ring[0])

	return p
}

// Canonical returns the representative of the cycle's dihedral class: the
// lexicographically smallest window among all rotations of the forward ring
// and all rotations of the reversed ring (2N candidates).
//
// Steps:
//  1. rotF = MinimalRotation(ring).
//  2. rotB = MinimalRotation(Reverse(ring)).
//  3. Keep the smaller of the two.
//
// Canonicalizing a canonical cycle returns an identical sequence.
// Complexity: O(N).
func (c Cycle) Canonical() Cycle {
	if len(c.ring) == 0 {
		return Cycle{}
	}
	rotF := MinimalRotation(c.ring)
	rotB := MinimalRotation(Reverse(c.ring))
	if Compare(rotB, rotF) < 0 {
		return Cycle{ring: rotB}
	}

	return Cycle{ring: rotF}
}

// Key returns the canonical signature of the cycle, suitable as a set key.
// Rotations and reflections of one cycle share a key.
func (c Cycle) Key() string {
	return JoinSig(c.Canonical().ring)
}

// Equal reports whether other is the same cycle up to rotation and reflection.
func (c Cycle) Equal(other Cycle) bool {
	if len(c.ring) != len(other.ring) {
		return false
	}

	return Compare(c.Canonical().ring, other.Canonical().ring) == 0
}

// String renders the canonical closed form, e.g. "[1 2 3 1]".
func (c Cycle) String() string {
	return c.Canonical().Closed().String()
}
