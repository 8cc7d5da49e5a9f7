// SPDX-License-Identifier: MIT

package walk

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/dicebalance/core"
)

var (
	// ErrInvalidCycle is returned when a vertex sequence cannot be read as a
	// simple cycle (endpoints differ, an inner vertex repeats, or it is empty).
	ErrInvalidCycle = errors.New("walk: not a simple cycle")
)

// Path is an undirected walk: an ordered vertex sequence that is considered
// equal to its own reverse.
//
// The zero value is an empty path ready for Push. Push and Pop reuse the
// backing array, so a single Path can serve as a DFS stack.
type Path struct {
	verts []core.Vertex
}

// NewPath returns a path over a copy of vs.
func NewPath(vs ...core.Vertex) Path {
	return Path{verts: append([]core.Vertex(nil), vs...)}
}

// Push appends v to the end of the path.
func (p *Path) Push(v core.Vertex) {
	p.verts = append(p.verts, v)
}

// Pop removes and returns the last vertex. ok is false on an empty path.
func (p *Path) Pop() (v core.Vertex, ok bool) {
	if len(p.verts) == 0 {
		return core.Vertex{}, false
	}
	v = p.verts[len(p.verts)-1]
	p.verts = p.verts[:len(p.verts)-1]

	return v, true
}

// Len returns the number of vertices in the path (a closed cycle of n
// distinct vertices has length n+1).
func (p Path) Len() int { return len(p.verts) }

// At returns the i-th vertex.
func (p Path) At(i int) core.Vertex { return p.verts[i] }

// First returns the first vertex. The path must be non-empty.
func (p Path) First() core.Vertex { return p.verts[0] }

// Last returns the last vertex. The path must be non-empty.
func (p Path) Last() core.Vertex { return p.verts[len(p.verts)-1] }

// Contains reports whether v occurs anywhere on the path.
func (p Path) Contains(v core.Vertex) bool {
	for _, x := range p.verts {
		if x.Equal(v) {
			return true
		}
	}

	return false
}

// Vertices returns a copy of the vertex sequence.
func (p Path) Vertices() []core.Vertex {
	return append([]core.Vertex(nil), p.verts...)
}

// Reverse returns the same walk traversed backwards.
func (p Path) Reverse() Path {
	return Path{verts: Reverse(p.verts)}
}

// Canonical returns the lexicographically smaller of the forward and the
// reversed sequence. Equal paths share one canonical form.
func (p Path) Canonical() Path {
	rev := Reverse(p.verts)
	if Compare(rev, p.verts) < 0 {
		return Path{verts: rev}
	}

	return NewPath(p.verts...)
}

// Key returns the canonical signature of the path.
func (p Path) Key() string {
	return JoinSig(p.Canonical().verts)
}

// Equal reports whether other is the same walk in either direction.
func (p Path) Equal(other Path) bool {
	if len(p.verts) != len(other.verts) {
		return false
	}

	return Compare(p.Canonical().verts, other.Canonical().verts) == 0
}

// CanBeSimpleCycle reports whether the path closes on itself (first == last)
// while visiting every other vertex exactly once.
//
// Complexity: O(n²) for the repeat scan; n is a corner size (≤ 5 for the
// standard dice), so no map is allocated.
func (p Path) CanBeSimpleCycle() bool {
	n := len(p.verts)
	if n < 2 || !p.verts[0].Equal(p.verts[n-1]) {
		return false
	}
	inner := p.verts[:n-1]
	for i := 1; i < len(inner); i++ {
		for j := 0; j < i; j++ {
			if inner[i].Equal(inner[j]) {
				return false
			}
		}
	}

	return true
}

// Cycle converts a closed simple path into a Cycle.
//
// Errors:
//   - ErrInvalidCycle: the endpoints differ or an inner vertex repeats.
func (p Path) Cycle() (Cycle, error) {
	if !p.CanBeSimpleCycle() {
		return Cycle{}, fmt.Errorf("path %s: %w", p, ErrInvalidCycle)
	}

	return Cycle{ring: append([]core.Vertex(nil), p.verts[:len(p.verts)-1]...)}, nil
}

// String renders the path as "[1 2 3]".
func (p Path) String() string {
	return bracket(p.verts)
}

// bracket renders vertex names separated by spaces inside brackets.
func bracket(vs []core.Vertex) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.String())
	}
	b.WriteByte(']')

	return b.String()
}
