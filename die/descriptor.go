// SPDX-License-Identifier: MIT

package die

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed descriptors and weight vectors.
var (
	// ErrFaceCount is returned when a die has fewer than two faces.
	ErrFaceCount = errors.New("die: face count must be at least 2")

	// ErrOddFaces is returned when faces cannot be split into opposite pairs.
	ErrOddFaces = errors.New("die: face count must be even")

	// ErrFaceOutOfRange is returned when a label lies outside 1..Faces.
	ErrFaceOutOfRange = errors.New("die: face label out of range")

	// ErrOpposition is returned when the opposite pairs do not partition
	// the faces exactly.
	ErrOpposition = errors.New("die: opposite faces do not partition the die")

	// ErrNoCornerSizes is returned when no corner size is requested.
	ErrNoCornerSizes = errors.New("die: no corner sizes")

	// ErrNoCorners is returned when a corner size yields no cycle.
	ErrNoCorners = errors.New("die: corner size yields no corners")

	// ErrExtraCorner is returned when an explicit corner is not a simple
	// cycle on the adjacency graph.
	ErrExtraCorner = errors.New("die: extra corner is not a simple cycle")

	// ErrWeightCount is returned when a weight vector's length differs from
	// the face count.
	ErrWeightCount = errors.New("die: weight count does not match face count")
)

// Descriptor is the input description of a die. Faces are labeled 1..Faces.
type Descriptor struct {
	// Name is a display name ("d6"); optional.
	Name string
	// Faces is the number of faces N.
	Faces int
	// Adjacent lists unordered pairs of faces sharing an edge of the solid.
	Adjacent [][2]int
	// CornerSizes lists the numbers of faces meeting at a corner. A size
	// that yields no cycle on the adjacency graph is rejected.
	CornerSizes []int
	// Opposite pairs every face with its antipodal face.
	Opposite [][2]int
	// ExtraCorners lists corners given explicitly as rings of faces, for
	// solids whose corners mix sizes that enumeration should not cover.
	ExtraCorners [][]int
}

// Validate checks everything that can be checked without building the
// graph: face count parity, label ranges and the opposite-face partition.
func (d Descriptor) Validate() error {
	if d.Faces < 2 {
		return fmt.Errorf("%w: got %d", ErrFaceCount, d.Faces)
	}
	if d.Faces%2 != 0 {
		return fmt.Errorf("%w: got %d", ErrOddFaces, d.Faces)
	}
	for _, e := range d.Adjacent {
		if err := d.checkLabels(e[0], e[1]); err != nil {
			return fmt.Errorf("adjacent %d-%d: %w", e[0], e[1], err)
		}
	}
	if err := CheckOpposition(d.Faces, d.Opposite); err != nil {
		return err
	}
	if len(d.CornerSizes) == 0 && len(d.ExtraCorners) == 0 {
		return ErrNoCornerSizes
	}
	for _, ring := range d.ExtraCorners {
		if err := d.checkLabels(ring...); err != nil {
			return fmt.Errorf("extra corner %v: %w", ring, err)
		}
	}

	return nil
}

func (d Descriptor) checkLabels(labels ...int) error {
	for _, l := range labels {
		if l < 1 || l > d.Faces {
			return fmt.Errorf("%w: %d not in 1..%d", ErrFaceOutOfRange, l, d.Faces)
		}
	}

	return nil
}

// CheckOpposition reports whether pairs split faces 1..n into n/2 disjoint
// pairs of distinct faces.
func CheckOpposition(n int, pairs [][2]int) error {
	if n%2 != 0 {
		return fmt.Errorf("%w: got %d", ErrOddFaces, n)
	}
	if len(pairs) != n/2 {
		return fmt.Errorf("%w: %d pairs for %d faces", ErrOpposition, len(pairs), n)
	}
	seen := make([]bool, n+1)
	for _, p := range pairs {
		if p[0] == p[1] {
			return fmt.Errorf("%w: face %d opposite itself", ErrOpposition, p[0])
		}
		for _, f := range p {
			if f < 1 || f > n {
				return fmt.Errorf("%w: %d not in 1..%d", ErrFaceOutOfRange, f, n)
			}
			if seen[f] {
				return fmt.Errorf("%w: face %d paired twice", ErrOpposition, f)
			}
			seen[f] = true
		}
	}

	return nil
}
