// SPDX-License-Identifier: MIT
// Package walk provides common helpers over vertex sequences: reversal,
// lexicographic comparison, signatures and Booth's minimal-rotation algorithm.

package walk

import (
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/dicebalance/core"
)

// Reverse returns a new slice containing the elements of s in reverse order.
// Time Complexity: O(n).
func Reverse(s []core.Vertex) []core.Vertex {
	out := make([]core.Vertex, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// Compare lexicographically compares two vertex sequences under the vertex
// total order (Vertex.Compare). A proper prefix sorts first.
// Returns -1 if a < b, 0 if equal, +1 if a > b.
// Time Complexity: O(min(len(a), len(b))).
func Compare(a, b []core.Vertex) int {
	return slices.CompareFunc(a, b, func(x, y core.Vertex) int { return x.Compare(y) })
}

// JoinSig concatenates vertex names with commas, producing a signature
// usable as a map or tree key.
// Time Complexity: O(n).
func JoinSig(s []core.Vertex) string {
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v.Name))
	}

	return b.String()
}

// MinimalRotation implements Booth's algorithm to find the lexicographically
// minimal rotation of s. It returns a new slice of length len(s).
//
// Algorithm overview:
//  1. Duplicate the sequence (doubled) to length 2n.
//  2. Maintain an array f of failure links initialized to -1.
//  3. Track candidate k = 0; for j from 1 to 2n-1, adjust k based on comparisons.
//  4. After scanning, extract the rotation starting at index k.
//
// The result equals the smallest of the n windows of length n over the
// doubled sequence.
// Time Complexity: O(n).
func MinimalRotation(s []core.Vertex) []core.Vertex {
	n := len(s)
	if n == 0 {
		return []core.Vertex{}
	}
	doubled := make([]core.Vertex, 0, 2*n)
	doubled = append(append(doubled, s...), s...)

	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && !doubled[j].Equal(doubled[k+i+1]) {
			if doubled[j].Compare(doubled[k+i+1]) < 0 {
				k = j - i - 1
			}
			i = f[i]
		}
		if !doubled[j].Equal(doubled[k+i+1]) { // i == -1
			if doubled[j].Compare(doubled[k]) < 0 {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	res := make([]core.Vertex, n)
	copy(res, doubled[k:k+n])

	return res
}
