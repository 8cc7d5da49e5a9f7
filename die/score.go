// SPDX-License-Identifier: MIT

package die

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// CornerAverages returns, for every corner in Corners order, the mean of
// weights over the corner's faces. The die's own weights are not touched.
func (d *Die) CornerAverages(weights []int) ([]float64, error) {
	if len(weights) != len(d.faces) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWeightCount, len(weights), len(d.faces))
	}
	out := make([]float64, len(d.rings))
	for i, ring := range d.rings {
		sum := 0
		for _, idx := range ring {
			sum += weights[idx]
		}
		out[i] = float64(sum) / float64(len(ring))
	}

	return out, nil
}

// Spread returns the population standard deviation of CornerAverages.
//
// When every corner has the same size k the result is computed from the
// integer corner sums s_i as sqrt(n·Σs² - (Σs)²) / (n·k), which does not
// depend on corner order; candidates whose corner sums are permutations of
// each other tie exactly.
func (d *Die) Spread(weights []int) (float64, error) {
	if len(weights) != len(d.faces) {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrWeightCount, len(weights), len(d.faces))
	}
	if k := d.uniformCornerSize(); k > 0 {
		var sum, sumSq int64
		for _, ring := range d.rings {
			var s int64
			for _, idx := range ring {
				s += int64(weights[idx])
			}
			sum += s
			sumSq += s * s
		}
		n := int64(len(d.rings))

		return math.Sqrt(float64(n*sumSq-sum*sum)) / float64(n*int64(k)), nil
	}

	avgs, err := d.CornerAverages(weights)
	if err != nil {
		return 0, err
	}

	return StdDev(avgs), nil
}

// uniformCornerSize returns the common corner size, or 0 when sizes differ
// or there are no corners.
func (d *Die) uniformCornerSize() int {
	if len(d.rings) == 0 {
		return 0
	}
	k := len(d.rings[0])
	for _, ring := range d.rings[1:] {
		if len(ring) != k {
			return 0
		}
	}

	return k
}

// StdDev is the population standard deviation (divisor n) of xs; 0 for an
// empty slice.
func StdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	_, std := stat.PopMeanStdDev(xs, nil)

	return std
}
