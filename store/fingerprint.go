// SPDX-License-Identifier: MIT

package store

import (
	"cmp"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"

	"github.com/katalvlaran/dicebalance/die"
)

// shape is the part of a descriptor that determines the optimum. The name
// is not part of it; pairs are ordered (low, high) and every list sorted.
type shape struct {
	Faces    int      `cbor:"1,keyasint"`
	Adjacent [][2]int `cbor:"2,keyasint"`
	Corners  []int    `cbor:"3,keyasint"`
	Opposite [][2]int `cbor:"4,keyasint"`
	Extra    [][]int  `cbor:"5,keyasint"`
}

var detEnc, detErr = cbor.CoreDetEncOptions().EncMode()

// Fingerprint hashes the canonical shape of desc with xxhash. Descriptors
// that differ only in name, pair orientation or list order share a
// fingerprint.
func Fingerprint(desc die.Descriptor) (uint64, error) {
	if detErr != nil {
		return 0, errors.Wrap(detErr, "store: cbor")
	}
	sh := shape{
		Faces:    desc.Faces,
		Adjacent: normalizePairs(desc.Adjacent),
		Corners:  slices.Compact(slices.Sorted(slices.Values(desc.CornerSizes))),
		Opposite: normalizePairs(desc.Opposite),
		Extra:    make([][]int, len(desc.ExtraCorners)),
	}
	for i, ring := range desc.ExtraCorners {
		sh.Extra[i] = normalizeRing(ring)
	}
	slices.SortFunc(sh.Extra, slices.Compare[[]int])

	data, err := detEnc.Marshal(sh)
	if err != nil {
		return 0, errors.Wrap(err, "store: fingerprint")
	}

	return xxhash.Sum64(data), nil
}

func normalizePairs(ps [][2]int) [][2]int {
	out := make([][2]int, len(ps))
	for i, p := range ps {
		out[i] = [2]int{min(p[0], p[1]), max(p[0], p[1])}
	}
	slices.SortFunc(out, func(a, b [2]int) int {
		return cmp.Or(cmp.Compare(a[0], b[0]), cmp.Compare(a[1], b[1]))
	})

	return slices.Compact(out)
}

// normalizeRing picks the smallest rotation or reflection of ring.
func normalizeRing(ring []int) []int {
	n := len(ring)
	var best []int
	for _, seq := range [][]int{ring, reversed(ring)} {
		for s := 0; s < n; s++ {
			cand := append(slices.Clone(seq[s:]), seq[:s]...)
			if best == nil || slices.Compare(cand, best) < 0 {
				best = cand
			}
		}
	}
	if best == nil {
		return []int{}
	}

	return best
}

func reversed(s []int) []int {
	out := slices.Clone(s)
	slices.Reverse(out)

	return out
}
