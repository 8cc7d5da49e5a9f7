// SPDX-License-Identifier: MIT
// Package descriptor reads and writes die descriptors in two encodings:
//
//   - YAML (.yaml, .yml): keys name, faces, corners, adjacent, opposite,
//     extra. corners may be a single size or a list.
//   - a compact line language (.die):
//
//     die d6 faces 6 corners 3
//     adjacent 1-2 1-3 1-4 1-5 2-3 2-4 2-6 3-5 3-6 4-5 4-6 5-6
//     opposite 1-6 2-5 3-4
//
// Every parse validates the descriptor (die.Descriptor.Validate) before
// returning it, so a malformed file fails when it is read, not mid-search.
package descriptor
