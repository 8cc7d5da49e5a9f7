// SPDX-License-Identifier: MIT
// Package walk gives undirected walks and simple cycles a single canonical
// representative, so that structurally identical corners of a die compare
// and hash equal however they were traversed.
//
// What:
//
//   - Path: an undirected walk. Equal to its reverse; canonical form is the
//     smaller of (forward, reversed) under the vertex total order.
//   - Cycle: a simple cycle stored as an open ring. Canonical form is the
//     smallest window among the N rotations of the ring and the N rotations of
//     its reverse (the dihedral group of order 2N), found with Booth's
//     minimal-rotation algorithm on the doubled sequence.
//   - Path.CanBeSimpleCycle / Path.Cycle: admission test and conversion for
//     closed walks; conversion of an open walk fails with ErrInvalidCycle.
//
// Keys:
//
//	Path.Key and Cycle.Key return comma-joined canonical signatures ("1,2,3").
//	They are the deduplication keys used by package dfs.
//
// Complexity:
//
//   - Path.Canonical:      O(n)
//   - Cycle.Canonical:     O(n) (two Booth passes)
//   - CanBeSimpleCycle:    O(n²) with no allocation; n is a corner size
package walk
