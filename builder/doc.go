// SPDX-License-Identifier: MIT
// Package builder is the catalog of standard dice: d4, d6, d8, d10, d12 and
// d20, each described by the adjacency of its faces.
//
// The catalog supplies:
//
//   - Kind: D4..D20 with String / ParseKind and All (catalog order).
//   - Standard(kind): a die.Descriptor with 1-based face labels, sorted
//     adjacency, corner sizes, opposite pairs and, for the d10, the two
//     apex corners as explicit rings.
//   - New(kind): Standard followed by die.New.
//
// Shells are generated from fixed layouts (see shells.go), so the same Kind
// always yields the same labels, edges and pairs.
//
// Corner counts (corner size → cycles): d4 3→4, d6 3→8, d8 4→6,
// d10 3→10 plus 2 apexes, d12 3→20, d20 5→12.
package builder
