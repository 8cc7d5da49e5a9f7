// SPDX-License-Identifier: MIT
// Package weights enumerates candidate face-value assignments for a die.
//
// A candidate assigns the values 1..N to the N faces so that opposite faces
// always sum to N+1. Rotating a die does not change its balance, so face 1
// is fixed to value 1 (and its opposite to N); the remaining (N-2)/2 value
// pairs are permuted over the remaining opposite pairs, giving ((N-2)/2)!
// candidates: 1 for a d4, 2 for a d6, 120 for a d12 and 362880 for a d20.
//
// The sequence is lazy and restartable (Generator.All is an iter.Seq), and
// every candidate is a fresh slice, so candidates may be handed to parallel
// workers without copying.
package weights
