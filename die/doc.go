// SPDX-License-Identifier: MIT
// Package die models a convex die as the adjacency graph of its faces.
//
// Faces are vertices labeled 1..N, two faces share an edge of the graph when
// they share an edge of the solid, and a corner of the solid is a simple
// cycle of the faces meeting there. Corners are enumerated once, at New,
// from the descriptor's corner sizes, and may be supplemented by explicit
// rings (ExtraCorners) for solids whose corner sizes are mixed.
//
// Face values (weights) are scored by the spread of corner averages: the
// population standard deviation of the mean face value around each corner.
// CornerAverages and Spread take the weight vector as an argument and never
// touch the die, so concurrent evaluation needs no locking; Assign stores
// the chosen vector for display.
package die
