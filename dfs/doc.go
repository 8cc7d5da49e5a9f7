// SPDX-License-Identifier: MIT
// Package dfs enumerates the simple cycles of a fixed length in a core.Graph
// by depth-first search with backtracking. On the face-adjacency graph of a
// convex die, the cycles of the die's corner size are exactly its corners.
//
// What:
//
//   - SimpleCycles: every distinct simple cycle of exactly L vertices.
//   - CornerCycles: SimpleCycles over a list of lengths, failing with
//     ErrNoCycles when a length yields nothing.
//   - SortCycles: stable order by length, then canonical sequence.
//
// How:
//
//	Every edge seeds the search in both directions. A single path buffer is
//	grown by Push and shrunk by Pop; a vertex already on the path is never
//	re-entered, and at full length only the step back to the start vertex is
//	taken. Closed walks are converted with walk.Path.Cycle and stored by
//	their canonical form (walk.Cycle.Canonical) in a red-black tree, so each
//	cycle appears once however many of its 2L traversals were found. The
//	tree also fixes the output order: lexicographic by canonical sequence.
//
// Options:
//
//   - WithContext(ctx): cancellation, checked once per starting edge.
//   - WithOnCycle(fn): hook invoked once per newly found cycle; an error
//     aborts the search.
//
// Errors:
//
//   - ErrGraphNil:  nil graph.
//   - ErrBadLength: length < 3.
//   - ErrNoCycles:  CornerCycles only.
//
// Complexity:
//
//   - Time:   O(E · d^(L-1))   (E=#edges, d=max degree, L=cycle length)
//   - Memory: O(L + C·L)       (one path buffer + C distinct cycles)
package dfs
