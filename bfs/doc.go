// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over a core.Graph of faces and
// derives opposite-face pairs from graph distance.
//
// What:
//
//   - BFS: visit order, depth and parent per face label from a start face,
//     with cancellation, a visit hook, depth limit and neighbor filtering.
//   - Distances: edge distance from one face to all faces (by storage index).
//   - Antipodes: the unique farthest face of every face, as sorted pairs.
//
// For the Platonic dice with central symmetry (d6, d8, d12, d20) and for the
// pentagonal trapezohedron (d10), the unique farthest face on the adjacency
// graph is the face on the opposite side of the solid. A tetrahedron has no
// such face (every face touches every other) and yields ErrNoAntipode.
//
// Complexity (V faces, E adjacencies):
//
//   - BFS, Distances: O(V + E)
//   - Antipodes:      O(V · (V + E))
package bfs
