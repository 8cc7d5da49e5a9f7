// Package dicebalance finds the face numbering of a die that spreads weight
// most evenly over its corners.
//
// 🎲 What is a balanced die?
//
//	A die is modelled by its face-adjacency graph: faces are vertices and two
//	faces sharing an edge are joined. A corner of the solid is a ring of faces
//	meeting at one point, i.e. a simple cycle of the graph. Numbering the
//	faces gives every corner an average value; the best numbering is the one
//	whose corner averages have the smallest population standard deviation.
//	Numberings are restricted to the standard convention: opposite faces sum
//	to N+1 and face 1 carries value 1.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       - Vertex, Edge and a thread-safe adjacency-list Graph
//	walk/       - Path and Cycle with dihedral canonical forms (Booth rotation)
//	dfs/        - exhaustive simple-cycle enumeration = corner discovery
//	bfs/        - breadth-first search, distances and antipodal face pairs
//	die/        - Die model: descriptor validation, corners, spread scoring
//	weights/    - lexicographic generator of antipodal numberings
//	optimize/   - sequential or parallel exhaustive search for the optimum
//	builder/    - catalog of the standard d4, d6, d8, d10, d12 and d20
//	descriptor/ - YAML and compact ".die" descriptor files
//	store/      - badger-backed cache of optimization results
//	cmd/dicebalance - command-line front end
//
// Quick ASCII example (d4, every face touches every other face):
//
//	    1───2
//	    │ ╲╱ │     corners: [1 2 3] [1 2 4] [1 3 4] [2 3 4]
//	    │ ╱╲ │     best:    1|1 2|2 3|4 4|3   spread ≈ 0.3727
//	    4───3
//
//	go install github.com/katalvlaran/dicebalance/cmd/dicebalance@latest
package dicebalance
