// SPDX-License-Identifier: MIT
// Package: dicebalance/builder
//
// shells.go - face-adjacency shells of the catalog dice.
//
// A die's face-adjacency graph is the vertex graph of its dual solid:
//   • d4  (tetrahedron)  → tetrahedron graph K4
//   • d6  (cube)         → octahedron graph
//   • d8  (octahedron)   → cube graph Q3
//   • d12 (dodecahedron) → icosahedron graph
//   • d20 (icosahedron)  → dodecahedron graph
//   • d10 (pentagonal trapezohedron) → pentagonal antiprism graph
//
// Every shell is generated from a fixed layout so labels are stable across
// runs. Labels are 1-based face numbers; edges are emitted with U < V.

package builder

// shell is the adjacency data of one catalog die.
type shell struct {
	faces        int
	edges        [][2]int
	cornerSizes  []int
	extraCorners [][]int
	opposite     [][2]int // nil: derive with bfs.Antipodes
}

// shells maps each Kind to its generator.
var shells = map[Kind]func() shell{
	D4:  tetrahedral,
	D6:  cubic,
	D8:  octahedral,
	D10: trapezohedral,
	D12: dodecahedral,
	D20: icosahedral,
}

// edge orders an unordered pair.
func edge(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}

// ring returns label of position i on a ring of n labels starting at base.
func ring(base, n, i int) int {
	return base + ((i%n)+n)%n
}

// tetrahedral: every face touches the other three. A tetrahedron has no
// opposite faces; faces are paired (1,3), (2,4) for value symmetry.
func tetrahedral() shell {
	var es [][2]int
	for u := 1; u <= 4; u++ {
		for v := u + 1; v <= 4; v++ {
			es = append(es, edge(u, v))
		}
	}

	return shell{faces: 4, edges: es, cornerSizes: []int{3}, opposite: [][2]int{{1, 3}, {2, 4}}}
}

// cubic: faces touch unless their labels sum to 7, as on a standard d6.
func cubic() shell {
	var es [][2]int
	for u := 1; u <= 6; u++ {
		for v := u + 1; v <= 6; v++ {
			if u+v != 7 {
				es = append(es, edge(u, v))
			}
		}
	}

	return shell{faces: 6, edges: es, cornerSizes: []int{3}}
}

// octahedral: faces are the octants; label-1 is the 3-bit sign pattern and
// two faces touch when the patterns differ in exactly one bit.
func octahedral() shell {
	var es [][2]int
	for i := 0; i < 8; i++ {
		for bit := 1; bit < 8; bit <<= 1 {
			if j := i ^ bit; j > i {
				es = append(es, edge(i+1, j+1))
			}
		}
	}

	return shell{faces: 8, edges: es, cornerSizes: []int{4}}
}

// trapezohedral layout:
//   • upper kites 1..5 around the top apex, ring 1-2-3-4-5-1
//   • lower kites 6..10 around the bottom apex, ring 6-7-8-9-10-6
//   • upper kite i touches lower kites 5+i and 5+i+1 (zig-zag equator)
//
// The equator corners join three kites; each apex joins five. The apexes are
// not the only 5-cycles of the graph, so they are supplied explicitly.
func trapezohedral() shell {
	var es [][2]int
	for i := 0; i < 5; i++ {
		up, lo := ring(1, 5, i), ring(6, 5, i)
		es = append(es,
			edge(up, ring(1, 5, i+1)),
			edge(lo, ring(6, 5, i+1)),
			edge(up, lo),
			edge(up, ring(6, 5, i+1)),
		)
	}

	return shell{
		faces:        10,
		edges:        es,
		cornerSizes:  []int{3},
		extraCorners: [][]int{{1, 2, 3, 4, 5}, {6, 7, 8, 9, 10}},
	}
}

// dodecahedral layout (icosahedron graph, 12 faces):
//   • top face 1, bottom face 12
//   • upper ring 2..6, lower ring 7..11
//   • upper i touches lower i and i+1
func dodecahedral() shell {
	var es [][2]int
	for i := 0; i < 5; i++ {
		up, lo := ring(2, 5, i), ring(7, 5, i)
		es = append(es,
			edge(1, up),
			edge(up, ring(2, 5, i+1)),
			edge(up, lo),
			edge(up, ring(7, 5, i+1)),
			edge(lo, ring(7, 5, i+1)),
			edge(lo, 12),
		)
	}

	return shell{faces: 12, edges: es, cornerSizes: []int{3}}
}

// icosahedral layout (dodecahedron graph, 20 faces):
//   • top ring 1..5
//   • middle ring 6..15; top i touches middle 2i
//   • bottom ring 16..20; bottom i touches middle 2i+1
func icosahedral() shell {
	var es [][2]int
	for i := 0; i < 5; i++ {
		top, bottom := ring(1, 5, i), ring(16, 5, i)
		es = append(es,
			edge(top, ring(1, 5, i+1)),
			edge(top, ring(6, 10, 2*i)),
			edge(bottom, ring(16, 5, i+1)),
			edge(bottom, ring(6, 10, 2*i+1)),
		)
	}
	for j := 0; j < 10; j++ {
		es = append(es, edge(ring(6, 10, j), ring(6, 10, j+1)))
	}

	return shell{faces: 20, edges: es, cornerSizes: []int{5}}
}
