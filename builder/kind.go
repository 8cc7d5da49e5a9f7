// SPDX-License-Identifier: MIT
// Package: dicebalance/builder
//
// kind.go - the standard dice of the catalog.

package builder

import (
	"fmt"
	"strings"
)

// Kind enumerates the standard dice of the catalog.
type Kind int

// Enum values (stable ordering; catalog order).
const (
	D4  Kind = iota // tetrahedron,             4 faces, 3 per corner
	D6              // cube,                    6 faces, 3 per corner
	D8              // octahedron,              8 faces, 4 per corner
	D10             // pentagonal trapezohedron, 10 faces, 3 or 5 per corner
	D12             // dodecahedron,            12 faces, 3 per corner
	D20             // icosahedron,             20 faces, 5 per corner
)

var kindNames = [...]string{D4: "d4", D6: "d6", D8: "d8", D10: "d10", D12: "d12", D20: "d20"}

// String returns the conventional lower-case name ("d6").
func (k Kind) String() string {
	if k < D4 || k > D20 {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind accepts "d6", "D6" or "6".
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(name, "d") {
		name = "d" + name
	}
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// All returns every Kind in catalog order.
func All() []Kind {
	return []Kind{D4, D6, D8, D10, D12, D20}
}
