// SPDX-License-Identifier: MIT

package descriptor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/dicebalance/die"
)

// The compact descriptor language. Whitespace, newlines and comments (# or
// //) are insignificant; sections appear in this order:
//
//	die d10 faces 10 corners 3
//	adjacent 1-2 1-6 1-7 ...
//	opposite 1-9 2-10 3-6 4-7 5-8
//	extra 1 2 3 4 5
//	extra 6 7 8 9 10
type dslDie struct {
	Name     string     `parser:"\"die\" @(Ident | String)"`
	Faces    int        `parser:"\"faces\" @Int"`
	Corners  []int      `parser:"(\"corners\" @Int+)?"`
	Adjacent []*dslPair `parser:"(\"adjacent\" @@+)?"`
	Opposite []*dslPair `parser:"(\"opposite\" @@+)?"`
	Extra    []*dslRing `parser:"(\"extra\" @@)*"`
}

type dslPair struct {
	A int `parser:"@Int \"-\""`
	B int `parser:"@Int"`
}

type dslRing struct {
	Faces []int `parser:"@Int+"`
}

var dslLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `(?:#|//)[^\n]*`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `-`},
	{Name: "whitespace", Pattern: `\s+`},
})

var dslParser = participle.MustBuild[dslDie](
	participle.Lexer(dslLexer),
	participle.Unquote("String"),
)

// ParseDSL parses and validates a descriptor in the compact language.
// name labels positions in syntax errors.
func ParseDSL(name, src string) (die.Descriptor, error) {
	doc, err := dslParser.ParseString(name, src)
	if err != nil {
		return die.Descriptor{}, errors.Wrap(err, "descriptor: dsl")
	}

	desc := die.Descriptor{
		Name:        doc.Name,
		Faces:       doc.Faces,
		CornerSizes: doc.Corners,
	}
	for _, p := range doc.Adjacent {
		desc.Adjacent = append(desc.Adjacent, [2]int{p.A, p.B})
	}
	for _, p := range doc.Opposite {
		desc.Opposite = append(desc.Opposite, [2]int{p.A, p.B})
	}
	for _, r := range doc.Extra {
		desc.ExtraCorners = append(desc.ExtraCorners, r.Faces)
	}
	if err = desc.Validate(); err != nil {
		return die.Descriptor{}, errors.Wrap(err, "descriptor: dsl")
	}

	return desc, nil
}

// EncodeDSL renders desc in the compact language.
func EncodeDSL(desc die.Descriptor) string {
	var b strings.Builder
	name := desc.Name
	if !isBareName(name) {
		name = strconv.Quote(name)
	}
	fmt.Fprintf(&b, "die %s faces %d", name, desc.Faces)
	if len(desc.CornerSizes) > 0 {
		b.WriteString(" corners")
		for _, c := range desc.CornerSizes {
			fmt.Fprintf(&b, " %d", c)
		}
	}
	b.WriteByte('\n')
	writePairs(&b, "adjacent", desc.Adjacent)
	writePairs(&b, "opposite", desc.Opposite)
	for _, ring := range desc.ExtraCorners {
		b.WriteString("extra")
		for _, f := range ring {
			fmt.Fprintf(&b, " %d", f)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func writePairs(b *strings.Builder, keyword string, ps [][2]int) {
	if len(ps) == 0 {
		return
	}
	b.WriteString(keyword)
	for _, p := range ps {
		fmt.Fprintf(b, " %d-%d", p[0], p[1])
	}
	b.WriteByte('\n')
}

var keywords = map[string]bool{
	"die": true, "faces": true, "corners": true, "adjacent": true, "opposite": true, "extra": true,
}

// isBareName reports whether name lexes as a single Ident token.
func isBareName(name string) bool {
	if name == "" || keywords[name] {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && '0' <= c && c <= '9':
		default:
			return false
		}
	}

	return true
}
