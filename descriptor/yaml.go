// SPDX-License-Identifier: MIT

package descriptor

import (
	"bytes"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dicebalance/die"
)

// yamlDie is the YAML document layout:
//
//	name: d6
//	faces: 6
//	corners: 3          # or [3, 5]
//	adjacent: [[1, 2], [1, 3], ...]
//	opposite: [[1, 6], [2, 5], [3, 4]]
//	extra: [[1, 2, 3, 4, 5]]
type yamlDie struct {
	Name     string     `yaml:"name,omitempty"`
	Faces    int        `yaml:"faces"`
	Corners  cornerList `yaml:"corners,flow,omitempty"`
	Adjacent [][]int    `yaml:"adjacent,flow"`
	Opposite [][]int    `yaml:"opposite,flow"`
	Extra    [][]int    `yaml:"extra,flow,omitempty"`
}

// cornerList accepts a single size or a list of sizes.
type cornerList []int

func (c *cornerList) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		var v int
		if err := n.Decode(&v); err != nil {
			return err
		}
		*c = cornerList{v}
		return nil
	}
	var vs []int
	if err := n.Decode(&vs); err != nil {
		return err
	}
	*c = vs

	return nil
}

// ParseYAML decodes and validates a YAML descriptor. Unknown keys are
// rejected.
func ParseYAML(data []byte) (die.Descriptor, error) {
	var doc yamlDie
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return die.Descriptor{}, errors.Wrap(err, "descriptor: yaml")
	}

	adj, err := pairs("adjacent", doc.Adjacent)
	if err != nil {
		return die.Descriptor{}, err
	}
	opp, err := pairs("opposite", doc.Opposite)
	if err != nil {
		return die.Descriptor{}, err
	}
	desc := die.Descriptor{
		Name:         doc.Name,
		Faces:        doc.Faces,
		Adjacent:     adj,
		CornerSizes:  []int(doc.Corners),
		Opposite:     opp,
		ExtraCorners: doc.Extra,
	}
	if err = desc.Validate(); err != nil {
		return die.Descriptor{}, errors.Wrap(err, "descriptor: yaml")
	}

	return desc, nil
}

// EncodeYAML renders desc as a YAML document ParseYAML accepts.
func EncodeYAML(desc die.Descriptor) ([]byte, error) {
	doc := yamlDie{
		Name:     desc.Name,
		Faces:    desc.Faces,
		Corners:  cornerList(desc.CornerSizes),
		Adjacent: lists(desc.Adjacent),
		Opposite: lists(desc.Opposite),
		Extra:    desc.ExtraCorners,
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, "descriptor: yaml")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "descriptor: yaml")
	}

	return buf.Bytes(), nil
}

func lists(ps [][2]int) [][]int {
	out := make([][]int, len(ps))
	for i, p := range ps {
		out[i] = []int{p[0], p[1]}
	}

	return out
}
