// SPDX-License-Identifier: MIT

package descriptor

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/dicebalance/die"
)

var (
	// ErrUnknownFormat is returned by Load for an unrecognized extension.
	ErrUnknownFormat = errors.New("descriptor: unknown file format")

	// ErrBadPair is returned when an adjacency or opposite entry does not
	// hold exactly two faces.
	ErrBadPair = errors.New("descriptor: pair must hold two faces")
)

// Format names a descriptor encoding.
type Format string

// Supported formats.
const (
	YAML Format = "yaml"
	DSL  Format = "die"
)

// FormatOf picks the format from a file extension: .yaml / .yml or .die.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".die":
		return DSL, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", path)
	}
}

// Load reads and validates the descriptor at path.
func Load(path string) (die.Descriptor, error) {
	format, err := FormatOf(path)
	if err != nil {
		return die.Descriptor{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return die.Descriptor{}, errors.Wrap(err, "descriptor: read")
	}

	return Parse(format, path, data)
}

// Parse decodes data in the given format and validates the result.
// name is used in error messages only.
func Parse(format Format, name string, data []byte) (die.Descriptor, error) {
	var (
		desc die.Descriptor
		err  error
	)
	switch format {
	case YAML:
		desc, err = ParseYAML(data)
	case DSL:
		desc, err = ParseDSL(name, string(data))
	default:
		return die.Descriptor{}, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	if err != nil {
		return die.Descriptor{}, errors.Wrapf(err, "%s", name)
	}

	return desc, nil
}

// Encode renders desc in the given format.
func Encode(format Format, desc die.Descriptor) ([]byte, error) {
	switch format {
	case YAML:
		return EncodeYAML(desc)
	case DSL:
		return []byte(EncodeDSL(desc)), nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// pairs converts decoded two-element lists into pairs.
func pairs(field string, in [][]int) ([][2]int, error) {
	if in == nil {
		return nil, nil
	}
	out := make([][2]int, len(in))
	for i, p := range in {
		if len(p) != 2 {
			return nil, errors.Wrapf(ErrBadPair, "%s[%d] = %v", field, i, p)
		}
		out[i] = [2]int{p[0], p[1]}
	}

	return out, nil
}
