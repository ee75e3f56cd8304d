// SPDX-License-Identifier: MIT
// Package: latpoly/polymer
//
// decode.go - conformation documents (YAML, or JSON as a YAML subset).
//
// Contract:
//   - Unknown keys are rejected, so a misspelled "monomers" never passes
//     as an empty, trivially valid chain.
//   - Parse and type errors wrap both ErrDecode and the yaml.v3 error.
//   - Entries that are not [x, y] pairs wrap ErrMalformedCoord.

package polymer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/latpoly/lattice"
)

// Document is a named conformation read from a file.
type Document struct {
	Name     string
	Monomers Conformation
}

// rawDocument mirrors the on-disk layout. JSON input is accepted because
// it parses as YAML.
type rawDocument struct {
	Name     string  `yaml:"name"`
	Monomers [][]int `yaml:"monomers"`
}

// Decode reads a conformation document from r:
//
//	name: hairpin
//	monomers:
//	  - [0, 0]
//	  - [1, 0]
//
// Syntax errors and unknown keys wrap ErrDecode; entries that are not
// [x, y] pairs wrap ErrMalformedCoord. An empty document yields an empty
// conformation.
func Decode(r io.Reader) (*Document, error) {
	var raw rawDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	doc := &Document{Name: raw.Name, Monomers: make(Conformation, 0, len(raw.Monomers))}
	for i, pair := range raw.Monomers {
		if len(pair) != 2 {
			return nil, fmt.Errorf("monomer %d has %d components: %w", i, len(pair), ErrMalformedCoord)
		}
		doc.Monomers = append(doc.Monomers, lattice.C(pair[0], pair[1]))
	}
	return doc, nil
}

// Load opens path and decodes it with Decode. When the document has no
// name, the path is used instead.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = path
	}
	return doc, nil
}
