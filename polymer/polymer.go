// SPDX-License-Identifier: MIT

package polymer

import (
	"fmt"

	"github.com/katalvlaran/latpoly/lattice"
)

// Len returns the chain length N.
func (c Conformation) Len() int {
	return len(c)
}

// Bonds returns the bonded index pairs (i, i+1) for i in [0, N-2].
// A chain with fewer than two monomers has no bonds.
func (c Conformation) Bonds() []Bond {
	if len(c) < 2 {
		return nil
	}
	bonds := make([]Bond, len(c)-1)
	for i := range bonds {
		bonds[i] = Bond{I: i, J: i + 1}
	}
	return bonds
}

// Clone returns an independent copy of c.
func (c Conformation) Clone() Conformation {
	if c == nil {
		return nil
	}
	out := make(Conformation, len(c))
	copy(out, c)
	return out
}

// Reverse returns a new conformation with the backbone order reversed.
func (c Conformation) Reverse() Conformation {
	out := make(Conformation, len(c))
	for i, p := range c {
		out[len(c)-1-i] = p
	}
	return out
}

// Summary reports length, end monomers, and the x/y ranges of c.
// Returns ErrEmptyConformation when c has no monomers.
func (c Conformation) Summary() (Summary, error) {
	b, ok := lattice.BoundsOf(c)
	if !ok {
		return Summary{}, fmt.Errorf("Summary: %w", ErrEmptyConformation)
	}
	return Summary{
		N:      len(c),
		First:  c[0],
		Last:   c[len(c)-1],
		Bounds: b,
	}, nil
}
