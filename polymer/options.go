// SPDX-License-Identifier: MIT
//
// options.go — functional options for chain builders.
//
// Option constructors validate and panic on meaningless inputs; builders
// themselves never panic and report problems through sentinel errors.

package polymer

import (
	"fmt"

	"github.com/katalvlaran/latpoly/lattice"
)

// chainConfig holds the resolved builder parameters.
type chainConfig struct {
	origin lattice.Coord
	step   lattice.Coord
}

func defaultChainConfig() chainConfig {
	return chainConfig{origin: lattice.Coord{}, step: lattice.PlusX}
}

// ChainOption customizes a chain builder.
type ChainOption func(*chainConfig)

// WithOrigin places monomer 0 at o. Default: (0,0).
func WithOrigin(o lattice.Coord) ChainOption {
	return func(c *chainConfig) {
		c.origin = o
	}
}

// WithStep sets the displacement between consecutive monomers.
// Panics unless d is a unit lattice step. Default: +x.
func WithStep(d lattice.Coord) ChainOption {
	if !lattice.IsUnitStep(d) {
		panic(fmt.Sprintf("polymer: WithStep(%v) is not a unit lattice step", d))
	}
	return func(c *chainConfig) {
		c.step = d
	}
}
