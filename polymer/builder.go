// SPDX-License-Identifier: MIT
// Package: latpoly/polymer
//
// builder.go - implementation of the StraightChain(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewMonomers).
//   - Monomer 0 sits at the configured origin; monomer i at origin + i·step.
//   - The chain is validated before it is returned. A chain that would run
//     past the int range breaks a bond and is reported as ErrBrokenBond.
//   - Returns only wrapped sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) placement + O(n) validation.
//   - Space: O(n) for the conformation and the validation set.

package polymer

import "fmt"

const (
	methodStraightChain = "StraightChain"
	minChainMonomers    = 1
)

// StraightChain builds a rod of n monomers, starting at the configured
// origin and advancing one unit step per monomer (+x by default).
// Returns ErrTooFewMonomers when n < 1. The chain is validated before it
// is returned.
// Complexity: O(n) time and memory.
func StraightChain(n int, opts ...ChainOption) (Conformation, error) {
	if n < minChainMonomers {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStraightChain, n, minChainMonomers, ErrTooFewMonomers)
	}
	// Resolve options over the defaults (origin (0,0), step +x).
	cfg := defaultChainConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Place monomers one step apart in index order.
	c := make(Conformation, n)
	p := cfg.origin
	for i := range c {
		c[i] = p
		p = p.Add(cfg.step)
	}

	// Coordinates wrap silently on overflow; validation catches it.
	if err := Validate(c).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodStraightChain, err)
	}
	return c, nil
}
