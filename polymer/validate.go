// SPDX-License-Identifier: MIT
// Package: latpoly/polymer
//
// validate.go - admissibility checks for a Conformation.
//
// Contract:
//   - Total over any finite input, including nil and empty slices.
//   - Never mutates or retains the conformation.
//   - Self-avoidance: no two indices share a site.
//   - Connectivity: lattice.Adjacent holds for every bond (i, i+1), exact
//     even for coordinates at the int limits.
//   - Validate runs both checks; neither hides the other's outcome.
//
// Complexity:
//   - Time: O(N) expected (hash set for sites).
//   - Space: O(N) for the set, O(1) for connectivity.
//
// Determinism:
//   - Reported violations are the first in increasing index order.

package polymer

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/latpoly/lattice"
)

// IsSelfAvoiding reports whether all monomers occupy pairwise distinct
// sites. Vacuously true for chains of length 0 or 1.
// Complexity: O(N) expected time, O(N) memory.
func IsSelfAvoiding(c Conformation) bool {
	return firstOverlap(c) == nil
}

// IsConnected reports whether every bond spans Manhattan distance 1.
// Vacuously true for chains of length 0 or 1.
// Complexity: O(N) time, O(1) memory.
func IsConnected(c Conformation) bool {
	return firstBrokenBond(c) == nil
}

// Validate evaluates both rules on c without short-circuiting, so the
// caller always learns the outcome of each check. c is neither mutated nor
// retained.
func Validate(c Conformation) ValidationResult {
	ov := firstOverlap(c)
	bb := firstBrokenBond(c)
	return ValidationResult{
		SelfAvoiding: ov == nil,
		Connected:    bb == nil,
		Overlap:      ov,
		BrokenBond:   bb,
	}
}

// Validate is the method form of the package-level Validate.
func (c Conformation) Validate() ValidationResult {
	return Validate(c)
}

// Valid reports whether the conformation is a self-avoiding walk.
func (r ValidationResult) Valid() bool {
	return r.SelfAvoiding && r.Connected
}

// Err converts the result into an error: nil when valid, otherwise
// ErrOverlap and/or ErrBrokenBond wrapped with the offending positions.
func (r ValidationResult) Err() error {
	var errs []error
	if r.Overlap != nil {
		errs = append(errs, fmt.Errorf("monomers %d and %d at %v: %w",
			r.Overlap.First, r.Overlap.Second, r.Overlap.Site, ErrOverlap))
	}
	if r.BrokenBond != nil {
		b := r.BrokenBond
		errs = append(errs, fmt.Errorf("%w at %v. %v -> %v (must be Manhattan distance 1, got %d)",
			ErrBrokenBond, b.Bond, b.From, b.To, b.Distance))
	}
	return errors.Join(errs...)
}

// firstOverlap scans c in index order and returns the first monomer that
// lands on an already occupied site.
func firstOverlap(c Conformation) *Overlap {
	if len(c) < 2 {
		return nil
	}
	// Site -> index of the first monomer placed there.
	seen := make(map[lattice.Coord]int, len(c))
	for i, p := range c {
		if j, ok := seen[p]; ok {
			// Earlier occupant j, repeat at i.
			return &Overlap{First: j, Second: i, Site: p}
		}
		seen[p] = i
	}
	return nil
}

// firstBrokenBond returns the first bond whose endpoints are not nearest
// neighbours. Distance saturates at math.MaxInt.
func firstBrokenBond(c Conformation) *BrokenBond {
	for i := 0; i+1 < len(c); i++ {
		if lattice.Adjacent(c[i], c[i+1]) {
			continue
		}
		return &BrokenBond{
			Bond:     Bond{I: i, J: i + 1},
			From:     c[i],
			To:       c[i+1],
			Distance: lattice.Manhattan(c[i], c[i+1]),
		}
	}
	return nil
}
