// SPDX-License-Identifier: MIT

// Package polymer represents a polymer chain on a 2D square lattice and
// validates whether a conformation is physically admissible.
//
// What:
//
//   - Conformation is an ordered slice of lattice sites; element i is the
//     position of monomer i. Bonds are implicit between i and i+1.
//   - IsSelfAvoiding: no two monomers share a site.
//   - IsConnected: every bond spans exactly one lattice step.
//   - Validate: both checks plus the first violation of each, for reporting.
//   - StraightChain builds the demonstration conformation along +x.
//   - Decode/Load read a conformation from a YAML or JSON document.
//
// Complexity:
//
//   - IsSelfAvoiding: O(N) expected time, O(N) memory (hash set).
//   - IsConnected:    O(N) time, O(1) memory.
//   - Validate:       O(N) expected time, O(N) memory.
//
// Errors:
//
//   - ErrTooFewMonomers: a builder was asked for fewer than one monomer.
//   - ErrEmptyConformation: Summary of a chain with no monomers.
//   - ErrOverlap, ErrBrokenBond: classes reported by ValidationResult.Err.
//   - ErrDecode, ErrMalformedCoord: conformation document errors.
//
// The validator never mutates or retains its input and defines no failure
// modes of its own: every finite conformation, including the empty one,
// yields a result.
package polymer
