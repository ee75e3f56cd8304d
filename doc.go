// SPDX-License-Identifier: MIT

// Package latpoly models a polymer chain on a 2D square lattice and checks
// whether a conformation is physically admissible.
//
// A conformation is an ordered list of lattice sites, one per monomer;
// monomers i and i+1 are bonded. It is admissible when it is
//
//   - self-avoiding: no two monomers share a site, and
//   - connected: every bond spans exactly one lattice step.
//
// Subpackages:
//
//	lattice/      — Coord, Manhattan distance, 4-neighbourhood, bounds
//	polymer/      — Conformation, IsSelfAvoiding, IsConnected, Validate,
//	                StraightChain, YAML/JSON conformation documents
//	cmd/latpoly/  — command line front end
//
// Quick ASCII example (a valid 4-monomer turn):
//
//	3───2
//	    │
//	0───1
//
//	go install github.com/katalvlaran/latpoly/cmd/latpoly@latest
package latpoly
