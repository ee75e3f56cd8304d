// SPDX-License-Identifier: MIT

// Package lattice provides the 2D square lattice primitives used to place
// monomers of a polymer chain.
//
// What:
//
//   - Coord is an immutable (x, y) lattice site; equality is structural,
//     so a Coord can be compared with == and used as a map key.
//   - Manhattan computes |x1−x2| + |y1−y2|.
//   - Neighbors lists the four orthogonal sites of a Coord (Conn4).
//   - BoundsOf computes the axis-aligned bounding box of a set of sites.
//
// Complexity:
//
//   - Manhattan, Adjacent, Neighbors: O(1).
//   - BoundsOf: O(N), Memory: O(1).
package lattice
