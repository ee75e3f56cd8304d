// SPDX-License-Identifier: MIT

package lattice

import "math"

// Manhattan returns the lattice (taxicab) distance between a and b,
// saturating at math.MaxInt when the true distance does not fit in an int.
// Complexity: O(1).
func Manhattan(a, b Coord) int {
	d, ok := manhattan(a, b)
	if !ok || d > math.MaxInt {
		return math.MaxInt
	}
	return int(d)
}

// Adjacent reports whether a and b are nearest neighbours, i.e. exactly
// one lattice step apart. Exact for every pair of int coordinates.
func Adjacent(a, b Coord) bool {
	d, ok := manhattan(a, b)
	return ok && d == 1
}

// IsUnitStep reports whether d is one of the four unit lattice steps.
func IsUnitStep(d Coord) bool {
	return Adjacent(Coord{}, d)
}

// Neighbors returns the four orthogonal neighbours of c in the fixed
// order +x, -x, +y, -y.
// Complexity: O(1).
func Neighbors(c Coord) [4]Coord {
	var out [4]Coord
	for i, d := range offsets4 {
		out[i] = c.Add(d)
	}
	return out
}

// BoundsOf returns the bounding box of sites. The boolean is false when
// sites is empty, in which case the returned Bounds is the zero value.
// Complexity: O(N) time, O(1) memory.
func BoundsOf(sites []Coord) (Bounds, bool) {
	if len(sites) == 0 {
		return Bounds{}, false
	}
	b := Bounds{Min: sites[0], Max: sites[0]}
	for _, s := range sites[1:] {
		b.Min.X = min(b.Min.X, s.X)
		b.Min.Y = min(b.Min.Y, s.Y)
		b.Max.X = max(b.Max.X, s.X)
		b.Max.Y = max(b.Max.Y, s.Y)
	}
	return b, true
}

// manhattan computes the distance in uint. Each axis gap always fits
// (MaxInt-MinInt == MaxUint); ok is false when their sum wraps.
func manhattan(a, b Coord) (uint, bool) {
	dx, dy := gap(a.X, b.X), gap(a.Y, b.Y)
	sum := dx + dy
	return sum, sum >= dx
}

// gap returns |a-b| without signed overflow.
func gap(a, b int) uint {
	if a > b {
		return uint(a) - uint(b)
	}
	return uint(b) - uint(a)
}
