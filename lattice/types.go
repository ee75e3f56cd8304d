// SPDX-License-Identifier: MIT

package lattice

import "fmt"

// Coord identifies a single lattice site.
type Coord struct {
	X, Y int
}

// C is a shorthand constructor for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the site displaced from c by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// String renders the site as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Unit steps of the square lattice, in the order Neighbors reports them.
var (
	PlusX  = Coord{X: 1, Y: 0}
	MinusX = Coord{X: -1, Y: 0}
	PlusY  = Coord{X: 0, Y: 1}
	MinusY = Coord{X: 0, Y: -1}
)

// offsets4 is the Conn4 neighbourhood: +x, -x, +y, -y.
var offsets4 = [4]Coord{PlusX, MinusX, PlusY, MinusY}

// Bounds is an inclusive axis-aligned bounding box.
type Bounds struct {
	Min, Max Coord
}

// Width is the number of columns covered by b.
func (b Bounds) Width() int { return b.Max.X - b.Min.X + 1 }

// Height is the number of rows covered by b.
func (b Bounds) Height() int { return b.Max.Y - b.Min.Y + 1 }
