// SPDX-License-Identifier: MIT

package polymer

import (
	"fmt"

	"github.com/katalvlaran/latpoly/lattice"
)

// Conformation is one spatial arrangement of the chain: element i holds the
// lattice site of monomer i. Index order encodes the backbone.
type Conformation []lattice.Coord

// Bond is the implicit link between monomers I and J = I+1.
type Bond struct {
	I, J int
}

// String renders the bond as the index pair "(i,j)".
func (b Bond) String() string {
	return fmt.Sprintf("(%d,%d)", b.I, b.J)
}

// Overlap describes two monomers sharing a site. First < Second.
type Overlap struct {
	First, Second int
	Site          lattice.Coord
}

// BrokenBond describes a bond whose endpoints are not one step apart.
type BrokenBond struct {
	Bond     Bond
	From, To lattice.Coord
	Distance int
}

// ValidationResult carries both admissibility outcomes of a conformation.
// Overlap and BrokenBond point at the first violation found in index order
// and are nil when the matching check passes.
type ValidationResult struct {
	SelfAvoiding bool
	Connected    bool
	Overlap      *Overlap
	BrokenBond   *BrokenBond
}

// Summary is a small debugging digest of a non-empty conformation.
type Summary struct {
	N      int
	First  lattice.Coord
	Last   lattice.Coord
	Bounds lattice.Bounds
}

// String renders the summary as a multi-line report.
func (s Summary) String() string {
	return fmt.Sprintf(
		"N = %d\nFirst monomer: %v\nLast monomer : %v\nx range: [%d, %d]\ny range: [%d, %d]\n",
		s.N, s.First, s.Last,
		s.Bounds.Min.X, s.Bounds.Max.X,
		s.Bounds.Min.Y, s.Bounds.Max.Y,
	)
}
