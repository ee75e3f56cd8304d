// SPDX-License-Identifier: MIT

package polymer

import "errors"

var (
	// ErrTooFewMonomers indicates a chain length below the allowed minimum.
	ErrTooFewMonomers = errors.New("polymer: chain length too small")
	// ErrEmptyConformation indicates an operation that needs at least one monomer.
	ErrEmptyConformation = errors.New("polymer: conformation has no monomers")
	// ErrOverlap indicates two monomers occupy the same lattice site.
	ErrOverlap = errors.New("polymer: overlap detected (not self-avoiding)")
	// ErrBrokenBond indicates consecutive monomers are not nearest neighbours.
	ErrBrokenBond = errors.New("polymer: broken bond")
	// ErrDecode indicates a conformation document could not be parsed.
	ErrDecode = errors.New("polymer: cannot decode conformation document")
	// ErrMalformedCoord indicates a document entry is not an [x, y] pair.
	ErrMalformedCoord = errors.New("polymer: coordinate must be a pair of integers")
)
