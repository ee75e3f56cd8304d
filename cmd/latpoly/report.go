// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/latpoly/polymer"
)

// maxListedBonds caps the bond list printed in a report.
const maxListedBonds = 10

// writeReport prints the summary, the leading bonds, and both validation
// outcomes of c.
func writeReport(w io.Writer, c polymer.Conformation, res polymer.ValidationResult) error {
	if s, err := c.Summary(); err == nil {
		fmt.Fprint(w, s)
	} else {
		fmt.Fprintln(w, "N = 0")
	}

	bonds := c.Bonds()
	shown := bonds
	if len(shown) > maxListedBonds {
		shown = shown[:maxListedBonds]
	}
	more := ""
	if len(bonds) > maxListedBonds {
		more = " ..."
	}
	fmt.Fprintf(w, "Bonds (index pairs): %v%s\n", shown, more)

	fmt.Fprintf(w, "Self-avoiding: %t\n", res.SelfAvoiding)
	fmt.Fprintf(w, "Connected: %t\n", res.Connected)
	if ov := res.Overlap; ov != nil {
		fmt.Fprintf(w, "Overlap: monomers %d and %d at %v\n", ov.First, ov.Second, ov.Site)
	}
	if bb := res.BrokenBond; bb != nil {
		fmt.Fprintf(w, "Broken bond: %v %v -> %v (distance %d)\n", bb.Bond, bb.From, bb.To, bb.Distance)
	}

	if res.Valid() {
		_, err := fmt.Fprintln(w, "Validation: OK")
		return err
	}
	_, err := fmt.Fprintln(w, "Validation: FAILED")
	return err
}
