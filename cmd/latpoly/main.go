// SPDX-License-Identifier: MIT

// Command latpoly builds and validates 2D lattice polymer conformations.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
