// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latpoly/polymer"
)

func newValidateCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a conformation read from a YAML or JSON file",
		Long: `Reads a document of the form

  name: hairpin
  monomers:
    - [0, 0]
    - [1, 0]

and reports whether the conformation is self-avoiding and connected.
Exits non-zero when it is not.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := polymer.Load(args[0])
			if err != nil {
				return err
			}
			st.logger.Debug("loaded conformation", "name", doc.Name, "n", doc.Monomers.Len())

			res := polymer.Validate(doc.Monomers)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Conformation: %s\n", doc.Name)
			if err := writeReport(w, doc.Monomers, res); err != nil {
				return err
			}
			if err := res.Err(); err != nil {
				st.logger.Warn("invalid conformation", "name", doc.Name, "error", err)
				return fmt.Errorf("%s: %w", doc.Name, err)
			}
			return nil
		},
	}
}
