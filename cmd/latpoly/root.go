// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latpoly/internal/logging"
	"github.com/katalvlaran/latpoly/polymer"
)

// defaultLength is the demonstration chain length when none is given.
const defaultLength = 20

// ErrInvalidLength is returned for a chain length that is not a positive integer.
var ErrInvalidLength = errors.New("chain length must be a positive integer")

// cliState is shared by the root command and its subcommands.
type cliState struct {
	length   int
	logLevel string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	st := &cliState{logger: logging.NewNop()}

	root := &cobra.Command{
		Use:   "latpoly [N]",
		Short: "Validate polymer conformations on a 2D square lattice",
		Long: `latpoly represents a polymer chain as an ordered list of lattice sites and
checks that it is self-avoiding (no site used twice) and connected (every
bond is one lattice step). Without a subcommand it builds a straight
demonstration chain of N monomers and validates it.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(st.logLevel)
			if err != nil {
				return err
			}
			st.logger = logging.New(cmd.ErrOrStderr(), level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := chainLength(st.length, args)
			if err != nil {
				return err
			}
			return runDemo(cmd, st, n)
		},
	}

	root.PersistentFlags().StringVar(&st.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	root.Flags().IntVar(&st.length, "n", defaultLength, "Number of monomers (chain length)")

	root.AddCommand(newValidateCmd(st), newVersionCmd())
	return root
}

// chainLength resolves N from the optional positional argument, falling
// back to the flag value. The result is always ≥ 1.
func chainLength(flagValue int, args []string) (int, error) {
	n := flagValue
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidLength, args[0])
		}
		n = v
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}
	return n, nil
}

func runDemo(cmd *cobra.Command, st *cliState, n int) error {
	c, err := polymer.StraightChain(n)
	if err != nil {
		return err
	}
	st.logger.Debug("built straight chain", "n", n)

	res := polymer.Validate(c)
	st.logger.Info("validated conformation", "n", n, "self_avoiding", res.SelfAvoiding, "connected", res.Connected)

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "2D lattice polymer representation")
	return writeReport(w, c, res)
}
