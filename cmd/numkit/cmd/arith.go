package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numkit/arith"
	"github.com/katalvlaran/numkit/fnlib"
)

func (a *app) newRoundCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "round VALUE PLACES",
		Short:   "Round a value to a number of decimal places",
		Example: `  numkit round 0.123456789101112 5`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			places, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid places %q: %w", args[1], err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(arith.Round(v, places), 'f', -1, 64))
			return err
		},
	}
}

func (a *app) newGCDCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "gcd A B",
		Short:   "Greatest common divisor of two non-negative integers",
		Example: `  numkit gcd 15 50`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ops [2]uint64
			for i, s := range args {
				v, err := strconv.ParseUint(s, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid integer %q: %w", s, err)
				}
				ops[i] = v
			}

			g, err := arith.GCD(ops[0], ops[1])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), g)
			return err
		},
	}
}

func (a *app) newFunctionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "functions",
		Short: "List the named functions accepted by --fn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\npoly:c0,c1,...,cn\n", strings.Join(fnlib.Names(), "\n"))
			return err
		},
	}
}
