package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/numkit/cordic"
)

func (a *app) newTrigCommand() *cobra.Command {
	var angle float64

	c := &cobra.Command{
		Use:     "trig",
		Short:   "Evaluate cosine and sine with CORDIC",
		Example: `  numkit trig --angle -2 --precision 4`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cos, sin := cordic.Trig(angle)
			a.log.Debug("trig", zap.Float64("angle", angle), zap.Float64("cos", cos), zap.Float64("sin", sin))

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "cos=%s sin=%s\n", a.format(cos), a.format(sin))
			return err
		},
	}

	c.Flags().Float64Var(&angle, "angle", 0, "angle in radians")

	return c
}
