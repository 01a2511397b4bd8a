package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/numkit/diff"
	"github.com/katalvlaran/numkit/internal/config"
)

func (a *app) newDeriveCommand() *cobra.Command {
	var (
		fn     string
		at     float64
		method string
		step   float64
	)

	c := &cobra.Command{
		Use:   "derive",
		Short: "Approximate the first derivative of a function at a point",
		Example: `  numkit derive --fn x^2 --at 1.5
  numkit derive --fn sin --at 0 --method stencil --step 1e-3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.lookup(fn)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("method") {
				method = a.cfg.Diff.Method
			}
			if !cmd.Flags().Changed("step") {
				step = a.cfg.Diff.Step
			}
			if !(step > 0) || math.IsInf(step, 1) {
				return fmt.Errorf("--step must be > 0, got %v", step)
			}

			var derive func(x float64, f diff.Func, opts ...diff.Option) float64
			switch method {
			case config.MethodSymmetric:
				derive = diff.Symmetric
			case config.MethodStencil:
				derive = diff.Stencil
			default:
				return fmt.Errorf("unknown method %q (symmetric, stencil)", method)
			}

			v := a.timed("derive", func() float64 {
				return derive(at, diff.Func(f), diff.WithStep(step))
			}, zap.String("fn", fn), zap.String("method", method),
				zap.Float64("at", at), zap.Float64("step", step))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.format(v))
			return err
		},
	}

	fl := c.Flags()
	fl.StringVar(&fn, "fn", "", "function name or poly:c0,c1,...")
	fl.Float64Var(&at, "at", 0, "evaluation point x")
	fl.StringVar(&method, "method", config.MethodSymmetric, "symmetric | stencil")
	fl.Float64Var(&step, "step", diff.DefaultStep, "finite-difference step h")
	_ = c.MarkFlagRequired("fn")

	return c
}
