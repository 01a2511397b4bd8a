package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/numkit/internal/config"
	"github.com/katalvlaran/numkit/quad"
)

func (a *app) newIntegrateCommand() *cobra.Command {
	var (
		fn       string
		from, to float64
		rule     string
		step     float64
		workers  int
	)

	c := &cobra.Command{
		Use:   "integrate",
		Short: "Approximate the definite integral of a function",
		Example: `  numkit integrate --fn x^2 --from 0 --to 1
  numkit integrate --fn exp --from 0 --to 3 --rule parallel --workers 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.lookup(fn)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("rule") {
				rule = a.cfg.Quad.Rule
			}
			if !cmd.Flags().Changed("step") {
				step = a.cfg.Quad.Step
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Quad.Workers
			}
			if !(step > 0) || math.IsInf(step, 1) {
				return fmt.Errorf("--step must be > 0, got %v", step)
			}

			opts := []quad.Option{quad.WithStep(step)}
			if workers > 0 {
				opts = append(opts, quad.WithWorkers(workers))
			}

			var integrate func(a, b float64, f quad.Func, opts ...quad.Option) float64
			switch rule {
			case config.RuleSimpson:
				integrate = quad.Simpson
			case config.RuleTrapezoid:
				integrate = quad.Trapezoid
			case config.RuleParallel:
				integrate = quad.ParallelTrapezoid
			default:
				return fmt.Errorf("unknown rule %q (simpson, trapezoid, parallel)", rule)
			}

			v := a.timed("integrate", func() float64 {
				return integrate(from, to, quad.Func(f), opts...)
			}, zap.String("fn", fn), zap.String("rule", rule),
				zap.Float64("from", from), zap.Float64("to", to), zap.Float64("step", step))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.format(v))
			return err
		},
	}

	fl := c.Flags()
	fl.StringVar(&fn, "fn", "", "integrand name or poly:c0,c1,...")
	fl.Float64Var(&from, "from", 0, "lower bound a")
	fl.Float64Var(&to, "to", 1, "upper bound b")
	fl.StringVar(&rule, "rule", config.RuleSimpson, "simpson | trapezoid | parallel")
	fl.Float64Var(&step, "step", quad.DefaultStep, "integration step h")
	fl.IntVar(&workers, "workers", 0, "goroutines for the parallel rule (0 = GOMAXPROCS)")
	_ = c.MarkFlagRequired("fn")

	return c
}
