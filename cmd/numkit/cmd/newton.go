package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/numkit/root"
)

func (a *app) newNewtonCommand() *cobra.Command {
	var (
		fn        string
		guess     float64
		iter      int
		recursive bool
	)

	c := &cobra.Command{
		Use:   "root",
		Short: "Find a root with a fixed number of Newton updates",
		Long: `Runs exactly --iter Newton updates from --guess and prints the last
iterate. There is no convergence test; the residual |f(x)| is logged so the
caller can judge the result.`,
		Example: `  numkit root --fn quadratic --guess 1
  numkit root --fn poly:-2,0,1 --guess 1 --iter 10 --recursive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.lookup(fn)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("iter") {
				iter = a.cfg.Root.MaxIter
			}
			if !cmd.Flags().Changed("recursive") {
				recursive = a.cfg.Root.Recursive
			}
			if iter < 0 {
				return fmt.Errorf("--iter must be >= 0, got %d", iter)
			}

			solve := root.Newton
			if recursive {
				solve = root.NewtonRecursive
			}

			x := a.timed("root", func() float64 {
				return solve(root.Func(f), guess, root.WithMaxIter(iter))
			}, zap.String("fn", fn), zap.Float64("guess", guess),
				zap.Int("iterations", iter), zap.Bool("recursive", recursive))

			if r := math.Abs(f(x)); r > 1e-6 || math.IsNaN(r) {
				a.log.Warn("root residual is large", zap.Float64("x", x), zap.Float64("residual", r))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.format(x))
			return err
		},
	}

	fl := c.Flags()
	fl.StringVar(&fn, "fn", "", "function name or poly:c0,c1,...")
	fl.Float64Var(&guess, "guess", 0, "initial guess x0")
	fl.IntVar(&iter, "iter", root.DefaultMaxIter, "number of Newton updates")
	fl.BoolVar(&recursive, "recursive", false, "use the recursive form")
	_ = c.MarkFlagRequired("fn")

	return c
}
