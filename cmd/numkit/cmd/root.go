// Package cmd implements the numkit command tree.
package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/numkit/arith"
	"github.com/katalvlaran/numkit/fnlib"
	"github.com/katalvlaran/numkit/internal/config"
	"github.com/katalvlaran/numkit/internal/logging"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	cfgFile   string
	verbose   bool
	quiet     bool
	precision int

	cfg *config.Config
	log *zap.Logger
}

// Execute runs the numkit command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds a fresh command tree. Each call has its own flag
// state, so tests can run several invocations in one process.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "numkit",
		Short: "numkit - numerical methods for scalar functions",
		Long: `numkit approximates integrals, derivatives, roots and trigonometric
values of scalar functions f: R -> R.

Commands:
  integrate  - Simpson / trapezoid / parallel trapezoid quadrature
  derive     - central or five-point finite differences
  root       - fixed-iteration Newton's method
  trig       - CORDIC cosine and sine
  round      - decimal rounding
  gcd        - greatest common divisor

Functions are chosen by name (` + "`numkit integrate --fn exp`" + `) or given as
ascending polynomial coefficients (` + "`--fn poly:-6,1,1`" + `).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "TOML config file (NUMKIT_* env vars override it)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "disable logging")
	pf.IntVarP(&a.precision, "precision", "p", 0, "decimal places of printed results (default from config)")

	rootCmd.AddCommand(
		a.newIntegrateCommand(),
		a.newDeriveCommand(),
		a.newNewtonCommand(),
		a.newTrigCommand(),
		a.newRoundCommand(),
		a.newGCDCommand(),
		a.newFunctionsCommand(),
	)

	return rootCmd
}

// setup loads configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("precision") {
		cfg.Output.Precision = a.precision
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	a.cfg = cfg

	if a.quiet {
		a.log = logging.NewNop()
		return nil
	}
	a.log, err = logging.New(logging.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development || a.verbose,
	}, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	return nil
}

// lookup resolves a function name and logs failures.
func (a *app) lookup(name string) (fnlib.Func, error) {
	f, err := fnlib.Lookup(name)
	if err != nil {
		a.log.Error("function lookup failed", zap.String("fn", name), zap.Error(err))
		return nil, err
	}

	return f, nil
}

// format renders v rounded to the configured precision.
func (a *app) format(v float64) string {
	return strconv.FormatFloat(arith.Round(v, a.cfg.Output.Precision), 'f', -1, 64)
}

// timed runs fn and logs its duration with the given fields at debug level.
func (a *app) timed(op string, fn func() float64, fields ...zap.Field) float64 {
	start := time.Now()
	v := fn()
	a.log.Debug(op,
		append(fields, zap.Float64("result", v), zap.Duration("elapsed", time.Since(start)))...)

	return v
}
