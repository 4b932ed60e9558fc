// Command pipeloop reads a pipe diagram and prints the farthest loop distance
// from the start followed by the number of cells the loop encloses.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pipeloop/config"
	"github.com/katalvlaran/pipeloop/diagram"
	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipe"
)

// app carries the state shared by every subcommand.
type app struct {
	configPath string
	strategy   string
	render     bool
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd builds the command tree. A nil logger is built from config.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:   "pipeloop [file]",
		Short: "Measure the pipe loop in a diagram",
		Long: `Reads a rectangular pipe diagram (stdin when no file is given), finds the
loop through the start marker S and prints two lines:

  1. the distance along the loop to the cell farthest from S
  2. the number of cells enclosed by the loop`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runSolve,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.strategy, "strategy", "", "traversal strategy: heap or level-order")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().BoolVar(&a.render, "render", false, "print the enclosure picture after the answers")

	root.AddCommand(&cobra.Command{
		Use:   "render [file]",
		Short: "Draw the loop with enclosed cells marked +",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runRender,
	})

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.strategy != "" {
		cfg.Strategy = a.strategy
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger == nil {
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to parse log level: %w", err)
		}
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(level)
		if a.logger, err = zcfg.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	return nil
}

// load opens the input and builds the diagram.
func (a *app) load(cmd *cobra.Command, args []string) (*diagram.Diagram, error) {
	var r io.Reader = cmd.InOrStdin()
	name := "<stdin>"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to open diagram: %w", err)
		}
		defer f.Close()
		r, name = f, args[0]
	}

	log := a.logger.With(zap.String("input", name), zap.Stringer("strategy", a.cfg.LoopStrategy()))
	d, err := diagram.Read(r,
		diagram.WithGridOptions(gridgraph.WithStrict(a.cfg.Strict)),
		diagram.WithLoopOptions(
			loop.WithContext(cmd.Context()),
			loop.WithStrategy(a.cfg.LoopStrategy()),
			loop.WithOnVisit(func(p pipe.Point, dist int) {
				log.Debug("loop cell", zap.Stringer("cell", p), zap.Int("distance", dist))
			}),
		),
	)
	if err != nil {
		log.Error("diagram rejected", zap.Error(err))
		return nil, err
	}
	gg := d.Grid()
	log.Info("diagram loaded",
		zap.Int("width", gg.Width),
		zap.Int("height", gg.Height),
		zap.Stringer("start", gg.Start()),
		zap.Stringer("start_symbol", gg.StartSymbol()),
		zap.Int("loop_length", d.Loop().Len()),
		zap.Int("pipe_fragments", len(gg.PipeComponents())),
	)

	return d, nil
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	d, err := a.load(cmd, args)
	if err != nil {
		return err
	}
	res, err := d.Solve()
	if err != nil {
		a.logger.Error("area scan failed", zap.Error(err))
		return err
	}
	a.logger.Info("solved", zap.Int("max_distance", res.MaxDistance), zap.Int("area", res.Area))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.MaxDistance)
	fmt.Fprintln(out, res.Area)
	if a.render || a.cfg.Render {
		return d.Render(out)
	}

	return nil
}

func (a *app) runRender(cmd *cobra.Command, args []string) error {
	d, err := a.load(cmd, args)
	if err != nil {
		return err
	}

	return d.Render(cmd.OutOrStdout())
}

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}
