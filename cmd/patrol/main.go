// Command patrol simulates the lab guard on a map file and reports how many
// tiles it visits and how many single-obstacle placements would trap it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpatrol/config"
	"github.com/katalvlaran/lvpatrol/labmap"
	"github.com/katalvlaran/lvpatrol/logging"
	"github.com/katalvlaran/lvpatrol/patrol"
)

// app carries flag values and the state built in PersistentPreRunE.
type app struct {
	configPath string
	profile    string
	input      string
	workers    int
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "patrol:", err)
		stop()
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Running the root alone is the same as
// running solve.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "patrol",
		Short: "Simulate the lab guard's patrol",
		Long: `patrol reads a lab map ('#' obstacle, '^' guard start facing up, anything
else open), walks the guard until it leaves the map, and prints:

  1. the number of distinct tiles the guard visits
  2. the number of single-obstacle placements that trap it in a loop

The map file comes from --input, or from the active profile in the config
file (dev reads testdata/example.txt, prod reads input.txt).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.solve,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "patrol.yaml", "config file (defaults are used if it does not exist)")
	pf.StringVarP(&a.profile, "profile", "p", "", "input profile to use (dev, prod, ...)")
	pf.StringVarP(&a.input, "input", "i", "", "map file; overrides the profile")
	pf.IntVarP(&a.workers, "workers", "w", 0, "placement search workers (0 = config / one per CPU)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSolveCmd(a), newTraceCmd(a))
	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.profile != "" {
		cfg.Profile = a.profile
	}
	if a.input != "" {
		cfg.Input = a.input
	}
	if a.workers > 0 {
		cfg.Search.Workers = a.workers
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger.With(zap.String("run_id", uuid.NewString()))
	a.logger.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("profile", cfg.Profile),
		zap.Int("workers", cfg.Search.Workers))
	return nil
}

// loadMap reads the configured map file.
func (a *app) loadMap() (*labmap.LabMap, error) {
	path, err := a.cfg.InputPath()
	if err != nil {
		return nil, err
	}
	m, err := labmap.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Info("map loaded",
		zap.String("path", path),
		zap.Int("rows", m.Rows),
		zap.Int("cols", m.Cols),
		zap.Int("start_row", m.Start().Row),
		zap.Int("start_col", m.Start().Col))
	return m, nil
}

// options translates configuration into simulator options.
func (a *app) options(ctx context.Context) []patrol.Option {
	return []patrol.Option{
		patrol.WithContext(ctx),
		patrol.WithMaxSteps(a.cfg.Search.MaxSteps),
		patrol.WithWorkers(a.cfg.Search.Workers),
		patrol.WithLogger(a.logger),
	}
}
