package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpatrol/patrol"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Print visited tiles and loop-inducing obstacle placements",
		Args:  cobra.NoArgs,
		RunE:  a.solve,
	}
}

// solve prints two lines: distinct tiles visited, then loop placements.
func (a *app) solve(cmd *cobra.Command, args []string) error {
	m, err := a.loadMap()
	if err != nil {
		return err
	}
	opts := a.options(cmd.Context())

	began := time.Now()
	res, err := patrol.Run(m, opts...)
	if err != nil {
		return fmt.Errorf("patrol run: %w", err)
	}
	a.logger.Info("patrol finished",
		zap.Int("tiles", res.Tiles),
		zap.Bool("loop", res.Loop),
		zap.Int("steps", res.Steps))

	n, err := patrol.CountLoopPlacements(m, opts...)
	if err != nil {
		return fmt.Errorf("placement search: %w", err)
	}
	a.logger.Info("placement search finished",
		zap.Int("loops", n),
		zap.Duration("elapsed", time.Since(began)))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.Tiles)
	fmt.Fprintln(out, n)
	return nil
}
