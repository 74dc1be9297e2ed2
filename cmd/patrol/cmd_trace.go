package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpatrol/labmap"
	"github.com/katalvlaran/lvpatrol/patrol"
)

// Overlay glyphs drawn by trace.
const (
	glyphVisited   = 'X'
	glyphPlacement = 'O'
)

func newTraceCmd(a *app) *cobra.Command {
	var placements bool
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Draw the map with the guard's path",
		Long: `Draws the map with every tile the guard visits marked 'X'.
With --placements, tiles where one extra obstacle traps the guard are
marked 'O' (these take precedence over 'X').`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.trace(cmd, placements)
		},
	}
	cmd.Flags().BoolVar(&placements, "placements", false, "also mark loop-inducing obstacle placements")
	return cmd
}

func (a *app) trace(cmd *cobra.Command, placements bool) error {
	m, err := a.loadMap()
	if err != nil {
		return err
	}
	opts := a.options(cmd.Context())

	res, err := patrol.Run(m, opts...)
	if err != nil {
		return fmt.Errorf("patrol run: %w", err)
	}

	loops := make(map[labmap.Position]bool)
	if placements {
		ps, err := patrol.LoopPlacements(m, opts...)
		if err != nil {
			return fmt.Errorf("placement search: %w", err)
		}
		for _, p := range ps {
			loops[p] = true
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), m.Render(func(p labmap.Position) (rune, bool) {
		switch {
		case loops[p]:
			return glyphPlacement, true
		case p != m.Start() && res.Visited.Has(p):
			return glyphVisited, true
		}
		return 0, false
	}))
	return nil
}
