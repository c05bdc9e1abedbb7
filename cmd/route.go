package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tspviz/routeplot/core"
)

// routeCmd draws one optimized route file.
var routeCmd = &cobra.Command{
	Use:   "route <route-file>",
	Short: "Plot an optimized route with its start and final lengths.",
	Long: `Draw a route file as a closed loop with every city marked, over an
optional map backdrop. A box in the lower left shows the tour length before
and after annealing.

The route file holds one 'longitude latitude' pair per line. Blank lines and
lines starting with '#' are skipped.

Examples:
  # Plot a route to the default cities.pdf
  routeplot route route.dat --before 81234.5 --after 31020.7

  # Zoom into North America over a coastline map, as PNG
  routeplot route route.dat --before 81234.5 --after 31020.7 \
    --map world_50m.dat --xlim -130,-60 --ylim 20,55 --out route.png`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteRoutePlot(rootCtx, cfg, saver)
	},
}
