package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tspviz/routeplot/core"
)

// worldCmd draws the salesman's cities and an optional optimized route.
var worldCmd = &cobra.Command{
	Use:   "world <cities-file> [route-file]",
	Short: "Plot the cities and the optimized route over a world map.",
	Long: `Draw the cities file as the initial path and the optional route file as
the optimized path, both closed, over the world_50m.dat backdrop.

The initial path is only drawn for fewer than 300 cities. The optimized path
gets thinner lines and smaller markers above 300 cities.

Examples:
  # North America window, output cities.pdf
  routeplot world cities.dat route.dat

  # Whole world as SVG with the tour lengths
  routeplot world -w cities.dat route.dat --out tour.svg --before 92000 --after 41000`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteWorldPlot(rootCtx, cfg, saver)
	},
}
