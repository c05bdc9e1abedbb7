package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tspviz/routeplot/core"
)

// inspectCmd summarizes coordinate and polygon files.
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>...",
	Short: "Summarize coordinate files: points, bounds and tour length.",
	Long: `Read each file and report its point count, bounding box and haversine
length in km. Point files are measured as closed tours; polygon files sum
their open boundaries.

Examples:
  routeplot inspect cities.dat route.dat
  routeplot inspect --polygons world_50m.dat --output json
  routeplot inspect route.dat --output parquet --output-file routes.parquet`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteInspect(rootCtx, cfg, saver)
	},
}
