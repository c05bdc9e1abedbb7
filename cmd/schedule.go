package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tspviz/routeplot/core"
)

// scheduleCmd draws the annealing schedule table.
var scheduleCmd = &cobra.Command{
	Use:   "schedule <csv-file>",
	Short: "Plot best and current distance against temperature.",
	Long: `Draw an annealing schedule table with temperature on a logarithmic axis
that decreases to the right.

The table needs a header with a temperature column named 'temp' or 'T', plus
'best_km' and 'current_km'. Other columns are ignored.

Examples:
  routeplot schedule anneal.csv
  routeplot schedule anneal.tsv --delimiter '\t' --out schedule.pdf`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteSchedulePlot(rootCtx, cfg, saver)
	},
}
