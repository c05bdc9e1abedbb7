// Package cmd defines the command-line interface for routeplot.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tspviz/routeplot/internal/contract"
	"github.com/tspviz/routeplot/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(worldCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored status lines (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Float64("width", 0, "Figure width in inches (0 = figure default)")
	rootCmd.PersistentFlags().Float64("height", 0, "Figure height in inches (0 = figure default)")
	rootCmd.PersistentFlags().Float64("dpi", 0, "Raster resolution for png, jpg and tif output (0 = figure default)")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Flags of the figure commands are bound to Viper in sharedSetup,
	// once the running command is known.
	routeCmd.Flags().String("out", contract.DefaultRouteOutput, "Output file; the extension picks the format")
	routeCmd.Flags().String("title", contract.DefaultRouteTitle, "Figure title")
	routeCmd.Flags().String("before", "", "Tour length in km before annealing (required)")
	routeCmd.Flags().String("after", "", "Tour length in km after annealing (required)")
	routeCmd.Flags().String("map", "", "Optional backdrop polygon file")
	routeCmd.Flags().String("xlim", "", "Longitude range as 'min,max' or quoted \"min max\" (e.g. --xlim \"-110 -70\")")
	routeCmd.Flags().String("ylim", "", "Latitude range as 'min,max' or quoted \"min max\" (e.g. --ylim \"20 55\")")

	worldCmd.Flags().BoolP("world", "w", false, "Show the whole world instead of the regional window")
	worldCmd.Flags().String("out", "", "Output file (default: first input name with a .pdf extension)")
	worldCmd.Flags().String("title", contract.DefaultWorldTitle, "Figure title")
	worldCmd.Flags().String("before", "", "Tour length in km before annealing")
	worldCmd.Flags().String("after", "", "Tour length in km after annealing")
	worldCmd.Flags().String("map", contract.DefaultMapFile, "Backdrop polygon file")
	worldCmd.Flags().String("xlim", "", "Longitude range as 'min,max' or quoted \"min max\" (e.g. --xlim \"-110 -70\")")
	worldCmd.Flags().String("ylim", "", "Latitude range as 'min,max' or quoted \"min max\" (e.g. --ylim \"20 55\")")

	scheduleCmd.Flags().String("out", contract.DefaultScheduleOutput, "Output file; the extension picks the format")
	scheduleCmd.Flags().String("title", contract.DefaultScheduleTitle, "Figure title")
	scheduleCmd.Flags().String("delimiter", contract.DefaultDelimiter, `Column delimiter of the schedule table ('\t' for tabs)`)

	inspectCmd.Flags().Bool("polygons", false, "Read inputs as blank-line separated polygon files")
	inspectCmd.Flags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	inspectCmd.Flags().String("output-file", "", "Optional path to write output to")
	inspectCmd.Flags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
}
