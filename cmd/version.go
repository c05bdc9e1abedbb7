package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of routeplot.",
	Long: `Display version information including build details: release version,
git commit hash, build timestamp and Go runtime version.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), versionInfo())
	},
}

// versionInfo renders the build details, one per line.
func versionInfo() string {
	return fmt.Sprintf("routeplot CLI\n  Version: %s\n  Commit:  %s\n  Built:   %s\n  Runtime: %s\n",
		version, commit, date, runtime.Version())
}
