package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tspviz/routeplot/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Short:   "Start the routeplot MCP server",
	Long:    `Launch an MCP server on stdio that lets AI agents plot and inspect routes via standard tools.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, saver)
	},
}
