package cmd

import (
	"github.com/spf13/cobra"

	"github.com/reviewlab/revminer/internal/mcpserv"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the revminer MCP server",
	Long:  `Launch an MCP server that allows AI agents to mine and inspect review corpora via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Diagnostics must stay off stdout, which carries the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcpserv.Serve(rootCtx, cfg)
	},
}
