/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sony-level/stackprobe/internal/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the stackprobe MCP server",
	Long: `Launch an MCP server on stdio that lets AI agents analyze repositories
through the analyze_repository tool. Configuration flags apply to every call.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(cmd.Context(), analyzerOptions(cfg), version)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
