/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/sony-level/stackprobe/internal/workspace"
)

var (
	cleanAll       bool
	cleanOlderThan time.Duration
	cleanBaseDir   string
)

// cleanCmd removes clone workspaces left behind by --keep or interrupted runs
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove leftover clone workspaces",
	Long: `Remove clone workspaces (.stackprobe-tmp/<run-id>) kept with --keep or
left behind by interrupted runs. By default only workspaces older than
--older-than are removed.

Examples:
  stackprobe clean
  stackprobe clean --older-than 1h
  stackprobe clean --all`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cleanAll {
			if err := workspace.CleanupAll(cleanBaseDir); err != nil {
				return err
			}
			cmd.Println("Removed all workspaces")
			return nil
		}

		cleaned, err := workspace.CleanupStale(cleanBaseDir, cleanOlderThan)
		if err != nil {
			return err
		}
		logger.Debug("stale workspaces removed", slog.Int("count", cleaned), slog.Duration("older_than", cleanOlderThan))
		cmd.Printf("Removed %d workspace(s)\n", cleaned)
		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanAll, "all", false, "Remove every workspace regardless of age")
	cleanCmd.Flags().DurationVar(&cleanOlderThan, "older-than", 24*time.Hour, "Minimum age of a workspace to remove")
	cleanCmd.Flags().StringVar(&cleanBaseDir, "base", "", "Directory holding .stackprobe-tmp (default: OS temp directory)")
	rootCmd.AddCommand(cleanCmd)
}
