/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd shows the version for diagnostic purposes
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stackprobe",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("stackprobe\n")
		cmd.Printf("  Version: %s\n", version)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s\n", runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
