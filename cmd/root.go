/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sony-level/stackprobe/internal/config"
	"github.com/sony-level/stackprobe/internal/logging"
	"github.com/sony-level/stackprobe/internal/scanner"
)

// Set by the linker at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	// configFile is an explicit config path (--config)
	configFile string

	// cfg holds the validated, final configuration
	cfg = &config.Config{}

	// logger writes diagnostics to stderr; stdout carries only the report
	logger = logging.Discard()
)

// rootCmd represents the base command - runs directly without subcommand
var rootCmd = &cobra.Command{
	Use:   "stackprobe [path|url]",
	Short: "Detect the technology stack of a repository",
	Long: `stackprobe inspects a source repository and reports its technology stack:
primary runtime and framework, package manager, dependencies, the backing
services it talks to (databases, brokers, caches), the ports it listens on,
and any existing Docker files.

It takes a local directory or a GitHub/GitLab URL. Remote repositories are
cloned into a temporary workspace that is removed afterwards.

Examples:
  stackprobe .
  stackprobe ./services/api -o yaml
  stackprobe https://github.com/user/repo -o table
  stackprobe . --exclude generated,third_party --verbose`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setup(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		source := "."
		if len(args) > 0 {
			source = args[0]
		}
		return runAnalyze(cmd.Context(), cmd.OutOrStdout(), source, cfg)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup merges defaults, config file, env and flags into cfg and builds the logger
func setup(cmd *cobra.Command) error {
	v := viper.GetViper()
	config.Init(v, configFile)

	loaded, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = loaded

	switch cfg.Color {
	case config.ColorYes:
		color.NoColor = false
	case config.ColorNo:
		color.NoColor = true
	}

	logger = logging.New(cmd.ErrOrStderr(), cfg.Verbose)
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("config loaded", slog.String("file", used))
	}
	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default: .stackprobe.yaml in the current or home directory)")
	flags.StringP("output", "o", "json", "Output format: json, yaml, table")
	flags.StringSlice("exclude", nil, "Extra path markers to skip while scanning (repeatable or comma-separated)")
	flags.Int64("max-file-size", 0, "Skip files larger than this many bytes (0 = unlimited)")
	flags.Int("cache-size", scanner.DefaultCacheSize, "Number of file contents shared between scanners (0 = no cache)")
	flags.Int64("cache-bytes", scanner.DefaultCacheBytes, "Total bytes of file contents the cache may hold")
	flags.Bool("sequential", false, "Run the service and port scanners one after the other")
	flags.Bool("keep", false, "Keep the clone workspace of a remote repository")
	flags.Bool("full-clone", false, "Clone the full history instead of a shallow clone")
	flags.BoolP("verbose", "v", false, "Log detection details to stderr")
	flags.String("color", config.ColorAuto, "Colorize table output: auto, yes, no")

	if err := viper.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("failed to bind flags: %v", err))
	}
}
