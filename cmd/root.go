package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var (
	logFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tunecheck",
	Short: "Integration checks for the Spotify Web API catalog",
	Long: `tunecheck exercises the Spotify Web API catalog endpoints (artists,
top tracks, albums) and validates status codes and response shapes.

It authenticates with the client-credentials flow once per run, executes a
fixed set of positive, negative and edge-case scenarios, and keeps a local
history of run results.

Credentials are read from ~/.config/tunecheck/config.yaml or from the
TUNECHECK_SPOTIFY_CLIENT_ID and TUNECHECK_SPOTIFY_CLIENT_SECRET environment
variables. Run 'tunecheck configure' to create the config file.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (default: stderr)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
