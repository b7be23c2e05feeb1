package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jfmyers9/tunecheck/internal/history"
	"github.com/jfmyers9/tunecheck/internal/suite"
	"github.com/spf13/cobra"
)

var (
	runScenarios []string
	runNoHistory bool
	runVerbose   bool
	runList      bool
	runKeep      time.Duration
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the catalog API scenarios",
	Long: `Run the catalog API scenarios against the Spotify Web API.

The run will:
- Acquire one access token with the client-credentials flow
- Execute each scenario in order, independently of the others
- Print a report with failures and request diagnostics
- Record the results in the local history database

Exit codes:
  0 - All scenarios passed
  1 - At least one scenario failed, or the token could not be acquired`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringSliceVarP(&runScenarios, "scenario", "s", nil, "Run only the named scenarios (repeatable)")
	runCmd.Flags().BoolVar(&runNoHistory, "no-history", false, "Do not record this run in the history database")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print request diagnostics for passing scenarios too")
	runCmd.Flags().BoolVar(&runList, "list", false, "List available scenarios and exit")
	runCmd.Flags().DurationVar(&runKeep, "keep", 0, "Remove history older than this duration after recording (0=keep all)")
}

func runRun(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if runList {
		for _, sc := range suite.Scenarios() {
			fmt.Fprintf(out, "%s  %s  %s\n", padToWidth(sc.Name, 28), padToWidth(string(sc.Kind), 8), sc.Description)
		}
		return nil
	}

	scenarios, err := selectScenarios(runScenarios)
	if err != nil {
		return err
	}

	logger, logCloser, err := setupLogger(logFile, logLevel)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	cfg, session, err := newSession(logger)
	if err != nil {
		return err
	}

	// First signal cancels the run; scenarios not yet started are skipped
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := suite.NewRunner(session, logger)
	report := runner.Run(ctx, scenarios)

	printReport(out, report, cfg.ReportWidth, runVerbose)

	if !runNoHistory {
		if err := recordHistory(cfg.HistoryDB, report, runKeep); err != nil {
			logger.Error().Err(err).Msg("Failed to record run history")
		}
	}

	if _, failed, skipped := report.Counts(); failed+skipped > 0 {
		return fmt.Errorf("%d scenario(s) failed, %d skipped", failed, skipped)
	}
	return nil
}

// selectScenarios returns the named scenarios in the order given, or the
// full set when names is empty.
func selectScenarios(names []string) ([]suite.Scenario, error) {
	if len(names) == 0 {
		return suite.Scenarios(), nil
	}

	selected := make([]suite.Scenario, 0, len(names))
	for _, name := range names {
		sc, ok := suite.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q (see 'tunecheck run --list')", name)
		}
		selected = append(selected, sc)
	}
	return selected, nil
}

func recordHistory(dbPath string, report *suite.Report, keep time.Duration) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Record(ctx, report); err != nil {
		return err
	}

	if keep > 0 {
		if _, err := store.Cleanup(ctx, keep); err != nil {
			return err
		}
	}
	return nil
}
