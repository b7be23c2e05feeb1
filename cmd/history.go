package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jfmyers9/tunecheck/internal/config"
	"github.com/jfmyers9/tunecheck/internal/history"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyRun   string
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Show recent runs from the local history database.

With --run, show the per-scenario results of a single run. The run id
is printed at the end of every 'tunecheck run' report.`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of runs to show")
	historyCmd.Flags().StringVar(&historyRun, "run", "", "Show the scenario results of one run")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := os.Stat(cfg.HistoryDB); os.IsNotExist(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
		return nil
	}

	store, err := history.NewStore(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	out := cmd.OutOrStdout()

	if historyRun != "" {
		results, err := store.Results(ctx, historyRun)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			return fmt.Errorf("no results for run %q", historyRun)
		}
		renderResults(out, results)
		return nil
	}

	runs, err := store.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}
	renderRuns(out, runs)
	return nil
}

func renderRuns(w io.Writer, runs []history.Run) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Run", "Started", "Duration", "Passed", "Failed", "Skipped"})
	for _, r := range runs {
		t.AppendRow(table.Row{
			r.ID,
			r.Started.Local().Format("2006-01-02 15:04:05"),
			formatDuration(r.Finished.Sub(r.Started)),
			r.Passed,
			r.Failed,
			r.Skipped,
		})
	}
	t.Render()
}

func renderResults(w io.Writer, results []history.ScenarioResult) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Status", "Scenario", "Kind", "Duration", "Failure"})
	for _, r := range results {
		status := "PASS"
		switch {
		case r.Skipped:
			status = "SKIP"
		case !r.Passed:
			status = "FAIL"
		}

		failure := ""
		if len(r.Failures) > 0 {
			// First line of the first failure keeps the table readable
			failure, _, _ = strings.Cut(strings.TrimSpace(r.Failures[0]), "\n")
			failure = padToWidth(failure, 60)
			failure = strings.TrimRight(failure, " ")
		}

		t.AppendRow(table.Row{status, r.Scenario, r.Kind, formatDuration(r.Duration), failure})
	}
	t.Render()
}
