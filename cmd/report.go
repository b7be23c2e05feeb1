package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jfmyers9/tunecheck/internal/suite"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// printReport writes one line per scenario, followed by failures and
// diagnostics for scenarios that did not pass, and a summary line.
func printReport(w io.Writer, report *suite.Report, nameWidth int, verbose bool) {
	for _, res := range report.Results {
		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			statusLabel(res),
			padToWidth(res.Scenario, nameWidth),
			padToWidth(string(res.Kind), 8),
			formatDuration(res.Duration),
		)

		if !res.Passed {
			for _, f := range res.Failures {
				fmt.Fprintln(w, indent(f, "      "))
			}
		}
		if !res.Passed || verbose {
			for _, line := range res.Logs {
				fmt.Fprintln(w, indent(line, "      | "))
			}
		}
	}

	passed, failed, skipped := report.Counts()
	fmt.Fprintf(w, "\n%d scenarios: %d passed, %d failed, %d skipped (run %s, %s)\n",
		len(report.Results), passed, failed, skipped,
		report.ID, formatDuration(report.Finished.Sub(report.Started)))
}

func statusLabel(res suite.Result) string {
	switch {
	case res.Skipped:
		return "SKIP"
	case res.Passed:
		return "PASS"
	default:
		return "FAIL"
	}
}

// indent prefixes every line of text.
func indent(text, prefix string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(10 * time.Millisecond).String()
}

// padToWidth pads or truncates text to a fixed display width.
// Width is measured in display columns, so wide runes count double.
// If width <= 0, returns text unchanged.
// Text longer than width is truncated with a "..." suffix.
func padToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	current := runewidth.StringWidth(text)
	if current == width {
		return text
	}
	if current < width {
		return text + strings.Repeat(" ", width-current)
	}

	ellipsisWidth := runewidth.StringWidth(ellipsis)
	if width <= ellipsisWidth {
		return runewidth.Truncate(ellipsis, width, "")
	}

	result := runewidth.Truncate(text, width-ellipsisWidth, "") + ellipsis

	// Wide runes can leave the result a column short
	if rw := runewidth.StringWidth(result); rw < width {
		result += strings.Repeat(" ", width-rw)
	}
	return result
}
