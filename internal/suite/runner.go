package suite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Result is the outcome of one scenario
type Result struct {
	Scenario string
	Kind     Kind
	Passed   bool
	Skipped  bool
	Failures []string
	Logs     []string
	Duration time.Duration
}

// Report is the outcome of one run of the scenario set
type Report struct {
	ID       string
	Started  time.Time
	Finished time.Time
	Results  []Result
}

// Passed reports whether every scenario passed
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Counts returns the number of passed, failed and skipped scenarios
func (r *Report) Counts() (passed, failed, skipped int) {
	for _, res := range r.Results {
		switch {
		case res.Skipped:
			skipped++
		case res.Passed:
			passed++
		default:
			failed++
		}
	}
	return passed, failed, skipped
}

// Runner executes scenarios one after another against a shared session
type Runner struct {
	session *Session
	logger  zerolog.Logger
}

// NewRunner creates a new Runner
func NewRunner(session *Session, logger zerolog.Logger) *Runner {
	return &Runner{
		session: session,
		logger:  logger.With().Str("component", "suite").Logger(),
	}
}

// Run executes scenarios sequentially and returns the report.
//
// The session token is acquired before the first scenario. If that fails
// every scenario is reported failed with the token error. A failed
// scenario never stops the ones after it. Scenarios not yet started when
// ctx is cancelled are reported as skipped.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) *Report {
	report := &Report{
		ID:      uuid.NewString(),
		Started: time.Now(),
	}

	r.logger.Info().
		Str("run_id", report.ID).
		Int("scenarios", len(scenarios)).
		Msg("Starting run")

	if _, err := r.session.Token(ctx); err != nil {
		// Cancelled during setup: nothing started, so nothing failed
		if ctxErr := ctx.Err(); ctxErr != nil {
			r.logger.Warn().Err(err).Msg("Run cancelled during session setup")
			for _, sc := range scenarios {
				report.Results = append(report.Results, skippedResult(sc, ctxErr))
			}
		} else {
			r.logger.Error().Err(err).Msg("Session setup failed, aborting run")
			for _, sc := range scenarios {
				report.Results = append(report.Results, Result{
					Scenario: sc.Name,
					Kind:     sc.Kind,
					Failures: []string{err.Error()},
				})
			}
		}
		report.Finished = time.Now()
		return report
	}

	for _, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			report.Results = append(report.Results, skippedResult(sc, err))
			continue
		}

		res := r.runOne(ctx, sc)
		report.Results = append(report.Results, res)

		event := r.logger.Info()
		if !res.Passed {
			event = r.logger.Warn().Strs("failures", res.Failures)
		}
		event.
			Str("scenario", res.Scenario).
			Bool("passed", res.Passed).
			Dur("duration", res.Duration).
			Msg("Scenario finished")
	}

	report.Finished = time.Now()

	passed, failed, skipped := report.Counts()
	r.logger.Info().
		Str("run_id", report.ID).
		Int("passed", passed).
		Int("failed", failed).
		Int("skipped", skipped).
		Dur("elapsed", report.Finished.Sub(report.Started)).
		Msg("Run finished")

	return report
}

// runOne runs sc in its own goroutine so FailNow can unwind it.
func (r *Runner) runOne(ctx context.Context, sc Scenario) Result {
	rec := NewRecorder(sc.Name)
	start := time.Now()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if p := recover(); p != nil {
				rec.Errorf("panic: %v", p)
			}
		}()
		sc.Run(ctx, rec, r.session)
	}()
	<-done

	return Result{
		Scenario: sc.Name,
		Kind:     sc.Kind,
		Passed:   !rec.Failed(),
		Failures: rec.Failures(),
		Logs:     rec.Logs(),
		Duration: time.Since(start),
	}
}

func skippedResult(sc Scenario, cause error) Result {
	return Result{
		Scenario: sc.Name,
		Kind:     sc.Kind,
		Skipped:  true,
		Failures: []string{fmt.Sprintf("skipped: %v", cause)},
	}
}
