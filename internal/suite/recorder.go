package suite

import (
	"fmt"
	"runtime"
	"sync"
)

// Recorder is a T that collects failures and log lines instead of
// reporting to the go test runner. FailNow stops the calling goroutine with
// runtime.Goexit, the same way testing.T does, so scenarios must run in a
// goroutine of their own.
type Recorder struct {
	name string

	mu       sync.Mutex
	failed   bool
	failures []string
	logs     []string
}

// NewRecorder creates a recorder for the named scenario
func NewRecorder(name string) *Recorder {
	return &Recorder{name: name}
}

// Errorf records a failure and lets the scenario continue
func (r *Recorder) Errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = true
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

// FailNow marks the scenario failed and stops it
func (r *Recorder) FailNow() {
	r.mu.Lock()
	r.failed = true
	r.mu.Unlock()
	runtime.Goexit()
}

// Logf records a diagnostic line
func (r *Recorder) Logf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, fmt.Sprintf(format, args...))
}

func (r *Recorder) Helper() {}

// Name returns the scenario name
func (r *Recorder) Name() string {
	return r.name
}

// Failed reports whether any failure was recorded
func (r *Recorder) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}

// Failures returns a copy of the recorded failure messages
func (r *Recorder) Failures() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.failures...)
}

// Logs returns a copy of the recorded log lines
func (r *Recorder) Logs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.logs...)
}
