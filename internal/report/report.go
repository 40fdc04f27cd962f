package report

import (
	"time"
)

// StepOutcome is the frozen record of one executed step.
type StepOutcome struct {
	Name        string
	Description string
	ExitCode    int
	Duration    time.Duration
}

// Report collects step outcomes for one bootstrap run. Counters and
// exported metrics are projections of these records, never tracked
// separately.
type Report struct {
	StartedAt time.Time
	Outcomes  []StepOutcome
	ExitCode  int
}

// New creates a report stamped with the current time
func New() *Report {
	return &Report{StartedAt: time.Now()}
}

// Record appends one step outcome
func (r *Report) Record(name, description string, exitCode int, duration time.Duration) {
	r.Outcomes = append(r.Outcomes, StepOutcome{
		Name:        name,
		Description: description,
		ExitCode:    exitCode,
		Duration:    duration,
	})
	if exitCode != 0 && r.ExitCode == 0 {
		r.ExitCode = exitCode
	}
}

// Succeeded reports whether every recorded step exited zero
func (r *Report) Succeeded() bool {
	return r.ExitCode == 0
}

// Duration returns the wall time covered by the recorded steps
func (r *Report) Duration() time.Duration {
	var total time.Duration
	for _, o := range r.Outcomes {
		total += o.Duration
	}
	return total
}
