package runner

import (
	"fmt"
	"time"
)

// Result captures the outcome of a single tool invocation.
type Result struct {
	ExitCode  int
	StartedAt time.Time
	Duration  time.Duration
}

// StepError reports a tool invocation that exited non-zero (or could
// not be started at all). The exit code is propagated to the caller
// untranslated.
type StepError struct {
	Step     string
	ExitCode int
	Err      error
}

func (e *StepError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("step %q failed: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("step %q failed with exit code %d", e.Step, e.ExitCode)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
