package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/psantana5/venvup/internal/report"
	"github.com/psantana5/venvup/internal/runner"
	"github.com/psantana5/venvup/pkg/logging"
)

// Sequencer executes a plan strictly in order, aborting on the first
// step that fails. The partially-built environment is left in place
// for inspection; there is no rollback and no retry.
type Sequencer struct {
	Out         io.Writer // progress lines, "==> " prefixed
	Log         *logging.Logger
	StepTimeout time.Duration // per step; 0 means no timeout
	Report      *report.Report
}

// Run walks the steps. The returned error, if any, is the *StepError
// of the step that failed; steps after it were never attempted.
func (s *Sequencer) Run(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		fmt.Fprintf(s.Out, "==> %s\n", step.Description)
		s.Log.Debug("running step", map[string]interface{}{"step": step.Name})

		stepCtx := ctx
		cancel := context.CancelFunc(func() {})
		if s.StepTimeout > 0 {
			stepCtx, cancel = context.WithTimeout(ctx, s.StepTimeout)
		}

		started := time.Now()
		result, err := step.Run(stepCtx)
		cancel()

		duration := time.Since(started)
		if result != nil && result.Duration > 0 {
			duration = result.Duration
		}

		exitCode := 0
		if result != nil {
			exitCode = result.ExitCode
		}
		if err != nil {
			var stepErr *runner.StepError
			if errors.As(err, &stepErr) {
				exitCode = stepErr.ExitCode
			} else if exitCode == 0 {
				exitCode = 1
			}
		}

		if s.Report != nil {
			s.Report.Record(step.Name, step.Description, exitCode, duration)
		}

		if err != nil {
			s.Log.Error("step failed", map[string]interface{}{
				"step":      step.Name,
				"exit_code": exitCode,
			})
			return err
		}

		s.Log.Debug("step completed", map[string]interface{}{
			"step":     step.Name,
			"duration": duration.String(),
		})
	}
	return nil
}
