package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"
)

// Spec describes a single external tool invocation.
type Spec struct {
	Name    string   // step name, used in error reporting
	Command string   // executable, resolved via PATH if not absolute
	Args    []string
	Dir     string   // working directory; empty means inherit
	Env     []string // full environment for the child; nil means inherit
}

// Runner executes external tools. The sequencer depends on this
// interface so tests can substitute a fake.
type Runner interface {
	Run(ctx context.Context, spec Spec) (*Result, error)
}

// ExecRunner runs tools as real child processes, streaming their
// output through to the parent's stdout/stderr.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates a runner wired to the process's own streams
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts the tool and blocks until it exits. A non-zero exit
// returns a *StepError carrying the tool's own exit code; failure to
// start at all (missing executable, bad directory) returns a
// *StepError with exit code 1.
func (r *ExecRunner) Run(ctx context.Context, spec Spec) (*Result, error) {
	cmd := exec.CommandContext(ctx, spec.Command, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.Env
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	started := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, &StepError{Step: spec.Name, ExitCode: 1, Err: err}
	}

	err := cmd.Wait()
	result := &Result{
		StartedAt: started,
		Duration:  time.Since(started),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, &StepError{Step: spec.Name, ExitCode: result.ExitCode}
		}
		return result, &StepError{Step: spec.Name, ExitCode: 1, Err: err}
	}

	return result, nil
}
