package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/psantana5/venvup/cmd/venvup/cmd"
	"github.com/psantana5/venvup/internal/runner"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		// A failing tool's exit code passes through untranslated;
		// everything else (bad config, bad flags) exits 2.
		var stepErr *runner.StepError
		if errors.As(err, &stepErr) && stepErr.ExitCode != 0 {
			os.Exit(stepErr.ExitCode)
		}
		os.Exit(2)
	}
}
