package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/psantana5/venvup/internal/config"
	"github.com/psantana5/venvup/internal/pyenv"
	"github.com/psantana5/venvup/internal/runner"
)

// Step is one entry of the bootstrap sequence.
type Step struct {
	Name        string
	Description string
	Run         func(ctx context.Context) (*runner.Result, error)
}

// Plan is the ordered bootstrap sequence for one project.
type Plan struct {
	Steps      []Step
	Activation *pyenv.Activation
}

// BuildPlan resolves the interpreter and derives the activation, then
// lays out the steps in their fixed order. Relative paths are taken
// relative to the project directory.
func BuildPlan(cfg config.Config, r runner.Runner) (*Plan, error) {
	interpreter, err := pyenv.FindInterpreter(cfg.Python)
	if err != nil {
		return nil, err
	}

	projectDir, err := filepath.Abs(cfg.ProjectDir)
	if err != nil {
		return nil, fmt.Errorf("resolving project dir %s: %w", cfg.ProjectDir, err)
	}

	venvDir := cfg.VenvDir
	if !filepath.IsAbs(venvDir) {
		venvDir = filepath.Join(projectDir, venvDir)
	}

	act, err := pyenv.Activate(venvDir)
	if err != nil {
		return nil, err
	}
	childEnv := act.Environ(os.Environ())

	steps := []Step{
		commandStep(r, "create-venv", "Creating virtual environment", runner.Spec{
			Name:    "create-venv",
			Command: interpreter,
			Args:    pyenv.CreateVenvArgs(venvDir),
			Dir:     projectDir,
		}),
		activateStep(act),
		commandStep(r, "upgrade-tools", "Upgrading pip, setuptools, wheel", runner.Spec{
			Name:    "upgrade-tools",
			Command: act.Python,
			Args:    pyenv.UpgradeToolsArgs(cfg.Tools),
			Dir:     projectDir,
			Env:     childEnv,
		}),
		commandStep(r, "install-deps", "Installing dependencies from "+cfg.Requirements, runner.Spec{
			Name:    "install-deps",
			Command: act.Python,
			Args:    pyenv.InstallRequirementsArgs(cfg.Requirements),
			Dir:     projectDir,
			Env:     childEnv,
		}),
	}

	if !cfg.SkipEditable {
		steps = append(steps, commandStep(r, "install-editable", "Installing package in editable mode", runner.Spec{
			Name:    "install-editable",
			Command: act.Python,
			Args:    pyenv.InstallEditableArgs("."),
			Dir:     projectDir,
			Env:     childEnv,
		}))
	}

	return &Plan{Steps: steps, Activation: act}, nil
}

func commandStep(r runner.Runner, name, description string, spec runner.Spec) Step {
	return Step{
		Name:        name,
		Description: description,
		Run: func(ctx context.Context) (*runner.Result, error) {
			return r.Run(ctx, spec)
		},
	}
}

// activateStep verifies the environment created by the previous step
// actually contains an interpreter. The activation itself is pure
// path derivation; this step catches a venv tool that exited zero
// without producing a usable layout.
func activateStep(act *pyenv.Activation) Step {
	return Step{
		Name:        "activate-env",
		Description: "Activating virtual environment",
		Run: func(ctx context.Context) (*runner.Result, error) {
			if _, err := os.Stat(act.Python); err != nil {
				return nil, &runner.StepError{
					Step:     "activate-env",
					ExitCode: 1,
					Err:      fmt.Errorf("environment has no interpreter at %s: %w", act.Python, err),
				}
			}
			return &runner.Result{}, nil
		},
	}
}
