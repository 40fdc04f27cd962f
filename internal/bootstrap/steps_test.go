package bootstrap

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/psantana5/venvup/internal/config"
)

// planConfig returns a config whose interpreter resolves on any POSIX
// host, so plan building does not depend on python being installed.
func planConfig(t *testing.T) config.Config {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("plan tests resolve a POSIX shell as the interpreter")
	}
	cfg := config.Default()
	cfg.Python = "sh"
	cfg.ProjectDir = t.TempDir()
	return cfg
}

func TestBuildPlanStepOrder(t *testing.T) {
	cfg := planConfig(t)

	plan, err := BuildPlan(cfg, &fakeRunner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"create-venv", "activate-env", "upgrade-tools", "install-deps", "install-editable"}
	if len(plan.Steps) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(plan.Steps))
	}
	for i, name := range want {
		if plan.Steps[i].Name != name {
			t.Errorf("step %d: got %q, want %q", i, plan.Steps[i].Name, name)
		}
	}
}

func TestBuildPlanSkipEditable(t *testing.T) {
	cfg := planConfig(t)
	cfg.SkipEditable = true

	plan, err := BuildPlan(cfg, &fakeRunner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	last := plan.Steps[len(plan.Steps)-1]
	if last.Name != "install-deps" {
		t.Errorf("editable install should be skipped, last step is %q", last.Name)
	}
}

func TestBuildPlanResolvesVenvUnderProjectDir(t *testing.T) {
	cfg := planConfig(t)

	plan, err := BuildPlan(cfg, &fakeRunner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantVenv := filepath.Join(cfg.ProjectDir, ".venv")
	if plan.Activation.VenvDir != wantVenv {
		t.Errorf("venv dir = %q, want %q", plan.Activation.VenvDir, wantVenv)
	}
}

func TestBuildPlanCommandSpecs(t *testing.T) {
	cfg := planConfig(t)
	fake := &fakeRunner{}

	plan, err := BuildPlan(cfg, fake)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Execute the command steps directly to capture their specs.
	// activate-env is skipped: it stats the filesystem instead of
	// invoking a tool.
	for _, step := range plan.Steps {
		if step.Name == "activate-env" {
			continue
		}
		_, _ = step.Run(t.Context())
	}

	if len(fake.calls) != 4 {
		t.Fatalf("expected 4 tool invocations, got %d", len(fake.calls))
	}

	create := fake.calls[0]
	if !strings.HasSuffix(create.Command, "sh") {
		t.Errorf("create-venv should use the base interpreter, got %q", create.Command)
	}
	if create.Args[0] != "-m" || create.Args[1] != "venv" {
		t.Errorf("create-venv args = %v", create.Args)
	}
	if create.Env != nil {
		t.Error("create-venv should inherit the parent environment")
	}

	for _, call := range fake.calls[1:] {
		if call.Command != plan.Activation.Python {
			t.Errorf("%s should use the venv interpreter, got %q", call.Name, call.Command)
		}
		if call.Env == nil {
			t.Errorf("%s should run with the derived environment", call.Name)
		}
		hasVirtualEnv := false
		for _, kv := range call.Env {
			if kv == "VIRTUAL_ENV="+plan.Activation.VenvDir {
				hasVirtualEnv = true
			}
		}
		if !hasVirtualEnv {
			t.Errorf("%s environment is missing VIRTUAL_ENV", call.Name)
		}
		if call.Dir != cfg.ProjectDir {
			t.Errorf("%s should run in the project dir, got %q", call.Name, call.Dir)
		}
	}

	deps := fake.calls[2]
	if got := strings.Join(deps.Args, " "); got != "-m pip install -r requirements.txt" {
		t.Errorf("install-deps args = %q", got)
	}
	editable := fake.calls[3]
	if got := strings.Join(editable.Args, " "); got != "-m pip install -e ." {
		t.Errorf("install-editable args = %q", got)
	}
}

func TestBuildPlanUnknownInterpreter(t *testing.T) {
	cfg := config.Default()
	cfg.Python = "definitely-not-a-real-python-xyz"
	cfg.ProjectDir = t.TempDir()

	if _, err := BuildPlan(cfg, &fakeRunner{}); err == nil {
		t.Error("expected error for unresolvable interpreter")
	}
}

func TestActivateStepFailsWithoutInterpreter(t *testing.T) {
	cfg := planConfig(t)

	plan, err := BuildPlan(cfg, &fakeRunner{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The venv was never created, so activation must fail
	var activate Step
	for _, step := range plan.Steps {
		if step.Name == "activate-env" {
			activate = step
		}
	}
	if activate.Run == nil {
		t.Fatal("plan has no activate-env step")
	}

	if _, err := activate.Run(t.Context()); err == nil {
		t.Error("expected error for missing venv interpreter")
	}
}
