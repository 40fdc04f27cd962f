package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/psantana5/venvup/internal/config"
	"github.com/psantana5/venvup/internal/pyenv"
)

// Status classifies a preflight check result.
type Status string

const (
	StatusOK   Status = "ok"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// Check is one preflight check result.
type Check struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// packagingFiles are the metadata files the editable install step
// needs at least one of.
var packagingFiles = []string{"pyproject.toml", "setup.py", "setup.cfg"}

// Run performs every preflight check for the given configuration.
// A StatusFail means the bootstrap would abort at some step; a
// StatusWarn means a step would be degraded or skipped.
func Run(cfg config.Config) []Check {
	var checks []Check

	interpreter, err := pyenv.FindInterpreter(cfg.Python)
	if err != nil {
		checks = append(checks, Check{
			Name:   "interpreter",
			Status: StatusFail,
			Detail: err.Error(),
		})
		// Every remaining interpreter-based probe would fail the
		// same way; skip straight to the filesystem checks.
		return append(checks, fileChecks(cfg)...)
	}

	checks = append(checks, Check{
		Name:   "interpreter",
		Status: StatusOK,
		Detail: fmt.Sprintf("%s (%s)", interpreter, probeVersion(interpreter)),
	})
	checks = append(checks, moduleCheck(interpreter, "venv"))
	checks = append(checks, moduleCheck(interpreter, "ensurepip"))
	checks = append(checks, fileChecks(cfg)...)

	return checks
}

// Failed reports whether any check has StatusFail
func Failed(checks []Check) bool {
	for _, c := range checks {
		if c.Status == StatusFail {
			return true
		}
	}
	return false
}

func probeVersion(interpreter string) string {
	out, err := exec.Command(interpreter, "--version").CombinedOutput()
	if err != nil {
		return "version unknown"
	}
	return strings.TrimSpace(string(out))
}

// moduleCheck verifies a stdlib module the bootstrap depends on is
// importable. Debian ships python3 without venv/ensurepip unless
// python3-venv is installed, so this catches a common failure early.
func moduleCheck(interpreter, module string) Check {
	check := Check{Name: "module " + module}
	if err := exec.Command(interpreter, "-c", "import "+module).Run(); err != nil {
		check.Status = StatusFail
		check.Detail = fmt.Sprintf("%q is not importable; install your distribution's venv package", module)
		return check
	}
	check.Status = StatusOK
	check.Detail = "importable"
	return check
}

func fileChecks(cfg config.Config) []Check {
	return []Check{
		manifestCheck(cfg),
		metadataCheck(cfg),
		writableCheck(cfg),
	}
}

func manifestCheck(cfg config.Config) Check {
	check := Check{Name: "requirements manifest"}
	path := cfg.Requirements
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.ProjectDir, path)
	}
	info, err := os.Stat(path)
	switch {
	case err != nil:
		check.Status = StatusFail
		check.Detail = fmt.Sprintf("%s not found", path)
	case info.IsDir():
		check.Status = StatusFail
		check.Detail = fmt.Sprintf("%s is a directory", path)
	default:
		check.Status = StatusOK
		check.Detail = path
	}
	return check
}

func metadataCheck(cfg config.Config) Check {
	check := Check{Name: "packaging metadata"}
	for _, name := range packagingFiles {
		if _, err := os.Stat(filepath.Join(cfg.ProjectDir, name)); err == nil {
			check.Status = StatusOK
			check.Detail = name
			return check
		}
	}
	if cfg.SkipEditable {
		check.Status = StatusWarn
		check.Detail = "none found; editable install is skipped"
	} else {
		check.Status = StatusFail
		check.Detail = fmt.Sprintf("none of %s found; editable install will fail",
			strings.Join(packagingFiles, ", "))
	}
	return check
}

func writableCheck(cfg config.Config) Check {
	check := Check{Name: "project dir writable"}
	probe := filepath.Join(cfg.ProjectDir, ".venvup_write_test")
	f, err := os.Create(probe)
	if err != nil {
		check.Status = StatusFail
		check.Detail = fmt.Sprintf("cannot write to %s", cfg.ProjectDir)
		return check
	}
	f.Close()
	os.Remove(probe)
	check.Status = StatusOK
	check.Detail = cfg.ProjectDir
	return check
}
