package pyenv

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Activation is the derived environment for a virtual environment.
// Instead of mutating the shell the way `source bin/activate` does,
// the activation is an explicit value threaded into every tool
// invocation that should run inside the environment.
type Activation struct {
	VenvDir string // absolute path to the environment directory
	BinDir  string // bin/ (POSIX) or Scripts/ (Windows)
	Python  string // environment's interpreter
	Pip     string // environment's pip
}

// Activate derives the activation for venvDir. The directory does not
// need to exist yet; paths are computed, not probed.
func Activate(venvDir string) (*Activation, error) {
	abs, err := filepath.Abs(venvDir)
	if err != nil {
		return nil, fmt.Errorf("resolving venv dir %s: %w", venvDir, err)
	}

	binDir := filepath.Join(abs, binDirName())
	exe := ""
	if runtime.GOOS == "windows" {
		exe = ".exe"
	}

	return &Activation{
		VenvDir: abs,
		BinDir:  binDir,
		Python:  filepath.Join(binDir, "python"+exe),
		Pip:     filepath.Join(binDir, "pip"+exe),
	}, nil
}

func binDirName() string {
	if runtime.GOOS == "windows" {
		return "Scripts"
	}
	return "bin"
}

// Environ returns a copy of base with the activation applied:
// VIRTUAL_ENV set, the environment's bin dir prepended to PATH, and
// PYTHONHOME removed. base is not modified.
func (a *Activation) Environ(base []string) []string {
	env := make([]string, 0, len(base)+2)
	pathSeen := false

	for _, kv := range base {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			env = append(env, kv)
			continue
		}
		switch {
		case strings.EqualFold(key, "PYTHONHOME"):
			// Leftover PYTHONHOME overrides the venv's interpreter
			// paths, so it must not leak into the child.
			continue
		case strings.EqualFold(key, "PATH"):
			// Windows spells it "Path"; keep the original casing
			pathSeen = true
			env = append(env, key+"="+a.BinDir+string(os.PathListSeparator)+value)
		case key == "VIRTUAL_ENV":
			continue
		default:
			env = append(env, kv)
		}
	}

	if !pathSeen {
		env = append(env, "PATH="+a.BinDir)
	}
	env = append(env, "VIRTUAL_ENV="+a.VenvDir)

	return env
}

// Shell selects the syntax Exports emits.
type Shell string

const (
	ShellPosix Shell = "posix"
	ShellFish  Shell = "fish"
)

// Exports renders the activation as shell statements, for
// `eval "$(venvup env)"` style use by callers who want the
// environment in their interactive shell.
func (a *Activation) Exports(shell Shell) (string, error) {
	var b strings.Builder
	switch shell {
	case ShellPosix:
		fmt.Fprintf(&b, "export VIRTUAL_ENV=%q\n", a.VenvDir)
		fmt.Fprintf(&b, "export PATH=%q\n", a.BinDir+string(os.PathListSeparator)+"$PATH")
		b.WriteString("unset PYTHONHOME\n")
	case ShellFish:
		fmt.Fprintf(&b, "set -gx VIRTUAL_ENV %q\n", a.VenvDir)
		fmt.Fprintf(&b, "set -gx PATH %q $PATH\n", a.BinDir)
		b.WriteString("set -e PYTHONHOME\n")
	default:
		return "", fmt.Errorf("unsupported shell %q", shell)
	}
	return b.String(), nil
}
