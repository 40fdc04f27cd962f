package pyenv

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// interpreterCandidates are probed in order when no interpreter is
// configured explicitly.
var interpreterCandidates = []string{"python3", "python"}

// FindInterpreter resolves the base Python interpreter used to create
// the environment. A configured value wins; otherwise the usual names
// are probed on PATH.
func FindInterpreter(configured string) (string, error) {
	if configured != "" {
		path, err := exec.LookPath(configured)
		if err != nil {
			return "", fmt.Errorf("configured interpreter %q not found: %w", configured, err)
		}
		return path, nil
	}

	for _, name := range interpreterCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no python interpreter found on PATH (tried %s)",
		strings.Join(interpreterCandidates, ", "))
}

// Exists reports whether venvDir already looks like a virtual
// environment (a pyvenv.cfg written by the venv module).
func Exists(venvDir string) bool {
	info, err := os.Stat(filepath.Join(venvDir, "pyvenv.cfg"))
	return err == nil && !info.IsDir()
}

// Config holds the key/value pairs of a pyvenv.cfg file.
type Config map[string]string

// ReadConfig parses venvDir's pyvenv.cfg. The format is a flat list
// of "key = value" lines.
func ReadConfig(venvDir string) (Config, error) {
	path := filepath.Join(venvDir, "pyvenv.cfg")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	cfg := make(Config)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		cfg[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return cfg, nil
}

// Version returns the "version" entry of a pyvenv.cfg, empty when the
// creating tool did not record one.
func (c Config) Version() string {
	if v, ok := c["version"]; ok {
		return v
	}
	// Newer CPython writes version_info instead
	return c["version_info"]
}
