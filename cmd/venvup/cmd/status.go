package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/psantana5/venvup/internal/pyenv"
	"github.com/psantana5/venvup/internal/runner"
)

var statusOutput string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Inspect the project's virtual environment",
	Long: `Shows whether the virtual environment exists, which interpreter
version it was created with, and the packages installed in it.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringVar(&statusOutput, "output", "table", "output format: table or json")
}

// envStatus is the JSON shape of the status output
type envStatus struct {
	VenvDir  string          `json:"venv_dir"`
	Exists   bool            `json:"exists"`
	Version  string          `json:"version,omitempty"`
	Packages []pyenv.Package `json:"packages,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	venvDir, err := resolveVenvDir(cfg)
	if err != nil {
		return err
	}

	status := envStatus{VenvDir: venvDir}

	if pyenv.Exists(venvDir) {
		status.Exists = true

		venvCfg, err := pyenv.ReadConfig(venvDir)
		if err != nil {
			return err
		}
		status.Version = venvCfg.Version()

		act, err := pyenv.Activate(venvDir)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		r := &runner.ExecRunner{Stdout: &buf, Stderr: os.Stderr}
		if _, err := r.Run(cmd.Context(), runner.Spec{
			Name:    "list-packages",
			Command: act.Python,
			Args:    pyenv.ListPackagesArgs(),
			Env:     act.Environ(os.Environ()),
		}); err != nil {
			return err
		}

		status.Packages, err = pyenv.ParsePackageList(buf.Bytes())
		if err != nil {
			return err
		}
	}

	if statusOutput == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(status)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	table.Append([]string{"Environment", status.VenvDir})
	table.Append([]string{"Exists", fmt.Sprintf("%t", status.Exists)})
	if status.Version != "" {
		table.Append([]string{"Python version", status.Version})
	}
	table.Append([]string{"Packages", fmt.Sprintf("%d", len(status.Packages))})
	table.Render()

	if len(status.Packages) > 0 {
		fmt.Println()
		pkgTable := tablewriter.NewWriter(os.Stdout)
		pkgTable.Header("Package", "Version")
		for _, p := range status.Packages {
			pkgTable.Append([]string{p.Name, p.Version})
		}
		pkgTable.Render()
	}

	return nil
}
