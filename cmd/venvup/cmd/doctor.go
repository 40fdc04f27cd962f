package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/psantana5/venvup/internal/doctor"
)

var doctorOutput string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the host can run the bootstrap",
	Long: `Runs preflight checks: interpreter availability, venv and
ensurepip importability, presence of the dependency manifest and
packaging metadata, and project directory writability. Exits non-zero
if any required check fails.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().StringVar(&doctorOutput, "output", "table", "output format: table or json")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	host := doctor.CollectHost()
	checks := doctor.Run(cfg)

	if doctorOutput == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		payload := struct {
			Host   doctor.HostInfo `json:"host"`
			Checks []doctor.Check  `json:"checks"`
		}{host, checks}
		if err := encoder.Encode(payload); err != nil {
			return err
		}
	} else {
		fmt.Printf("Host: %s (%d threads), %s RAM, %s/%s\n\n",
			host.CPUModel, host.CPUThreads, doctor.FormatRAM(host.RAMBytes), host.OS, host.Arch)

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Check", "Status", "Detail")
		for _, c := range checks {
			table.Append([]string{c.Name, string(c.Status), c.Detail})
		}
		table.Render()
	}

	if doctor.Failed(checks) {
		return fmt.Errorf("preflight checks failed")
	}
	return nil
}
