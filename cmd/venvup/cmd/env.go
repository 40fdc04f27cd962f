package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psantana5/venvup/internal/pyenv"
)

var envShell string

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print shell statements that activate the environment",
	Long: `Prints the environment variable assignments that activate the
virtual environment, for use in the calling shell:

  eval "$(venvup env)"

venvup itself never relies on these; every tool it invokes receives
the derived environment explicitly.`,
	RunE: runEnv,
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().StringVar(&envShell, "shell", "posix", "output syntax: posix or fish")
}

func runEnv(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	venvDir, err := resolveVenvDir(cfg)
	if err != nil {
		return err
	}

	act, err := pyenv.Activate(venvDir)
	if err != nil {
		return err
	}

	out, err := act.Exports(pyenv.Shell(envShell))
	if err != nil {
		return err
	}

	fmt.Print(out)
	return nil
}
