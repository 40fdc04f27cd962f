package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/psantana5/venvup/internal/bootstrap"
	"github.com/psantana5/venvup/internal/report"
	"github.com/psantana5/venvup/internal/runner"
)

var (
	upPython       string
	upVenvDir      string
	upRequirements string
	upProjectDir   string
	upSkipEditable bool
	upMetricsFile  string
	upTimeout      time.Duration
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Run the bootstrap sequence",
	Long: `Runs the five bootstrap steps in order: create the virtual
environment, activate it, upgrade the packaging tools, install the
dependency manifest and install the project in editable mode.

The first failing step aborts the run and its exit code becomes
venvup's own exit code. The partially built environment is left in
place for inspection.`,
	RunE: runUp,
}

func init() {
	rootCmd.AddCommand(upCmd)

	upCmd.Flags().StringVar(&upPython, "python", "", "base interpreter (default: python3 or python from PATH)")
	upCmd.Flags().StringVar(&upVenvDir, "venv-dir", "", "environment directory (default .venv)")
	upCmd.Flags().StringVar(&upRequirements, "requirements", "", "dependency manifest (default requirements.txt)")
	upCmd.Flags().StringVar(&upProjectDir, "project-dir", "", "project directory (default current directory)")
	upCmd.Flags().BoolVar(&upSkipEditable, "skip-editable", false, "skip the editable install of the local project")
	upCmd.Flags().StringVar(&upMetricsFile, "metrics-file", "", "write step metrics to this textfile-collector .prom file")
	upCmd.Flags().DurationVar(&upTimeout, "timeout", 0, "per-step timeout (0 disables)")
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("python") {
		cfg.Python = upPython
	}
	if cmd.Flags().Changed("venv-dir") {
		cfg.VenvDir = upVenvDir
	}
	if cmd.Flags().Changed("requirements") {
		cfg.Requirements = upRequirements
	}
	if cmd.Flags().Changed("project-dir") {
		cfg.ProjectDir = upProjectDir
	}
	if cmd.Flags().Changed("skip-editable") {
		cfg.SkipEditable = upSkipEditable
	}
	if cmd.Flags().Changed("metrics-file") {
		cfg.MetricsFile = upMetricsFile
	}
	if cmd.Flags().Changed("timeout") {
		cfg.StepTimeout = upTimeout
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := newLogger(cfg)

	plan, err := bootstrap.BuildPlan(cfg, runner.NewExecRunner())
	if err != nil {
		return err
	}

	rep := report.New()
	seq := &bootstrap.Sequencer{
		Out:         os.Stdout,
		Log:         log,
		StepTimeout: cfg.StepTimeout,
		Report:      rep,
	}

	runErr := seq.Run(cmd.Context(), plan.Steps)

	// Metrics cover failed runs too; write before deciding the exit
	if cfg.MetricsFile != "" {
		if err := rep.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Warn("could not write metrics file", map[string]interface{}{
				"path":  cfg.MetricsFile,
				"error": err.Error(),
			})
		}
	}

	if runErr != nil {
		return runErr
	}

	activate := filepath.Join(plan.Activation.BinDir, "activate")
	fmt.Printf("==> Done. Activate with: source %s\n", activate)
	return nil
}
