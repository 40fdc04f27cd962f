package cmd

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/psantana5/venvup/internal/config"
	"github.com/psantana5/venvup/pkg/logging"
)

var (
	cfgFile  string
	logLevel string
	logJSON  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "venvup",
	Short: "Bootstrap Python virtual environments",
	Long: `venvup creates a Python virtual environment for the current project,
upgrades the packaging toolchain, installs the declared dependencies and
installs the project itself in editable mode, stopping at the first step
that fails.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with the given context
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.venvup.yaml or $HOME/.venvup/.venvup.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log diagnostics as JSON")
}

// loadConfig reads layered configuration and applies the persistent
// logging flags on top
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.LogJSON = logJSON
	}
	return cfg, nil
}

// newLogger builds the diagnostics logger for a loaded config
func newLogger(cfg config.Config) *logging.Logger {
	return logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogJSON)
}

// resolveVenvDir applies the same path resolution the bootstrap plan
// uses, so env/status always point at the environment up would build
func resolveVenvDir(cfg config.Config) (string, error) {
	projectDir, err := filepath.Abs(cfg.ProjectDir)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(cfg.VenvDir) {
		return cfg.VenvDir, nil
	}
	return filepath.Join(projectDir, cfg.VenvDir), nil
}
