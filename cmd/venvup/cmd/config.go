package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/psantana5/venvup/internal/config"
)

var configShowOutput string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  `Commands for inspecting the layered venvup configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Prints the configuration after merging defaults, the config file,
VENVUP_* environment variables and flags, so the values the bootstrap
would actually use are visible.`,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)

	configShowCmd.Flags().StringVarP(&configShowOutput, "output", "o", "yaml",
		"Output format: yaml or json")
}

// configView is the serialized shape of the effective configuration.
// Durations render as strings ("5m0s"), not nanosecond counts.
type configView struct {
	Python       string   `json:"python,omitempty" yaml:"python,omitempty"`
	VenvDir      string   `json:"venv_dir" yaml:"venv_dir"`
	Requirements string   `json:"requirements" yaml:"requirements"`
	ProjectDir   string   `json:"project_dir" yaml:"project_dir"`
	Tools        []string `json:"tools" yaml:"tools"`
	StepTimeout  string   `json:"step_timeout,omitempty" yaml:"step_timeout,omitempty"`
	SkipEditable bool     `json:"skip_editable" yaml:"skip_editable"`
	MetricsFile  string   `json:"metrics_file,omitempty" yaml:"metrics_file,omitempty"`
	LogLevel     string   `json:"log_level" yaml:"log_level"`
	LogJSON      bool     `json:"log_json" yaml:"log_json"`
}

func buildConfigView(cfg config.Config) configView {
	view := configView{
		Python:       cfg.Python,
		VenvDir:      cfg.VenvDir,
		Requirements: cfg.Requirements,
		ProjectDir:   cfg.ProjectDir,
		Tools:        cfg.Tools,
		SkipEditable: cfg.SkipEditable,
		MetricsFile:  cfg.MetricsFile,
		LogLevel:     cfg.LogLevel,
		LogJSON:      cfg.LogJSON,
	}
	if cfg.StepTimeout > 0 {
		view.StepTimeout = cfg.StepTimeout.String()
	}
	return view
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	view := buildConfigView(cfg)

	switch configShowOutput {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(view)
	default:
		encoder := yaml.NewEncoder(os.Stdout)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(view)
	}
}
