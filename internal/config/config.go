package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds every setting the bootstrap needs. All invocations
// read from this struct; nothing is pulled from ambient process state
// after loading.
type Config struct {
	Python       string        `mapstructure:"python" yaml:"python"`
	VenvDir      string        `mapstructure:"venv_dir" yaml:"venv_dir"`
	Requirements string        `mapstructure:"requirements" yaml:"requirements"`
	ProjectDir   string        `mapstructure:"project_dir" yaml:"project_dir"`
	Tools        []string      `mapstructure:"tools" yaml:"tools"`
	StepTimeout  time.Duration `mapstructure:"step_timeout" yaml:"step_timeout"`
	SkipEditable bool          `mapstructure:"skip_editable" yaml:"skip_editable"`
	MetricsFile  string        `mapstructure:"metrics_file" yaml:"metrics_file"`
	LogLevel     string        `mapstructure:"log_level" yaml:"log_level"`
	LogJSON      bool          `mapstructure:"log_json" yaml:"log_json"`
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		VenvDir:      ".venv",
		Requirements: "requirements.txt",
		ProjectDir:   ".",
		Tools:        []string{"pip", "setuptools", "wheel"},
		LogLevel:     "info",
	}
}

// Load reads configuration from (lowest to highest precedence)
// defaults, a config file, and VENVUP_* environment variables. Flag
// overrides are applied by the CLI layer on the returned struct.
func Load(cfgFile string) (Config, error) {
	v := viper.New()

	// Every key needs a default, even a zero one: viper only
	// consults VENVUP_* variables for keys it already knows about.
	def := Default()
	v.SetDefault("python", def.Python)
	v.SetDefault("venv_dir", def.VenvDir)
	v.SetDefault("requirements", def.Requirements)
	v.SetDefault("project_dir", def.ProjectDir)
	v.SetDefault("tools", def.Tools)
	v.SetDefault("step_timeout", def.StepTimeout)
	v.SetDefault("skip_editable", def.SkipEditable)
	v.SetDefault("metrics_file", def.MetricsFile)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_json", def.LogJSON)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Project-local config wins over the per-user one
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".venvup"))
		}
		v.SetConfigName(".venvup")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("VENVUP")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; a broken or
		// explicitly named one is not
		if cfgFile != "" {
			return Config{}, fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks that every setting the sequence dereferences is
// set. An empty required value aborts before step 1, the same way a
// strict shell treats an unset variable.
func (c Config) Validate() error {
	if c.VenvDir == "" {
		return fmt.Errorf("venv_dir must not be empty")
	}
	if c.Requirements == "" {
		return fmt.Errorf("requirements must not be empty")
	}
	if c.ProjectDir == "" {
		return fmt.Errorf("project_dir must not be empty")
	}
	if len(c.Tools) == 0 {
		return fmt.Errorf("tools must name at least one packaging tool")
	}
	for _, tool := range c.Tools {
		if tool == "" {
			return fmt.Errorf("tools must not contain empty entries")
		}
	}
	if c.StepTimeout < 0 {
		return fmt.Errorf("step_timeout must not be negative")
	}
	return nil
}
