package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Johannes-Berggren/branchgoblin/internal/logging"
)

// EnvPrefix is the prefix of environment overrides, e.g. GOBLIN_REMOTE or
// GOBLIN_STATUS_MAX_COMMITS.
const EnvPrefix = "GOBLIN"

// Config represents the complete goblin configuration
type Config struct {
	// Remote is the remote every remote-tracking ref is matched against
	Remote string `mapstructure:"remote"`
	// DefaultBranch is preselected in choosers and protected from deletion.
	// Empty means detect it from the remote.
	DefaultBranch string       `mapstructure:"default_branch"`
	Color         bool         `mapstructure:"color"`
	Verbose       bool         `mapstructure:"verbose"`
	Status        StatusConfig `mapstructure:"status"`
	Log           LogConfig    `mapstructure:"log"`
}

// StatusConfig controls how much history the reports show
type StatusConfig struct {
	MaxCommits    int `mapstructure:"max_commits"`
	MaxGraphLines int `mapstructure:"max_graph_lines"`
}

type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Remote:  "origin",
		Color:   true,
		Verbose: true,
		Status: StatusConfig{
			MaxCommits:    10,
			MaxGraphLines: 20,
		},
		Log: LogConfig{
			Level: "debug",
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("remote", defaults.Remote)
	v.SetDefault("default_branch", defaults.DefaultBranch)
	v.SetDefault("color", defaults.Color)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetDefault("status.max_commits", defaults.Status.MaxCommits)
	v.SetDefault("status.max_graph_lines", defaults.Status.MaxGraphLines)

	v.SetDefault("log.debug", defaults.Log.Debug)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)
}

// Prepare wires defaults, config file lookup and environment overrides into
// v. An explicit file takes precedence over the search paths.
func Prepare(v *viper.Viper, file string) {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	// GOBLIN_STATUS_MAX_COMMITS for status.max_commits
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Read loads the config file if there is one. A missing file is not an
// error; a broken one is.
func Read(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("failed to read config: %w", err)
}

// Load unmarshals and validates the configuration held by v
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Validate returns every problem found, not just the first.
func (c *Config) Validate() []error {
	var errs []error

	if c.Remote == "" {
		errs = append(errs, errors.New("remote must not be empty"))
	} else if strings.ContainsAny(c.Remote, "/ \t~^:?*[\\") || strings.HasPrefix(c.Remote, "-") {
		errs = append(errs, fmt.Errorf("remote %q is not a valid remote name", c.Remote))
	}
	if c.Status.MaxCommits < 0 {
		errs = append(errs, fmt.Errorf("status.max_commits must be >= 0, got %d", c.Status.MaxCommits))
	}
	if c.Status.MaxGraphLines < 0 {
		errs = append(errs, fmt.Errorf("status.max_graph_lines must be >= 0, got %d", c.Status.MaxGraphLines))
	}
	if !logging.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}

	return errs
}

// ValidationErrors joins validation failures into one error
type ValidationErrors []error

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, err := range v {
		msgs[i] = err.Error()
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}

// ConfigDir returns the directory searched for config.yaml
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "goblin")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".goblin"
	}
	return filepath.Join(home, ".config", "goblin")
}
