// Package config loads vitals configuration from YAML with viper.
// Search order: explicit --config path, .vitals.yaml in the current
// directory or a parent (stopping at the git root or home), then the global
// ~/.config/vitals/config.yaml. Missing files fall back to defaults.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/vitals-sh/vitals/internal/dashboard"
	"github.com/vitals-sh/vitals/internal/errors"
)

const (
	// ConfigFileName is the per-project config file name.
	ConfigFileName = ".vitals.yaml"
	// GlobalConfigDir is the directory of the global config, under home.
	GlobalConfigDir = ".config/vitals"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Config is the complete .vitals.yaml configuration.
type Config struct {
	// Interval is the frame tick period of the dashboard.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// History is the max samples retained per metric stream. 0 keeps
	// everything, at the cost of unbounded growth over long sessions.
	History int `yaml:"history" mapstructure:"history"`

	// ProcessRefreshFrames is how often (in frames) the process list is
	// rebuilt. Frame-based, so the effective rate drifts with render
	// speed.
	ProcessRefreshFrames int `yaml:"process_refresh_frames" mapstructure:"process_refresh_frames"`

	// DiskRefreshFrames is how often (in frames) the disk snapshot is
	// rebuilt. 0 snapshots once at startup only.
	DiskRefreshFrames int `yaml:"disk_refresh_frames" mapstructure:"disk_refresh_frames"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Interval:             250 * time.Millisecond,
		History:              dashboard.DefaultHistoryLimit,
		ProcessRefreshFrames: dashboard.DefaultProcessRefreshFrames,
		DiskRefreshFrames:    0,
	}
}

// Validate checks the configuration for values the dashboard cannot run
// with.
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return errors.New(errors.ErrConfig,
			"Invalid interval: must be positive",
			"Use a duration like 250ms or 1s")
	}
	if c.History < 0 {
		return errors.New(errors.ErrConfig,
			"Invalid history: must be >= 0",
			"Use 0 for unbounded history or a positive sample count")
	}
	if c.ProcessRefreshFrames < 1 {
		return errors.New(errors.ErrConfig,
			"Invalid process_refresh_frames: must be >= 1",
			"Use 1 to refresh every frame, 30 for the default cadence")
	}
	if c.DiskRefreshFrames < 0 {
		return errors.New(errors.ErrConfig,
			"Invalid disk_refresh_frames: must be >= 0",
			"Use 0 to snapshot disks at startup only")
	}
	return nil
}

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithSuggestion(err, errors.ErrConfig,
				"Config file not found",
				"Run 'vitals init' to create one, or specify a path with --config")
		}
		return nil, errors.WrapWithSuggestion(err, errors.ErrConfig,
			"Failed to read config file",
			"Check that "+path+" exists and is valid YAML")
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithSuggestion(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find locates the config file, returning empty when none exists.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.WrapWithSuggestion(err, errors.ErrConfig,
				"Specified config file not found: "+explicit,
				"Check the path is correct")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfig, "Cannot determine current directory")
	}

	local := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	// Walk up parent directories, stopping at the git root or home.
	home, _ := os.UserHomeDir()
	dir := cwd
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		if home != "" && parent == home {
			break
		}
		dir = parent

		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}
	}

	if home != "" {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults when
// no config file exists anywhere on the search path.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	return Load(path)
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("interval", def.Interval.String())
	v.SetDefault("history", def.History)
	v.SetDefault("process_refresh_frames", def.ProcessRefreshFrames)
	v.SetDefault("disk_refresh_frames", def.DiskRefreshFrames)
}
