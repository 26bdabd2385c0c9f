// Package config loads blueprint settings from defaults, ~/.blueprint/config.yaml
// and BLUEPRINT_* environment variables.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/balkashynov/blueprint/internal/errors"
)

// HomeDirName is the directory under $HOME holding data, config and logs
const HomeDirName = ".blueprint"

// Config is the full application configuration
type Config struct {
	DataDir string        `mapstructure:"data_dir"`
	Log     LogConfig     `mapstructure:"log"`
	Storage StorageConfig `mapstructure:"storage"`
	Targets TargetsConfig `mapstructure:"targets"`
}

// LogConfig controls the zerolog logger
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// StorageConfig controls retries of history and ledger writes
type StorageConfig struct {
	RetryAttempts int           `mapstructure:"retry_attempts"`
	RetryDelay    time.Duration `mapstructure:"retry_delay"`
}

// TargetsConfig holds the weekly aerobic targets in minutes
type TargetsConfig struct {
	Zone2Minutes    float64 `mapstructure:"zone2_minutes"`
	VigorousMinutes float64 `mapstructure:"vigorous_minutes"`
}

// Weekly targets recommended for aerobic volume
const (
	DefaultZone2Target    = 150
	DefaultVigorousTarget = 75
)

// HomeDir returns ~/.blueprint
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, HomeDirName), nil
}

func setDefaults(v *viper.Viper, home string) {
	v.SetDefault("data_dir", home)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(home, "logs", "blueprint.log"))
	v.SetDefault("storage.retry_attempts", 3)
	v.SetDefault("storage.retry_delay", 50*time.Millisecond)
	v.SetDefault("targets.zone2_minutes", DefaultZone2Target)
	v.SetDefault("targets.vigorous_minutes", DefaultVigorousTarget)
}

// Load reads the configuration. A missing config file is not an error.
// configFile overrides the default location when non-empty.
func Load(configFile string) (*Config, error) {
	home, err := HomeDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v, home)
	v.SetEnvPrefix("BLUEPRINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		configFile = filepath.Join(home, "config.yaml")
	}
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return stderrors.As(err, &notFound) || stderrors.Is(err, os.ErrNotExist)
}

// Validate checks value ranges
func Validate(cfg *Config) error {
	switch {
	case cfg.DataDir == "":
		return fmt.Errorf("data_dir is empty: %w", errors.ErrInvalidConfig)
	case cfg.Storage.RetryAttempts < 1:
		return fmt.Errorf("storage.retry_attempts must be at least 1: %w", errors.ErrInvalidConfig)
	case cfg.Storage.RetryDelay < 0:
		return fmt.Errorf("storage.retry_delay must not be negative: %w", errors.ErrInvalidConfig)
	case cfg.Targets.Zone2Minutes <= 0 || cfg.Targets.VigorousMinutes <= 0:
		return fmt.Errorf("weekly targets must be positive: %w", errors.ErrInvalidConfig)
	}
	return nil
}
