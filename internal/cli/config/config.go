package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the Wobble toolchain configuration
type Config struct {
	Curriculum CurriculumConfig `mapstructure:"curriculum"`
	Inject     InjectConfig     `mapstructure:"inject"`
	Progress   ProgressConfig   `mapstructure:"progress"`
	Output     OutputConfig     `mapstructure:"output"`
}

// CurriculumConfig points at the lesson catalog
type CurriculumConfig struct {
	// Catalog is a path to a TOML lesson catalog. Empty means the
	// built-in catalog.
	Catalog string `mapstructure:"catalog"`
}

// InjectConfig holds the defaults for practice-mode error injection
type InjectConfig struct {
	Probability  float64 `mapstructure:"probability"`
	MaxPerRegion int     `mapstructure:"max_per_region"`
}

// ProgressConfig holds the attempt-history database location
type ProgressConfig struct {
	Database string `mapstructure:"database"`
}

// OutputConfig holds rendering preferences
type OutputConfig struct {
	NoColor bool `mapstructure:"no_color"`
	JSON    bool `mapstructure:"json"`
}

// Load loads the configuration from wobble.yml or wobble.yaml
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("inject.probability", 0.5)
	v.SetDefault("inject.max_per_region", 3)
	v.SetDefault("progress.database", defaultDatabasePath())
	v.SetDefault("output.no_color", false)
	v.SetDefault("output.json", false)

	// Set config name and paths
	v.SetConfigName("wobble")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable support
	v.SetEnvPrefix("WOBBLE")
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// InWorkspace checks if the current directory holds Wobble source files
func InWorkspace() bool {
	if _, err := os.Stat("wobble.yml"); err == nil {
		return true
	}
	if _, err := os.Stat("wobble.yaml"); err == nil {
		return true
	}
	matches, _ := filepath.Glob("*.wob")
	return len(matches) > 0
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "wobble-progress.db"
	}
	return filepath.Join(home, ".wobble", "progress.db")
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.Inject.Probability < 0 || cfg.Inject.Probability > 1 {
		return fmt.Errorf("inject.probability must be in [0, 1], got: %g", cfg.Inject.Probability)
	}
	if cfg.Inject.MaxPerRegion < 0 {
		return fmt.Errorf("inject.max_per_region must be non-negative, got: %d", cfg.Inject.MaxPerRegion)
	}
	return nil
}
