package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds the runtime settings for the checks. There is deliberately
// no configuration file: settings come from built-in defaults and
// HOSTCHECK_* environment variables only.
type Config struct {
	// Path of the meminfo-format file read by the memory check
	MeminfoPath string `mapstructure:"meminfo_path"`

	// Logging configuration
	LogLevel string `mapstructure:"log_level"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		MeminfoPath: "/proc/meminfo",
		LogLevel:    "warn",
	}
}

// Load builds the configuration from defaults and environment variables.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetDefault("meminfo_path", cfg.MeminfoPath)
	v.SetDefault("log_level", cfg.LogLevel)

	v.SetEnvPrefix("HOSTCHECK")
	v.AutomaticEnv()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration values.
func (c *Config) Validate() error {
	if c.MeminfoPath == "" {
		return fmt.Errorf("meminfo_path cannot be empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}
