package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"go.yaml.in/yaml/v3"

	"nospace/internal/core"
)

const configPathEnv = "NOSPACE_CONFIG_PATH"

type Config struct {
	SmallDirectoryThreshold int64  `yaml:"small_directory_threshold"`
	DiskCapacity            int64  `yaml:"disk_capacity"`
	UpdateSize              int64  `yaml:"update_size"`
	LogLevel                string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		SmallDirectoryThreshold: 100000,
		DiskCapacity:            70000000,
		UpdateSize:              30000000,
		LogLevel:                "info",
	}
}

// Load starts from the defaults, applies the YAML file named by
// NOSPACE_CONFIG_PATH when set, then environment overrides.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv(configPathEnv); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.SmallDirectoryThreshold = getEnvInt64("SMALL_DIR_THRESHOLD", cfg.SmallDirectoryThreshold)
	cfg.DiskCapacity = getEnvInt64("DISK_CAPACITY", cfg.DiskCapacity)
	cfg.UpdateSize = getEnvInt64("UPDATE_SIZE", cfg.UpdateSize)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) DiskSpace() core.DiskSpace {
	return core.DiskSpace{Capacity: c.DiskCapacity, Required: c.UpdateSize}
}

func (c *Config) Validate() error {
	if c.SmallDirectoryThreshold < 0 {
		return errors.New("small directory threshold must not be negative")
	}
	return c.DiskSpace().Validate()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
