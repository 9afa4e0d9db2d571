// Package config loads application configuration from a YAML file and
// environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/fablingo/fablingo/internal/llm"
)

// Config is the root application configuration.
type Config struct {
	Log   LogConfig  `yaml:"log"`
	DB    DBConfig   `yaml:"db"`
	LLM   llm.Config `yaml:"llm"`
	Batch BatchConfig `yaml:"batch"`
}

// LogConfig controls logger output.
type LogConfig struct {
	// Level is one of: debug, info, warn, error (case-insensitive).
	Level string `yaml:"level" env:"FABLINGO_LOG_LEVEL" env-default:"info"`

	// Format is "text" (development) or "json" (production).
	Format string `yaml:"format" env:"FABLINGO_LOG_FORMAT" env-default:"text"`
}

// DBConfig locates the SQLite database.
type DBConfig struct {
	// Path overrides the default database location. Empty means
	// store.DefaultDBPath resolution.
	Path string `yaml:"path" env:"FABLINGO_DB"`
}

// BatchConfig bounds multi-user batch jobs.
type BatchConfig struct {
	// Concurrency is the worker pool size for per-user jobs.
	Concurrency int `yaml:"concurrency" env:"FABLINGO_BATCH_CONCURRENCY" env-default:"5"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is determined by FABLINGO_CONFIG (fallback
// "./fablingo.yaml"). If the file does not exist and FABLINGO_CONFIG
// was not set explicitly, configuration is loaded from ENV + defaults
// only.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("FABLINGO_CONFIG")
	explicitPath := path != ""
	if !explicitPath {
		path = "./fablingo.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks cross-field constraints that tags can't express. LLM
// API keys are checked later, only when a command actually needs a
// provider.
func (c *Config) Validate() error {
	if c.Batch.Concurrency <= 0 {
		return fmt.Errorf("batch.concurrency must be positive, got %d", c.Batch.Concurrency)
	}
	if c.LLM.RequestsPerMinute < 0 {
		return fmt.Errorf("llm.requests_per_minute must be non-negative, got %d", c.LLM.RequestsPerMinute)
	}
	return nil
}
