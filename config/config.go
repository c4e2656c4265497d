// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Logging LoggingConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name   string
	Prompt string
}

// StorageConfig points at the JSON data file.
type StorageConfig struct {
	DataFilePath string
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string
	// FilePath receives the log stream; empty means stderr.
	FilePath string
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:   getEnv("TUTORTRACK_APP_NAME", "TutorTrack"),
			Prompt: getEnv("TUTORTRACK_PROMPT", "> "),
		},
		Storage: StorageConfig{
			DataFilePath: getEnv("TUTORTRACK_DATA_FILE", "data/students.json"),
		},
		Logging: LoggingConfig{
			Level:    getEnv("TUTORTRACK_LOG_LEVEL", "info"),
			FilePath: getEnv("TUTORTRACK_LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}
	if strings.TrimSpace(c.Storage.DataFilePath) == "" {
		return fmt.Errorf("data file path must not be empty")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}
