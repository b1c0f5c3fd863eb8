// Package config provides configuration loading and validation for the engine.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the engine configuration, loadable from a JSON file with
// environment variables taking precedence.
type Config struct {
	// Server
	ListenAddr      string        `json:"listen_addr,omitempty" validate:"omitempty,hostname_port"`
	ShutdownTimeout time.Duration `json:"-"`

	// Storage
	DatabaseURL string `json:"database_url,omitempty"`

	// External tools
	LatexBinary string `json:"latex_binary,omitempty"`
	APIKey      string `json:"api_key,omitempty"`

	// Logging
	LogLevel string `json:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	LogJSON  bool   `json:"log_json,omitempty"`
}

// Default returns the configuration used when nothing is specified.
func Default() *Config {
	return &Config{
		ListenAddr:      ":8080",
		ShutdownTimeout: 10 * time.Second,
		LatexBinary:     "pdflatex",
		LogLevel:        "info",
	}
}

// Load reads configuration from an optional JSON file, overlays environment
// variables, and validates the result. An empty path skips the file step.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto the config. Environment
// values win over file values.
func (c *Config) applyEnv() {
	if v := os.Getenv("RESUME_ENGINE_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("PDFLATEX_BINARY"); v != "" {
		c.LatexBinary = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.LatexBinary == "" {
		return fmt.Errorf("config error: 'latex_binary' must not be empty")
	}
	return nil
}
