// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config represents runtime configuration. All fields are optional; missing
// values fall back to defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port            int `json:"port,omitempty"`             // HTTP listen port
	ShutdownSeconds int `json:"shutdown_seconds,omitempty"` // Graceful shutdown grace period

	// Generation
	APIKey        string  `json:"api_key,omitempty"`        // Gemini API key
	PrimaryModel  string  `json:"primary_model,omitempty"`  // Preferred generation model
	FallbackModel string  `json:"fallback_model,omitempty"` // Model tried when the primary fails
	Temperature   float64 `json:"temperature,omitempty"`    // Sampling temperature (0.0-2.0)

	// Scraping
	UseBrowser    bool `json:"use_browser,omitempty"`    // Use headless browser for SPA job pages
	ScrapeSeconds int  `json:"scrape_seconds,omitempty"` // Per-request scrape timeout

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Default values applied by MergeWithDefaults for unset fields.
const (
	DefaultPort            = 8080
	DefaultShutdownSeconds = 10
	DefaultScrapeSeconds   = 30
	DefaultTemperature     = 0.3
)

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Unset variables leave
// the corresponding fields at their zero values so that file and default
// merging still applies.
func FromEnv() Config {
	cfg := Config{
		APIKey:        os.Getenv("GEMINI_API_KEY"),
		PrimaryModel:  os.Getenv("GEMINI_PRIMARY_MODEL"),
		FallbackModel: os.Getenv("GEMINI_FALLBACK_MODEL"),
	}
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		cfg.Port = port
	}
	if v, err := strconv.ParseBool(os.Getenv("USE_BROWSER")); err == nil {
		cfg.UseBrowser = v
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.ShutdownSeconds < 0 {
		return fmt.Errorf("config error: 'shutdown_seconds' must be non-negative")
	}
	if c.ScrapeSeconds < 0 {
		return fmt.Errorf("config error: 'scrape_seconds' must be non-negative")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("config error: 'temperature' must be between 0.0 and 2.0")
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags and environment variables.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.PrimaryModel == "" {
		result.PrimaryModel = defaults.PrimaryModel
	}
	if result.FallbackModel == "" {
		result.FallbackModel = defaults.FallbackModel
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.ShutdownSeconds == 0 {
		result.ShutdownSeconds = defaults.ShutdownSeconds
	}
	if result.ScrapeSeconds == 0 {
		result.ScrapeSeconds = defaults.ScrapeSeconds
	}

	// Float fields
	if result.Temperature == 0 {
		if defaults.Temperature > 0 {
			result.Temperature = defaults.Temperature
		} else {
			result.Temperature = DefaultTemperature
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Defaults returns the baseline configuration used when neither flags, env
// nor a config file set a value.
func Defaults() Config {
	return Config{
		Port:            DefaultPort,
		ShutdownSeconds: DefaultShutdownSeconds,
		ScrapeSeconds:   DefaultScrapeSeconds,
		Temperature:     DefaultTemperature,
	}
}

// ShutdownTimeout is the graceful shutdown grace period as a duration.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownSeconds) * time.Second
}

// ScrapeTimeout is the per-request scrape budget as a duration.
func (c *Config) ScrapeTimeout() time.Duration {
	return time.Duration(c.ScrapeSeconds) * time.Second
}
