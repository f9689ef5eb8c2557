package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Hevy    HevyConfig    `json:"hevy"`
	Display DisplayConfig `json:"display"`
}

// HevyConfig holds the connection settings for the Hevy API
type HevyConfig struct {
	// EmailOrUsername identifies the account to log in as. The
	// password is prompted for interactively and never stored.
	EmailOrUsername string `json:"email_or_username"`
	// BaseURL overrides the API endpoint; empty means the default.
	BaseURL string `json:"base_url,omitempty"`
	// APIKey overrides the static client key; empty means the default.
	APIKey string `json:"api_key,omitempty"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	WeightUnit  string `json:"weight_unit"`  // "kg" or "lb"
	Range       string `json:"range"`        // 1month, 3month, 6month, 1year, all
	Granularity string `json:"granularity"`  // week or month
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			WeightUnit:  "kg",
			Range:       "3month",
			Granularity: "week",
		},
	}
}

// Load reads the configuration from ~/.hevy-insights/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Display.WeightUnit == "" {
		cfg.Display.WeightUnit = defaults.Display.WeightUnit
	}
	if cfg.Display.Range == "" {
		cfg.Display.Range = defaults.Display.Range
	}
	if cfg.Display.Granularity == "" {
		cfg.Display.Granularity = defaults.Display.Granularity
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.hevy-insights/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := Config{
		Hevy: HevyConfig{
			EmailOrUsername: "YOUR_HEVY_USERNAME",
		},
		Display: DefaultConfig().Display,
	}

	return Save(&example)
}

// Validate checks if the config has required fields
func (c *Config) Validate() error {
	if c.Hevy.EmailOrUsername == "" || c.Hevy.EmailOrUsername == "YOUR_HEVY_USERNAME" {
		return errors.New("hevy.email_or_username is required")
	}

	if c.Display.WeightUnit != "" && c.Display.WeightUnit != "kg" && c.Display.WeightUnit != "lb" {
		return fmt.Errorf("display.weight_unit must be \"kg\" or \"lb\", got %q", c.Display.WeightUnit)
	}
	switch c.Display.Range {
	case "", "1month", "3month", "6month", "1year", "all":
	default:
		return fmt.Errorf("display.range must be one of 1month, 3month, 6month, 1year, all, got %q", c.Display.Range)
	}
	switch c.Display.Granularity {
	case "", "week", "month":
	default:
		return fmt.Errorf("display.granularity must be \"week\" or \"month\", got %q", c.Display.Granularity)
	}

	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".hevy-insights", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".hevy-insights"), nil
}
