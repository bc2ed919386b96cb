package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Stage constants
const (
	StageDev  = "dev"  // fixed-interval day changes for local testing
	StageProd = "prod" // one day change at local midnight
)

// Driver constants
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Defaults applied by Load when the file omits a field.
const (
	DefaultDatabasePath = "poochyard.db"
	DefaultTimezone     = "UTC"
	DefaultDevInterval  = 5 * time.Minute
)

// Config represents the flat poochyard configuration.
type Config struct {
	Stage        string `json:"stage"`                   // "dev" or "prod"
	Driver       string `json:"driver"`                  // "sqlite" or "postgres"
	DatabasePath string `json:"database_path,omitempty"` // sqlite file path
	PostgresDSN  string `json:"postgres_dsn,omitempty"`  // pgx connection string
	Timezone     string `json:"timezone,omitempty"`      // IANA name, midnight reference
	DevInterval  string `json:"dev_interval,omitempty"`  // tick period in dev, e.g. "5m"
}

// Default returns a dev configuration backed by a local SQLite file.
func Default() *Config {
	return &Config{
		Stage:        StageDev,
		Driver:       DriverSQLite,
		DatabasePath: DefaultDatabasePath,
		Timezone:     DefaultTimezone,
	}
}

// Load reads .poochyard/config.json from the specified directory and
// fills in defaults for omitted fields. A missing file is an error;
// callers that can run unconfigured should fall back to Default.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ".poochyard", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Stage == "" {
		cfg.Stage = StageDev
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverSQLite
	}
	if cfg.Driver == DriverSQLite && cfg.DatabasePath == "" {
		cfg.DatabasePath = DefaultDatabasePath
	}
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config.json under .poochyard in the given directory.
func Save(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, ".poochyard")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create .poochyard dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(cfgDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks the cross-field rules a zero-value JSON decode can miss.
func (c *Config) Validate() error {
	switch c.Stage {
	case StageDev, StageProd:
	default:
		return fmt.Errorf("unknown stage %q", c.Stage)
	}

	switch c.Driver {
	case DriverSQLite:
		if c.DatabasePath == "" {
			return fmt.Errorf("sqlite driver requires database_path")
		}
	case DriverPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("postgres driver requires postgres_dsn")
		}
	default:
		return fmt.Errorf("unknown driver %q", c.Driver)
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.TickInterval(); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	name := c.Timezone
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

// TickInterval returns the dev-stage day-change period.
func (c *Config) TickInterval() (time.Duration, error) {
	if c.DevInterval == "" {
		return DefaultDevInterval, nil
	}
	d, err := time.ParseDuration(c.DevInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid dev_interval %q: %w", c.DevInterval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("dev_interval must be positive, got %q", c.DevInterval)
	}
	return d, nil
}
