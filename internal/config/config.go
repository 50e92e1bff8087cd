package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "10s" decode naturally
type Duration time.Duration

// UnmarshalYAML decodes a duration string such as "10s" or "1m30s"
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config holds all configuration options for the timesheet manager application
type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	Week        WeekConfig        `yaml:"week"`
	Validation  ValidationConfig  `yaml:"validation"`
	Application ApplicationConfig `yaml:"application"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string   `yaml:"dir" env:"TSM_DB_DIR"`
	Filename       string   `yaml:"filename" env:"TSM_DB_FILENAME"`
	QueryTimeout   Duration `yaml:"query_timeout" env:"TSM_DB_QUERY_TIMEOUT"`
	WriteTimeout   Duration `yaml:"write_timeout" env:"TSM_DB_WRITE_TIMEOUT"`
	DirPermissions uint32   `yaml:"dir_permissions" env:"TSM_DB_DIR_PERMISSIONS"`
}

// WeekConfig holds week anchoring configuration
type WeekConfig struct {
	// Anchor is the weekday that starts a timesheet week (default Monday)
	Anchor string `yaml:"anchor" env:"TSM_WEEK_ANCHOR"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	JobNameMinLength int `yaml:"job_name_min_length" env:"TSM_VALIDATION_JOB_NAME_MIN"`
	JobNameMaxLength int `yaml:"job_name_max_length" env:"TSM_VALIDATION_JOB_NAME_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout Duration `yaml:"timeout" env:"TSM_APP_TIMEOUT"`
	Verbose bool     `yaml:"verbose" env:"TSM_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".tsm")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "tsm.db",
			QueryTimeout:   Duration(10 * time.Second),
			WriteTimeout:   Duration(5 * time.Second),
			DirPermissions: 0755,
		},
		Week: WeekConfig{
			Anchor: "monday",
		},
		Validation: ValidationConfig{
			JobNameMinLength: 1,
			JobNameMaxLength: 255,
		},
		Application: ApplicationConfig{
			Timeout: Duration(60 * time.Second),
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return time.Duration(c.Database.QueryTimeout)
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return time.Duration(c.Database.WriteTimeout)
}

// GetApplicationTimeout returns the overall application timeout
func (c *Config) GetApplicationTimeout() time.Duration {
	return time.Duration(c.Application.Timeout)
}

// GetWeekAnchor returns the configured week anchor weekday
func (c *Config) GetWeekAnchor() time.Weekday {
	switch c.Week.Anchor {
	case "sunday":
		return time.Sunday
	case "monday":
		return time.Monday
	case "tuesday":
		return time.Tuesday
	case "wednesday":
		return time.Wednesday
	case "thursday":
		return time.Thursday
	case "friday":
		return time.Friday
	case "saturday":
		return time.Saturday
	default:
		return time.Monday
	}
}

// LoadFromFile loads configuration overrides from a YAML file
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// LoadFromEnvironment loads configuration from environment variables.
// Environment values take precedence over file values.
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TSM_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TSM_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TSM_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = Duration(d)
		}
	}
	if timeout := os.Getenv("TSM_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = Duration(d)
		}
	}
	if perms := os.Getenv("TSM_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Week configuration
	if anchor := os.Getenv("TSM_WEEK_ANCHOR"); anchor != "" {
		c.Week.Anchor = anchor
	}

	// Validation configuration
	if minLen := os.Getenv("TSM_VALIDATION_JOB_NAME_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil && n > 0 {
			c.Validation.JobNameMinLength = n
		}
	}
	if maxLen := os.Getenv("TSM_VALIDATION_JOB_NAME_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil && n > 0 {
			c.Validation.JobNameMaxLength = n
		}
	}

	// Application configuration
	if timeout := os.Getenv("TSM_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = Duration(d)
		}
	}
	if verbose := os.Getenv("TSM_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Load builds the effective configuration: defaults, then the optional YAML
// file named by TSM_CONFIG_FILE, then environment variables.
func Load() (*Config, error) {
	cfg := NewConfig()

	if path := os.Getenv("TSM_CONFIG_FILE"); path != "" {
		if err := cfg.LoadFromFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	return cfg, nil
}
