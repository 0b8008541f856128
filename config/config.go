// Package config handles command-line argument parsing and validation.
package config

import (
	"fmt"
	"time"

	"retime/utils"
	"retime/version"

	"github.com/alexflint/go-arg"
)

const dateFormat = "2006-01-02"

// Date is a date-only argument parsed in local time.
type Date struct {
	time.Time
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg.
func (d *Date) UnmarshalText(text []byte) error {
	t, err := time.ParseInLocation(dateFormat, string(text), time.Local)
	if err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", string(text))
	}
	d.Time = t
	return nil
}

// Config holds the application configuration.
type Config struct {
	InputDir  string `arg:"positional,required" help:"directory to process (must exist and be readable and writable)"`
	AddMonths int    `arg:"positional,required" help:"months to add to each selected file's timestamp (0-1000)"`
	AddDays   int    `arg:"positional,required" help:"days to add to each selected file's timestamp (0-1000)"`
	Cutoff    Date   `arg:"positional,required" help:"only files last modified before this date are shifted (YYYY-MM-DD)"`

	Apply          bool   `arg:"--apply" help:"write the new timestamps; without it the run is a dry run that only prints them"`
	LogLevel       string `arg:"--log-level" default:"info" help:"debug, info, warn, error, fatal, or panic"`
	MaxIOPerSecond int    `arg:"--max-io-per-second" help:"maximum filesystem operations per second (0 = unlimited)"`
	NoProgress     bool   `arg:"--no-progress" help:"disable the progress spinner"`
}

// Description returns the program description for go-arg.
func (Config) Description() string {
	return "retime shifts old files' timestamps forward by a calendar offset of months and days"
}

// Version returns the version string for go-arg.
func (Config) Version() string {
	return "retime " + version.Version
}

// LoadConfig parses and validates the command line. Validation failures are
// detected here, before any traversal, and abort the run.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	arg.MustParse(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.AddMonths < 0 || cfg.AddMonths > 1000 {
		return fmt.Errorf("months to add must be between 0 and 1000, got %d", cfg.AddMonths)
	}
	if cfg.AddDays < 0 || cfg.AddDays > 1000 {
		return fmt.Errorf("days to add must be between 0 and 1000, got %d", cfg.AddDays)
	}
	if cfg.Cutoff.IsZero() {
		return fmt.Errorf("cutoff date is required")
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "info" && cfg.LogLevel != "warn" &&
		cfg.LogLevel != "error" && cfg.LogLevel != "fatal" && cfg.LogLevel != "panic" {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}
	if cfg.MaxIOPerSecond < 0 {
		return fmt.Errorf("max-io-per-second must be zero or positive")
	}
	resolved, err := utils.ResolveDir(cfg.InputDir)
	if err != nil {
		return err
	}
	if err := utils.CheckAccess(resolved); err != nil {
		return fmt.Errorf("%s must be readable and writable: %w", resolved, err)
	}
	cfg.InputDir = resolved
	return nil
}
