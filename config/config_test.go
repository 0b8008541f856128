package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		InputDir:  t.TempDir(),
		AddMonths: 3,
		AddDays:   10,
		Cutoff:    Date{time.Date(2021, time.January, 1, 0, 0, 0, 0, time.Local)},
		LogLevel:  "info",
	}
}

func TestDateUnmarshalText(t *testing.T) {
	var d Date
	if err := d.UnmarshalText([]byte("2023-06-01")); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.Local)
	if !d.Equal(want) {
		t.Fatalf("expected %v, got %v", want, d.Time)
	}
	if err := d.UnmarshalText([]byte("01/06/2023")); err == nil {
		t.Fatal("expected error for wrong format")
	}
	if err := d.UnmarshalText([]byte("2023-13-40")); err == nil {
		t.Fatal("expected error for impossible date")
	}
}

func TestValidateOffsetRanges(t *testing.T) {
	cfg := validConfig(t)
	cfg.AddMonths = 1001
	if err := cfg.validate(); err == nil {
		t.Fatal("expected error for months > 1000")
	}
	cfg = validConfig(t)
	cfg.AddMonths = -1
	if err := cfg.validate(); err == nil {
		t.Fatal("expected error for negative months")
	}
	cfg = validConfig(t)
	cfg.AddDays = 1001
	if err := cfg.validate(); err == nil {
		t.Fatal("expected error for days > 1000")
	}
	cfg = validConfig(t)
	cfg.AddMonths, cfg.AddDays = 0, 0
	if err := cfg.validate(); err != nil {
		t.Fatalf("zero offset must be valid: %v", err)
	}
	cfg = validConfig(t)
	cfg.AddMonths, cfg.AddDays = 1000, 1000
	if err := cfg.validate(); err != nil {
		t.Fatalf("max offset must be valid: %v", err)
	}
}

func TestValidateCutoffRequired(t *testing.T) {
	cfg := validConfig(t)
	cfg.Cutoff = Date{}
	if err := cfg.validate(); err == nil {
		t.Fatal("expected error for missing cutoff")
	}
}

func TestValidateLogLevel(t *testing.T) {
	cfg := validConfig(t)
	cfg.LogLevel = "loud"
	if err := cfg.validate(); err == nil {
		t.Fatal("expected error for bad log level")
	}
}

func TestValidateMaxIO(t *testing.T) {
	cfg := validConfig(t)
	cfg.MaxIOPerSecond = -1
	if err := cfg.validate(); err == nil {
		t.Fatal("expected error for negative max-io-per-second")
	}
}

func TestValidateInputDir(t *testing.T) {
	cfg := validConfig(t)
	cfg.InputDir = filepath.Join(t.TempDir(), "missing")
	if err := cfg.validate(); err == nil {
		t.Fatal("expected error for missing directory")
	}

	file, err := os.CreateTemp("", "not-a-dir")
	if err != nil {
		t.Fatalf("temp: %v", err)
	}
	file.Close()
	defer os.Remove(file.Name())
	cfg = validConfig(t)
	cfg.InputDir = file.Name()
	if err := cfg.validate(); err == nil {
		t.Fatal("expected error for file given as directory")
	}
}

func TestValidateResolvesAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	rel, err := filepath.Rel(wd, dir)
	if err != nil {
		t.Skipf("cannot express %s relative to cwd: %v", dir, err)
	}
	cfg := validConfig(t)
	cfg.InputDir = rel
	if err := cfg.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !filepath.IsAbs(cfg.InputDir) {
		t.Fatalf("expected absolute path, got %s", cfg.InputDir)
	}
}

func TestVersionAndDescription(t *testing.T) {
	var cfg Config
	if cfg.Version() == "" || cfg.Description() == "" {
		t.Fatal("expected non-empty version and description")
	}
}
