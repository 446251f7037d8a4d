package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Name != "scorepipe" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Environment != "development" || !cfg.Debug {
		t.Errorf("environment defaults wrong: %+v", cfg)
	}
	if cfg.Server.Addr != ":8080" || cfg.Server.Mode != "debug" {
		t.Errorf("server defaults wrong: %+v", cfg.Server)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout = %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Gen.Count != 1000 || cfg.Gen.ValidRatio != 0.7 {
		t.Errorf("gen defaults wrong: %+v", cfg.Gen)
	}
	if cfg.Metrics.Enabled {
		t.Error("metrics should default off")
	}
}

func TestApplyDefaults_ProductionMode(t *testing.T) {
	cfg := Config{Environment: "production"}
	cfg.ApplyDefaults()
	if cfg.Debug {
		t.Error("production must not enable debug")
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("server mode = %q, want release", cfg.Server.Mode)
	}
}

func TestValidate(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	bad := cfg
	bad.Environment = "qa"
	if err := bad.Validate(); err == nil {
		t.Error("expected error for unknown environment")
	}

	bad = cfg
	bad.Gen.ValidRatio = 1.5
	if err := bad.Validate(); err == nil {
		t.Error("expected error for valid_ratio > 1")
	}

	bad = cfg
	bad.Logging.Level = "loud"
	if err := bad.Validate(); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
name: scorepipe
environment: staging
server:
  addr: ":9090"
gen:
  count: 25
  seed: 42
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Environment != "staging" {
		t.Errorf("environment = %q", cfg.Environment)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("server addr = %q", cfg.Server.Addr)
	}
	if cfg.Gen.Count != 25 || cfg.Gen.Seed != 42 {
		t.Errorf("gen = %+v", cfg.Gen)
	}
	// Unset sections still get defaults.
	if cfg.Logging.Level != "info" {
		t.Errorf("logging level = %q", cfg.Logging.Level)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SCOREPIPE_SERVER_ADDR", ":7070")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("server addr = %q, want env override :7070", cfg.Server.Addr)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "scorepipe" {
		t.Errorf("Name = %q", cfg.Name)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(":\n broken ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config file")
	}
}

func TestLoad_EnvOverrideLogging(t *testing.T) {
	t.Setenv("SCOREPIPE_LOGGING_CALLER", "true")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Logging.Caller {
		t.Error("logging caller env override not applied")
	}
}
