package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected missing config to be ignored, got %v", err)
	}
	if cfg.Tracker.MaxSessions != nil || cfg.Report.Path != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[tracker]
max-sessions = 8
high-energy = 110.5

[report]
path = "out/report.txt"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Tracker.MaxSessions == nil || *cfg.Tracker.MaxSessions != 8 {
		t.Fatalf("unexpected max-sessions: %v", cfg.Tracker.MaxSessions)
	}
	if cfg.Tracker.HighEnergy == nil || *cfg.Tracker.HighEnergy != 110.5 {
		t.Fatalf("unexpected high-energy: %v", cfg.Tracker.HighEnergy)
	}
	if cfg.Tracker.Plain != nil {
		t.Fatalf("expected plain to stay unset")
	}
	if cfg.Report.Path == nil || *cfg.Report.Path != "out/report.txt" {
		t.Fatalf("unexpected report path: %v", cfg.Report.Path)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[tracker]\nmax-session = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestDefaultConfigPathUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/xdg", "steplog", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
}
