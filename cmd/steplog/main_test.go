package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/steplog/internal/config"
	"github.com/verte-zerg/steplog/internal/model"
	"github.com/verte-zerg/steplog/internal/stats"
)

func TestValidateConfig(t *testing.T) {
	valid := model.Config{MaxSessions: 5, ReportPath: "walk_report.txt", HighEnergy: 100}
	if err := validateConfig(valid); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	cases := []model.Config{
		{MaxSessions: 0, ReportPath: "r.txt"},
		{MaxSessions: 5, ReportPath: "  "},
		{MaxSessions: 5, ReportPath: "r.txt", HighEnergy: -1},
	}
	for _, cfg := range cases {
		if err := validateConfig(cfg); err == nil {
			t.Fatalf("expected error for %+v", cfg)
		}
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	var cfg config.FileConfig
	if _, err := toml.Decode(defaultConfigTemplate(), &cfg); err != nil {
		t.Fatalf("template does not decode: %v", err)
	}
}

func TestEnsureConfigFileKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steplog", "config.toml")
	if err := ensureConfigFile(path); err != nil {
		t.Fatalf("create config: %v", err)
	}
	if err := os.WriteFile(path, []byte("[tracker]\nmax-sessions = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := ensureConfigFile(path); err != nil {
		t.Fatalf("ensure config: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "max-sessions = 3") {
		t.Fatalf("expected existing config to be preserved")
	}
}

func TestPlainRunWithFlags(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	reportPath := filepath.Join(t.TempDir(), "out.txt")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader("1\nwalk the dog\n1800\n30\n2\n3\n4\n"))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--plain", "--report", reportPath, "--max-sessions", "2"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "Report saved to file.") {
		t.Fatalf("expected save notice:\n%s", out.String())
	}

	sessions, err := stats.LoadReport(reportPath)
	if err != nil {
		t.Fatalf("load report: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Steps != 1800 || sessions[0].Note != "walk the dog" {
		t.Fatalf("unexpected sessions: %+v", sessions)
	}

	var shown bytes.Buffer
	if err := printReport(&shown, io.Discard, sessions, 0); err != nil {
		t.Fatalf("print report: %v", err)
	}
	if !strings.Contains(shown.String(), "Avg steps/min: 60.00") {
		t.Fatalf("unexpected show output:\n%s", shown.String())
	}
}

func TestPrintReportSkipsInvalidSessions(t *testing.T) {
	sessions := []model.WalkSession{
		{Steps: 600, Minutes: 30, Note: "ok"},
		{Steps: 100, Minutes: 0, Note: "broken"},
	}
	var out, errOut bytes.Buffer
	if err := printReport(&out, &errOut, sessions, 0); err != nil {
		t.Fatalf("print report: %v", err)
	}
	if !strings.Contains(errOut.String(), "skipping invalid session: 100 steps in 0 minutes") {
		t.Fatalf("expected skip notice on error writer, got %q", errOut.String())
	}
	if strings.Contains(out.String(), "broken") {
		t.Fatalf("expected invalid session to be left out:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Total steps: 600") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}
