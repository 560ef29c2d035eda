package stats

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/verte-zerg/steplog/internal/model"
	"github.com/verte-zerg/steplog/internal/tracker"
)

func TestSaveAndLoadReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reports", DefaultReportPath)

	sessions := []model.WalkSession{
		{Steps: 1000, Minutes: 20, Note: "buy  milk later", Style: model.StyleHunter},
		{Steps: 2000, Minutes: 40.5, Note: "", Style: model.StyleWizard},
	}
	if err := SaveReport(path, sessions); err != nil {
		t.Fatalf("save report: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines: %q", len(lines), lines)
	}
	if lines[0] != "Steps     Minutes   Steps/Min      Idea" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "1000      20        50.00          buy  milk later" {
		t.Fatalf("unexpected first row: %q", lines[1])
	}

	loaded, err := LoadReport(path)
	if err != nil {
		t.Fatalf("load report: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(loaded))
	}
	if loaded[0].Steps != 1000 || loaded[0].Minutes != 20 || loaded[0].Note != "buy  milk later" {
		t.Fatalf("unexpected first session: %+v", loaded[0])
	}
	if loaded[1].Minutes != 40.5 || loaded[1].Note != "" {
		t.Fatalf("unexpected second session: %+v", loaded[1])
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp file to be cleaned up, found %d entries", len(entries))
	}
}

func TestSaveReportKeepsNoteVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultReportPath)
	sessions := []model.WalkSession{{Steps: 300, Minutes: 30, Note: "milk  "}}
	if err := SaveReport(path, sessions); err != nil {
		t.Fatalf("save report: %v", err)
	}
	loaded, err := LoadReport(path)
	if err != nil {
		t.Fatalf("load report: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Note != "milk  " {
		t.Fatalf("expected note to keep trailing spaces, got %+v", loaded)
	}
}

func TestSaveReportLongNote(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultReportPath)
	note := strings.Repeat("x", 100*1024)
	if err := SaveReport(path, []model.WalkSession{{Steps: 1, Minutes: 1, Note: note}}); err != nil {
		t.Fatalf("save report: %v", err)
	}
	loaded, err := LoadReport(path)
	if err != nil {
		t.Fatalf("load report: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Note != note {
		t.Fatalf("expected long note to round-trip")
	}
}

func TestSaveReportFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions only")
	}
	path := filepath.Join(t.TempDir(), DefaultReportPath)
	if err := SaveReport(path, nil); err != nil {
		t.Fatalf("save report: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat report: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Fatalf("expected mode 0644, got %o", info.Mode().Perm())
	}
}

func TestLoadReportRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultReportPath)
	if err := os.WriteFile(path, []byte("Steps Minutes\nabc 1 2 note\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadReport(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestRenderSummary(t *testing.T) {
	log := tracker.New(tracker.DefaultMaxSessions)
	var buf bytes.Buffer
	if err := RenderSummary(&buf, log, tracker.DefaultHighEnergy); err != nil {
		t.Fatalf("render empty summary: %v", err)
	}
	if !strings.Contains(buf.String(), "No sessions recorded.") {
		t.Fatalf("expected empty notice, got %q", buf.String())
	}

	log.Add(model.WalkSession{Steps: 600, Minutes: 30})
	log.Add(model.WalkSession{Steps: 1200, Minutes: 60})
	log.Add(model.WalkSession{Steps: 3000, Minutes: 20})
	buf.Reset()
	if err := RenderSummary(&buf, log, tracker.DefaultHighEnergy); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Sessions: 3/5", "Total steps: 4800", "Avg steps/min: 63.33", "High-energy walks: 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q: %s", want, out)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{1, 1, 1}); got != "+++" {
		t.Fatalf("unexpected flat sparkline: %q", got)
	}
	if got := Sparkline([]float64{0, 10}); got != " @" {
		t.Fatalf("unexpected sparkline: %q", got)
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{3, 6, 9, 12}, 2)
	want := []float64{3, 4.5, 7.5, 10.5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %f, got %f", i, want[i], got[i])
		}
	}
}
