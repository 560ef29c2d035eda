package stats

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/verte-zerg/steplog/internal/model"
)

// DefaultReportPath is the file written by the save action.
const DefaultReportPath = "walk_report.txt"

// maxReportLine bounds a single report row when reading it back.
const maxReportLine = 16 * 1024 * 1024

// SaveReport writes the session table to path, replacing any existing file.
func SaveReport(path string, sessions []model.WalkSession) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create report dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(dir, "walk-report-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp report: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := tmpFile.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to set report permissions: %w", err)
	}
	writer := bufio.NewWriter(tmpFile)
	if err := RenderSessions(writer, sessions); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close report: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// LoadReport reads sessions back from a report written by SaveReport.
// Styles are not part of the report and come back as the default.
func LoadReport(path string) ([]model.WalkSession, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only report.
			_ = cerr
		}
	}()

	var sessions []model.WalkSession
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxReportLine)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if lineNo == 1 && strings.HasPrefix(line, reportHeaders[0]) {
			continue
		}
		session, err := parseReportLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		sessions = append(sessions, session)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

func parseReportLine(line string) (model.WalkSession, error) {
	stepsField, rest := cutField(line)
	minutesField, rest := cutField(rest)
	rateField, rest := cutField(rest)
	if rateField == "" {
		return model.WalkSession{}, fmt.Errorf("expected steps, minutes and rate columns")
	}
	steps, err := strconv.Atoi(stepsField)
	if err != nil {
		return model.WalkSession{}, fmt.Errorf("invalid steps %q", stepsField)
	}
	minutes, err := strconv.ParseFloat(minutesField, 64)
	if err != nil {
		return model.WalkSession{}, fmt.Errorf("invalid minutes %q", minutesField)
	}
	if _, err := strconv.ParseFloat(rateField, 64); err != nil {
		return model.WalkSession{}, fmt.Errorf("invalid rate %q", rateField)
	}
	return model.WalkSession{
		Steps:   steps,
		Minutes: minutes,
		Note:    rest,
		Style:   model.StyleVampire,
	}, nil
}

func cutField(s string) (field, rest string) {
	s = strings.TrimLeft(s, " ")
	field, rest, _ = strings.Cut(s, " ")
	return field, strings.TrimLeft(rest, " ")
}
