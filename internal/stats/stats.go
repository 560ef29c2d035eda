// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/verte-zerg/steplog/internal/model"
	"github.com/verte-zerg/steplog/internal/tracker"
)

const sparkChars = " .:-=+*#%@"

const trendWindow = 3

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Rates returns the steps-per-minute value of each session.
func Rates(sessions []model.WalkSession) []float64 {
	out := make([]float64, len(sessions))
	for i, s := range sessions {
		out[i] = tracker.StepsPerMinute(s)
	}
	return out
}

// FormatMinutes prints minutes in their shortest decimal form.
func FormatMinutes(minutes float64) string {
	return strconv.FormatFloat(minutes, 'f', -1, 64)
}

// SessionRows formats sessions as report cells.
func SessionRows(sessions []model.WalkSession) [][]string {
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			strconv.Itoa(s.Steps),
			FormatMinutes(s.Minutes),
			fmt.Sprintf("%.2f", tracker.StepsPerMinute(s)),
			s.Note,
		})
	}
	return rows
}

// RenderSessions prints the session table with its header.
func RenderSessions(w io.Writer, sessions []model.WalkSession) error {
	for _, line := range formatTable(reportHeaders, SessionRows(sessions), columnWidths) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderSummary prints aggregate figures for the log.
func RenderSummary(w io.Writer, log *tracker.Log, highEnergy float64) error {
	if log.Count() == 0 {
		_, err := fmt.Fprintln(w, "No sessions recorded.")
		return err
	}
	sessions := log.Sessions()
	rates := Rates(sessions)
	energetic := 0
	for _, s := range sessions {
		if tracker.IsHighEnergy(s, highEnergy) {
			energetic++
		}
	}
	lines := []string{
		"",
		"Summary",
		fmt.Sprintf("Sessions: %d/%d", log.Count(), log.Capacity()),
		fmt.Sprintf("Total steps: %d", log.TotalSteps()),
		fmt.Sprintf("Avg steps/min: %.2f", log.AverageStepsPerMinute()),
		fmt.Sprintf("Pace:  [%s]", Sparkline(rates)),
		fmt.Sprintf("Trend: [%s]", Sparkline(MovingAverage(rates, trendWindow))),
		fmt.Sprintf("High-energy walks: %d", energetic),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
