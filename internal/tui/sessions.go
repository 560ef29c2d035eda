package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/steplog/internal/model"
	"github.com/verte-zerg/steplog/internal/stats"
)

const minTableHeight = 3

func (m *Model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "backspace":
		m.sessions.Blur()
		m.screen = screenMenu
		return m, nil
	}
	var cmd tea.Cmd
	m.sessions, cmd = m.sessions.Update(msg)
	return m, cmd
}

func (m *Model) refreshSessions() {
	m.sessions = buildSessionTable(m.log.Sessions(), m.width, m.tableHeight())
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.sessions.SetWidth(m.width)
	m.sessions.SetHeight(m.tableHeight())
	for i := range m.inputs {
		promptWidth := lipgloss.Width(m.inputs[i].Prompt)
		m.inputs[i].Width = maxInt(10, m.width-promptWidth-2)
	}
}

// tableHeight leaves room for the title, summary, detail and help lines.
func (m *Model) tableHeight() int {
	if m.height <= 0 {
		return m.log.Capacity() + 1
	}
	return maxInt(minTableHeight, m.height-16)
}

func (m *Model) renderSessions() string {
	sessions := m.log.Sessions()
	if len(sessions) == 0 {
		return "No sessions recorded."
	}
	var b strings.Builder
	if err := stats.RenderSummary(&b, m.log, m.cfg.HighEnergy); err != nil {
		return fmt.Sprintf("Failed to render summary: %v", err)
	}
	parts := []string{m.sessions.View(), strings.Trim(b.String(), "\n")}
	if idx := m.sessions.Cursor(); idx >= 0 && idx < len(sessions) {
		detail := sessions[idx].Activity().Describe()
		parts = append(parts, helpStyle.Render(strings.Join(detail, "  ·  ")))
	}
	return strings.Join(parts, "\n\n")
}

func buildSessionTable(sessions []model.WalkSession, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Steps", Width: 10},
		{Title: "Minutes", Width: 10},
		{Title: "Steps/Min", Width: 15},
		{Title: "Style", Width: 8},
		{Title: "Idea", Width: 30},
	}
	cells := stats.SessionRows(sessions)
	rows := make([]table.Row, 0, len(cells))
	for i, c := range cells {
		rows = append(rows, table.Row{c[0], c[1], c[2], sessions[i].Style.String(), c[3]})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height)),
	)
	if width > 0 {
		t.SetWidth(width)
	}
	t.SetStyles(sessionTableStyles())
	return t
}

func sessionTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
