// Package tui provides the Bubble Tea step tracker interface.
package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/steplog/internal/model"
	"github.com/verte-zerg/steplog/internal/stats"
	"github.com/verte-zerg/steplog/internal/tracker"
)

type screen int

const (
	screenMenu screen = iota
	screenForm
	screenView
)

const (
	fieldNote = iota
	fieldSteps
	fieldMinutes
	fieldStyle
)

var menuItems = []string{
	"Add Walking Session",
	"View Sessions",
	"Save Report",
	"Exit",
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C89A3A")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	activeItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	inactiveItemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// Model implements the Bubble Tea tracker UI.
type Model struct {
	cfg model.Config
	log *tracker.Log

	screen    screen
	menuIndex int

	inputs    []textinput.Model
	focus     int
	formError string

	sessions  table.Model
	status    string
	statusErr bool

	width  int
	height int
}

// NewModel constructs a tracker TUI model around an existing log.
func NewModel(cfg model.Config, log *tracker.Log) *Model {
	m := &Model{
		cfg: cfg,
		log: log,
	}
	m.initInputs()
	m.sessions = buildSessionTable(nil, 0, 1)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenForm:
			return m.updateForm(msg)
		case screenView:
			return m.updateView(msg)
		default:
			return m.updateMenu(msg)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	parts := []string{titleStyle.Render("Step Tracker and Idea Log")}
	switch m.screen {
	case screenForm:
		parts = append(parts, m.renderForm(), helpStyle.Render("tab/shift+tab: next field  enter: save  esc: cancel"))
	case screenView:
		parts = append(parts, m.renderSessions(), helpStyle.Render("up/down: select  esc: back  ctrl+c: quit"))
	default:
		parts = append(parts, m.renderMenu(), helpStyle.Render("up/down or 1-4: choose  enter: select  q: quit"))
	}
	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		parts = append(parts, style.Render(m.status))
	}
	return strings.Join(parts, "\n\n")
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		m.menuIndex = (m.menuIndex + len(menuItems) - 1) % len(menuItems)
		return m, nil
	case "down", "j":
		m.menuIndex = (m.menuIndex + 1) % len(menuItems)
		return m, nil
	case "enter":
		return m.selectItem(m.menuIndex)
	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		m.menuIndex = idx
		return m.selectItem(idx)
	}
	return m, nil
}

func (m *Model) selectItem(idx int) (tea.Model, tea.Cmd) {
	m.status = ""
	m.statusErr = false
	switch idx {
	case 0:
		if m.log.Full() {
			m.setStatus("Session limit reached.", false)
			return m, nil
		}
		return m, m.startForm()
	case 1:
		m.refreshSessions()
		m.screen = screenView
		m.sessions.Focus()
		return m, nil
	case 2:
		if err := stats.SaveReport(m.cfg.ReportPath, m.log.Sessions()); err != nil {
			m.setStatus(fmt.Sprintf("failed to save report: %v", err), true)
			return m, nil
		}
		m.setStatus("Report saved to file.", false)
		return m, nil
	default:
		return m, tea.Quit
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) initInputs() {
	m.inputs = []textinput.Model{
		newInput("Idea or reminder: ", ""),
		newInput("Steps walked: ", "e.g. 2500"),
		newInput("Minutes walked: ", "e.g. 30"),
		newInput("Style (1=Vampire, 2=Hunter, 3=Wizard): ", "1"),
	}
}

func newInput(prompt, placeholder string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = placeholder
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) startForm() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.formError = ""
	m.screen = screenForm
	return m.setFocus(fieldNote)
}

func (m *Model) setFocus(idx int) tea.Cmd {
	count := len(m.inputs)
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.focus = idx
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focus {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.screen = screenMenu
		m.formError = ""
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		return m, m.setFocus(m.focus + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.setFocus(m.focus - 1)
	case tea.KeyEnter:
		session, field, err := m.parseForm()
		if err != nil {
			m.formError = err.Error()
			return m, m.setFocus(field)
		}
		m.screen = screenMenu
		m.formError = ""
		if !m.log.Add(session) {
			m.setStatus("Session limit reached.", false)
			return m, nil
		}
		status := session.Style.Flavor()
		if tracker.IsHighEnergy(session, m.cfg.HighEnergy) {
			status += fmt.Sprintf("\nHigh-energy walk! %.2f steps/min", tracker.StepsPerMinute(session))
		}
		m.setStatus(status, false)
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// parseForm validates the form. On error it also returns the offending field.
func (m *Model) parseForm() (model.WalkSession, int, error) {
	var session model.WalkSession
	session.Note = m.inputs[fieldNote].Value()

	steps, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldSteps].Value()))
	if err != nil || steps <= 0 {
		return model.WalkSession{}, fieldSteps, fmt.Errorf("steps must be a whole number greater than 0")
	}
	session.Steps = steps

	minutes, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldMinutes].Value()), 64)
	if err != nil || !(minutes > 0) || math.IsInf(minutes, 0) {
		return model.WalkSession{}, fieldMinutes, fmt.Errorf("minutes must be a number greater than 0")
	}
	session.Minutes = minutes

	session.Style = model.StyleVampire
	if raw := strings.TrimSpace(m.inputs[fieldStyle].Value()); raw != "" {
		n, err := strconv.Atoi(raw)
		style, ok := model.ParseStyle(n)
		if err != nil || !ok {
			return model.WalkSession{}, fieldStyle, fmt.Errorf("style must be 1, 2 or 3")
		}
		session.Style = style
	}
	return session, 0, nil
}

func (m *Model) renderForm() string {
	lines := []string{"New walking session"}
	for _, input := range m.inputs {
		lines = append(lines, input.View())
	}
	if m.formError != "" {
		lines = append(lines, errorStyle.Render(m.formError))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderMenu() string {
	lines := make([]string, 0, len(menuItems)+1)
	for i, item := range menuItems {
		label := fmt.Sprintf("%d. %s", i+1, item)
		if i == m.menuIndex {
			lines = append(lines, activeItemStyle.Render("> "+label))
		} else {
			lines = append(lines, inactiveItemStyle.Render("  "+label))
		}
	}
	lines = append(lines, helpStyle.Render(fmt.Sprintf("Sessions: %d/%d", m.log.Count(), m.log.Capacity())))
	return strings.Join(lines, "\n")
}
