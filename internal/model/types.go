// Package model defines shared data structures.
package model

import "math"

// Config defines tracker settings.
type Config struct {
	MaxSessions int
	ReportPath  string
	HighEnergy  float64
	Plain       bool
}

// Style is the cosmetic character style attached to a session.
type Style int

// Character styles, numbered the way the menu prompts for them.
const (
	StyleVampire Style = iota + 1
	StyleHunter
	StyleWizard
)

// ParseStyle maps a menu number to a style. Only 1-3 are accepted.
func ParseStyle(n int) (Style, bool) {
	s := Style(n)
	switch s {
	case StyleVampire, StyleHunter, StyleWizard:
		return s, true
	default:
		return 0, false
	}
}

// OrDefault returns the style, falling back to Vampire for unknown values.
func (s Style) OrDefault() Style {
	if _, ok := ParseStyle(int(s)); !ok {
		return StyleVampire
	}
	return s
}

func (s Style) String() string {
	switch s.OrDefault() {
	case StyleHunter:
		return "Hunter"
	case StyleWizard:
		return "Wizard"
	default:
		return "Vampire"
	}
}

// Flavor returns the line printed after a session of this style is logged.
func (s Style) Flavor() string {
	switch s.OrDefault() {
	case StyleHunter:
		return "The hunter tracks every step. Nothing escapes the trail."
	case StyleWizard:
		return "Arcane strides! The wizard's walk bends the map."
	default:
		return "The vampire stalks the night, silent and tireless."
	}
}

// WalkSession captures one recorded walk.
type WalkSession struct {
	Steps   int
	Minutes float64
	Note    string
	Style   Style
}

// Valid reports whether the session may be stored in a log.
func (s WalkSession) Valid() bool {
	return s.Steps > 0 && s.Minutes > 0
}

// Activity converts the session to a walk activity. Minutes are truncated.
func (s WalkSession) Activity() Activity {
	return Activity{
		Kind:    ActivityWalk,
		Name:    s.Note,
		Minutes: int(math.Floor(s.Minutes)),
		Style:   s.Style.OrDefault(),
		Steps:   s.Steps,
	}
}
