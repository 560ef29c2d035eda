package model

import "fmt"

// ActivityKind tags the shape of an Activity.
type ActivityKind int

// Activity kinds.
const (
	ActivityWalk ActivityKind = iota
	ActivityRun
)

func (k ActivityKind) String() string {
	if k == ActivityRun {
		return "Run"
	}
	return "Walk"
}

// Activity is a named timed activity. Treadmill only applies to runs.
type Activity struct {
	Kind      ActivityKind
	Name      string
	Minutes   int
	Style     Style
	Steps     int
	Treadmill bool
}

// StepsPerMinute returns steps per whole minute, or 0 without a duration.
func (a Activity) StepsPerMinute() float64 {
	if a.Minutes <= 0 {
		return 0
	}
	return float64(a.Steps) / float64(a.Minutes)
}

// Describe renders the activity as printable lines.
func (a Activity) Describe() []string {
	lines := []string{
		fmt.Sprintf("Activity: %s | Duration: %d minutes", a.Name, a.Minutes),
		fmt.Sprintf("Type: %s", a.Kind),
		fmt.Sprintf("Steps: %d | Steps/min: %.2f", a.Steps, a.StepsPerMinute()),
	}
	if a.Kind == ActivityRun {
		treadmill := "No"
		if a.Treadmill {
			treadmill = "Yes"
		}
		lines = append(lines, "Treadmill: "+treadmill)
	}
	return lines
}
