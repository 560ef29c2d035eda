// Package tracker holds the bounded in-memory log of walking sessions.
package tracker

import "github.com/verte-zerg/steplog/internal/model"

// DefaultMaxSessions is the capacity used when no configuration overrides it.
const DefaultMaxSessions = 5

// DefaultHighEnergy is the steps-per-minute rate at which a walk counts as high-energy.
const DefaultHighEnergy = 100.0

// Log is an ordered, capacity-bounded collection of walk sessions.
type Log struct {
	max      int
	sessions []model.WalkSession
}

// New returns an empty log that holds at most maxSessions sessions.
func New(maxSessions int) *Log {
	if maxSessions < 0 {
		maxSessions = 0
	}
	return &Log{
		max:      maxSessions,
		sessions: make([]model.WalkSession, 0, maxSessions),
	}
}

// Add appends the session. It returns false and leaves the log untouched
// when the log is full or the session has no steps or no duration.
func (l *Log) Add(s model.WalkSession) bool {
	if l.Full() || !s.Valid() {
		return false
	}
	s.Style = s.Style.OrDefault()
	l.sessions = append(l.sessions, s)
	return true
}

// Count returns the number of stored sessions.
func (l *Log) Count() int {
	return len(l.sessions)
}

// Capacity returns the maximum number of sessions.
func (l *Log) Capacity() int {
	return l.max
}

// Full reports whether further adds will be rejected.
func (l *Log) Full() bool {
	return len(l.sessions) >= l.max
}

// Sessions returns a copy of the stored sessions in insertion order.
func (l *Log) Sessions() []model.WalkSession {
	out := make([]model.WalkSession, len(l.sessions))
	copy(out, l.sessions)
	return out
}

// TotalSteps sums steps over all sessions.
func (l *Log) TotalSteps() int {
	total := 0
	for _, s := range l.sessions {
		total += s.Steps
	}
	return total
}

// AverageStepsPerMinute is the mean of each session's own rate, not total
// steps over total minutes.
func (l *Log) AverageStepsPerMinute() float64 {
	if len(l.sessions) == 0 {
		return 0
	}
	var sum float64
	for _, s := range l.sessions {
		sum += StepsPerMinute(s)
	}
	return sum / float64(len(l.sessions))
}

// StepsPerMinute returns steps divided by minutes, or 0 when minutes <= 0.
func StepsPerMinute(s model.WalkSession) float64 {
	if s.Minutes <= 0 {
		return 0
	}
	return float64(s.Steps) / s.Minutes
}

// IsHighEnergy reports whether the session's rate reaches threshold.
func IsHighEnergy(s model.WalkSession, threshold float64) bool {
	if threshold <= 0 {
		return false
	}
	return StepsPerMinute(s) >= threshold
}
