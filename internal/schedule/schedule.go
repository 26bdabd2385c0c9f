// Package schedule maps weekdays to the kind of workout planned for them.
package schedule

import (
	"time"

	"github.com/balkashynov/blueprint/internal/models"
)

// Mode is what a day is for
type Mode string

const (
	ModeStrength Mode = "strength"
	ModeCardio   Mode = "cardio"
	ModeRest     Mode = "rest"
)

// ForDay returns the mode of d: Monday, Wednesday and Friday are strength,
// Tuesday, Thursday and Saturday cardio, Sunday rest.
func ForDay(d time.Weekday) Mode {
	switch d {
	case time.Monday, time.Wednesday, time.Friday:
		return ModeStrength
	case time.Tuesday, time.Thursday, time.Saturday:
		return ModeCardio
	default:
		return ModeRest
	}
}

// Today returns the mode for the weekday of t
func Today(t time.Time) Mode {
	return ForDay(t.Weekday())
}

// SessionKind returns the kind of session saved on a day of this mode. Rest
// days have none.
func (m Mode) SessionKind() (models.SessionKind, bool) {
	switch m {
	case ModeStrength:
		return models.SessionStrength, true
	case ModeCardio:
		return models.SessionCardio, true
	default:
		return "", false
	}
}

// Label is the heading shown for the day
func (m Mode) Label() string {
	switch m {
	case ModeStrength:
		return "Strength Day"
	case ModeCardio:
		return "Cardio Day"
	default:
		return "Rest Day"
	}
}
