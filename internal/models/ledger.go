package models

import "time"

// WeeklyLedger accumulates cardio minutes since WindowStart, the instant of
// the most recent weekly reset. There is only ever one row.
type WeeklyLedger struct {
	ID              uint      `gorm:"primarykey" json:"-"`
	Zone2Minutes    float64   `gorm:"not null;default:0" json:"zone2Minutes"`
	VigorousMinutes float64   `gorm:"not null;default:0" json:"vigorousMinutes"`
	WindowStart     time.Time `gorm:"not null" json:"weekStart"`
}

// LedgerRowID is the primary key of the single ledger row
const LedgerRowID = 1

// Add folds a cardio session's minutes into the ledger
func (l WeeklyLedger) Add(stats CardioStats) WeeklyLedger {
	l.Zone2Minutes += stats.Zone2Minutes
	l.VigorousMinutes += stats.VigorousMinutes
	return l
}

// WeeklyProgress reports the ledger against the weekly targets
type WeeklyProgress struct {
	Zone2Minutes    float64   `json:"zone2Minutes"`
	VigorousMinutes float64   `json:"vigorousMinutes"`
	Zone2Target     float64   `json:"zone2Target"`
	VigorousTarget  float64   `json:"vigorousTarget"`
	Zone2Percent    float64   `json:"zone2Percent"`
	VigorousPercent float64   `json:"vigorousPercent"`
	WindowStart     time.Time `json:"weekStart"`
}
