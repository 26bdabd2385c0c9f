package models

import (
	"time"
)

// SessionKind is the type of a saved workout
type SessionKind string

const (
	SessionStrength SessionKind = "strength"
	SessionCardio   SessionKind = "cardio"
)

// IsValid reports whether k is a known session kind
func (k SessionKind) IsValid() bool {
	return k == SessionStrength || k == SessionCardio
}

// CardioStats holds the minutes of a cardio session by intensity zone
type CardioStats struct {
	Zone2Minutes    float64 `json:"zone2Minutes"`
	VigorousMinutes float64 `json:"vigorousMinutes"`
}

// SessionRecord is one completed workout. Records are immutable once appended;
// Seq is the append order and the only ordering lookups rely on.
type SessionRecord struct {
	Seq uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	ID  string `gorm:"uniqueIndex;not null" json:"id,omitempty"`

	Kind      SessionKind `gorm:"size:16;not null" json:"type"`
	Timestamp time.Time   `gorm:"not null" json:"date"`

	CompletedIDs []string          `gorm:"serializer:json" json:"completed"`
	Weights      map[string]string `gorm:"serializer:json" json:"weights"`
	Reps         map[string]string `gorm:"serializer:json" json:"reps"`
	Substitutes  map[string]string `gorm:"serializer:json" json:"substitutes,omitempty"`
	CardioStats  *CardioStats      `gorm:"serializer:json" json:"cardioStats,omitempty"`
}

// Clone deep-copies the record so callers cannot mutate history
func (r SessionRecord) Clone() SessionRecord {
	c := r
	c.CompletedIDs = append([]string(nil), r.CompletedIDs...)
	c.Weights = cloneStrings(r.Weights)
	c.Reps = cloneStrings(r.Reps)
	c.Substitutes = cloneStrings(r.Substitutes)
	if r.CardioStats != nil {
		stats := *r.CardioStats
		c.CardioStats = &stats
	}
	return c
}

func cloneStrings(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// LastValue is the most recently recorded weight (and reps, if recorded in
// the same session) for an exercise
type LastValue struct {
	Weight string `json:"weight"`
	Reps   string `json:"reps,omitempty"`
}

// String renders the value the way the session template shows it
func (v LastValue) String() string {
	if v.Reps == "" {
		return v.Weight
	}
	return v.Weight + " x " + v.Reps
}
