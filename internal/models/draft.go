package models

import (
	"encoding/json"
	"strings"
)

// Substitution marks whether the user is doing the catalog exercise itself or
// an ad-hoc replacement for it. The zero value is Standard.
type Substitution struct {
	name        string
	substituted bool
}

// Standard returns the "no substitution" variant
func Standard() Substitution {
	return Substitution{}
}

// Substituted returns the replacement variant. A blank name yields Standard.
func Substituted(name string) Substitution {
	name = strings.TrimSpace(name)
	if name == "" {
		return Standard()
	}
	return Substitution{name: name, substituted: true}
}

// Name returns the replacement name and true, or "" and false for Standard
func (s Substitution) Name() (string, bool) {
	return s.name, s.substituted
}

// IsSubstituted reports whether a replacement is set
func (s Substitution) IsSubstituted() bool {
	return s.substituted
}

// MarshalJSON writes the replacement name, or null for Standard
func (s Substitution) MarshalJSON() ([]byte, error) {
	if !s.substituted {
		return []byte("null"), nil
	}
	return json.Marshal(s.name)
}

// UnmarshalJSON reads a name or null
func (s *Substitution) UnmarshalJSON(data []byte) error {
	var name *string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	if name == nil {
		*s = Standard()
		return nil
	}
	*s = Substituted(*name)
	return nil
}

// DraftEntry is the unsaved input for one strength exercise
type DraftEntry struct {
	Completed    bool         `json:"completed"`
	Weight       string       `json:"weight"`
	Reps         string       `json:"reps"`
	Substitution Substitution `json:"substituteName"`
}

// IsZero reports whether the entry carries no input
func (e DraftEntry) IsZero() bool {
	return !e.Completed && e.Weight == "" && e.Reps == "" && !e.Substitution.IsSubstituted()
}

// CardioEntry is the unsaved completion flag of one cardio checklist item
type CardioEntry struct {
	Completed bool `json:"completed"`
}

// DraftState is EMPTY until any input is entered, then DIRTY until saved or reset
type DraftState string

const (
	DraftEmpty DraftState = "empty"
	DraftDirty DraftState = "dirty"
)

// Draft is the in-progress, not yet saved state of today's session
type Draft struct {
	Strength        map[string]DraftEntry  `json:"strength"`
	Cardio          map[string]CardioEntry `json:"cardio"`
	Zone2Minutes    float64                `json:"zone2Minutes"`
	VigorousMinutes float64                `json:"vigorousMinutes"`
}

// NewDraft returns an empty draft with one entry per catalog id
func NewDraft(strengthIDs, cardioIDs []string) Draft {
	d := Draft{
		Strength: make(map[string]DraftEntry, len(strengthIDs)),
		Cardio:   make(map[string]CardioEntry, len(cardioIDs)),
	}
	for _, id := range strengthIDs {
		d.Strength[id] = DraftEntry{}
	}
	for _, id := range cardioIDs {
		d.Cardio[id] = CardioEntry{}
	}
	return d
}

// State reports EMPTY or DIRTY
func (d Draft) State() DraftState {
	if d.Zone2Minutes != 0 || d.VigorousMinutes != 0 {
		return DraftDirty
	}
	for _, e := range d.Strength {
		if !e.IsZero() {
			return DraftDirty
		}
	}
	for _, e := range d.Cardio {
		if e.Completed {
			return DraftDirty
		}
	}
	return DraftEmpty
}

// Clone deep-copies the draft
func (d Draft) Clone() Draft {
	c := d
	c.Strength = make(map[string]DraftEntry, len(d.Strength))
	for id, e := range d.Strength {
		c.Strength[id] = e
	}
	c.Cardio = make(map[string]CardioEntry, len(d.Cardio))
	for id, e := range d.Cardio {
		c.Cardio[id] = e
	}
	return c
}

// DraftCheckpoint is the persisted draft, tagged with the calendar date it was written on
type DraftCheckpoint struct {
	ID    uint   `gorm:"primarykey" json:"-"`
	Date  string `gorm:"size:10;not null" json:"date"`
	Draft Draft  `gorm:"serializer:json" json:"draft"`
}

// CheckpointRowID is the primary key of the single checkpoint row
const CheckpointRowID = 1
