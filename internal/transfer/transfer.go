// Package transfer encodes and decodes the user-facing backup file.
package transfer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/balkashynov/blueprint/internal/errors"
	"github.com/balkashynov/blueprint/internal/models"
)

// Top-level keys of a backup file
const (
	KeyHistory         = "history"
	KeyWeeklyStats     = "weeklyStats"
	KeyExercises       = "exercises"
	KeyCardioChecklist = "cardioChecklist"
	KeyExportDate      = "exportDate"
)

var allowedKeys = map[string]bool{
	KeyHistory:         true,
	KeyWeeklyStats:     true,
	KeyExercises:       true,
	KeyCardioChecklist: true,
	KeyExportDate:      true,
}

// Bundle is the whole exported state. Exercises and CardioChecklist are the
// effective catalogs, names and prescriptions as the user sees them.
type Bundle struct {
	History         []models.SessionRecord       `json:"history"`
	WeeklyStats     models.WeeklyLedger          `json:"weeklyStats"`
	Exercises       []models.ExerciseDefinition  `json:"exercises"`
	CardioChecklist []models.CardioChecklistItem `json:"cardioChecklist"`
	ExportDate      time.Time                    `json:"exportDate"`
}

// FileName returns the default backup file name for the day of t
func FileName(t time.Time) string {
	return fmt.Sprintf("blueprint-backup-%s.json", t.Format("2006-01-02"))
}

// Encode writes b as indented JSON
func Encode(w io.Writer, b Bundle) error {
	if b.History == nil {
		b.History = []models.SessionRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	return nil
}

// Decode parses a backup file. Only the shape is checked: a JSON object with
// no keys besides the five known ones, an array under "history" and an object
// under "weeklyStats". Any mismatch is ErrImport.
//
// Records without a type are strength sessions written before cardio
// tracking existed.
func Decode(raw []byte) (*Bundle, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil || top == nil {
		return nil, fmt.Errorf("backup is not a JSON object: %w", errors.ErrImport)
	}

	var unknown []string
	for key := range top {
		if !allowedKeys[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unexpected keys %v: %w", unknown, errors.ErrImport)
	}

	if !isJSON(top[KeyHistory], '[') {
		return nil, fmt.Errorf("%q must be an array: %w", KeyHistory, errors.ErrImport)
	}
	if !isJSON(top[KeyWeeklyStats], '{') {
		return nil, fmt.Errorf("%q must be an object: %w", KeyWeeklyStats, errors.ErrImport)
	}

	var b Bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrImport)
	}

	for i := range b.History {
		rec := &b.History[i]
		if rec.Kind == "" {
			rec.Kind = models.SessionStrength
		}
		if !rec.Kind.IsValid() {
			return nil, fmt.Errorf("history[%d]: unknown session type %q: %w", i, rec.Kind, errors.ErrImport)
		}
	}
	return &b, nil
}

// isJSON reports whether msg is present and starts with the given delimiter
func isJSON(msg json.RawMessage, delim byte) bool {
	trimmed := bytes.TrimSpace(msg)
	return len(trimmed) > 0 && trimmed[0] == delim
}
