package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/balkashynov/blueprint/internal/errors"
	"github.com/balkashynov/blueprint/internal/models"
)

// History returns a copy of every saved session in append order
func (t *Tracker) History() []models.SessionRecord {
	out := make([]models.SessionRecord, len(t.history))
	for i, rec := range t.history {
		out[i] = rec.Clone()
	}
	return out
}

// LastValue returns the weight (and reps from the same session) most
// recently recorded for id. History is scanned by append index, newest
// first, so equal timestamps cannot reorder results.
func (t *Tracker) LastValue(id string) (models.LastValue, bool) {
	for i := len(t.history) - 1; i >= 0; i-- {
		rec := t.history[i]
		weight, ok := rec.Weights[id]
		if !ok {
			continue
		}
		return models.LastValue{Weight: weight, Reps: rec.Reps[id]}, true
	}
	return models.LastValue{}, false
}

// SaveSession freezes the draft into a new history record. A cardio session
// also adds its minutes to the weekly ledger in the same transaction. On
// success the draft is reset; on failure nothing changes.
func (t *Tracker) SaveSession(ctx context.Context, kind models.SessionKind) (models.SessionRecord, error) {
	if !kind.IsValid() {
		return models.SessionRecord{}, fmt.Errorf("unknown session type %q: %w", kind, errors.ErrValidation)
	}

	record := t.buildRecord(kind)
	if len(record.CompletedIDs) == 0 {
		return models.SessionRecord{}, fmt.Errorf("complete at least one %s exercise first: %w", kind, errors.ErrValidation)
	}

	var ledger *models.WeeklyLedger
	if kind == models.SessionCardio {
		next := t.ledger.Add(*record.CardioStats)
		ledger = &next
	}

	var saved models.SessionRecord
	err := t.withRetry(ctx, "save session", func() error {
		attempt := record.Clone()
		var row *models.WeeklyLedger
		if ledger != nil {
			l := *ledger
			row = &l
		}
		if err := t.repo.AppendSession(ctx, &attempt, row); err != nil {
			return err
		}
		saved = attempt
		return nil
	})
	if err != nil {
		return models.SessionRecord{}, err
	}

	t.history = append(t.history, saved)
	if ledger != nil {
		t.ledger = *ledger
	}
	t.ResetDraft(ctx)

	t.log.Info().
		Str("id", saved.ID).
		Str("type", string(saved.Kind)).
		Int("completed", len(saved.CompletedIDs)).
		Msg("session saved")
	return saved.Clone(), nil
}

func (t *Tracker) buildRecord(kind models.SessionKind) models.SessionRecord {
	rec := models.SessionRecord{
		ID:           uuid.NewString(),
		Kind:         kind,
		Timestamp:    t.nextTimestamp(),
		CompletedIDs: []string{},
		Weights:      map[string]string{},
		Reps:         map[string]string{},
	}

	if kind == models.SessionCardio {
		for _, item := range t.baseCardio {
			if t.draft.Cardio[item.ID].Completed {
				rec.CompletedIDs = append(rec.CompletedIDs, item.ID)
			}
		}
		rec.CardioStats = &models.CardioStats{
			Zone2Minutes:    t.draft.Zone2Minutes,
			VigorousMinutes: t.draft.VigorousMinutes,
		}
		return rec
	}

	// weights and reps are kept for every filled-in exercise, checked or not
	for _, def := range t.baseExercises {
		entry := t.draft.Strength[def.ID]
		if entry.Completed {
			rec.CompletedIDs = append(rec.CompletedIDs, def.ID)
		}
		if entry.Weight != "" {
			rec.Weights[def.ID] = entry.Weight
		}
		if entry.Reps != "" {
			rec.Reps[def.ID] = entry.Reps
		}
		if name, ok := entry.Substitution.Name(); ok {
			if rec.Substitutes == nil {
				rec.Substitutes = map[string]string{}
			}
			rec.Substitutes[def.ID] = name
		}
	}
	return rec
}

// nextTimestamp returns now at millisecond resolution, pushed past the last
// record's timestamp if the clock has not moved on
func (t *Tracker) nextTimestamp() time.Time {
	ts := t.clock.Now().UTC().Truncate(time.Millisecond)
	if n := len(t.history); n > 0 {
		last := t.history[n-1].Timestamp
		if !ts.After(last) {
			ts = last.UTC().Truncate(time.Millisecond).Add(time.Millisecond)
		}
	}
	return ts
}
