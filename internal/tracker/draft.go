package tracker

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/balkashynov/blueprint/internal/catalog"
	"github.com/balkashynov/blueprint/internal/clock"
	"github.com/balkashynov/blueprint/internal/errors"
	"github.com/balkashynov/blueprint/internal/models"
	"github.com/balkashynov/blueprint/internal/parser"
)

// Field names a draft input
type Field string

const (
	FieldCompleted  Field = "completed"
	FieldWeight     Field = "weight"
	FieldReps       Field = "reps"
	FieldSubstitute Field = "substitute"
	FieldZone2      Field = "zone2"    // ID is ignored
	FieldVigorous   Field = "vigorous" // ID is ignored
)

// Mutation is one user edit of the draft. Value is the raw input text.
type Mutation struct {
	ID    string
	Field Field
	Value string

	// Confirmed must be set to clear an existing substitution
	Confirmed bool
}

// Draft returns a copy of today's unsaved input
func (t *Tracker) Draft() models.Draft {
	return t.draft.Clone()
}

// DraftProgress returns how many strength exercises are checked out of the total
func (t *Tracker) DraftProgress() (done, total int) {
	for _, def := range t.baseExercises {
		if t.draft.Strength[def.ID].Completed {
			done++
		}
	}
	return done, len(t.baseExercises)
}

// MutateDraft applies m and checkpoints the whole draft. A failed checkpoint
// is logged and does not fail the edit.
func (t *Tracker) MutateDraft(ctx context.Context, m Mutation) error {
	next, err := t.applyMutation(t.draft.Clone(), m)
	if err != nil {
		return err
	}
	t.draft = next
	t.checkpoint(ctx)
	return nil
}

func (t *Tracker) applyMutation(d models.Draft, m Mutation) (models.Draft, error) {
	switch m.Field {
	case FieldZone2, FieldVigorous:
		minutes, err := parser.ParseMinutes(m.Value)
		if err != nil {
			return d, fmt.Errorf("%v: %w", err, errors.ErrValidation)
		}
		if m.Field == FieldZone2 {
			d.Zone2Minutes = minutes
		} else {
			d.VigorousMinutes = minutes
		}
		return d, nil
	case FieldCompleted, FieldWeight, FieldReps, FieldSubstitute:
	default:
		return d, fmt.Errorf("unknown draft field %q: %w", m.Field, errors.ErrValidation)
	}

	kind, ok := t.baseLookup().Kind(m.ID)
	if !ok {
		return d, fmt.Errorf("%q: %w", m.ID, errors.ErrUnknownExercise)
	}

	if kind == models.CatalogCardio {
		if m.Field != FieldCompleted {
			return d, fmt.Errorf("cardio item %q only has a completed flag: %w", m.ID, errors.ErrValidation)
		}
		completed, err := parseBool(m.Value)
		if err != nil {
			return d, err
		}
		d.Cardio[m.ID] = models.CardioEntry{Completed: completed}
		return d, nil
	}

	entry := d.Strength[m.ID]
	switch m.Field {
	case FieldCompleted:
		completed, err := parseBool(m.Value)
		if err != nil {
			return d, err
		}
		entry.Completed = completed
	case FieldWeight:
		entry.Weight = strings.TrimSpace(m.Value)
	case FieldReps:
		entry.Reps = strings.TrimSpace(m.Value)
	case FieldSubstitute:
		next := models.Substituted(m.Value)
		if entry.Substitution.IsSubstituted() && !next.IsSubstituted() && !m.Confirmed {
			return d, fmt.Errorf("clearing the substitution for %q: %w", m.ID, errors.ErrConfirmationRequired)
		}
		entry.Substitution = next
	}
	d.Strength[m.ID] = entry
	return d, nil
}

func parseBool(v string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("expected true or false, got %q: %w", v, errors.ErrValidation)
	}
	return b, nil
}

// ResetDraft discards today's unsaved input
func (t *Tracker) ResetDraft(ctx context.Context) {
	t.draft = t.emptyDraft()
	t.dropCheckpoint(ctx)
}

func (t *Tracker) emptyDraft() models.Draft {
	return models.NewDraft(catalog.ExerciseIDs(t.baseExercises), catalog.CardioIDs(t.baseCardio))
}

// restoreDraft returns the checkpointed draft if it was written today. A
// checkpoint from another day is deleted.
func (t *Tracker) restoreDraft(ctx context.Context, cp *models.DraftCheckpoint, now time.Time) models.Draft {
	d := t.emptyDraft()
	if cp == nil {
		return d
	}
	if cp.Date != clock.CalendarDate(now) {
		t.log.Info().Str("checkpoint_date", cp.Date).Msg("discarding stale draft")
		t.dropCheckpoint(ctx)
		return d
	}

	// ids no longer in the catalog are dropped
	for id := range d.Strength {
		if e, ok := cp.Draft.Strength[id]; ok {
			d.Strength[id] = e
		}
	}
	for id := range d.Cardio {
		if e, ok := cp.Draft.Cardio[id]; ok {
			d.Cardio[id] = e
		}
	}
	d.Zone2Minutes = cp.Draft.Zone2Minutes
	d.VigorousMinutes = cp.Draft.VigorousMinutes
	return d
}

func (t *Tracker) checkpoint(ctx context.Context) {
	date := clock.CalendarDate(t.clock.Now())
	if err := t.repo.SaveCheckpoint(ctx, date, t.draft.Clone()); err != nil {
		t.log.Warn().Err(err).Str("date", date).Msg("draft checkpoint failed")
	}
}

func (t *Tracker) dropCheckpoint(ctx context.Context) {
	if err := t.repo.DeleteCheckpoint(ctx); err != nil {
		t.log.Warn().Err(err).Msg("failed to delete draft checkpoint")
	}
}
