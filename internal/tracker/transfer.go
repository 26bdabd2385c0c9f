package tracker

import (
	"context"

	"github.com/google/uuid"

	"github.com/balkashynov/blueprint/internal/catalog"
	"github.com/balkashynov/blueprint/internal/models"
	"github.com/balkashynov/blueprint/internal/transfer"
)

// ExportBundle snapshots history, ledger and both effective catalogs
func (t *Tracker) ExportBundle() transfer.Bundle {
	return transfer.Bundle{
		History:         t.History(),
		WeeklyStats:     t.ledger,
		Exercises:       t.EffectiveCatalog(),
		CardioChecklist: t.EffectiveCardioChecklist(),
		ExportDate:      t.clock.Now().UTC(),
	}
}

// ImportBundle replaces history, ledger and customizations with the contents
// of a backup file. It is all-or-nothing: a malformed file or a failed write
// leaves both the database and the in-memory state unchanged. The draft is
// kept.
//
// The overlay is rebuilt from the imported catalogs, keeping only the fields
// that differ from the built-in ones. A catalog missing from the file keeps
// the current customizations of that kind.
func (t *Tracker) ImportBundle(ctx context.Context, raw []byte) (transfer.Bundle, error) {
	bundle, err := transfer.Decode(raw)
	if err != nil {
		return transfer.Bundle{}, err
	}

	history := normalizeHistory(bundle.History)

	ledger := bundle.WeeklyStats
	ledger.ID = models.LedgerRowID
	if ledger.WindowStart.IsZero() {
		ledger.WindowStart = t.clock.Now()
	}

	overlay := t.overlay.Clone()
	if bundle.Exercises != nil {
		overlay.Strength = catalog.DeriveExerciseOverrides(t.baseExercises, bundle.Exercises)
	}
	if bundle.CardioChecklist != nil {
		overlay.Cardio = catalog.DeriveCardioOverrides(t.baseCardio, bundle.CardioChecklist)
	}

	var stored []models.SessionRecord
	err = t.withRetry(ctx, "import backup", func() error {
		attempt := make([]models.SessionRecord, len(history))
		for i, rec := range history {
			attempt[i] = rec.Clone()
		}
		row := ledger
		if err := t.repo.ReplaceAll(ctx, attempt, &row, overlay); err != nil {
			return err
		}
		stored = attempt
		return nil
	})
	if err != nil {
		return transfer.Bundle{}, err
	}

	t.history = stored
	t.ledger = ledger
	t.overlay = overlay

	t.log.Info().Int("sessions", len(stored)).Msg("backup imported")
	return t.ExportBundle(), nil
}

// normalizeHistory gives every record a unique id, a fresh sequence number
// and non-nil maps
func normalizeHistory(in []models.SessionRecord) []models.SessionRecord {
	out := make([]models.SessionRecord, len(in))
	seen := make(map[string]bool, len(in))
	for i, rec := range in {
		rec = rec.Clone()
		rec.Seq = 0
		if rec.ID == "" || seen[rec.ID] {
			rec.ID = uuid.NewString()
		}
		seen[rec.ID] = true
		if rec.CompletedIDs == nil {
			rec.CompletedIDs = []string{}
		}
		if rec.Weights == nil {
			rec.Weights = map[string]string{}
		}
		if rec.Reps == nil {
			rec.Reps = map[string]string{}
		}
		out[i] = rec
	}
	return out
}
