package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/balkashynov/blueprint/internal/errors"
	"github.com/balkashynov/blueprint/internal/models"
)

// SetCustomization overrides the name and/or prescription of a built-in
// exercise or cardio item. History is never touched: records keep the id.
// Cardio items have no prescription, so that field is ignored for them.
func (t *Tracker) SetCustomization(ctx context.Context, id string, kind models.CatalogKind, fields models.CustomizationFields) error {
	if !kind.IsValid() {
		return fmt.Errorf("unknown catalog %q: %w", kind, errors.ErrValidation)
	}
	if found, ok := t.baseLookup().Kind(id); !ok || found != kind {
		return fmt.Errorf("no %s entry %q: %w", kind, id, errors.ErrUnknownExercise)
	}

	if kind == models.CatalogCardio {
		fields.Prescription = nil
	}
	if fields.IsEmpty() {
		return fmt.Errorf("nothing to change for %q: %w", id, errors.ErrValidation)
	}
	for _, v := range []*string{fields.Name, fields.Prescription} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return fmt.Errorf("customized values must not be blank: %w", errors.ErrValidation)
		}
	}

	merged := t.overlay.For(kind)[id].Merge(fields)
	if err := t.withRetry(ctx, "save customization", func() error {
		return t.repo.SaveCustomization(ctx, kind, id, merged)
	}); err != nil {
		return err
	}

	next := t.overlay.Clone()
	next.For(kind)[id] = merged
	t.overlay = next

	t.log.Info().Str("id", id).Str("kind", string(kind)).Msg("customization saved")
	return nil
}

// Overlay returns a copy of the stored customizations
func (t *Tracker) Overlay() models.Overlay {
	return t.overlay.Clone()
}
