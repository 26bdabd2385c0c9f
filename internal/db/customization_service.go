package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/balkashynov/blueprint/internal/models"
)

// GetOverlay reads every customization row into an Overlay
func (s *Store) GetOverlay(ctx context.Context) (models.Overlay, error) {
	var rows []models.Customization
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return models.Overlay{}, fmt.Errorf("failed to read customizations: %w", err)
	}

	overlay := models.NewOverlay()
	for _, row := range rows {
		if !row.Kind.IsValid() {
			continue
		}
		overlay.For(row.Kind)[row.ExerciseID] = row.Fields()
	}
	return overlay, nil
}

// SaveCustomization upserts the overrides for one catalog entry. fields must
// already be merged with any previous overrides for the id.
func (s *Store) SaveCustomization(ctx context.Context, kind models.CatalogKind, id string, fields models.CustomizationFields) error {
	row := models.Customization{
		Kind:         kind,
		ExerciseID:   id,
		Name:         fields.Name,
		Prescription: fields.Prescription,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save customization for %s: %w", id, err)
	}
	return nil
}

func replaceOverlay(tx *gorm.DB, overlay models.Overlay) error {
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Customization{}).Error; err != nil {
		return fmt.Errorf("failed to clear customizations: %w", err)
	}
	for _, kind := range []models.CatalogKind{models.CatalogStrength, models.CatalogCardio} {
		for id, fields := range overlay.For(kind) {
			row := models.Customization{
				Kind:         kind,
				ExerciseID:   id,
				Name:         fields.Name,
				Prescription: fields.Prescription,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to save customization for %s: %w", id, err)
			}
		}
	}
	return nil
}
