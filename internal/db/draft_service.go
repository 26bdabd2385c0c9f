package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/balkashynov/blueprint/internal/models"
)

// GetCheckpoint returns the saved draft, or nil if there is none
func (s *Store) GetCheckpoint(ctx context.Context) (*models.DraftCheckpoint, error) {
	var cp models.DraftCheckpoint
	err := s.db.WithContext(ctx).First(&cp, models.CheckpointRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read draft checkpoint: %w", err)
	}
	return &cp, nil
}

// SaveCheckpoint overwrites the draft checkpoint
func (s *Store) SaveCheckpoint(ctx context.Context, date string, draft models.Draft) error {
	cp := models.DraftCheckpoint{
		ID:    models.CheckpointRowID,
		Date:  date,
		Draft: draft,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&cp).Error
	if err != nil {
		return fmt.Errorf("failed to save draft checkpoint: %w", err)
	}
	return nil
}

// DeleteCheckpoint removes the draft checkpoint, if any
func (s *Store) DeleteCheckpoint(ctx context.Context) error {
	err := s.db.WithContext(ctx).Delete(&models.DraftCheckpoint{}, models.CheckpointRowID).Error
	if err != nil {
		return fmt.Errorf("failed to delete draft checkpoint: %w", err)
	}
	return nil
}
