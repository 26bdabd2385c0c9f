package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/balkashynov/blueprint/internal/models"
)

// ListSessions returns the whole history in append order
func (s *Store) ListSessions(ctx context.Context) ([]models.SessionRecord, error) {
	var records []models.SessionRecord
	if err := s.db.WithContext(ctx).Order("seq ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return records, nil
}

// AppendSession inserts record and, when ledger is non-nil, writes the
// updated weekly ledger in the same transaction. Either both land or neither.
func (s *Store) AppendSession(ctx context.Context, record *models.SessionRecord, ledger *models.WeeklyLedger) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to append session: %w", err)
		}
		if ledger != nil {
			if err := saveLedger(tx, ledger); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceAll swaps history, ledger and overlay in one transaction. Used by import.
func (s *Store) ReplaceAll(ctx context.Context, history []models.SessionRecord, ledger *models.WeeklyLedger, overlay models.Overlay) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.SessionRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		for i := range history {
			if err := tx.Create(&history[i]).Error; err != nil {
				return fmt.Errorf("failed to import session %d: %w", i, err)
			}
		}
		if err := saveLedger(tx, ledger); err != nil {
			return err
		}
		return replaceOverlay(tx, overlay)
	})
}

// GetLedger returns the weekly ledger, or nil if it was never written
func (s *Store) GetLedger(ctx context.Context) (*models.WeeklyLedger, error) {
	var ledger models.WeeklyLedger
	err := s.db.WithContext(ctx).First(&ledger, models.LedgerRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read weekly ledger: %w", err)
	}
	return &ledger, nil
}

// SaveLedger writes the weekly ledger row
func (s *Store) SaveLedger(ctx context.Context, ledger *models.WeeklyLedger) error {
	return saveLedger(s.db.WithContext(ctx), ledger)
}

func saveLedger(tx *gorm.DB, ledger *models.WeeklyLedger) error {
	row := *ledger
	row.ID = models.LedgerRowID
	err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save weekly ledger: %w", err)
	}
	return nil
}
