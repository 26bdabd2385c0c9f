package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/blueprint/internal/models"
)

// DatabaseFile is the SQLite file name inside the data directory
const DatabaseFile = "blueprint.db"

// Store owns the persisted slots: history, weekly ledger, customization
// overlay and draft checkpoint
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the database in dataDir and runs migrations
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return open(filepath.Join(dataDir, DatabaseFile))
}

// OpenMemory opens a private in-memory database. Used by tests.
func OpenMemory() (*Store, error) {
	return open("file::memory:")
}

func open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// One writer; also keeps an in-memory database alive across calls
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	s := &Store{db: db}
	if err := s.runMigrations(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

// runMigrations creates/updates the database schema
func (s *Store) runMigrations() error {
	return s.db.AutoMigrate(
		&models.SessionRecord{},
		&models.WeeklyLedger{},
		&models.Customization{},
		&models.DraftCheckpoint{},
	)
}

// Close closes the database connection
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Snapshot is everything the tracker loads at startup
type Snapshot struct {
	History    []models.SessionRecord
	Ledger     *models.WeeklyLedger // nil when never written
	Overlay    models.Overlay
	Checkpoint *models.DraftCheckpoint // nil when absent
}

// Load reads every slot
func (s *Store) Load(ctx context.Context) (*Snapshot, error) {
	history, err := s.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	ledger, err := s.GetLedger(ctx)
	if err != nil {
		return nil, err
	}
	overlay, err := s.GetOverlay(ctx)
	if err != nil {
		return nil, err
	}
	checkpoint, err := s.GetCheckpoint(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		History:    history,
		Ledger:     ledger,
		Overlay:    overlay,
		Checkpoint: checkpoint,
	}, nil
}
