// Package tracker owns blueprint's in-memory state: session history, the
// weekly aerobic ledger, the customization overlay and today's draft. Every
// write goes through a Repository before the in-memory copy changes.
//
// A Tracker is a single actor and is not safe for concurrent use.
package tracker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/balkashynov/blueprint/internal/catalog"
	"github.com/balkashynov/blueprint/internal/clock"
	"github.com/balkashynov/blueprint/internal/db"
	"github.com/balkashynov/blueprint/internal/models"
)

// Repository persists the tracker's slots. *db.Store implements it.
type Repository interface {
	Load(ctx context.Context) (*db.Snapshot, error)
	AppendSession(ctx context.Context, record *models.SessionRecord, ledger *models.WeeklyLedger) error
	ReplaceAll(ctx context.Context, history []models.SessionRecord, ledger *models.WeeklyLedger, overlay models.Overlay) error
	SaveLedger(ctx context.Context, ledger *models.WeeklyLedger) error
	SaveCustomization(ctx context.Context, kind models.CatalogKind, id string, fields models.CustomizationFields) error
	SaveCheckpoint(ctx context.Context, date string, draft models.Draft) error
	DeleteCheckpoint(ctx context.Context) error
}

var _ Repository = (*db.Store)(nil)

// Targets are the weekly aerobic goals in minutes
type Targets struct {
	Zone2Minutes    float64
	VigorousMinutes float64
}

// DefaultTargets returns 150 zone-2 and 75 vigorous minutes
func DefaultTargets() Targets {
	return Targets{Zone2Minutes: 150, VigorousMinutes: 75}
}

// Options configures a Tracker. Zero fields get defaults.
type Options struct {
	Clock   clock.Clock
	Logger  zerolog.Logger
	Targets Targets
	Retry   RetryPolicy

	// Exercises and Cardio replace the built-in catalogs, mostly for tests
	Exercises []models.ExerciseDefinition
	Cardio    []models.CardioChecklistItem
}

// Tracker is the state store behind every command
type Tracker struct {
	repo    Repository
	clock   clock.Clock
	log     zerolog.Logger
	targets Targets
	retry   RetryPolicy

	baseExercises []models.ExerciseDefinition
	baseCardio    []models.CardioChecklistItem

	history []models.SessionRecord
	ledger  models.WeeklyLedger
	overlay models.Overlay
	draft   models.Draft
}

// New creates a Tracker over repo. Call Load before anything else.
func New(repo Repository, opts Options) *Tracker {
	t := &Tracker{
		repo:          repo,
		clock:         opts.Clock,
		log:           opts.Logger,
		targets:       opts.Targets,
		retry:         opts.Retry,
		baseExercises: opts.Exercises,
		baseCardio:    opts.Cardio,
		overlay:       models.NewOverlay(),
	}
	if t.clock == nil {
		t.clock = clock.RealClock{}
	}
	if t.targets.Zone2Minutes <= 0 || t.targets.VigorousMinutes <= 0 {
		t.targets = DefaultTargets()
	}
	if t.retry.Attempts < 1 {
		t.retry = DefaultRetryPolicy()
	}
	if t.baseExercises == nil {
		t.baseExercises = catalog.Exercises()
	}
	if t.baseCardio == nil {
		t.baseCardio = catalog.CardioChecklist()
	}
	t.draft = t.emptyDraft()
	return t
}

// Load reads every slot, rolls the weekly ledger over if a new week started
// and restores today's draft checkpoint.
func (t *Tracker) Load(ctx context.Context) error {
	snap, err := t.repo.Load(ctx)
	if err != nil {
		return err
	}
	now := t.clock.Now()

	ledger, changed := t.currentLedger(snap.Ledger, now)
	if changed {
		if err := t.withRetry(ctx, "save weekly ledger", func() error {
			row := ledger
			return t.repo.SaveLedger(ctx, &row)
		}); err != nil {
			return err
		}
	}

	t.history = snap.History
	t.overlay = snap.Overlay
	t.ledger = ledger
	t.draft = t.restoreDraft(ctx, snap.Checkpoint, now)

	t.log.Debug().
		Int("sessions", len(t.history)).
		Time("week_start", t.ledger.WindowStart).
		Str("draft", string(t.draft.State())).
		Msg("state loaded")
	return nil
}

// EffectiveCatalog returns the strength exercises with customizations applied
func (t *Tracker) EffectiveCatalog() []models.ExerciseDefinition {
	return catalog.EffectiveExercises(t.baseExercises, t.overlay.Strength)
}

// EffectiveCardioChecklist returns the cardio checklist with customizations applied
func (t *Tracker) EffectiveCardioChecklist() []models.CardioChecklistItem {
	return catalog.EffectiveCardio(t.baseCardio, t.overlay.Cardio)
}

// Lookup indexes both effective catalogs by id
func (t *Tracker) Lookup() catalog.Lookup {
	return catalog.NewLookup(t.EffectiveCatalog(), t.EffectiveCardioChecklist())
}

// Now returns the tracker clock's current time
func (t *Tracker) Now() time.Time {
	return t.clock.Now()
}

func (t *Tracker) baseLookup() catalog.Lookup {
	return catalog.NewLookup(t.baseExercises, t.baseCardio)
}
