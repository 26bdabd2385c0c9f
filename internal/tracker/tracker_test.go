package tracker

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/blueprint/internal/clock"
	"github.com/balkashynov/blueprint/internal/db"
	"github.com/balkashynov/blueprint/internal/errors"
	"github.com/balkashynov/blueprint/internal/models"
)

// Monday
var monday = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// flakyRepo fails selected writes on top of a real store
type flakyRepo struct {
	*db.Store
	appendFailures     int // remaining AppendSession calls to fail; -1 fails forever
	appendCalls        int
	checkpointFailures bool
}

func (f *flakyRepo) AppendSession(ctx context.Context, record *models.SessionRecord, ledger *models.WeeklyLedger) error {
	f.appendCalls++
	if f.appendFailures != 0 {
		if f.appendFailures > 0 {
			f.appendFailures--
		}
		return stderrors.New("disk I/O error")
	}
	return f.Store.AppendSession(ctx, record, ledger)
}

func (f *flakyRepo) SaveCheckpoint(ctx context.Context, date string, draft models.Draft) error {
	if f.checkpointFailures {
		return stderrors.New("disk full")
	}
	return f.Store.SaveCheckpoint(ctx, date, draft)
}

func newStore(t *testing.T) *db.Store {
	t.Helper()
	s, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTracker(t *testing.T, repo Repository, clk clock.Clock) *Tracker {
	t.Helper()
	tr := New(repo, Options{
		Clock:  clk,
		Logger: zerolog.Nop(),
		Retry:  RetryPolicy{Attempts: 3},
	})
	require.NoError(t, tr.Load(context.Background()))
	return tr
}

func mutate(t *testing.T, tr *Tracker, id string, field Field, value string) {
	t.Helper()
	require.NoError(t, tr.MutateDraft(context.Background(), Mutation{ID: id, Field: field, Value: value}))
}

func TestWorkedExample(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(t, newStore(t), &clock.Fixed{T: monday})

	mutate(t, tr, "chin-ups", FieldCompleted, "true")
	mutate(t, tr, "chin-ups", FieldWeight, "25")
	mutate(t, tr, "chin-ups", FieldReps, "8")
	_, err := tr.SaveSession(ctx, models.SessionStrength)
	require.NoError(t, err)

	last, ok := tr.LastValue("chin-ups")
	require.True(t, ok)
	assert.Equal(t, models.LastValue{Weight: "25", Reps: "8"}, last)

	mutate(t, tr, "cardio-zone2", FieldCompleted, "true")
	mutate(t, tr, "", FieldZone2, "37")
	mutate(t, tr, "", FieldVigorous, "12")
	_, err = tr.SaveSession(ctx, models.SessionCardio)
	require.NoError(t, err)

	progress := tr.WeeklyProgress()
	assert.InDelta(t, 37, progress.Zone2Minutes, 0.001)
	assert.InDelta(t, 12, progress.VigorousMinutes, 0.001)

	_, err = tr.SaveSession(ctx, models.SessionStrength)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
	assert.Len(t, tr.History(), 2)
}

func TestSaveSession_CardioNeedsCompletedItem(t *testing.T) {
	tr := newTracker(t, newStore(t), &clock.Fixed{T: monday})

	mutate(t, tr, "", FieldZone2, "30")
	_, err := tr.SaveSession(context.Background(), models.SessionCardio)
	assert.True(t, errors.Is(err, errors.ErrValidation))
	assert.Empty(t, tr.History())
	assert.Zero(t, tr.WeeklyProgress().Zone2Minutes)
	assert.Equal(t, models.DraftDirty, tr.Draft().State())
}

func TestSaveSession_RecordShape(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(t, newStore(t), &clock.Fixed{T: monday})

	mutate(t, tr, "pull-ups", FieldCompleted, "true")
	mutate(t, tr, "chin-ups", FieldCompleted, "true")
	mutate(t, tr, "face-pulls", FieldWeight, "15") // weight without a check mark is still kept
	require.NoError(t, tr.MutateDraft(ctx, Mutation{ID: "pull-ups", Field: FieldSubstitute, Value: "Ring rows"}))

	rec, err := tr.SaveSession(ctx, models.SessionStrength)
	require.NoError(t, err)
	assert.Equal(t, []string{"chin-ups", "pull-ups"}, rec.CompletedIDs) // catalog order
	assert.Equal(t, map[string]string{"face-pulls": "15"}, rec.Weights)
	assert.Empty(t, rec.Reps)
	assert.Equal(t, map[string]string{"pull-ups": "Ring rows"}, rec.Substitutes)
	assert.Nil(t, rec.CardioStats)
	assert.NotEmpty(t, rec.ID)

	assert.Equal(t, models.DraftEmpty, tr.Draft().State())
}

func TestLastValue(t *testing.T) {
	ctx := context.Background()
	clk := &clock.Fixed{T: monday}
	tr := newTracker(t, newStore(t), clk)

	_, ok := tr.LastValue("chin-ups")
	assert.False(t, ok)

	save := func(weight, reps string) {
		mutate(t, tr, "chin-ups", FieldCompleted, "true")
		mutate(t, tr, "chin-ups", FieldWeight, weight)
		mutate(t, tr, "chin-ups", FieldReps, reps)
		_, err := tr.SaveSession(ctx, models.SessionStrength)
		require.NoError(t, err)
	}

	// clock does not move: order must come from append order
	save("20", "10")
	save("25", "")
	last, ok := tr.LastValue("chin-ups")
	require.True(t, ok)
	assert.Equal(t, models.LastValue{Weight: "25"}, last, "reps only from the same session")

	save("27.5", "6")
	last, _ = tr.LastValue("chin-ups")
	assert.Equal(t, "27.5 x 6", last.String())

	// a session without chin-ups does not hide the older value
	mutate(t, tr, "dead-hang", FieldCompleted, "true")
	_, err := tr.SaveSession(ctx, models.SessionStrength)
	require.NoError(t, err)
	last, _ = tr.LastValue("chin-ups")
	assert.Equal(t, "27.5", last.Weight)

	history := tr.History()
	for i := 1; i < len(history); i++ {
		assert.True(t, history[i].Timestamp.After(history[i-1].Timestamp))
	}
}

func TestLoad_FreshLedgerStartsWindowWithoutReset(t *testing.T) {
	store := newStore(t)
	tr := newTracker(t, store, &clock.Fixed{T: monday})

	assert.True(t, monday.Equal(tr.Ledger().WindowStart))

	stored, err := store.GetLedger(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, monday.Equal(stored.WindowStart))
}

func TestLoad_WeeklyResetOncePerMonday(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	lastMonday := monday.AddDate(0, 0, -7)
	require.NoError(t, store.SaveLedger(ctx, &models.WeeklyLedger{Zone2Minutes: 120, VigorousMinutes: 40, WindowStart: lastMonday}))

	clk := &clock.Fixed{T: monday.Add(-time.Hour)} // 08:00
	tr := newTracker(t, store, clk)
	assert.Zero(t, tr.WeeklyProgress().Zone2Minutes)
	assert.True(t, clk.T.Equal(tr.Ledger().WindowStart))

	mutate(t, tr, "cardio-zone2", FieldCompleted, "true")
	mutate(t, tr, "", FieldZone2, "20")
	_, err := tr.SaveSession(ctx, models.SessionCardio)
	require.NoError(t, err)

	// later the same Monday
	clk.Advance(10 * time.Hour)
	again := newTracker(t, store, clk)
	assert.InDelta(t, 20, again.WeeklyProgress().Zone2Minutes, 0.001)

	// Tuesday never resets
	clk.Advance(24 * time.Hour)
	tuesday := newTracker(t, store, clk)
	assert.InDelta(t, 20, tuesday.WeeklyProgress().Zone2Minutes, 0.001)
}

func TestShouldReset(t *testing.T) {
	ledger := func(start time.Time) models.WeeklyLedger {
		return models.WeeklyLedger{Zone2Minutes: 10, WindowStart: start}
	}
	tests := []struct {
		name  string
		start time.Time
		now   time.Time
		want  bool
	}{
		{"next monday", monday.AddDate(0, 0, -7), monday, true},
		{"monday after a missed week", monday.AddDate(0, 0, -16), monday, true},
		{"same monday", monday.Add(-2 * time.Hour), monday, false},
		{"not monday", monday.AddDate(0, 0, -6), monday.AddDate(0, 0, 1), false},
		{"clock went backwards", monday.AddDate(0, 0, 7), monday, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldReset(ledger(tt.start), tt.now))
		})
	}
}

func TestWeeklyProgress_CapsAt100(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(t, newStore(t), &clock.Fixed{T: monday})

	mutate(t, tr, "cardio-intervals", FieldCompleted, "true")
	mutate(t, tr, "", FieldZone2, "75")
	mutate(t, tr, "", FieldVigorous, "1h40m")
	_, err := tr.SaveSession(ctx, models.SessionCardio)
	require.NoError(t, err)

	p := tr.WeeklyProgress()
	assert.InDelta(t, 50, p.Zone2Percent, 0.001)
	assert.InDelta(t, 100, p.VigorousPercent, 0.001)
	assert.InDelta(t, 100, p.VigorousMinutes, 0.001)
	assert.InDelta(t, 150, p.Zone2Target, 0.001)
}

func TestDraft_CheckpointRestoredSameDayOnly(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	clk := &clock.Fixed{T: monday}
	tr := newTracker(t, store, clk)

	mutate(t, tr, "chin-ups", FieldWeight, "25")
	mutate(t, tr, "cardio-warmup", FieldCompleted, "true")
	mutate(t, tr, "", FieldZone2, "15")
	assert.Equal(t, models.DraftDirty, tr.Draft().State())

	clk.Advance(3 * time.Hour)
	reloaded := newTracker(t, store, clk)
	d := reloaded.Draft()
	assert.Equal(t, "25", d.Strength["chin-ups"].Weight)
	assert.True(t, d.Cardio["cardio-warmup"].Completed)
	assert.InDelta(t, 15, d.Zone2Minutes, 0.001)

	clk.Advance(24 * time.Hour)
	nextDay := newTracker(t, store, clk)
	assert.Equal(t, models.DraftEmpty, nextDay.Draft().State())

	cp, err := store.GetCheckpoint(ctx)
	require.NoError(t, err)
	assert.Nil(t, cp, "stale checkpoint is deleted")
}

func TestDraft_ResetClearsCheckpoint(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	tr := newTracker(t, store, &clock.Fixed{T: monday})

	mutate(t, tr, "chin-ups", FieldCompleted, "true")
	tr.ResetDraft(ctx)
	assert.Equal(t, models.DraftEmpty, tr.Draft().State())

	cp, err := store.GetCheckpoint(ctx)
	require.NoError(t, err)
	assert.Nil(t, cp)
}

func TestDraft_ClearingSubstitutionNeedsConfirmation(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(t, newStore(t), &clock.Fixed{T: monday})

	require.NoError(t, tr.MutateDraft(ctx, Mutation{ID: "pull-ups", Field: FieldSubstitute, Value: "Lat pulldown"}))

	err := tr.MutateDraft(ctx, Mutation{ID: "pull-ups", Field: FieldSubstitute, Value: ""})
	assert.True(t, errors.Is(err, errors.ErrConfirmationRequired))
	name, ok := tr.Draft().Strength["pull-ups"].Substitution.Name()
	assert.True(t, ok)
	assert.Equal(t, "Lat pulldown", name)

	require.NoError(t, tr.MutateDraft(ctx, Mutation{ID: "pull-ups", Field: FieldSubstitute, Value: "", Confirmed: true}))
	assert.False(t, tr.Draft().Strength["pull-ups"].Substitution.IsSubstituted())

	// the catalog entry is never touched
	def, ok := tr.Lookup().Exercise("pull-ups")
	require.True(t, ok)
	assert.Equal(t, "Pull-Ups", def.Name)
}

func TestMutateDraft_Rejects(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(t, newStore(t), &clock.Fixed{T: monday})

	tests := []struct {
		name string
		m    Mutation
		want error
	}{
		{"unknown id", Mutation{ID: "burpees", Field: FieldCompleted, Value: "true"}, errors.ErrUnknownExercise},
		{"bad bool", Mutation{ID: "chin-ups", Field: FieldCompleted, Value: "yes please"}, errors.ErrValidation},
		{"bad minutes", Mutation{Field: FieldZone2, Value: "lots"}, errors.ErrValidation},
		{"weight on cardio item", Mutation{ID: "cardio-zone2", Field: FieldWeight, Value: "10"}, errors.ErrValidation},
		{"unknown field", Mutation{ID: "chin-ups", Field: "color", Value: "red"}, errors.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tr.MutateDraft(ctx, tt.m)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
	assert.Equal(t, models.DraftEmpty, tr.Draft().State())
}

func TestMutateDraft_CheckpointFailureIsNotFatal(t *testing.T) {
	repo := &flakyRepo{Store: newStore(t), checkpointFailures: true}
	tr := newTracker(t, repo, &clock.Fixed{T: monday})

	require.NoError(t, tr.MutateDraft(context.Background(), Mutation{ID: "chin-ups", Field: FieldCompleted, Value: "true"}))
	assert.True(t, tr.Draft().Strength["chin-ups"].Completed)
}

func TestSaveSession_StorageFailureChangesNothing(t *testing.T) {
	ctx := context.Background()
	repo := &flakyRepo{Store: newStore(t), appendFailures: -1}
	tr := newTracker(t, repo, &clock.Fixed{T: monday})

	mutate(t, tr, "cardio-zone2", FieldCompleted, "true")
	mutate(t, tr, "", FieldZone2, "30")

	_, err := tr.SaveSession(ctx, models.SessionCardio)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrStorage))
	assert.Contains(t, err.Error(), "disk I/O error")
	assert.Equal(t, 3, repo.appendCalls)

	assert.Empty(t, tr.History())
	assert.Zero(t, tr.WeeklyProgress().Zone2Minutes)
	assert.InDelta(t, 30, tr.Draft().Zone2Minutes, 0.001, "draft survives a failed save")

	snap, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.History)
	assert.Zero(t, snap.Ledger.Zone2Minutes)
}

func TestSaveSession_RetriesUntilBothSlotsLand(t *testing.T) {
	ctx := context.Background()
	repo := &flakyRepo{Store: newStore(t), appendFailures: 2}
	tr := newTracker(t, repo, &clock.Fixed{T: monday})

	mutate(t, tr, "cardio-zone2", FieldCompleted, "true")
	mutate(t, tr, "", FieldZone2, "37")
	mutate(t, tr, "", FieldVigorous, "12")

	_, err := tr.SaveSession(ctx, models.SessionCardio)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.appendCalls)

	snap, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.History, 1)
	require.NotNil(t, snap.Ledger)
	assert.InDelta(t, 37, snap.Ledger.Zone2Minutes, 0.001)
	assert.InDelta(t, 12, snap.Ledger.VigorousMinutes, 0.001)
}

func TestSetCustomization(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	tr := newTracker(t, store, &clock.Fixed{T: monday})

	mutate(t, tr, "chin-ups", FieldCompleted, "true")
	mutate(t, tr, "chin-ups", FieldWeight, "25")
	_, err := tr.SaveSession(ctx, models.SessionStrength)
	require.NoError(t, err)

	name := "Weighted Chin-Ups"
	require.NoError(t, tr.SetCustomization(ctx, "chin-ups", models.CatalogStrength, models.CustomizationFields{Name: &name}))
	sets := "3x8"
	require.NoError(t, tr.SetCustomization(ctx, "chin-ups", models.CatalogStrength, models.CustomizationFields{Prescription: &sets}))

	def, ok := tr.Lookup().Exercise("chin-ups")
	require.True(t, ok)
	assert.Equal(t, "Weighted Chin-Ups", def.Name)
	assert.Equal(t, "3x8", def.Prescription)

	// renaming keeps the history link
	last, ok := tr.LastValue("chin-ups")
	require.True(t, ok)
	assert.Equal(t, "25", last.Weight)

	// persisted and reloaded
	reloaded := newTracker(t, store, &clock.Fixed{T: monday})
	def, _ = reloaded.Lookup().Exercise("chin-ups")
	assert.Equal(t, "Weighted Chin-Ups", def.Name)
	assert.Equal(t, "3x8", def.Prescription)
}

func TestSetCustomization_Rejects(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(t, newStore(t), &clock.Fixed{T: monday})
	name := "Bike"
	blank := "  "

	err := tr.SetCustomization(ctx, "burpees", models.CatalogStrength, models.CustomizationFields{Name: &name})
	assert.True(t, errors.Is(err, errors.ErrUnknownExercise))

	err = tr.SetCustomization(ctx, "cardio-zone2", models.CatalogStrength, models.CustomizationFields{Name: &name})
	assert.True(t, errors.Is(err, errors.ErrUnknownExercise), "id of the other catalog")

	err = tr.SetCustomization(ctx, "chin-ups", models.CatalogStrength, models.CustomizationFields{Name: &blank})
	assert.True(t, errors.Is(err, errors.ErrValidation))

	sets := "3x8"
	err = tr.SetCustomization(ctx, "cardio-zone2", models.CatalogCardio, models.CustomizationFields{Prescription: &sets})
	assert.True(t, errors.Is(err, errors.ErrValidation), "cardio has no prescription")

	require.NoError(t, tr.SetCustomization(ctx, "cardio-zone2", models.CatalogCardio, models.CustomizationFields{Name: &name}))
	item, _ := tr.Lookup().Cardio("cardio-zone2")
	assert.Equal(t, "Bike", item.Name)
}
