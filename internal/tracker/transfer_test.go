package tracker

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/blueprint/internal/clock"
	"github.com/balkashynov/blueprint/internal/errors"
	"github.com/balkashynov/blueprint/internal/models"
	"github.com/balkashynov/blueprint/internal/transfer"
)

func seedTracker(t *testing.T, tr *Tracker) {
	t.Helper()
	ctx := context.Background()

	mutate(t, tr, "chin-ups", FieldCompleted, "true")
	mutate(t, tr, "chin-ups", FieldWeight, "25")
	mutate(t, tr, "chin-ups", FieldReps, "8")
	require.NoError(t, tr.MutateDraft(ctx, Mutation{ID: "pull-ups", Field: FieldSubstitute, Value: "Ring rows"}))
	_, err := tr.SaveSession(ctx, models.SessionStrength)
	require.NoError(t, err)

	mutate(t, tr, "cardio-zone2", FieldCompleted, "true")
	mutate(t, tr, "", FieldZone2, "37")
	mutate(t, tr, "", FieldVigorous, "12")
	_, err = tr.SaveSession(ctx, models.SessionCardio)
	require.NoError(t, err)

	name := "Weighted Chin-Ups"
	require.NoError(t, tr.SetCustomization(ctx, "chin-ups", models.CatalogStrength, models.CustomizationFields{Name: &name}))
	bike := "Bike intervals"
	require.NoError(t, tr.SetCustomization(ctx, "cardio-intervals", models.CatalogCardio, models.CustomizationFields{Name: &bike}))
}

func exportBytes(t *testing.T, tr *Tracker) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, transfer.Encode(&buf, tr.ExportBundle()))
	return buf.Bytes()
}

func TestExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	clk := &clock.Fixed{T: monday}
	src := newTracker(t, newStore(t), clk)
	seedTracker(t, src)

	raw := exportBytes(t, src)

	dstStore := newStore(t)
	dst := newTracker(t, dstStore, clk)
	_, err := dst.ImportBundle(ctx, raw)
	require.NoError(t, err)

	assertSameState(t, src, dst)

	// and it survives a reload from disk
	reloaded := newTracker(t, dstStore, clk)
	assertSameState(t, src, reloaded)
}

func assertSameState(t *testing.T, want, got *Tracker) {
	t.Helper()

	wantHistory, gotHistory := want.History(), got.History()
	require.Len(t, gotHistory, len(wantHistory))
	for i := range wantHistory {
		w, g := wantHistory[i], gotHistory[i]
		assert.Equal(t, w.ID, g.ID)
		assert.Equal(t, w.Kind, g.Kind)
		assert.True(t, w.Timestamp.Equal(g.Timestamp))
		assert.Equal(t, w.CompletedIDs, g.CompletedIDs)
		assert.Equal(t, w.Weights, g.Weights)
		assert.Equal(t, w.Reps, g.Reps)
		assert.Equal(t, w.Substitutes, g.Substitutes)
		assert.Equal(t, w.CardioStats, g.CardioStats)
	}

	assert.InDelta(t, want.Ledger().Zone2Minutes, got.Ledger().Zone2Minutes, 0.001)
	assert.InDelta(t, want.Ledger().VigorousMinutes, got.Ledger().VigorousMinutes, 0.001)
	assert.True(t, want.Ledger().WindowStart.Equal(got.Ledger().WindowStart))

	assert.Equal(t, want.EffectiveCatalog(), got.EffectiveCatalog())
	assert.Equal(t, want.EffectiveCardioChecklist(), got.EffectiveCardioChecklist())

	wantLast, _ := want.LastValue("chin-ups")
	gotLast, _ := got.LastValue("chin-ups")
	assert.Equal(t, wantLast, gotLast)
}

func TestImport_OverlayIsDerived(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(t, newStore(t), &clock.Fixed{T: monday})

	raw := `{
		"history": [],
		"weeklyStats": {"zone2Minutes": 10, "vigorousMinutes": 0},
		"exercises": [
			{"id": "chin-ups", "name": "Chin-Ups", "sets": "3x5"},
			{"id": "dead-hang", "name": "Long Hang", "sets": "60s"},
			{"id": "retired-move", "name": "Old thing", "sets": "1x1"}
		]
	}`
	_, err := tr.ImportBundle(ctx, []byte(raw))
	require.NoError(t, err)

	overlay := tr.Overlay()
	require.Contains(t, overlay.Strength, "chin-ups")
	assert.Nil(t, overlay.Strength["chin-ups"].Name, "unchanged name is not an override")
	assert.Equal(t, "3x5", *overlay.Strength["chin-ups"].Prescription)
	assert.Equal(t, "Long Hang", *overlay.Strength["dead-hang"].Name)
	assert.NotContains(t, overlay.Strength, "retired-move")

	// zero window start is normalized
	assert.True(t, monday.Equal(tr.Ledger().WindowStart))
}

func TestImport_MissingCatalogKeepsCustomizations(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(t, newStore(t), &clock.Fixed{T: monday})
	name := "Chins"
	require.NoError(t, tr.SetCustomization(ctx, "chin-ups", models.CatalogStrength, models.CustomizationFields{Name: &name}))

	_, err := tr.ImportBundle(ctx, []byte(`{"history":[],"weeklyStats":{}}`))
	require.NoError(t, err)

	def, _ := tr.Lookup().Exercise("chin-ups")
	assert.Equal(t, "Chins", def.Name)
}

func TestImport_LegacyRecords(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(t, newStore(t), &clock.Fixed{T: monday})

	raw := `{
		"history": [
			{"date": "2025-01-06T08:00:00.000Z", "completed": ["chin-ups"], "weights": {"chin-ups": "20"}, "reps": {"chin-ups": "10"}},
			{"date": "2025-01-08T08:00:00.000Z", "completed": ["chin-ups"], "weights": {"chin-ups": "22.5"}}
		],
		"weeklyStats": {"zone2Minutes": 0, "vigorousMinutes": 0, "weekStart": "2025-01-06T00:00:00Z"}
	}`
	_, err := tr.ImportBundle(ctx, []byte(raw))
	require.NoError(t, err)

	history := tr.History()
	require.Len(t, history, 2)
	assert.Equal(t, models.SessionStrength, history[0].Kind)
	assert.NotEmpty(t, history[0].ID)
	assert.NotEqual(t, history[0].ID, history[1].ID)
	assert.NotNil(t, history[1].Reps)

	last, ok := tr.LastValue("chin-ups")
	require.True(t, ok)
	assert.Equal(t, models.LastValue{Weight: "22.5"}, last)

	// a new save lands after the imported records
	mutate(t, tr, "chin-ups", FieldCompleted, "true")
	rec, err := tr.SaveSession(ctx, models.SessionStrength)
	require.NoError(t, err)
	assert.True(t, rec.Timestamp.After(time.Date(2025, 1, 8, 8, 0, 0, 0, time.UTC)))
}

func TestImport_MalformedLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	tr := newTracker(t, store, &clock.Fixed{T: monday})
	seedTracker(t, tr)
	before := exportBytes(t, tr)

	for _, raw := range []string{
		`not json`,
		`{"history": {}, "weeklyStats": {}}`,
		`{"weeklyStats": {}}`,
		`{"history": [], "weeklyStats": {}, "extra": 1}`,
	} {
		_, err := tr.ImportBundle(ctx, []byte(raw))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrImport))
	}

	assert.JSONEq(t, string(before), string(exportBytes(t, tr)))

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.History, 2)
}
