package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/blueprint/internal/models"
)

func name(s string) *string { return &s }

func TestExercises_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range Exercises() {
		assert.False(t, seen[def.ID], "duplicate id %s", def.ID)
		seen[def.ID] = true
	}
	for _, item := range CardioChecklist() {
		assert.False(t, seen[item.ID], "cardio id %s collides", item.ID)
		seen[item.ID] = true
	}
}

func TestEffectiveExercises_OverridesOnlyPresentFields(t *testing.T) {
	base := Exercises()
	overrides := map[string]models.CustomizationFields{
		"chin-ups":  {Name: name("Weighted Chin-Ups")},
		"pull-ups":  {Prescription: name("3x8")},
		"retired-x": {Name: name("Ghost")},
	}

	eff := EffectiveExercises(base, overrides)
	require.Len(t, eff, len(base))

	l := NewLookup(eff, nil)
	chin, _ := l.Exercise("chin-ups")
	assert.Equal(t, "Weighted Chin-Ups", chin.Name)
	assert.Equal(t, "1x15", chin.Prescription)

	pull, _ := l.Exercise("pull-ups")
	assert.Equal(t, "Pull-Ups", pull.Name)
	assert.Equal(t, "3x8", pull.Prescription)

	_, ok := l.Exercise("retired-x")
	assert.False(t, ok)

	// base untouched
	assert.Equal(t, "Chin-Ups", NewLookup(base, nil).exercises["chin-ups"].Name)
}

func TestEffectiveExercises_Idempotent(t *testing.T) {
	base := Exercises()
	overrides := map[string]models.CustomizationFields{
		"dead-hang": {Name: name("Hang"), Prescription: name("90s")},
	}

	once := EffectiveExercises(base, overrides)
	twice := EffectiveExercises(once, overrides)
	assert.Equal(t, once, twice)
	assert.Equal(t, once, EffectiveExercises(base, overrides))
}

func TestEffectiveCardio_IgnoresPrescription(t *testing.T) {
	base := CardioChecklist()
	eff := EffectiveCardio(base, map[string]models.CustomizationFields{
		"cardio-zone2": {Name: name("Incline walk"), Prescription: name("45 min")},
	})
	l := NewLookup(nil, eff)
	item, ok := l.Cardio("cardio-zone2")
	require.True(t, ok)
	assert.Equal(t, "Incline walk", item.Name)
	assert.Equal(t, models.CardioSteady, item.Kind)
}

func TestDeriveExerciseOverrides_KeepsOnlyDifferences(t *testing.T) {
	base := Exercises()
	imported := EffectiveExercises(base, map[string]models.CustomizationFields{
		"chin-ups": {Name: name("Weighted Chin-Ups")},
	})
	imported = append(imported, models.ExerciseDefinition{ID: "unknown", Name: "x"})

	derived := DeriveExerciseOverrides(base, imported)
	require.Len(t, derived, 1)
	require.NotNil(t, derived["chin-ups"].Name)
	assert.Equal(t, "Weighted Chin-Ups", *derived["chin-ups"].Name)
	assert.Nil(t, derived["chin-ups"].Prescription)

	assert.Equal(t, imported[:len(base)], EffectiveExercises(base, derived))
}

func TestDeriveCardioOverrides(t *testing.T) {
	base := CardioChecklist()
	imported := []models.CardioChecklistItem{
		{ID: "cardio-warmup", Name: "Row 5 min"},
		{ID: "cardio-zone2", Name: base[1].Name},
	}
	derived := DeriveCardioOverrides(base, imported)
	require.Len(t, derived, 1)
	assert.Equal(t, "Row 5 min", *derived["cardio-warmup"].Name)
}

func TestLookup_Kind(t *testing.T) {
	l := NewLookup(Exercises(), CardioChecklist())

	k, ok := l.Kind("chin-ups")
	require.True(t, ok)
	assert.Equal(t, models.CatalogStrength, k)

	k, ok = l.Kind("cardio-intervals")
	require.True(t, ok)
	assert.Equal(t, models.CatalogCardio, k)

	_, ok = l.Kind("nope")
	assert.False(t, ok)
}
