// Package catalog holds the built-in exercise and cardio definitions and
// merges user customizations onto them.
package catalog

import (
	"github.com/balkashynov/blueprint/internal/models"
)

// Exercises returns the built-in strength catalog in display order.
// A retired exercise must stay in this list so old history still resolves.
func Exercises() []models.ExerciseDefinition {
	return []models.ExerciseDefinition{
		// Legs
		{ID: "sled-pull", Name: "Backward Sled Pull", Prescription: "5 min", Category: models.CategoryLegs},
		{ID: "dead-hang", Name: "Dead Hang", Prescription: "60s", Category: models.CategoryLegs},
		{ID: "poliquin-stepups", Name: "Poliquin Step-Ups", Prescription: "3x10/leg", Category: models.CategoryLegs, TracksWeight: true},
		{ID: "slant-squats", Name: "Slant Board Squats", Prescription: "3x15", Category: models.CategoryLegs, TracksWeight: true},
		{ID: "split-squats", Name: "Split Squats", Prescription: "3x10/leg", Category: models.CategoryLegs, TracksWeight: true},
		{ID: "nordic-curls", Name: "Nordic Hamstring Curls", Prescription: "1x10", Category: models.CategoryLegs},
		{ID: "reverse-nordic", Name: "Reverse Nordic Curls", Prescription: "1x10", Category: models.CategoryLegs},
		{ID: "tibialis-raises", Name: "Tibialis Raises", Prescription: "1x25", Category: models.CategoryLegs, TracksWeight: true},
		{ID: "isotib-rotations", Name: "IsoTib Rotations", Prescription: "1x15/way", Category: models.CategoryLegs, TracksWeight: true},
		{ID: "seated-calf", Name: "Seated Calf Raises", Prescription: "1x25", Category: models.CategoryLegs, TracksWeight: true},

		// Upper body
		{ID: "chin-ups", Name: "Chin-Ups", Prescription: "1x15", Category: models.CategoryUpper, TracksWeight: true},
		{ID: "pull-ups", Name: "Pull-Ups", Prescription: "1x15", Category: models.CategoryUpper, TracksWeight: true},
		{ID: "face-pulls", Name: "Face Pulls", Prescription: "1x15", Category: models.CategoryUpper, TracksWeight: true},
		{ID: "butterfly-pull", Name: "Butterfly Pull", Prescription: "1x15", Category: models.CategoryUpper, TracksWeight: true},
		{ID: "band-pull-aparts", Name: "Band Pull-Aparts", Prescription: "1x15", Category: models.CategoryUpper},
		{ID: "db-ext-rotation", Name: "DB Ext Rotation", Prescription: "1x15", Category: models.CategoryUpper, TracksWeight: true},
		{ID: "tricep-extensions", Name: "Tricep Extensions", Prescription: "1x25", Category: models.CategoryUpper, TracksWeight: true},
		{ID: "bicep-curls", Name: "Bicep Curls", Prescription: "1x15", Category: models.CategoryUpper, TracksWeight: true},

		// Core
		{ID: "hanging-leg-raises", Name: "Hanging Leg Raises", Prescription: "1x50", Category: models.CategoryCore},
		{ID: "oblique-touches", Name: "Oblique Touches", Prescription: "1x50/side", Category: models.CategoryCore},
		{ID: "back-extensions", Name: "Back Extensions", Prescription: "1x25", Category: models.CategoryCore, TracksWeight: true},

		// Stretches
		{ID: "stretches", Name: "Couch, Pigeon, Shin Stretches", Prescription: "5 min", Category: models.CategoryStretch},
	}
}

// CardioChecklist returns the built-in cardio day checklist
func CardioChecklist() []models.CardioChecklistItem {
	return []models.CardioChecklistItem{
		{ID: "cardio-warmup", Name: "5 min easy warm-up", Kind: models.CardioWarmup},
		{ID: "cardio-zone2", Name: "Zone 2 steady state", Kind: models.CardioSteady},
		{ID: "cardio-intervals", Name: "Vigorous intervals", Kind: models.CardioInterval},
		{ID: "cardio-cooldown", Name: "5 min cool-down", Kind: models.CardioWarmup},
	}
}

// ExerciseIDs returns the ids of defs in order
func ExerciseIDs(defs []models.ExerciseDefinition) []string {
	ids := make([]string, len(defs))
	for i, d := range defs {
		ids[i] = d.ID
	}
	return ids
}

// CardioIDs returns the ids of items in order
func CardioIDs(items []models.CardioChecklistItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

// Lookup indexes an effective catalog by id
type Lookup struct {
	exercises map[string]models.ExerciseDefinition
	cardio    map[string]models.CardioChecklistItem
}

// NewLookup builds a Lookup over both catalogs
func NewLookup(defs []models.ExerciseDefinition, items []models.CardioChecklistItem) Lookup {
	l := Lookup{
		exercises: make(map[string]models.ExerciseDefinition, len(defs)),
		cardio:    make(map[string]models.CardioChecklistItem, len(items)),
	}
	for _, d := range defs {
		l.exercises[d.ID] = d
	}
	for _, it := range items {
		l.cardio[it.ID] = it
	}
	return l
}

// Exercise returns the strength definition with the given id
func (l Lookup) Exercise(id string) (models.ExerciseDefinition, bool) {
	d, ok := l.exercises[id]
	return d, ok
}

// Cardio returns the cardio item with the given id
func (l Lookup) Cardio(id string) (models.CardioChecklistItem, bool) {
	it, ok := l.cardio[id]
	return it, ok
}

// Kind reports which catalog id belongs to
func (l Lookup) Kind(id string) (models.CatalogKind, bool) {
	if _, ok := l.exercises[id]; ok {
		return models.CatalogStrength, true
	}
	if _, ok := l.cardio[id]; ok {
		return models.CatalogCardio, true
	}
	return "", false
}

// Name resolves the display name of any id in either catalog
func (l Lookup) Name(id string) (string, bool) {
	if d, ok := l.exercises[id]; ok {
		return d.Name, true
	}
	if it, ok := l.cardio[id]; ok {
		return it.Name, true
	}
	return "", false
}
