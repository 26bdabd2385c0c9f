package catalog

import (
	"github.com/balkashynov/blueprint/internal/models"
)

// EffectiveExercises applies the strength overrides to base. It is pure: base
// and overrides are not modified, and overrides for ids missing from base are
// dropped.
func EffectiveExercises(base []models.ExerciseDefinition, overrides map[string]models.CustomizationFields) []models.ExerciseDefinition {
	out := make([]models.ExerciseDefinition, len(base))
	for i, def := range base {
		if f, ok := overrides[def.ID]; ok {
			if f.Name != nil {
				def.Name = *f.Name
			}
			if f.Prescription != nil {
				def.Prescription = *f.Prescription
			}
		}
		out[i] = def
	}
	return out
}

// EffectiveCardio applies the cardio overrides to base. Cardio items only
// carry a name, so a prescription override is ignored.
func EffectiveCardio(base []models.CardioChecklistItem, overrides map[string]models.CustomizationFields) []models.CardioChecklistItem {
	out := make([]models.CardioChecklistItem, len(base))
	for i, item := range base {
		if f, ok := overrides[item.ID]; ok && f.Name != nil {
			item.Name = *f.Name
		}
		out[i] = item
	}
	return out
}

// DeriveExerciseOverrides rebuilds strength overrides from an imported
// effective catalog. Only fields that differ from base are kept, so a later
// change to a built-in name still shows through where the user never
// customized it. Unknown ids are dropped.
func DeriveExerciseOverrides(base, imported []models.ExerciseDefinition) map[string]models.CustomizationFields {
	byID := make(map[string]models.ExerciseDefinition, len(base))
	for _, def := range base {
		byID[def.ID] = def
	}

	out := make(map[string]models.CustomizationFields)
	for _, imp := range imported {
		def, ok := byID[imp.ID]
		if !ok {
			continue
		}
		var f models.CustomizationFields
		if imp.Name != "" && imp.Name != def.Name {
			f.Name = strPtr(imp.Name)
		}
		if imp.Prescription != "" && imp.Prescription != def.Prescription {
			f.Prescription = strPtr(imp.Prescription)
		}
		if !f.IsEmpty() {
			out[imp.ID] = out[imp.ID].Merge(f)
		}
	}
	return out
}

// DeriveCardioOverrides is DeriveExerciseOverrides for the cardio checklist
func DeriveCardioOverrides(base, imported []models.CardioChecklistItem) map[string]models.CustomizationFields {
	byID := make(map[string]models.CardioChecklistItem, len(base))
	for _, item := range base {
		byID[item.ID] = item
	}

	out := make(map[string]models.CustomizationFields)
	for _, imp := range imported {
		item, ok := byID[imp.ID]
		if !ok {
			continue
		}
		if imp.Name != "" && imp.Name != item.Name {
			out[imp.ID] = models.CustomizationFields{Name: strPtr(imp.Name)}
		}
	}
	return out
}

func strPtr(s string) *string {
	return &s
}
