package models

// Category groups strength exercises in the daily template
type Category string

const (
	CategoryLegs    Category = "legs"
	CategoryUpper   Category = "upper"
	CategoryCore    Category = "core"
	CategoryStretch Category = "stretch"
)

// Categories lists categories in display order
var Categories = []Category{CategoryLegs, CategoryUpper, CategoryCore, CategoryStretch}

// Title returns the section heading for a category
func (c Category) Title() string {
	switch c {
	case CategoryLegs:
		return "Legs"
	case CategoryUpper:
		return "Upper Body"
	case CategoryCore:
		return "Core"
	case CategoryStretch:
		return "Stretches"
	default:
		return string(c)
	}
}

// ExerciseDefinition is one strength exercise. ID is stable forever; Name and
// Prescription can be overridden by the user.
type ExerciseDefinition struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Prescription string   `json:"sets"`
	Category     Category `json:"category"`
	TracksWeight bool     `json:"hasWeight"`
}

// CardioKind classifies a cardio checklist item
type CardioKind string

const (
	CardioWarmup   CardioKind = "warmup"
	CardioInterval CardioKind = "interval"
	CardioSteady   CardioKind = "steady"
)

// CardioChecklistItem is one step of a cardio day
type CardioChecklistItem struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Kind CardioKind `json:"kind"`
}

// CatalogKind selects the strength catalog or the cardio checklist
type CatalogKind string

const (
	CatalogStrength CatalogKind = "strength"
	CatalogCardio   CatalogKind = "cardio"
)

// IsValid reports whether k is a known catalog kind
func (k CatalogKind) IsValid() bool {
	return k == CatalogStrength || k == CatalogCardio
}
