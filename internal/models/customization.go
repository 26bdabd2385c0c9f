package models

// CustomizationFields holds the user overrides for one catalog entry. A nil
// field leaves the built-in value in place.
type CustomizationFields struct {
	Name         *string `json:"name,omitempty"`
	Prescription *string `json:"prescription,omitempty"`
}

// IsEmpty reports whether no field is overridden
func (f CustomizationFields) IsEmpty() bool {
	return f.Name == nil && f.Prescription == nil
}

// Merge returns f with every field present in other taking precedence
func (f CustomizationFields) Merge(other CustomizationFields) CustomizationFields {
	if other.Name != nil {
		name := *other.Name
		f.Name = &name
	}
	if other.Prescription != nil {
		p := *other.Prescription
		f.Prescription = &p
	}
	return f
}

// Overlay is the full set of user customizations for both catalogs
type Overlay struct {
	Strength map[string]CustomizationFields `json:"strength"`
	Cardio   map[string]CustomizationFields `json:"cardio"`
}

// NewOverlay returns an empty overlay
func NewOverlay() Overlay {
	return Overlay{
		Strength: make(map[string]CustomizationFields),
		Cardio:   make(map[string]CustomizationFields),
	}
}

// For returns the map holding overrides of the given catalog kind
func (o Overlay) For(kind CatalogKind) map[string]CustomizationFields {
	if kind == CatalogCardio {
		return o.Cardio
	}
	return o.Strength
}

// Clone deep-copies the overlay
func (o Overlay) Clone() Overlay {
	c := NewOverlay()
	for id, f := range o.Strength {
		c.Strength[id] = CustomizationFields{}.Merge(f)
	}
	for id, f := range o.Cardio {
		c.Cardio[id] = CustomizationFields{}.Merge(f)
	}
	return c
}

// Customization is the persisted row of one overlay entry
type Customization struct {
	Kind         CatalogKind `gorm:"primaryKey;size:16" json:"-"`
	ExerciseID   string      `gorm:"primaryKey" json:"id"`
	Name         *string     `json:"name,omitempty"`
	Prescription *string     `json:"prescription,omitempty"`
}

// Fields returns the overrides stored in the row
func (c Customization) Fields() CustomizationFields {
	return CustomizationFields{Name: c.Name, Prescription: c.Prescription}
}
