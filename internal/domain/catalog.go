package domain

import "github.com/google/uuid"

// Ingredient is a catalog ingredient. Identity is the (name, measurement_unit)
// pair; both fields are immutable after creation.
type Ingredient struct {
	ID              uuid.UUID
	Name            string
	MeasurementUnit string
}

// Tag is an administratively managed recipe label. Name, slug and color
// are each unique across the catalog.
type Tag struct {
	ID    uuid.UUID
	Name  string
	Slug  string
	Color string
}
