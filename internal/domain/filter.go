package domain

import "github.com/google/uuid"

// RecipeFilter defines parameters for filtering the recipe listing.
// Nil / empty fields mean "no filter".
type RecipeFilter struct {
	// AuthorID filters recipes by exact author match.
	AuthorID *uuid.UUID

	// TagSlugs keeps only recipes carrying EVERY slug in the set
	// (intersection, not union).
	TagSlugs []string

	// FavoritedOnly keeps only recipes the viewer has favorited.
	// Ignored for an anonymous viewer.
	FavoritedOnly bool

	// InCartOnly keeps only recipes in the viewer's shopping cart.
	// Ignored for an anonymous viewer.
	InCartOnly bool

	// Limit is the maximum number of recipes to return. Default: 6, max: 100.
	Limit int

	// Offset is the number of recipes to skip.
	Offset int
}

const (
	defaultRecipeLimit = 6
	maxRecipeLimit     = 100
)

// Normalize applies defaults and clamps values.
func (f *RecipeFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultRecipeLimit
	}
	if f.Limit > maxRecipeLimit {
		f.Limit = maxRecipeLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
