package domain

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a user-authored recipe. The (author, name) pair is unique.
// Components and Tags are owned collections: they are always written as
// whole sets and deleted together with the recipe.
type Recipe struct {
	ID          uuid.UUID
	AuthorID    uuid.UUID
	Name        string
	Description string
	ImagePath   string
	CookingTime int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Author     *User
	Components []Component
	Tags       []Tag
}

// Component binds one ingredient to a quantity within a recipe.
// The (recipe, ingredient) pair is unique; amount is always >= 1.
type Component struct {
	RecipeID     uuid.UUID
	IngredientID uuid.UUID
	Amount       int

	Ingredient Ingredient
}

// AnnotatedRecipe is a recipe together with the two viewer-relative flags.
// For an anonymous viewer both flags are always false.
type AnnotatedRecipe struct {
	Recipe
	IsFavorited      bool
	IsInShoppingCart bool
}

// PurchaseItem is one line of the aggregated shopping list: the summed
// amount of a single ingredient across every recipe in the viewer's cart.
type PurchaseItem struct {
	Name            string
	MeasurementUnit string
	TotalAmount     int
}
