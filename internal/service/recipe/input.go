package recipe

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

// ComponentInput names one ingredient and its amount in a recipe.
type ComponentInput struct {
	IngredientID uuid.UUID
	Amount       int
}

// ComposeInput holds the full composition of a recipe. Create and Replace
// take the same shape: a replace overwrites every part of the recipe.
type ComposeInput struct {
	Name         string
	Description  string
	ImageDataURI string // empty on replace = keep the current image
	CookingTime  int
	Components   []ComponentInput
	TagIDs       []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ComposeInput) Validate(limits Limits, requireImage bool) error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > limits.MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", limits.MaxNameLength)})
	}

	if len(i.Description) > limits.MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", limits.MaxDescriptionLength)})
	}

	if requireImage && i.ImageDataURI == "" {
		errs = append(errs, domain.FieldError{Field: "image", Message: "required"})
	}

	if i.CookingTime < 1 {
		errs = append(errs, domain.FieldError{Field: "cooking_time", Message: "must be at least 1"})
	}

	if len(i.Components) == 0 {
		errs = append(errs, domain.FieldError{Field: "ingredients", Message: "required"})
	}
	if len(i.Components) > limits.MaxComponents {
		errs = append(errs, domain.FieldError{Field: "ingredients", Message: fmt.Sprintf("max %d items", limits.MaxComponents)})
	}

	seen := make(map[uuid.UUID]bool, len(i.Components))
	for idx, c := range i.Components {
		if c.IngredientID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("ingredients[%d].id", idx), Message: "required"})
			continue
		}
		if seen[c.IngredientID] {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("ingredients[%d].id", idx), Message: "duplicate ingredient"})
		}
		seen[c.IngredientID] = true
		if c.Amount < 1 {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("ingredients[%d].amount", idx), Message: "must be at least 1"})
		}
	}

	if len(i.TagIDs) > limits.MaxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: fmt.Sprintf("max %d items", limits.MaxTags)})
	}
	seenTags := make(map[uuid.UUID]bool, len(i.TagIDs))
	for idx, id := range i.TagIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("tags[%d]", idx), Message: "required"})
			continue
		}
		if seenTags[id] {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("tags[%d]", idx), Message: "duplicate tag"})
		}
		seenTags[id] = true
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the catalog listing filters.
type ListInput struct {
	AuthorID      *uuid.UUID
	TagSlugs      []string
	FavoritedOnly bool
	InCartOnly    bool
	Page          int
	Limit         int
}
