package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

// ListTags returns every tag, ordered by name.
func (s *Service) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// GetTag returns one tag by ID.
func (s *Service) GetTag(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	t, err := s.tags.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return t, nil
}

// SearchIngredients returns ingredients whose name contains the search
// term, case-insensitively. An empty term returns the whole catalog.
func (s *Service) SearchIngredients(ctx context.Context, name string) ([]domain.Ingredient, error) {
	ingredients, err := s.ingredients.List(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("search ingredients: %w", err)
	}
	return ingredients, nil
}

// GetIngredient returns one ingredient by ID.
func (s *Service) GetIngredient(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error) {
	ing, err := s.ingredients.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return ing, nil
}
