// Package catalog serves the administratively managed reference data:
// the tag set and the ingredient catalog. Both are read-only at runtime;
// writes happen through migrations and the offline seeder.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

type tagRepo interface {
	List(ctx context.Context) ([]domain.Tag, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
}

type ingredientRepo interface {
	List(ctx context.Context, search string) ([]domain.Ingredient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error)
}

// Service implements tag and ingredient catalog reads.
type Service struct {
	log         *slog.Logger
	tags        tagRepo
	ingredients ingredientRepo
}

// NewService creates a new catalog service instance.
func NewService(logger *slog.Logger, tags tagRepo, ingredients ingredientRepo) *Service {
	return &Service{
		log:         logger.With("service", "catalog"),
		tags:        tags,
		ingredients: ingredients,
	}
}
