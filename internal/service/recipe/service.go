// Package recipe implements recipe composition and the filtered catalog
// listing. Writes are full-replace: a recipe's component and tag sets are
// swapped atomically inside one transaction.
package recipe

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tWoAlex/foodgram-project-react/internal/adapter/postgres/tag"
	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

type recipeRepo interface {
	Create(ctx context.Context, rec *domain.Recipe) error
	Update(ctx context.Context, rec *domain.Recipe) error
	Delete(ctx context.Context, recipeID uuid.UUID) error
	ExistsByAuthorAndName(ctx context.Context, authorID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)
	ReplaceComponents(ctx context.Context, recipeID uuid.UUID, components []domain.Component) error
	ReplaceTags(ctx context.Context, recipeID uuid.UUID, tagIDs []uuid.UUID) error
	Find(ctx context.Context, viewerID *uuid.UUID, filter domain.RecipeFilter) ([]domain.AnnotatedRecipe, int, error)
	GetAnnotatedByID(ctx context.Context, viewerID *uuid.UUID, recipeID uuid.UUID) (*domain.AnnotatedRecipe, error)
	GetComponentsByRecipeIDs(ctx context.Context, recipeIDs []uuid.UUID) ([]domain.Component, error)
}

type tagRepo interface {
	CountByIDs(ctx context.Context, ids []uuid.UUID) (int, error)
	GetByRecipeIDs(ctx context.Context, recipeIDs []uuid.UUID) ([]tag.TagWithRecipeID, error)
}

type ingredientRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Ingredient, error)
}

type imageStore interface {
	SaveDataURI(dataURI string) (string, error)
	Release(relPath string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Limits bounds recipe composition input.
type Limits struct {
	MaxComponents        int
	MaxTags              int
	MaxNameLength        int
	MaxDescriptionLength int
}

// Service provides recipe composition and listing operations.
type Service struct {
	recipes     recipeRepo
	tags        tagRepo
	ingredients ingredientRepo
	images      imageStore
	tx          txManager
	limits      Limits
	log         *slog.Logger
}

// NewService creates a new Recipe service.
func NewService(
	log *slog.Logger,
	recipes recipeRepo,
	tags tagRepo,
	ingredients ingredientRepo,
	images imageStore,
	tx txManager,
	limits Limits,
) *Service {
	return &Service{
		recipes:     recipes,
		tags:        tags,
		ingredients: ingredients,
		images:      images,
		tx:          tx,
		limits:      limits,
		log:         log.With("service", "recipe"),
	}
}
