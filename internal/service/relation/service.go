// Package relation implements the user-to-entity toggle relations:
// favorites, shopping cart entries, and subscriptions. All three share one
// add/remove/exists shape; the kind carries the storage differences.
package relation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

type relationRepo interface {
	Add(ctx context.Context, kind domain.RelationKind, leftID, rightID uuid.UUID) (*domain.RelationRecord, error)
	Remove(ctx context.Context, kind domain.RelationKind, leftID, rightID uuid.UUID) error
	Exists(ctx context.Context, kind domain.RelationKind, leftID, rightID uuid.UUID) (bool, error)
	ListRightIDs(ctx context.Context, kind domain.RelationKind, leftID uuid.UUID, limit, offset int) ([]uuid.UUID, error)
	Count(ctx context.Context, kind domain.RelationKind, leftID uuid.UUID) (int, error)
}

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type recipeLister interface {
	Find(ctx context.Context, viewerID *uuid.UUID, filter domain.RecipeFilter) ([]domain.AnnotatedRecipe, int, error)
}

// Service provides the favorite, cart, and subscription toggles.
type Service struct {
	relations relationRepo
	users     userRepo
	recipes   recipeLister
	log       *slog.Logger
}

// NewService creates a new Relation service.
func NewService(
	log *slog.Logger,
	relations relationRepo,
	users userRepo,
	recipes recipeLister,
) *Service {
	return &Service{
		relations: relations,
		users:     users,
		recipes:   recipes,
		log:       log.With("service", "relation"),
	}
}
