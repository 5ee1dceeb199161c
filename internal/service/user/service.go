// Package user implements profile reads: the authenticated viewer's own
// profile and other users as viewer-annotated authors.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type relationRepo interface {
	Exists(ctx context.Context, kind domain.RelationKind, leftID, rightID uuid.UUID) (bool, error)
}

// Service implements user profile operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	relations relationRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, relations relationRepo) *Service {
	return &Service{
		log:       logger.With("service", "user"),
		users:     users,
		relations: relations,
	}
}
