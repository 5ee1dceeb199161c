package relation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
	"github.com/tWoAlex/foodgram-project-react/pkg/ctxutil"
)

// Add creates a relation of the given kind from the authenticated user to
// the target. Adding an existing pair fails with domain.ErrAlreadyExists;
// a self-subscription fails with domain.ErrSelfReference before any write.
func (s *Service) Add(ctx context.Context, kind domain.RelationKind, targetID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !kind.IsValid() {
		return domain.NewValidationError("kind", fmt.Sprintf("unknown relation kind %q", kind))
	}
	if targetID == uuid.Nil {
		return domain.NewValidationError("target_id", "required")
	}

	if kind.ForbidsSelf() && targetID == userID {
		return domain.ErrSelfReference
	}

	if _, err := s.relations.Add(ctx, kind, userID, targetID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "relation added",
		slog.String("kind", kind.String()),
		slog.String("user_id", userID.String()),
		slog.String("target_id", targetID.String()),
	)

	return nil
}

// Remove deletes a relation of the given kind. Removing an absent pair
// fails with domain.ErrNotFound.
func (s *Service) Remove(ctx context.Context, kind domain.RelationKind, targetID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !kind.IsValid() {
		return domain.NewValidationError("kind", fmt.Sprintf("unknown relation kind %q", kind))
	}

	if err := s.relations.Remove(ctx, kind, userID, targetID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "relation removed",
		slog.String("kind", kind.String()),
		slog.String("user_id", userID.String()),
		slog.String("target_id", targetID.String()),
	)

	return nil
}

// Exists reports whether the authenticated user holds the relation.
func (s *Service) Exists(ctx context.Context, kind domain.RelationKind, targetID uuid.UUID) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}
	if !kind.IsValid() {
		return false, domain.NewValidationError("kind", fmt.Sprintf("unknown relation kind %q", kind))
	}

	return s.relations.Exists(ctx, kind, userID, targetID)
}
