package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
	"github.com/tWoAlex/foodgram-project-react/pkg/ctxutil"
)

// GetProfile returns the authenticated user's own profile.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return u, nil
}

// GetUser returns a user annotated with the viewer's subscription state.
// For an anonymous viewer IsSubscribed is always false.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	author := &domain.Author{User: *u}

	if viewerID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		subscribed, err := s.relations.Exists(ctx, domain.RelationSubscription, viewerID, id)
		if err != nil {
			return nil, fmt.Errorf("check subscription: %w", err)
		}
		author.IsSubscribed = subscribed
	}

	return author, nil
}
