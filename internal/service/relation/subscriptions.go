package relation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
	"github.com/tWoAlex/foodgram-project-react/pkg/ctxutil"
	"github.com/tWoAlex/foodgram-project-react/pkg/pagination"
)

// SubscribedAuthor is one followed author with a slice of their recipes.
type SubscribedAuthor struct {
	domain.Author
	Recipes     []domain.AnnotatedRecipe
	RecipeCount int
}

// SubscriptionsResult holds one page of followed authors.
type SubscriptionsResult struct {
	Authors []SubscribedAuthor
	Meta    pagination.Meta
}

// recipesPerAuthor caps how many recipes each author carries in the listing.
const recipesPerAuthor = 3

// ListSubscriptions returns the authors the authenticated user follows,
// in subscription order, each with their most recent recipes.
func (s *Service) ListSubscriptions(ctx context.Context, params pagination.Params) (*SubscriptionsResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	params.Normalize()

	authorIDs, err := s.relations.ListRightIDs(ctx, domain.RelationSubscription, userID, params.Limit, params.Offset())
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	total, err := s.relations.Count(ctx, domain.RelationSubscription, userID)
	if err != nil {
		return nil, fmt.Errorf("count subscriptions: %w", err)
	}

	result := &SubscriptionsResult{
		Authors: make([]SubscribedAuthor, 0, len(authorIDs)),
		Meta:    pagination.NewMeta(total, params),
	}
	if len(authorIDs) == 0 {
		return result, nil
	}

	users, err := s.users.GetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}
	byID := make(map[uuid.UUID]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	// Subscription order, not the user repo's ordering.
	for _, id := range authorIDs {
		u, ok := byID[id]
		if !ok {
			continue
		}

		authorID := id
		recipes, count, err := s.recipes.Find(ctx, &userID, domain.RecipeFilter{
			AuthorID: &authorID,
			Limit:    recipesPerAuthor,
		})
		if err != nil {
			return nil, fmt.Errorf("load recipes for author %s: %w", id, err)
		}

		result.Authors = append(result.Authors, SubscribedAuthor{
			Author:      domain.Author{User: u, IsSubscribed: true},
			Recipes:     recipes,
			RecipeCount: count,
		})
	}

	return result, nil
}
