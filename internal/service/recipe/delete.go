package recipe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
	"github.com/tWoAlex/foodgram-project-react/pkg/ctxutil"
)

// Delete removes a recipe. Only the author may delete it. Components, tag
// links, favorites, and cart entries go with it via cascade.
func (s *Service) Delete(ctx context.Context, recipeID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	current, err := s.recipes.GetAnnotatedByID(ctx, &userID, recipeID)
	if err != nil {
		return err
	}
	if current.AuthorID != userID {
		return domain.ErrForbidden
	}

	if err := s.recipes.Delete(ctx, recipeID); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}

	if current.ImagePath != "" {
		if relErr := s.images.Release(current.ImagePath); relErr != nil {
			s.log.WarnContext(ctx, "failed to release image of deleted recipe",
				slog.String("path", current.ImagePath),
				slog.String("error", relErr.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "recipe deleted",
		slog.String("user_id", userID.String()),
		slog.String("recipe_id", recipeID.String()),
	)

	return nil
}
