package recipe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
	"github.com/tWoAlex/foodgram-project-react/pkg/ctxutil"
)

// Replace overwrites the whole composition of an existing recipe: scalar
// fields, the component set, and the tag links, in one transaction. Only the
// author may replace a recipe. An empty image keeps the current one.
func (s *Service) Replace(ctx context.Context, recipeID uuid.UUID, input ComposeInput) (*domain.AnnotatedRecipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.limits, false); err != nil {
		return nil, err
	}

	if err := s.checkRefs(ctx, input); err != nil {
		return nil, err
	}

	current, err := s.recipes.GetAnnotatedByID(ctx, &userID, recipeID)
	if err != nil {
		return nil, err
	}
	if current.AuthorID != userID {
		return nil, domain.ErrForbidden
	}

	name := strings.TrimSpace(input.Name)

	// The recipe's own row is excluded so keeping the name is not a collision.
	taken, err := s.recipes.ExistsByAuthorAndName(ctx, userID, name, recipeID)
	if err != nil {
		return nil, fmt.Errorf("check recipe name: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("recipe %q: %w", name, domain.ErrAlreadyExists)
	}

	imagePath := current.ImagePath
	newImage := input.ImageDataURI != ""
	if newImage {
		imagePath, err = s.images.SaveDataURI(input.ImageDataURI)
		if err != nil {
			return nil, err
		}
	}

	rec := &domain.Recipe{
		ID:          recipeID,
		AuthorID:    userID,
		Name:        name,
		Description: input.Description,
		ImagePath:   imagePath,
		CookingTime: input.CookingTime,
		UpdatedAt:   time.Now().UTC(),
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.recipes.Update(txCtx, rec); err != nil {
			return fmt.Errorf("update recipe: %w", err)
		}
		if err := s.recipes.ReplaceComponents(txCtx, recipeID, componentsFromInput(recipeID, input.Components)); err != nil {
			return fmt.Errorf("write components: %w", err)
		}
		if err := s.recipes.ReplaceTags(txCtx, recipeID, input.TagIDs); err != nil {
			return fmt.Errorf("write tags: %w", err)
		}
		return nil
	})
	if err != nil {
		if newImage {
			if relErr := s.images.Release(imagePath); relErr != nil {
				s.log.WarnContext(ctx, "failed to release image after rollback",
					slog.String("path", imagePath),
					slog.String("error", relErr.Error()),
				)
			}
		}
		return nil, err
	}

	// The old image is unreferenced once the replace commits.
	if newImage && current.ImagePath != "" {
		if relErr := s.images.Release(current.ImagePath); relErr != nil {
			s.log.WarnContext(ctx, "failed to release replaced image",
				slog.String("path", current.ImagePath),
				slog.String("error", relErr.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "recipe replaced",
		slog.String("user_id", userID.String()),
		slog.String("recipe_id", recipeID.String()),
	)

	return s.Get(ctx, recipeID)
}
