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

// Create composes a new recipe for the authenticated user. The recipe, its
// component set, and its tag links are written in one transaction.
func (s *Service) Create(ctx context.Context, input ComposeInput) (*domain.AnnotatedRecipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.limits, true); err != nil {
		return nil, err
	}

	if err := s.checkRefs(ctx, input); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	taken, err := s.recipes.ExistsByAuthorAndName(ctx, userID, name, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("check recipe name: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("recipe %q: %w", name, domain.ErrAlreadyExists)
	}

	imagePath, err := s.images.SaveDataURI(input.ImageDataURI)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rec := &domain.Recipe{
		ID:          uuid.New(),
		AuthorID:    userID,
		Name:        name,
		Description: input.Description,
		ImagePath:   imagePath,
		CookingTime: input.CookingTime,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.recipes.Create(txCtx, rec); err != nil {
			return fmt.Errorf("create recipe: %w", err)
		}
		if err := s.recipes.ReplaceComponents(txCtx, rec.ID, componentsFromInput(rec.ID, input.Components)); err != nil {
			return fmt.Errorf("write components: %w", err)
		}
		if err := s.recipes.ReplaceTags(txCtx, rec.ID, input.TagIDs); err != nil {
			return fmt.Errorf("write tags: %w", err)
		}
		return nil
	})
	if err != nil {
		// The stored image is orphaned once the transaction fails.
		if relErr := s.images.Release(imagePath); relErr != nil {
			s.log.WarnContext(ctx, "failed to release image after rollback",
				slog.String("path", imagePath),
				slog.String("error", relErr.Error()),
			)
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "recipe created",
		slog.String("user_id", userID.String()),
		slog.String("recipe_id", rec.ID.String()),
		slog.String("name", name),
	)

	return s.Get(ctx, rec.ID)
}

func componentsFromInput(recipeID uuid.UUID, inputs []ComponentInput) []domain.Component {
	components := make([]domain.Component, len(inputs))
	for i, c := range inputs {
		components[i] = domain.Component{
			RecipeID:     recipeID,
			IngredientID: c.IngredientID,
			Amount:       c.Amount,
		}
	}
	return components
}
