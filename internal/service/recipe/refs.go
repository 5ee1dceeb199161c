package recipe

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

// checkRefs verifies every referenced ingredient and tag exists before the
// write transaction opens. The FK constraints remain the race-safe backstop;
// this precheck exists for the error message.
func (s *Service) checkRefs(ctx context.Context, input ComposeInput) error {
	ids := make([]uuid.UUID, len(input.Components))
	for i, c := range input.Components {
		ids[i] = c.IngredientID
	}

	known, err := s.ingredients.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("check ingredients: %w", err)
	}
	if len(known) != len(ids) {
		return fmt.Errorf("unknown ingredient: %w", domain.ErrNotFound)
	}

	if len(input.TagIDs) > 0 {
		count, err := s.tags.CountByIDs(ctx, input.TagIDs)
		if err != nil {
			return fmt.Errorf("check tags: %w", err)
		}
		if count != len(input.TagIDs) {
			return fmt.Errorf("unknown tag: %w", domain.ErrNotFound)
		}
	}

	return nil
}
