package recipe

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
	"github.com/tWoAlex/foodgram-project-react/pkg/ctxutil"
	"github.com/tWoAlex/foodgram-project-react/pkg/pagination"
)

// ListResult holds one page of the catalog plus paging metadata.
type ListResult struct {
	Recipes []domain.AnnotatedRecipe
	Meta    pagination.Meta
}

// List returns the filtered, viewer-annotated recipe catalog. For anonymous
// viewers the favorited/in-cart filters are inert and annotations are false.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	var viewerID *uuid.UUID
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		viewerID = &id
	}

	params := pagination.Params{Page: input.Page, Limit: input.Limit}
	params.Normalize()

	filter := domain.RecipeFilter{
		AuthorID:      input.AuthorID,
		TagSlugs:      input.TagSlugs,
		FavoritedOnly: input.FavoritedOnly,
		InCartOnly:    input.InCartOnly,
		Limit:         params.Limit,
		Offset:        params.Offset(),
	}
	if viewerID == nil {
		filter.FavoritedOnly = false
		filter.InCartOnly = false
	}

	recipes, total, err := s.recipes.Find(ctx, viewerID, filter)
	if err != nil {
		return nil, fmt.Errorf("find recipes: %w", err)
	}

	if err := s.attachDetails(ctx, recipes); err != nil {
		return nil, err
	}

	return &ListResult{
		Recipes: recipes,
		Meta:    pagination.NewMeta(total, params),
	}, nil
}

// Get returns one recipe with components, tags, and viewer annotations.
func (s *Service) Get(ctx context.Context, recipeID uuid.UUID) (*domain.AnnotatedRecipe, error) {
	var viewerID *uuid.UUID
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		viewerID = &id
	}

	rec, err := s.recipes.GetAnnotatedByID(ctx, viewerID, recipeID)
	if err != nil {
		return nil, err
	}

	page := []domain.AnnotatedRecipe{*rec}
	if err := s.attachDetails(ctx, page); err != nil {
		return nil, err
	}

	return &page[0], nil
}

// attachDetails batch-loads components and tags for a page of recipes.
func (s *Service) attachDetails(ctx context.Context, recipes []domain.AnnotatedRecipe) error {
	if len(recipes) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(recipes))
	index := make(map[uuid.UUID]int, len(recipes))
	for i := range recipes {
		ids[i] = recipes[i].ID
		index[recipes[i].ID] = i
		recipes[i].Components = []domain.Component{}
		recipes[i].Tags = []domain.Tag{}
	}

	components, err := s.recipes.GetComponentsByRecipeIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load components: %w", err)
	}
	for _, c := range components {
		i := index[c.RecipeID]
		recipes[i].Components = append(recipes[i].Components, c)
	}

	tagLinks, err := s.tags.GetByRecipeIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load tags: %w", err)
	}
	for _, link := range tagLinks {
		i := index[link.RecipeID]
		recipes[i].Tags = append(recipes[i].Tags, link.Tag)
	}

	return nil
}
