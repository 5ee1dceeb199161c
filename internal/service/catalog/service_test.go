package catalog

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

type mockTagRepo struct {
	ListFunc    func(ctx context.Context) ([]domain.Tag, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
}

func (m *mockTagRepo) List(ctx context.Context) ([]domain.Tag, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []domain.Tag{}, nil
}

func (m *mockTagRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

type mockIngredientRepo struct {
	ListFunc    func(ctx context.Context, search string) ([]domain.Ingredient, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error)
}

func (m *mockIngredientRepo) List(ctx context.Context, search string) ([]domain.Ingredient, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, search)
	}
	return []domain.Ingredient{}, nil
}

func (m *mockIngredientRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ingredient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func newTestService(tags *mockTagRepo, ingredients *mockIngredientRepo) *Service {
	if tags == nil {
		tags = &mockTagRepo{}
	}
	if ingredients == nil {
		ingredients = &mockIngredientRepo{}
	}
	return NewService(slog.Default(), tags, ingredients)
}

func TestListTags(t *testing.T) {
	tags := &mockTagRepo{
		ListFunc: func(ctx context.Context) ([]domain.Tag, error) {
			return []domain.Tag{
				{ID: uuid.New(), Name: "breakfast", Slug: "breakfast", Color: "#E26C2D"},
				{ID: uuid.New(), Name: "dinner", Slug: "dinner", Color: "#49B64E"},
			}, nil
		},
	}

	svc := newTestService(tags, nil)

	got, err := svc.ListTags(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "breakfast", got[0].Name)
}

func TestGetTag_NotFound(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.GetTag(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearchIngredients_TrimsSearchTerm(t *testing.T) {
	ingredients := &mockIngredientRepo{
		ListFunc: func(ctx context.Context, search string) ([]domain.Ingredient, error) {
			assert.Equal(t, "flour", search)
			return []domain.Ingredient{{ID: uuid.New(), Name: "wheat flour", MeasurementUnit: "g"}}, nil
		},
	}

	svc := newTestService(nil, ingredients)

	got, err := svc.SearchIngredients(context.Background(), "  flour ")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestGetIngredient_NotFound(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.GetIngredient(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
