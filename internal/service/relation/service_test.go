package relation

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
	"github.com/tWoAlex/foodgram-project-react/pkg/ctxutil"
	"github.com/tWoAlex/foodgram-project-react/pkg/pagination"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockRelationRepo struct {
	AddFunc          func(ctx context.Context, kind domain.RelationKind, leftID, rightID uuid.UUID) (*domain.RelationRecord, error)
	RemoveFunc       func(ctx context.Context, kind domain.RelationKind, leftID, rightID uuid.UUID) error
	ExistsFunc       func(ctx context.Context, kind domain.RelationKind, leftID, rightID uuid.UUID) (bool, error)
	ListRightIDsFunc func(ctx context.Context, kind domain.RelationKind, leftID uuid.UUID, limit, offset int) ([]uuid.UUID, error)
	CountFunc        func(ctx context.Context, kind domain.RelationKind, leftID uuid.UUID) (int, error)
}

func (m *mockRelationRepo) Add(ctx context.Context, kind domain.RelationKind, leftID, rightID uuid.UUID) (*domain.RelationRecord, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, kind, leftID, rightID)
	}
	return &domain.RelationRecord{Kind: kind, LeftID: leftID, RightID: rightID}, nil
}

func (m *mockRelationRepo) Remove(ctx context.Context, kind domain.RelationKind, leftID, rightID uuid.UUID) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, kind, leftID, rightID)
	}
	return nil
}

func (m *mockRelationRepo) Exists(ctx context.Context, kind domain.RelationKind, leftID, rightID uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, kind, leftID, rightID)
	}
	return false, nil
}

func (m *mockRelationRepo) ListRightIDs(ctx context.Context, kind domain.RelationKind, leftID uuid.UUID, limit, offset int) ([]uuid.UUID, error) {
	if m.ListRightIDsFunc != nil {
		return m.ListRightIDsFunc(ctx, kind, leftID, limit, offset)
	}
	return []uuid.UUID{}, nil
}

func (m *mockRelationRepo) Count(ctx context.Context, kind domain.RelationKind, leftID uuid.UUID) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, kind, leftID)
	}
	return 0, nil
}

type mockUserRepo struct {
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

func (m *mockUserRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	out := make([]domain.User, len(ids))
	for i, id := range ids {
		out[i] = domain.User{ID: id, Username: "user-" + id.String()[:8]}
	}
	return out, nil
}

type mockRecipeLister struct {
	FindFunc func(ctx context.Context, viewerID *uuid.UUID, filter domain.RecipeFilter) ([]domain.AnnotatedRecipe, int, error)
}

func (m *mockRecipeLister) Find(ctx context.Context, viewerID *uuid.UUID, filter domain.RecipeFilter) ([]domain.AnnotatedRecipe, int, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, viewerID, filter)
	}
	return []domain.AnnotatedRecipe{}, 0, nil
}

func newTestService(relations *mockRelationRepo, users *mockUserRepo, recipes *mockRecipeLister) *Service {
	if relations == nil {
		relations = &mockRelationRepo{}
	}
	if users == nil {
		users = &mockUserRepo{}
	}
	if recipes == nil {
		recipes = &mockRecipeLister{}
	}
	return NewService(slog.Default(), relations, users, recipes)
}

// ===========================================================================
// Add / Remove / Exists tests
// ===========================================================================

func TestAdd_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	recipeID := uuid.New()
	ctx := ctxutil.WithUserID(context.Background(), userID)

	var gotKind domain.RelationKind
	var gotLeft, gotRight uuid.UUID
	relations := &mockRelationRepo{
		AddFunc: func(_ context.Context, kind domain.RelationKind, leftID, rightID uuid.UUID) (*domain.RelationRecord, error) {
			gotKind, gotLeft, gotRight = kind, leftID, rightID
			return &domain.RelationRecord{Kind: kind, LeftID: leftID, RightID: rightID}, nil
		},
	}
	svc := newTestService(relations, nil, nil)

	err := svc.Add(ctx, domain.RelationFavorite, recipeID)
	require.NoError(t, err)
	assert.Equal(t, domain.RelationFavorite, gotKind)
	assert.Equal(t, userID, gotLeft)
	assert.Equal(t, recipeID, gotRight)
}

func TestAdd_AlreadyExists_Propagates(t *testing.T) {
	t.Parallel()

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	relations := &mockRelationRepo{
		AddFunc: func(context.Context, domain.RelationKind, uuid.UUID, uuid.UUID) (*domain.RelationRecord, error) {
			return nil, domain.ErrAlreadyExists
		},
	}
	svc := newTestService(relations, nil, nil)

	err := svc.Add(ctx, domain.RelationShoppingCart, uuid.New())
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestAdd_SelfSubscription(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	ctx := ctxutil.WithUserID(context.Background(), userID)

	relations := &mockRelationRepo{
		AddFunc: func(context.Context, domain.RelationKind, uuid.UUID, uuid.UUID) (*domain.RelationRecord, error) {
			t.Error("repo.Add must not be reached for a self subscription")
			return nil, nil
		},
	}
	svc := newTestService(relations, nil, nil)

	err := svc.Add(ctx, domain.RelationSubscription, userID)
	assert.ErrorIs(t, err, domain.ErrSelfReference)
}

func TestAdd_SelfFavorite_Allowed(t *testing.T) {
	t.Parallel()

	// Only subscriptions forbid self pairs; a favorite's target is a recipe,
	// so an equal UUID is a coincidence, not a self reference.
	userID := uuid.New()
	ctx := ctxutil.WithUserID(context.Background(), userID)
	svc := newTestService(nil, nil, nil)

	err := svc.Add(ctx, domain.RelationFavorite, userID)
	assert.NoError(t, err)
}

func TestAdd_InvalidKind(t *testing.T) {
	t.Parallel()

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	svc := newTestService(nil, nil, nil)

	err := svc.Add(ctx, domain.RelationKind("BOGUS"), uuid.New())
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdd_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil)
	err := svc.Add(context.Background(), domain.RelationFavorite, uuid.New())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRemove_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	recipeID := uuid.New()
	ctx := ctxutil.WithUserID(context.Background(), userID)

	var gotLeft, gotRight uuid.UUID
	relations := &mockRelationRepo{
		RemoveFunc: func(_ context.Context, kind domain.RelationKind, leftID, rightID uuid.UUID) error {
			gotLeft, gotRight = leftID, rightID
			return nil
		},
	}
	svc := newTestService(relations, nil, nil)

	err := svc.Remove(ctx, domain.RelationShoppingCart, recipeID)
	require.NoError(t, err)
	assert.Equal(t, userID, gotLeft)
	assert.Equal(t, recipeID, gotRight)
}

func TestRemove_Absent_Propagates(t *testing.T) {
	t.Parallel()

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	relations := &mockRelationRepo{
		RemoveFunc: func(context.Context, domain.RelationKind, uuid.UUID, uuid.UUID) error {
			return domain.ErrNotFound
		},
	}
	svc := newTestService(relations, nil, nil)

	err := svc.Remove(ctx, domain.RelationFavorite, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExists(t *testing.T) {
	t.Parallel()

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	relations := &mockRelationRepo{
		ExistsFunc: func(context.Context, domain.RelationKind, uuid.UUID, uuid.UUID) (bool, error) {
			return true, nil
		},
	}
	svc := newTestService(relations, nil, nil)

	exists, err := svc.Exists(ctx, domain.RelationFavorite, uuid.New())
	require.NoError(t, err)
	assert.True(t, exists)
}

// ===========================================================================
// ListSubscriptions tests
// ===========================================================================

func TestListSubscriptions_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	authorA := uuid.New()
	authorB := uuid.New()
	ctx := ctxutil.WithUserID(context.Background(), userID)

	relations := &mockRelationRepo{
		ListRightIDsFunc: func(_ context.Context, kind domain.RelationKind, leftID uuid.UUID, limit, offset int) ([]uuid.UUID, error) {
			assert.Equal(t, domain.RelationSubscription, kind)
			assert.Equal(t, userID, leftID)
			return []uuid.UUID{authorA, authorB}, nil
		},
		CountFunc: func(context.Context, domain.RelationKind, uuid.UUID) (int, error) {
			return 2, nil
		},
	}
	recipes := &mockRecipeLister{
		FindFunc: func(_ context.Context, viewerID *uuid.UUID, filter domain.RecipeFilter) ([]domain.AnnotatedRecipe, int, error) {
			require.NotNil(t, filter.AuthorID)
			assert.Equal(t, recipesPerAuthor, filter.Limit)
			if *filter.AuthorID == authorA {
				return []domain.AnnotatedRecipe{{Recipe: domain.Recipe{ID: uuid.New(), AuthorID: authorA}}}, 7, nil
			}
			return []domain.AnnotatedRecipe{}, 0, nil
		},
	}
	svc := newTestService(relations, nil, recipes)

	result, err := svc.ListSubscriptions(ctx, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Authors, 2)

	assert.Equal(t, authorA, result.Authors[0].ID)
	assert.True(t, result.Authors[0].IsSubscribed)
	assert.Len(t, result.Authors[0].Recipes, 1)
	assert.Equal(t, 7, result.Authors[0].RecipeCount)

	assert.Equal(t, authorB, result.Authors[1].ID)
	assert.Empty(t, result.Authors[1].Recipes)

	assert.Equal(t, 2, result.Meta.Count)
	assert.False(t, result.Meta.HasNext)
}

func TestListSubscriptions_Empty(t *testing.T) {
	t.Parallel()

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	svc := newTestService(nil, nil, nil)

	result, err := svc.ListSubscriptions(ctx, pagination.Params{})
	require.NoError(t, err)
	assert.NotNil(t, result.Authors)
	assert.Empty(t, result.Authors)
}

func TestListSubscriptions_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil)
	_, err := svc.ListSubscriptions(context.Background(), pagination.Params{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
