package user

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
	"github.com/tWoAlex/foodgram-project-react/pkg/ctxutil"
)

type mockUserRepo struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

type mockRelationRepo struct {
	ExistsFunc func(ctx context.Context, kind domain.RelationKind, leftID, rightID uuid.UUID) (bool, error)
}

func (m *mockRelationRepo) Exists(ctx context.Context, kind domain.RelationKind, leftID, rightID uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, kind, leftID, rightID)
	}
	return false, nil
}

func newTestService(users *mockUserRepo, relations *mockRelationRepo) *Service {
	if users == nil {
		users = &mockUserRepo{}
	}
	if relations == nil {
		relations = &mockRelationRepo{}
	}
	return NewService(slog.Default(), users, relations)
}

func TestGetProfile_Success(t *testing.T) {
	userID := uuid.New()
	users := &mockUserRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			assert.Equal(t, userID, id)
			return &domain.User{ID: id, Username: "chef"}, nil
		},
	}

	svc := newTestService(users, nil)
	ctx := ctxutil.WithUserID(context.Background(), userID)

	got, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "chef", got.Username)
}

func TestGetProfile_Unauthorized(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.GetProfile(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGetUser_AnnotatesSubscription(t *testing.T) {
	viewerID := uuid.New()
	targetID := uuid.New()

	users := &mockUserRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{ID: id, Username: "author"}, nil
		},
	}
	relations := &mockRelationRepo{
		ExistsFunc: func(ctx context.Context, kind domain.RelationKind, leftID, rightID uuid.UUID) (bool, error) {
			assert.Equal(t, domain.RelationSubscription, kind)
			assert.Equal(t, viewerID, leftID)
			assert.Equal(t, targetID, rightID)
			return true, nil
		},
	}

	svc := newTestService(users, relations)
	ctx := ctxutil.WithUserID(context.Background(), viewerID)

	got, err := svc.GetUser(ctx, targetID)
	require.NoError(t, err)
	assert.True(t, got.IsSubscribed)
}

func TestGetUser_AnonymousViewer(t *testing.T) {
	users := &mockUserRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		},
	}
	relations := &mockRelationRepo{
		ExistsFunc: func(ctx context.Context, kind domain.RelationKind, leftID, rightID uuid.UUID) (bool, error) {
			t.Fatal("Exists should not be called for an anonymous viewer")
			return false, nil
		},
	}

	svc := newTestService(users, relations)

	got, err := svc.GetUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, got.IsSubscribed)
}

func TestGetUser_NotFound(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.GetUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
