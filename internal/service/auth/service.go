// Package auth implements registration, password login, and access token
// validation.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tWoAlex/foodgram-project-react/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// jwtManager defines the token management interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// passwordHasher defines the password hashing interface needed by the auth service.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	jwt    jwtManager
	hasher passwordHasher
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt jwtManager,
	hasher passwordHasher,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		jwt:    jwt,
		hasher: hasher,
	}
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}

// ValidateToken resolves an access token to the user it was issued for.
func (s *Service) ValidateToken(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		// A valid token for a deleted user is no longer a valid identity.
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}
