// Package auth implements user registration, login, and token-backed
// identity lookups.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sweetlab/sweetshop-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

// jwtManager defines the JWT token management interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
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
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager, hasher passwordHasher) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		jwt:    jwt,
		hasher: hasher,
	}
}
