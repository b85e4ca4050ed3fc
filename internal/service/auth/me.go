package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sweetlab/sweetshop-backend/internal/domain"
	"github.com/sweetlab/sweetshop-backend/pkg/ctxutil"
)

// Me returns the authenticated user's profile. The user id comes from the
// request context set by the auth middleware.
func (s *Service) Me(ctx context.Context) (domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("auth.Me: %w", err)
	}

	return user, nil
}

// ValidateToken checks an access token and returns the subject's id and
// role. Used by the auth middleware.
func (s *Service) ValidateToken(token string) (uuid.UUID, domain.UserRole, error) {
	userID, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return userID, domain.UserRole(role), nil
}
