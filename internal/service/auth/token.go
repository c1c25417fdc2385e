package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/linkbook/internal/domain"
)

// ValidateToken checks a session token and returns the user id and username
// it was issued for. Tokens of deleted users are rejected.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, "", domain.ErrUnauthorized
		}
		return uuid.Nil, "", fmt.Errorf("auth.ValidateToken: %w", err)
	}

	return user.ID, user.Username, nil
}
