package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/linkbook/internal/auth"
	"github.com/heartmarshall/linkbook/internal/domain"
)

// Login authenticates a user by username or email and password.
// Returns ErrUnauthorized if the user is not found or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Login = strings.TrimSpace(input.Login)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		user *domain.User
		err  error
	)
	if strings.Contains(input.Login, "@") {
		user, err = s.users.GetByEmail(ctx, strings.ToLower(input.Login))
	} else {
		user, err = s.users.GetByUsername(ctx, input.Login)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := auth.CheckPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueSession(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
