package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/linkbook/internal/auth"
	"github.com/heartmarshall/linkbook/internal/domain"
)

// Register creates a new user with email + password authentication.
// Returns ErrAlreadyExists if the email or username is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Email and username uniqueness are enforced by DB constraints.
	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.Create(txCtx, &domain.User{
			Email:        input.Email,
			Username:     input.Username,
			PasswordHash: hash,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     user.ID,
			EntityType: domain.EntityTypeUser,
			EntityID:   &user.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"username": map[string]any{"new": user.Username},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		created = user
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueSession(created)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", created.ID.String()))

	return result, nil
}
