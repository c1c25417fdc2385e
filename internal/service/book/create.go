package book

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/linkbook/internal/domain"
	"github.com/heartmarshall/linkbook/pkg/ctxutil"
)

// Create creates a book for the authenticated user. Titles are unique per
// owner; a duplicate yields ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, input CreateBookInput) (*domain.Book, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Title, input.Description = trim(input.Title, input.Description)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Book
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.books.Create(txCtx, &domain.Book{
			UserID:      userID,
			Title:       input.Title,
			Description: input.Description,
		})
		if err != nil {
			return fmt.Errorf("create book: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeBook,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"title": map[string]any{"new": created.Title},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "book created",
		slog.String("user_id", userID.String()),
		slog.String("book_id", created.ID.String()),
		slog.String("title", created.Title),
	)

	return created, nil
}
