package book

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/linkbook/internal/domain"
	"github.com/heartmarshall/linkbook/pkg/ctxutil"
)

// Edit renames or redescribes a book owned by the authenticated user.
func (s *Service) Edit(ctx context.Context, input EditBookInput) (*domain.Book, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Title, input.Description = trim(input.Title, input.Description)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Book
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.books.GetByID(txCtx, input.BookID)
		if err != nil {
			return fmt.Errorf("get book: %w", err)
		}
		if !old.IsOwnedBy(userID) {
			return fmt.Errorf("edit book %s: %w", input.BookID, domain.ErrForbidden)
		}

		updated, err = s.books.Update(txCtx, input.BookID, domain.BookUpdateParams{
			Title:       input.Title,
			Description: input.Description,
		})
		if err != nil {
			return fmt.Errorf("update book: %w", err)
		}

		changes := buildBookChanges(old, updated)
		if len(changes) == 0 {
			return nil
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeBook,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "book updated",
		slog.String("user_id", userID.String()),
		slog.String("book_id", updated.ID.String()),
	)

	return updated, nil
}

func buildBookChanges(old, updated *domain.Book) map[string]any {
	changes := make(map[string]any)
	if old.Title != updated.Title {
		changes["title"] = map[string]any{"old": old.Title, "new": updated.Title}
	}
	if old.Description != updated.Description {
		changes["description"] = map[string]any{"old": old.Description, "new": updated.Description}
	}
	return changes
}
