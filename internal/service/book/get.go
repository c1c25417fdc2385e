package book

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/linkbook/internal/domain"
	"github.com/heartmarshall/linkbook/pkg/ctxutil"
)

// Get returns a book by id. Books are public.
func (s *Service) Get(ctx context.Context, bookID uuid.UUID) (*domain.Book, error) {
	b, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("book.Get: %w", err)
	}
	return b, nil
}

// ListForOwner returns the authenticated user's books ordered by title.
func (s *Service) ListForOwner(ctx context.Context) ([]*domain.Book, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	books, err := s.books.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("book.ListForOwner: %w", err)
	}
	return books, nil
}
