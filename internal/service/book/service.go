package book

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/linkbook/internal/domain"
)

type bookRepo interface {
	GetByID(ctx context.Context, bookID uuid.UUID) (*domain.Book, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Book, error)
	Create(ctx context.Context, b *domain.Book) (*domain.Book, error)
	Update(ctx context.Context, bookID uuid.UUID, params domain.BookUpdateParams) (*domain.Book, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// MaxTitleLength is the longest book title accepted, in characters.
const MaxTitleLength = 200

// Service provides book management operations.
type Service struct {
	books bookRepo
	audit auditLogger
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new book service.
func NewService(log *slog.Logger, books bookRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		books: books,
		audit: audit,
		tx:    tx,
		log:   log.With("service", "book"),
	}
}
