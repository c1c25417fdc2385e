package link

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/linkbook/internal/domain"
)

type linkRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Link, error)
	List(ctx context.Context, filter domain.LinkFilter) ([]*domain.Link, error)
	Create(ctx context.Context, l *domain.Link) (*domain.Link, error)
	Update(ctx context.Context, id uuid.UUID, params domain.LinkUpdateParams) (*domain.Link, error)
}

type tagRepo interface {
	ReplaceForLink(ctx context.Context, linkID uuid.UUID, names []string) ([]domain.Tag, error)
	GetByLinkID(ctx context.Context, linkID uuid.UUID) ([]domain.Tag, error)
}

type bookRepo interface {
	GetByID(ctx context.Context, bookID uuid.UUID) (*domain.Book, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Book, error)
	GetByLinkID(ctx context.Context, linkID uuid.UUID) ([]*domain.Book, error)
	GetBookIDsByLinkID(ctx context.Context, linkID uuid.UUID) ([]uuid.UUID, error)
	AttachLink(ctx context.Context, linkID uuid.UUID, bookIDs []uuid.UUID) error
	DetachLink(ctx context.Context, linkID uuid.UUID, bookIDs []uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DefaultRecentLimit is the index page size.
const DefaultRecentLimit = 30

// Service manages links, their tags and their book memberships.
type Service struct {
	links linkRepo
	tags  tagRepo
	books bookRepo
	audit auditLogger
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new link service.
func NewService(
	log *slog.Logger,
	links linkRepo,
	tags tagRepo,
	books bookRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		links: links,
		tags:  tags,
		books: books,
		audit: audit,
		tx:    tx,
		log:   log.With("service", "link"),
	}
}
