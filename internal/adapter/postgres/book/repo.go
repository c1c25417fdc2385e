// Package book implements the Book repository using PostgreSQL.
// It provides CRUD operations for user-owned books and M2M link membership
// via the link_books join table.
package book

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/linkbook/internal/adapter/postgres"
	"github.com/heartmarshall/linkbook/internal/domain"
)

var bookColumns = []string{
	"b.id", "b.user_id", "b.title", "b.description", "b.created_at", "b.updated_at",
}

type bookRow struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
	LinkCount   int       `db:"link_count"`
}

func (r bookRow) toDomain() *domain.Book {
	return &domain.Book{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		LinkCount:   r.LinkCount,
	}
}

func toDomainBooks(rows []bookRow) []*domain.Book {
	books := make([]*domain.Book, len(rows))
	for i, row := range rows {
		books[i] = row.toDomain()
	}
	return books
}

// Repo provides book persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new book repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a book by primary key together with its link count.
func (r *Repo) GetByID(ctx context.Context, bookID uuid.UUID) (*domain.Book, error) {
	query := postgres.Builder().
		Select(bookColumns...).
		Column("(SELECT count(*) FROM link_books lb WHERE lb.book_id = b.id) AS link_count").
		From("books b").
		Where(squirrel.Eq{"b.id": bookID})

	var row bookRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query); err != nil {
		return nil, postgres.MapError(err, "book", bookID)
	}
	return row.toDomain(), nil
}

// ListByUser returns all books of a user ordered by title.
// Returns an empty slice (not nil) when the user has no books.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Book, error) {
	query := postgres.Builder().
		Select(bookColumns...).
		Column("count(lb.link_id) AS link_count").
		From("books b").
		LeftJoin("link_books lb ON lb.book_id = b.id").
		Where(squirrel.Eq{"b.user_id": userID}).
		GroupBy("b.id").
		OrderBy("b.title")

	var rows []bookRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return toDomainBooks(rows), nil
}

// GetByLinkID returns the books a link belongs to, ordered by title.
func (r *Repo) GetByLinkID(ctx context.Context, linkID uuid.UUID) ([]*domain.Book, error) {
	query := postgres.Builder().
		Select(bookColumns...).
		From("link_books lb").
		Join("books b ON b.id = lb.book_id").
		Where(squirrel.Eq{"lb.link_id": linkID}).
		OrderBy("b.title")

	var rows []bookRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query); err != nil {
		return nil, fmt.Errorf("get books by link_id: %w", err)
	}
	return toDomainBooks(rows), nil
}

// GetBookIDsByLinkID returns the ids of all books a link belongs to,
// regardless of owner.
func (r *Repo) GetBookIDsByLinkID(ctx context.Context, linkID uuid.UUID) ([]uuid.UUID, error) {
	query := postgres.Builder().
		Select("book_id").
		From("link_books").
		Where(squirrel.Eq{"link_id": linkID})

	ids := []uuid.UUID{}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &ids, query); err != nil {
		return nil, fmt.Errorf("get book_ids by link_id: %w", err)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new book and returns the persisted domain.Book.
// Returns domain.ErrAlreadyExists if the user already has a book with the same title.
func (r *Repo) Create(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	query := postgres.Builder().
		Insert("books").
		Columns("user_id", "title", "description").
		Values(b.UserID, b.Title, b.Description).
		Suffix("RETURNING id, user_id, title, description, created_at, updated_at")

	var row bookRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query); err != nil {
		return nil, postgres.MapError(err, "book", uuid.Nil)
	}
	return row.toDomain(), nil
}

// Update overwrites the title and description of a book.
// Returns domain.ErrNotFound if the book does not exist.
func (r *Repo) Update(ctx context.Context, bookID uuid.UUID, params domain.BookUpdateParams) (*domain.Book, error) {
	query := postgres.Builder().
		Update("books").
		Set("title", params.Title).
		Set("description", params.Description).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": bookID}).
		Suffix("RETURNING id, user_id, title, description, created_at, updated_at")

	var row bookRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query); err != nil {
		return nil, postgres.MapError(err, "book", bookID)
	}
	return row.toDomain(), nil
}

// AttachLink adds the link to each of the books.
// Idempotent: existing memberships are skipped (ON CONFLICT DO NOTHING).
func (r *Repo) AttachLink(ctx context.Context, linkID uuid.UUID, bookIDs []uuid.UUID) error {
	if len(bookIDs) == 0 {
		return nil
	}

	insert := postgres.Builder().
		Insert("link_books").
		Columns("link_id", "book_id")
	for _, id := range bookIDs {
		insert = insert.Values(linkID, id)
	}
	insert = insert.Suffix("ON CONFLICT (link_id, book_id) DO NOTHING")

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), insert); err != nil {
		return postgres.MapError(err, "link_book", linkID)
	}
	return nil
}

// DetachLink removes the link from each of the books.
// Missing memberships are not an error.
func (r *Repo) DetachLink(ctx context.Context, linkID uuid.UUID, bookIDs []uuid.UUID) error {
	if len(bookIDs) == 0 {
		return nil
	}

	query := postgres.Builder().
		Delete("link_books").
		Where(squirrel.Eq{"link_id": linkID, "book_id": bookIDs})

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), query); err != nil {
		return postgres.MapError(err, "link_book", linkID)
	}
	return nil
}
