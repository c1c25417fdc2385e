// Package link implements the Link repository using PostgreSQL.
package link

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/linkbook/internal/adapter/postgres"
	"github.com/heartmarshall/linkbook/internal/domain"
)

// DefaultListLimit caps listings that do not ask for a limit.
const DefaultListLimit = 50

var linkColumns = []string{
	"l.id", "l.user_id", "l.url", "l.title", "l.description", "l.created_at", "l.updated_at",
}

const returningColumns = "RETURNING id, user_id, url, title, description, created_at, updated_at"

type linkRow struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	URL         string    `db:"url"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r linkRow) toDomain() *domain.Link {
	return &domain.Link{
		ID:          r.ID,
		UserID:      r.UserID,
		URL:         r.URL,
		Title:       r.Title,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Repo provides link persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new link repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a link by primary key without tags or books.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Link, error) {
	query := postgres.Builder().
		Select(linkColumns...).
		From("links l").
		Where(squirrel.Eq{"l.id": id})

	var row linkRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query); err != nil {
		return nil, postgres.MapError(err, "link", id)
	}
	return row.toDomain(), nil
}

// Exists reports whether a link with the id exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM links WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "link", id)
	}
	return exists, nil
}

// List returns links matching the filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.LinkFilter) ([]*domain.Link, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	query := postgres.Builder().
		Select(linkColumns...).
		From("links l").
		OrderBy("l.created_at DESC", "l.id").
		Limit(uint64(limit))

	if filter.UserID != nil {
		query = query.Where(squirrel.Eq{"l.user_id": *filter.UserID})
	}
	if filter.BookID != nil {
		query = query.
			Join("link_books lb ON lb.link_id = l.id").
			Where(squirrel.Eq{"lb.book_id": *filter.BookID})
	}
	if filter.Tag != "" {
		query = query.
			Join("link_tags lt ON lt.link_id = l.id").
			Join("tags t ON t.id = lt.tag_id").
			Where(squirrel.Eq{"t.name": filter.Tag})
	}

	rows := []linkRow{}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query); err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}

	links := make([]*domain.Link, len(rows))
	for i, row := range rows {
		links[i] = row.toDomain()
	}
	return links, nil
}

// Create inserts a new link and returns the persisted domain.Link.
func (r *Repo) Create(ctx context.Context, l *domain.Link) (*domain.Link, error) {
	query := postgres.Builder().
		Insert("links").
		Columns("user_id", "url", "title", "description").
		Values(l.UserID, l.URL, l.Title, l.Description).
		Suffix(returningColumns)

	var row linkRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query); err != nil {
		return nil, postgres.MapError(err, "link", uuid.Nil)
	}
	return row.toDomain(), nil
}

// Update overwrites the url, title and description of a link.
// Returns domain.ErrNotFound if the link does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.LinkUpdateParams) (*domain.Link, error) {
	query := postgres.Builder().
		Update("links").
		Set("url", params.URL).
		Set("title", params.Title).
		Set("description", params.Description).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returningColumns)

	var row linkRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query); err != nil {
		return nil, postgres.MapError(err, "link", id)
	}
	return row.toDomain(), nil
}
