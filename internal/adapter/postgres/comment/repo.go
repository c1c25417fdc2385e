// Package comment implements the Comment repository using PostgreSQL.
// Comments are append-only.
package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/linkbook/internal/adapter/postgres"
	"github.com/heartmarshall/linkbook/internal/domain"
)

type commentRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	LinkID    uuid.UUID `db:"link_id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
	Author    string    `db:"author"`
}

func (r commentRow) toDomain() *domain.Comment {
	return &domain.Comment{
		ID:        r.ID,
		UserID:    r.UserID,
		LinkID:    r.LinkID,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
		Author:    r.Author,
	}
}

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new comment repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a comment. Returns domain.ErrNotFound if the link or the
// author does not exist.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	query := postgres.Builder().
		Insert("comments").
		Columns("user_id", "link_id", "text").
		Values(c.UserID, c.LinkID, c.Text).
		Suffix("RETURNING id, user_id, link_id, text, created_at")

	var row commentRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query); err != nil {
		return nil, postgres.MapError(err, "comment", c.LinkID)
	}
	return row.toDomain(), nil
}

// ListByLinkID returns the comments of a link oldest first, with the
// author's username filled in.
func (r *Repo) ListByLinkID(ctx context.Context, linkID uuid.UUID) ([]*domain.Comment, error) {
	query := postgres.Builder().
		Select("c.id", "c.user_id", "c.link_id", "c.text", "c.created_at", "u.username AS author").
		From("comments c").
		Join("users u ON u.id = c.user_id").
		Where(squirrel.Eq{"c.link_id": linkID}).
		OrderBy("c.created_at", "c.id")

	var rows []commentRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query); err != nil {
		return nil, fmt.Errorf("list comments by link_id: %w", err)
	}

	comments := make([]*domain.Comment, len(rows))
	for i, row := range rows {
		comments[i] = row.toDomain()
	}
	return comments, nil
}
