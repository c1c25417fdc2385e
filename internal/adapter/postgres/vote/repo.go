// Package vote implements the Vote ledger repository using PostgreSQL.
// The votes table holds at most one row per (link_id, user_id); the row's
// action is the user's current vote on the link.
package vote

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/linkbook/internal/adapter/postgres"
	"github.com/heartmarshall/linkbook/internal/domain"
)

// Serializes writers of one (link, user) pair even when no row exists yet,
// which SELECT ... FOR UPDATE alone cannot do.
const lockPairSQL = `SELECT pg_advisory_xact_lock(hashtextextended($1::text || ':' || $2::text, 0))`

// CountsWithLinkID is the batch result type for CountsByLinkIDs.
type CountsWithLinkID struct {
	LinkID    uuid.UUID `db:"link_id"`
	Upvotes   int       `db:"upvotes"`
	Downvotes int       `db:"downvotes"`
}

// Repo provides vote persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new vote repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// Up records an upvote, replacing any existing vote of the user on the link.
func (r *Repo) Up(ctx context.Context, linkID, userID uuid.UUID) error {
	return r.upsert(ctx, linkID, userID, domain.VoteUp)
}

// Down records a downvote, replacing any existing vote of the user on the link.
func (r *Repo) Down(ctx context.Context, linkID, userID uuid.UUID) error {
	return r.upsert(ctx, linkID, userID, domain.VoteDown)
}

func (r *Repo) upsert(ctx context.Context, linkID, userID uuid.UUID, action domain.VoteAction) error {
	query := postgres.Builder().
		Insert("votes").
		Columns("link_id", "user_id", "action").
		Values(linkID, userID, string(action)).
		Suffix("ON CONFLICT (link_id, user_id) DO UPDATE SET action = EXCLUDED.action, updated_at = now()")

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), query); err != nil {
		return postgres.MapError(err, "vote", linkID)
	}
	return nil
}

// Clear removes the user's vote on the link. No-op if there is none.
func (r *Repo) Clear(ctx context.Context, linkID, userID uuid.UUID) error {
	query := postgres.Builder().
		Delete("votes").
		Where(squirrel.Eq{"link_id": linkID, "user_id": userID})

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), query); err != nil {
		return postgres.MapError(err, "vote", linkID)
	}
	return nil
}

// Exists reports whether the user's current vote on the link is action.
func (r *Repo) Exists(ctx context.Context, linkID, userID uuid.UUID, action domain.VoteAction) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM votes WHERE link_id = $1 AND user_id = $2 AND action = $3)`,
		linkID, userID, string(action),
	).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "vote", linkID)
	}
	return exists, nil
}

// Count returns the number of votes with the given action on a link.
func (r *Repo) Count(ctx context.Context, linkID uuid.UUID, action domain.VoteAction) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT count(*) FROM votes WHERE link_id = $1 AND action = $2`,
		linkID, string(action),
	).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "vote", linkID)
	}
	return n, nil
}

// Counts returns upvotes and downvotes of a link in one round trip.
func (r *Repo) Counts(ctx context.Context, linkID uuid.UUID) (up, down int, err error) {
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT count(*) FILTER (WHERE action = 'U'), count(*) FILTER (WHERE action = 'D')
		 FROM votes WHERE link_id = $1`,
		linkID,
	).Scan(&up, &down)
	if err != nil {
		return 0, 0, postgres.MapError(err, "vote", linkID)
	}
	return up, down, nil
}

// CountsByLinkIDs returns vote tallies for multiple links (batch for DataLoader).
// Links without votes are absent from the result.
func (r *Repo) CountsByLinkIDs(ctx context.Context, linkIDs []uuid.UUID) ([]CountsWithLinkID, error) {
	if len(linkIDs) == 0 {
		return []CountsWithLinkID{}, nil
	}

	query := postgres.Builder().
		Select(
			"link_id",
			"count(*) FILTER (WHERE action = 'U') AS upvotes",
			"count(*) FILTER (WHERE action = 'D') AS downvotes",
		).
		From("votes").
		Where(squirrel.Eq{"link_id": linkIDs}).
		GroupBy("link_id")

	var rows []CountsWithLinkID
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query); err != nil {
		return nil, fmt.Errorf("count votes by link_ids: %w", err)
	}
	return rows, nil
}

// Get returns the user's current vote state on the link.
func (r *Repo) Get(ctx context.Context, linkID, userID uuid.UUID) (domain.VoteState, error) {
	return r.get(ctx, postgres.QuerierFromCtx(ctx, r.pool), linkID, userID, "")
}

// GetForUpdate locks the (link, user) pair for the rest of the transaction
// and returns the current state. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, linkID, userID uuid.UUID) (domain.VoteState, error) {
	if !postgres.InTx(ctx) {
		return domain.VoteStateNone, fmt.Errorf("vote get for update: no transaction in context")
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, lockPairSQL, linkID.String(), userID.String()); err != nil {
		return domain.VoteStateNone, postgres.MapError(err, "vote", linkID)
	}
	return r.get(ctx, q, linkID, userID, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, q postgres.Querier, linkID, userID uuid.UUID, suffix string) (domain.VoteState, error) {
	query := postgres.Builder().
		Select("action").
		From("votes").
		Where(squirrel.Eq{"link_id": linkID, "user_id": userID})
	if suffix != "" {
		query = query.Suffix(suffix)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.VoteStateNone, fmt.Errorf("build query: %w", err)
	}

	var action string
	err = q.QueryRow(ctx, sql, args...).Scan(&action)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.VoteStateNone, nil
	}
	if err != nil {
		return domain.VoteStateNone, postgres.MapError(err, "vote", linkID)
	}
	return domain.StateOf(domain.VoteAction(action)), nil
}
