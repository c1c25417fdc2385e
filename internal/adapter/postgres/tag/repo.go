// Package tag implements the Tag repository using PostgreSQL.
// Tags are global and unique by normalized name; links reference them
// through the link_tags join table.
package tag

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/linkbook/internal/adapter/postgres"
	"github.com/heartmarshall/linkbook/internal/domain"
)

// TagWithLinkID is the batch result type for GetByLinkIDs.
type TagWithLinkID struct {
	LinkID uuid.UUID
	domain.Tag
}

type tagRow struct {
	ID     uuid.UUID `db:"id"`
	Name   string    `db:"name"`
	LinkID uuid.UUID `db:"link_id"`
}

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new tag repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// Upsert makes sure a tag exists for every name and returns them in input
// order. Names are normalized and deduplicated first; blank names are dropped.
func (r *Repo) Upsert(ctx context.Context, names []string) ([]domain.Tag, error) {
	names = domain.UniqueTagNames(names)
	if len(names) == 0 {
		return []domain.Tag{}, nil
	}

	insert := postgres.Builder().
		Insert("tags").
		Columns("name")
	for _, n := range names {
		insert = insert.Values(n)
	}
	// DO UPDATE (not DO NOTHING) so RETURNING yields pre-existing rows too.
	insert = insert.Suffix("ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id, name")

	var rows []tagRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, insert); err != nil {
		return nil, postgres.MapError(err, "tag", uuid.Nil)
	}

	byName := make(map[string]uuid.UUID, len(rows))
	for _, row := range rows {
		byName[row.Name] = row.ID
	}

	tags := make([]domain.Tag, 0, len(names))
	for _, n := range names {
		id, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("upsert tags: %q missing from result", n)
		}
		tags = append(tags, domain.Tag{ID: id, Name: n})
	}
	return tags, nil
}

// ReplaceForLink sets the link's tags to exactly names.
// Must run inside a transaction to be atomic.
func (r *Repo) ReplaceForLink(ctx context.Context, linkID uuid.UUID, names []string) ([]domain.Tag, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	del := postgres.Builder().
		Delete("link_tags").
		Where(squirrel.Eq{"link_id": linkID})
	if _, err := postgres.Exec(ctx, q, del); err != nil {
		return nil, postgres.MapError(err, "link_tag", linkID)
	}

	tags, err := r.Upsert(ctx, names)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return tags, nil
	}

	insert := postgres.Builder().
		Insert("link_tags").
		Columns("link_id", "tag_id")
	for _, t := range tags {
		insert = insert.Values(linkID, t.ID)
	}
	insert = insert.Suffix("ON CONFLICT (link_id, tag_id) DO NOTHING")

	if _, err := postgres.Exec(ctx, q, insert); err != nil {
		return nil, postgres.MapError(err, "link_tag", linkID)
	}
	return tags, nil
}

// GetByLinkID returns the tags of a link ordered by name.
func (r *Repo) GetByLinkID(ctx context.Context, linkID uuid.UUID) ([]domain.Tag, error) {
	rows, err := r.GetByLinkIDs(ctx, []uuid.UUID{linkID})
	if err != nil {
		return nil, err
	}
	tags := make([]domain.Tag, len(rows))
	for i, row := range rows {
		tags[i] = row.Tag
	}
	return tags, nil
}

// GetByLinkIDs returns tags for multiple links (batch for DataLoader).
// Results include LinkID for grouping by the caller.
func (r *Repo) GetByLinkIDs(ctx context.Context, linkIDs []uuid.UUID) ([]TagWithLinkID, error) {
	if len(linkIDs) == 0 {
		return []TagWithLinkID{}, nil
	}

	query := postgres.Builder().
		Select("lt.link_id", "t.id", "t.name").
		From("link_tags lt").
		Join("tags t ON t.id = lt.tag_id").
		Where(squirrel.Eq{"lt.link_id": linkIDs}).
		OrderBy("lt.link_id", "t.name")

	var rows []tagRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query); err != nil {
		return nil, fmt.Errorf("get tags by link_ids: %w", err)
	}

	result := make([]TagWithLinkID, len(rows))
	for i, row := range rows {
		result[i] = TagWithLinkID{LinkID: row.LinkID, Tag: domain.Tag{ID: row.ID, Name: row.Name}}
	}
	return result, nil
}
