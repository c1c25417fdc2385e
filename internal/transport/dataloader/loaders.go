package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/linkbook/internal/domain"
)

func newTagsBatchFn(repo tagRepo) dataloader.BatchFunc[uuid.UUID, []domain.Tag] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Tag] {
		rows, err := repo.GetByLinkIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Tag](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Tag, len(keys))
		for _, row := range rows {
			grouped[row.LinkID] = append(grouped[row.LinkID], row.Tag)
		}

		return mapResults(keys, grouped, emptySlice[domain.Tag])
	}
}

// Vote loader results carry counts only; State stays NONE because list
// pages do not show the viewer's own vote.
func newVotesBatchFn(repo voteRepo) dataloader.BatchFunc[uuid.UUID, domain.VoteSummary] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.VoteSummary] {
		rows, err := repo.CountsByLinkIDs(ctx, keys)
		if err != nil {
			return errorResults[domain.VoteSummary](len(keys), err)
		}

		byLink := make(map[uuid.UUID]domain.VoteSummary, len(rows))
		for _, row := range rows {
			byLink[row.LinkID] = domain.VoteSummary{
				State:     domain.VoteStateNone,
				Upvotes:   row.Upvotes,
				Downvotes: row.Downvotes,
			}
		}

		return mapResults(keys, byLink, func() domain.VoteSummary {
			return domain.VoteSummary{State: domain.VoteStateNone}
		})
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
