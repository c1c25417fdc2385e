// Package dataloader provides per-request DataLoaders that batch the
// per-link lookups of list pages into single SQL calls. DataLoaders call
// repositories directly, bypassing the service layer; everything they load
// is public.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/linkbook/internal/adapter/postgres/tag"
	"github.com/heartmarshall/linkbook/internal/adapter/postgres/vote"
	"github.com/heartmarshall/linkbook/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type tagRepo interface {
	GetByLinkIDs(ctx context.Context, linkIDs []uuid.UUID) ([]tag.TagWithLinkID, error)
}

type voteRepo interface {
	CountsByLinkIDs(ctx context.Context, linkIDs []uuid.UUID) ([]vote.CountsWithLinkID, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Tag  tagRepo
	Vote voteRepo
}

// Loaders contains the per-request DataLoaders. Created per-request via NewLoaders.
type Loaders struct {
	TagsByLinkID  *dataloader.Loader[uuid.UUID, []domain.Tag]
	VotesByLinkID *dataloader.Loader[uuid.UUID, domain.VoteSummary]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		TagsByLinkID:  newLoader(newTagsBatchFn(repos.Tag)),
		VotesByLinkID: newLoader(newVotesBatchFn(repos.Vote)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// LoadMany resolves keys through loader, returning values in key order or
// the first error.
func LoadMany[V any](ctx context.Context, loader *dataloader.Loader[uuid.UUID, V], keys []uuid.UUID) ([]V, error) {
	values, errs := loader.LoadMany(ctx, keys)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return values, nil
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}
