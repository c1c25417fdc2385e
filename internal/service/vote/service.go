package vote

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/linkbook/internal/domain"
)

type voteRepo interface {
	Up(ctx context.Context, linkID, userID uuid.UUID) error
	Down(ctx context.Context, linkID, userID uuid.UUID) error
	Clear(ctx context.Context, linkID, userID uuid.UUID) error
	Get(ctx context.Context, linkID, userID uuid.UUID) (domain.VoteState, error)
	GetForUpdate(ctx context.Context, linkID, userID uuid.UUID) (domain.VoteState, error)
	Counts(ctx context.Context, linkID uuid.UUID) (int, int, error)
}

type linkRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service applies toggle votes and reports link tallies.
type Service struct {
	votes voteRepo
	links linkRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new vote service.
func NewService(log *slog.Logger, votes voteRepo, links linkRepo, tx txManager) *Service {
	return &Service{
		votes: votes,
		links: links,
		tx:    tx,
		log:   log.With("service", "vote"),
	}
}
