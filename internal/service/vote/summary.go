package vote

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/linkbook/internal/domain"
	"github.com/heartmarshall/linkbook/pkg/ctxutil"
)

// Summary returns the link's vote counts. State is the caller's current
// vote, or NONE for anonymous callers.
func (s *Service) Summary(ctx context.Context, linkID uuid.UUID) (domain.VoteSummary, error) {
	up, down, err := s.votes.Counts(ctx, linkID)
	if err != nil {
		return domain.VoteSummary{}, fmt.Errorf("vote.Summary count: %w", err)
	}

	summary := domain.VoteSummary{State: domain.VoteStateNone, Upvotes: up, Downvotes: down}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return summary, nil
	}

	state, err := s.votes.Get(ctx, linkID, userID)
	if err != nil {
		return domain.VoteSummary{}, fmt.Errorf("vote.Summary state: %w", err)
	}
	summary.State = state

	return summary, nil
}
