package vote

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/linkbook/internal/domain"
	"github.com/heartmarshall/linkbook/pkg/ctxutil"
)

// Toggle applies action for the authenticated user on the link. Repeating
// the user's current action clears the vote, any other action replaces it.
// The read of the current state and the write happen in one transaction
// holding the vote row lock.
func (s *Service) Toggle(ctx context.Context, linkID uuid.UUID, action domain.VoteAction) (domain.VoteSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.VoteSummary{}, domain.ErrUnauthorized
	}

	if !action.IsValid() {
		return domain.VoteSummary{}, fmt.Errorf("vote action %q: %w", action, domain.ErrInvalidArgument)
	}

	var (
		summary domain.VoteSummary
		prev    domain.VoteState
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.links.Exists(txCtx, linkID)
		if err != nil {
			return fmt.Errorf("check link: %w", err)
		}
		if !exists {
			return fmt.Errorf("link %s: %w", linkID, domain.ErrNotFound)
		}

		prev, err = s.votes.GetForUpdate(txCtx, linkID, userID)
		if err != nil {
			return fmt.Errorf("lock vote: %w", err)
		}

		next := prev.Toggle(action)
		if err := s.apply(txCtx, linkID, userID, next); err != nil {
			return err
		}

		up, down, err := s.votes.Counts(txCtx, linkID)
		if err != nil {
			return fmt.Errorf("count votes: %w", err)
		}

		summary = domain.VoteSummary{State: next, Upvotes: up, Downvotes: down}
		return nil
	})
	if err != nil {
		return domain.VoteSummary{}, err
	}

	s.log.InfoContext(ctx, "vote toggled",
		slog.String("user_id", userID.String()),
		slog.String("link_id", linkID.String()),
		slog.String("action", action.String()),
		slog.String("from", prev.String()),
		slog.String("to", summary.State.String()),
	)

	return summary, nil
}

func (s *Service) apply(ctx context.Context, linkID, userID uuid.UUID, state domain.VoteState) error {
	var err error
	switch state {
	case domain.VoteStateUp:
		err = s.votes.Up(ctx, linkID, userID)
	case domain.VoteStateDown:
		err = s.votes.Down(ctx, linkID, userID)
	default:
		err = s.votes.Clear(ctx, linkID, userID)
	}
	if err != nil {
		return fmt.Errorf("set vote %s: %w", state, err)
	}
	return nil
}
