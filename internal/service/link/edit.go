package link

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"github.com/heartmarshall/linkbook/internal/domain"
	"github.com/heartmarshall/linkbook/pkg/ctxutil"
)

// Edit overwrites a link owned by the authenticated user. The tag set is
// replaced by the submitted tags. Memberships in the user's own books are
// reconciled against the submitted books; memberships in other users'
// books are left alone.
func (s *Service) Edit(ctx context.Context, input EditLinkInput) (*domain.Link, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tagNames := domain.ParseTags(input.RawTags)

	var updated *domain.Link
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.links.GetByID(txCtx, input.LinkID)
		if err != nil {
			return fmt.Errorf("get link: %w", err)
		}
		if !old.IsOwnedBy(userID) {
			return fmt.Errorf("edit link %s: %w", input.LinkID, domain.ErrForbidden)
		}

		oldTags, err := s.tags.GetByLinkID(txCtx, input.LinkID)
		if err != nil {
			return fmt.Errorf("get tags: %w", err)
		}
		old.Tags = oldTags

		link, err := s.links.Update(txCtx, input.LinkID, input.params())
		if err != nil {
			return fmt.Errorf("update link: %w", err)
		}

		link.Tags, err = s.tags.ReplaceForLink(txCtx, link.ID, tagNames)
		if err != nil {
			return fmt.Errorf("set tags: %w", err)
		}

		owned, err := s.books.ListByUser(txCtx, userID)
		if err != nil {
			return fmt.Errorf("list books: %w", err)
		}
		currentIDs, err := s.books.GetBookIDsByLinkID(txCtx, link.ID)
		if err != nil {
			return fmt.Errorf("get memberships: %w", err)
		}

		current := mapset.NewSet(currentIDs...)
		titles := slices.Concat(input.BookTitles, ResolveBookIDs(input.BookIDs, owned))
		next := Reconcile(current, titles, owned)

		attach, detach := membershipDiff(current, next)
		if len(detach) > 0 {
			if err := s.books.DetachLink(txCtx, link.ID, detach); err != nil {
				return fmt.Errorf("detach books: %w", err)
			}
		}
		if len(attach) > 0 {
			if err := s.books.AttachLink(txCtx, link.ID, attach); err != nil {
				return fmt.Errorf("attach books: %w", err)
			}
		}

		link.Books, err = s.books.GetByLinkID(txCtx, link.ID)
		if err != nil {
			return fmt.Errorf("load books: %w", err)
		}

		changes := buildLinkChanges(old, link)
		if len(attach) > 0 || len(detach) > 0 {
			changes["books"] = map[string]any{"added": idStrings(attach), "removed": idStrings(detach)}
		}
		if len(changes) > 0 {
			if err := s.audit.Log(txCtx, domain.AuditRecord{
				UserID:     userID,
				EntityType: domain.EntityTypeLink,
				EntityID:   &link.ID,
				Action:     domain.AuditActionUpdate,
				Changes:    changes,
			}); err != nil {
				return fmt.Errorf("audit log: %w", err)
			}
		}

		updated = link
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "link updated",
		slog.String("user_id", userID.String()),
		slog.String("link_id", updated.ID.String()),
	)

	return updated, nil
}

// buildLinkChanges returns only changed fields for audit.
func buildLinkChanges(old, updated *domain.Link) map[string]any {
	changes := make(map[string]any)
	if old.URL != updated.URL {
		changes["url"] = map[string]any{"old": old.URL, "new": updated.URL}
	}
	if old.Title != updated.Title {
		changes["title"] = map[string]any{"old": old.Title, "new": updated.Title}
	}
	if old.Description != updated.Description {
		changes["description"] = map[string]any{"old": old.Description, "new": updated.Description}
	}
	oldTags, newTags := old.TagNames(), updated.TagNames()
	slices.Sort(oldTags)
	slices.Sort(newTags)
	if !slices.Equal(oldTags, newTags) {
		changes["tags"] = map[string]any{"old": oldTags, "new": newTags}
	}
	return changes
}

// booksIn returns the candidates whose ids are in ids, in candidate order.
func booksIn(candidates []*domain.Book, ids mapset.Set[uuid.UUID]) []*domain.Book {
	out := make([]*domain.Book, 0, ids.Cardinality())
	for _, b := range candidates {
		if ids.Contains(b.ID) {
			out = append(out, b)
		}
	}
	return out
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	slices.Sort(out)
	return out
}
