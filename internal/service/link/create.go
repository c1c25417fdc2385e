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

// Create stores a new link owned by the authenticated user, tags it and
// adds it to the requested books of that user.
func (s *Service) Create(ctx context.Context, input CreateLinkInput) (*domain.Link, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tagNames := domain.ParseTags(input.RawTags)

	var created *domain.Link
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		link, err := s.links.Create(txCtx, &domain.Link{
			UserID:      userID,
			URL:         input.URL,
			Title:       input.Title,
			Description: input.Description,
		})
		if err != nil {
			return fmt.Errorf("create link: %w", err)
		}

		link.Tags, err = s.tags.ReplaceForLink(txCtx, link.ID, tagNames)
		if err != nil {
			return fmt.Errorf("set tags: %w", err)
		}

		owned, err := s.books.ListByUser(txCtx, userID)
		if err != nil {
			return fmt.Errorf("list books: %w", err)
		}

		titles := slices.Concat(input.BookTitles, ResolveBookIDs(input.BookIDs, owned))
		next := Reconcile(mapset.NewSet[uuid.UUID](), titles, owned)
		if next.Cardinality() > 0 {
			if err := s.books.AttachLink(txCtx, link.ID, next.ToSlice()); err != nil {
				return fmt.Errorf("attach books: %w", err)
			}
		}

		link.Books = booksIn(owned, next)

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeLink,
			EntityID:   &link.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"url":   map[string]any{"new": link.URL},
				"tags":  map[string]any{"new": link.TagNames()},
				"books": map[string]any{"new": idStrings(next.ToSlice())},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		created = link
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "link created",
		slog.String("user_id", userID.String()),
		slog.String("link_id", created.ID.String()),
		slog.Int("tags", len(created.Tags)),
		slog.Int("books", len(created.Books)),
	)

	return created, nil
}
