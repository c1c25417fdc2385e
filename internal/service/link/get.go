package link

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/linkbook/internal/domain"
)

// Get returns a link with its tags and books loaded.
func (s *Service) Get(ctx context.Context, linkID uuid.UUID) (*domain.Link, error) {
	link, err := s.links.GetByID(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("link.Get: %w", err)
	}

	link.Tags, err = s.tags.GetByLinkID(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("link.Get tags: %w", err)
	}

	link.Books, err = s.books.GetByLinkID(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("link.Get books: %w", err)
	}

	return link, nil
}

// ListRecent returns the newest links across all users. A non-positive
// limit selects DefaultRecentLimit.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]*domain.Link, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	links, err := s.links.List(ctx, domain.LinkFilter{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("link.ListRecent: %w", err)
	}
	return links, nil
}

// ListByTag returns the links carrying the tag, newest first. The name is
// normalized before lookup; a blank name matches nothing.
func (s *Service) ListByTag(ctx context.Context, name string) ([]*domain.Link, error) {
	name = domain.NormalizeTagName(name)
	if name == "" {
		return []*domain.Link{}, nil
	}

	links, err := s.links.List(ctx, domain.LinkFilter{Tag: name})
	if err != nil {
		return nil, fmt.Errorf("link.ListByTag: %w", err)
	}
	return links, nil
}

// ListByBook returns a book and the links in it, newest first.
func (s *Service) ListByBook(ctx context.Context, bookID uuid.UUID) (*domain.Book, []*domain.Link, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, nil, fmt.Errorf("link.ListByBook: %w", err)
	}

	links, err := s.links.List(ctx, domain.LinkFilter{BookID: &bookID})
	if err != nil {
		return nil, nil, fmt.Errorf("link.ListByBook links: %w", err)
	}
	return book, links, nil
}
