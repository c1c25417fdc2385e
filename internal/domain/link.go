package domain

import (
	"time"

	"github.com/google/uuid"
)

// Link is a bookmarked URL owned by the user who submitted it.
// URL is always set; Title and Description may be empty but are never absent.
type Link struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	URL         string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Loaded on demand, not columns of the links table.
	Tags  []Tag
	Books []*Book
}

// IsOwnedBy reports whether userID owns the link.
func (l *Link) IsOwnedBy(userID uuid.UUID) bool {
	return l.UserID == userID
}

// TagNames returns the names of the link's tags in stored order.
func (l *Link) TagNames() []string {
	names := make([]string, len(l.Tags))
	for i, t := range l.Tags {
		names[i] = t.Name
	}
	return names
}

// BookIDs returns the ids of the books the link belongs to.
func (l *Link) BookIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(l.Books))
	for i, b := range l.Books {
		ids[i] = b.ID
	}
	return ids
}

// Book is a named collection of links owned by a user.
type Book struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LinkCount   int // computed field, not stored in DB
}

// IsOwnedBy reports whether userID owns the book.
func (b *Book) IsOwnedBy(userID uuid.UUID) bool {
	return b.UserID == userID
}

// Tag is a globally shared label, unique by normalized name.
type Tag struct {
	ID   uuid.UUID
	Name string
}

// Comment is an immutable note attached to a link.
type Comment struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	LinkID    uuid.UUID
	Text      string
	CreatedAt time.Time

	// Username of the author, filled by list queries.
	Author string
}

// LinkUpdateParams holds the mutable columns of a link.
type LinkUpdateParams struct {
	URL         string
	Title       string
	Description string
}

// BookUpdateParams holds the mutable columns of a book.
type BookUpdateParams struct {
	Title       string
	Description string
}

// LinkFilter narrows a link listing. Zero-valued fields do not filter.
type LinkFilter struct {
	UserID *uuid.UUID
	BookID *uuid.UUID
	Tag    string // normalized tag name
	Limit  int
}
