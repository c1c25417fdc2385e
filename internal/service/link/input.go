package link

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/linkbook/internal/domain"
	"github.com/heartmarshall/linkbook/internal/validation"
)

// CreateLinkInput holds the parameters for submitting a link.
// Books may be named by title, by id, or both; ids the owner does not
// hold are ignored.
type CreateLinkInput struct {
	URL         string      `field:"url"         validate:"required,httpurl,max=2048"`
	Title       string      `field:"title"       validate:"max=500"`
	Description string      `field:"description" validate:"max=5000"`
	RawTags     string      `field:"tags"        validate:"max=1000"`
	BookTitles  []string    `field:"books"`
	BookIDs     []uuid.UUID `field:"book_ids"`
}

// Validate checks all fields and collects all errors.
func (i CreateLinkInput) Validate() error {
	return validation.Struct(i)
}

func (i CreateLinkInput) normalized() CreateLinkInput {
	i.URL = strings.TrimSpace(i.URL)
	i.Title = strings.TrimSpace(i.Title)
	i.Description = strings.TrimSpace(i.Description)
	return i
}

// EditLinkInput holds the full new state of a link. Tags and books replace
// the current ones.
type EditLinkInput struct {
	LinkID      uuid.UUID   `field:"link_id"     validate:"required"`
	URL         string      `field:"url"         validate:"required,httpurl,max=2048"`
	Title       string      `field:"title"       validate:"max=500"`
	Description string      `field:"description" validate:"max=5000"`
	RawTags     string      `field:"tags"        validate:"max=1000"`
	BookTitles  []string    `field:"books"`
	BookIDs     []uuid.UUID `field:"book_ids"`
}

// Validate checks all fields and collects all errors.
func (i EditLinkInput) Validate() error {
	return validation.Struct(i)
}

func (i EditLinkInput) normalized() EditLinkInput {
	i.URL = strings.TrimSpace(i.URL)
	i.Title = strings.TrimSpace(i.Title)
	i.Description = strings.TrimSpace(i.Description)
	return i
}

func (i EditLinkInput) params() domain.LinkUpdateParams {
	return domain.LinkUpdateParams{
		URL:         i.URL,
		Title:       i.Title,
		Description: i.Description,
	}
}
