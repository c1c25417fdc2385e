package book

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/linkbook/internal/validation"
)

// CreateBookInput holds the parameters for creating a book.
type CreateBookInput struct {
	Title       string `field:"title"       validate:"notblank,max=200"`
	Description string `field:"description" validate:"max=2000"`
}

// Validate checks all fields and collects all errors.
func (i CreateBookInput) Validate() error {
	return validation.Struct(i)
}

// EditBookInput holds the new title and description of a book.
type EditBookInput struct {
	BookID      uuid.UUID `field:"book_id"     validate:"required"`
	Title       string    `field:"title"       validate:"notblank,max=200"`
	Description string    `field:"description" validate:"max=2000"`
}

// Validate checks all fields and collects all errors.
func (i EditBookInput) Validate() error {
	return validation.Struct(i)
}

func trim(title, description string) (string, string) {
	return strings.TrimSpace(title), strings.TrimSpace(description)
}
