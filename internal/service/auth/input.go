package auth

import (
	"strings"

	"github.com/heartmarshall/linkbook/internal/validation"
)

// RegisterInput holds parameters for creating an account.
type RegisterInput struct {
	Email    string `field:"email"    validate:"required,email,max=254"`
	Username string `field:"username" validate:"required,min=3,max=40,alphanum"`
	Password string `field:"password" validate:"required,min=8,max=72"`
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	return validation.Struct(i)
}

func (i RegisterInput) normalized() RegisterInput {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.Username = strings.TrimSpace(i.Username)
	return i
}

// LoginInput holds parameters for password login. Login is a username or an
// email address.
type LoginInput struct {
	Login    string `field:"login"    validate:"required,max=254"`
	Password string `field:"password" validate:"required,max=72"`
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	return validation.Struct(i)
}
