// Package validation checks service input structs with go-playground/validator
// and reports failures as domain validation errors.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/linkbook/internal/domain"
)

// Validator wraps go-playground/validator with domain error conversion.
type Validator struct {
	v *validator.Validate
}

// New creates a validator with the custom tags used by linkbook inputs:
//
//	httpurl   absolute http or https URL with a host
//	notblank  at least one non-space character
//
// The built-in max tag already counts characters for strings.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Field names come from the `field` tag so errors match form input names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("field"); name != "" && name != "-" {
			return name
		}
		return strings.ToLower(fld.Name)
	})

	_ = v.RegisterValidation("httpurl", isHTTPURL)
	_ = v.RegisterValidation("notblank", isNotBlank)

	return &Validator{v: v}
}

var std = New()

// Struct validates s with the package validator.
func Struct(s any) error {
	return std.Validate(s)
}

// Validate validates a struct and returns a *domain.ValidationError listing
// every failing field.
func (v *Validator) Validate(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("validate: %w", err)
	}

	fieldErrs := make([]domain.FieldError, 0, len(validationErrs))
	for _, e := range validationErrs {
		fieldErrs = append(fieldErrs, domain.FieldError{
			Field:   e.Field(),
			Message: friendlyMessage(e),
		})
	}
	return domain.NewValidationErrors(fieldErrs)
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return "required"
	case "email":
		return "must be a valid email address"
	case "url", "httpurl":
		return "must be an absolute http or https URL"
	case "min":
		return fmt.Sprintf("min %s characters", e.Param())
	case "max":
		return fmt.Sprintf("max %s characters", e.Param())
	case "alphanum":
		return "letters and digits only"
	default:
		return "is invalid"
	}
}

func isHTTPURL(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
