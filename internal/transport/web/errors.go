package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/heartmarshall/linkbook/internal/domain"
)

// statusFor maps a service error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fieldErrors flattens a ValidationError into field → message.
func fieldErrors(err error) (map[string]string, bool) {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return nil, false
	}
	out := make(map[string]string, len(ve.Errors))
	for _, fe := range ve.Errors {
		if _, dup := out[fe.Field]; !dup {
			out[fe.Field] = fe.Message
		}
	}
	return out, true
}

// responder renders error pages and JSON errors for one handler.
type responder struct {
	log    *slog.Logger
	render *renderer
}

// fail renders the error page for err. Unexpected errors are logged and
// shown as a generic 500.
func (p responder) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusUnauthorized && r.Method == http.MethodGet {
		http.Redirect(w, r, "/login/?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
		return
	}

	message := ""
	if status == http.StatusInternalServerError {
		p.log.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
	} else if status == http.StatusBadRequest {
		message = err.Error()
	}

	p.errorPage(w, r, status, message)
}

func (p responder) errorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	data := errorPage{
		basePage:   newBase(r.Context(), http.StatusText(status)),
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    message,
	}
	if err := p.render.page(w, status, "error", data); err != nil {
		p.log.ErrorContext(r.Context(), "render error page", slog.String("error", err.Error()))
		http.Error(w, http.StatusText(status), status)
	}
}

// renderPage renders a page, falling back to a plain 500 on template errors.
func (p responder) renderPage(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	if err := p.render.page(w, status, name, data); err != nil {
		p.log.ErrorContext(r.Context(), "render page",
			slog.String("page", name),
			slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// failJSON writes err as a JSON error body.
func (p responder) failJSON(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	message := http.StatusText(status)
	switch status {
	case http.StatusInternalServerError:
		p.log.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
	case http.StatusBadRequest:
		message = err.Error()
	}
	writeError(w, status, message)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
