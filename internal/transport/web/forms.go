package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/linkbook/internal/domain"
)

// maxFormBytes caps urlencoded request bodies.
const maxFormBytes = 1 << 20

func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}
	return nil
}

// pathID parses the {id} URL parameter. Malformed ids are reported as not
// found, the same as ids that do not exist.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.ErrNotFound
	}
	return id, nil
}

// formUUIDs parses every value of a multi-valued field.
func formUUIDs(r *http.Request, field string) ([]uuid.UUID, error) {
	values := r.PostForm[field]
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v == "" {
			continue
		}
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, domain.NewValidationError(field, "invalid id")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// splitTitles reads comma separated book titles.
func splitTitles(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// safeNext keeps only same-site absolute paths as redirect targets.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

func linkPath(id uuid.UUID) string { return "/link/" + id.String() + "/" }

func bookPath(id uuid.UUID) string { return "/book/" + id.String() + "/" }
