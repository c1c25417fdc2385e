package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	layoutTemplate   = "templates/layout.html"
	partialsTemplate = "templates/partials.html"
)

// renderer holds one parsed template set per page. Every page shares the
// layout and partials.
type renderer struct {
	pages     map[string]*template.Template
	fragments *template.Template
}

func newRenderer() (*renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: list templates: %w", err)
	}

	fragments, err := template.ParseFS(templateFS, partialsTemplate)
	if err != nil {
		return nil, fmt.Errorf("web: parse partials: %w", err)
	}

	r := &renderer{pages: make(map[string]*template.Template), fragments: fragments}
	for _, file := range files {
		if file == layoutTemplate || file == partialsTemplate {
			continue
		}
		name := strings.TrimSuffix(path.Base(file), ".html")
		t, err := template.ParseFS(templateFS, layoutTemplate, partialsTemplate, file)
		if err != nil {
			return nil, fmt.Errorf("web: parse %s: %w", file, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// mustRenderer panics if the embedded templates do not parse.
func mustRenderer() *renderer {
	r, err := newRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// page renders a full page into a buffer first so a template error never
// produces a half-written 200.
func (r *renderer) page(w http.ResponseWriter, status int, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("web: unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("web: render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// fragment renders a named partial to a string.
func (r *renderer) fragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("web: render fragment %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // output of html/template
}
