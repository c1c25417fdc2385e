package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/linkbook/internal/domain"
	"github.com/heartmarshall/linkbook/internal/service/book"
)

type bookService interface {
	Get(ctx context.Context, bookID uuid.UUID) (*domain.Book, error)
	Create(ctx context.Context, input book.CreateBookInput) (*domain.Book, error)
	Edit(ctx context.Context, input book.EditBookInput) (*domain.Book, error)
	ListForOwner(ctx context.Context) ([]*domain.Book, error)
}

type bookLinks interface {
	ListByBook(ctx context.Context, bookID uuid.UUID) (*domain.Book, []*domain.Link, error)
}

// BookHandler serves book pages and forms.
type BookHandler struct {
	responder
	books bookService
	links bookLinks
}

// NewBookHandler creates a BookHandler.
func NewBookHandler(books bookService, links bookLinks, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		responder: responder{log: logger.With("handler", "book"), render: mustRenderer()},
		books:     books,
		links:     links,
	}
}

// View handles GET /book/{id}/.
func (h *BookHandler) View(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	b, links, err := h.links.ListByBook(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	rows, err := loadRows(r.Context(), links)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	page := listPage{
		basePage: newBase(r.Context(), b.Title),
		Heading:  b.Title,
		Book:     b,
		Rows:     rows,
	}
	page.CanEdit = b.IsOwnedBy(page.Viewer.ID)
	h.renderPage(w, r, http.StatusOK, "list", page)
}

// Mine handles GET /books/.
func (h *BookHandler) Mine(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.ListForOwner(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.renderPage(w, r, http.StatusOK, "books", booksPage{
		basePage: newBase(r.Context(), "My books"),
		Books:    books,
	})
}

// NewForm handles GET /book/new/.
func (h *BookHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderBookForm(w, r, http.StatusOK, uuid.Nil, bookForm{}, nil)
}

// Create handles POST /book/new/.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, err)
		return
	}

	form := readBookForm(r)
	created, err := h.books.Create(r.Context(), book.CreateBookInput{
		Title:       form.Title,
		Description: form.Description,
	})
	if err != nil {
		h.bookFormError(w, r, uuid.Nil, form, err)
		return
	}

	http.Redirect(w, r, bookPath(created.ID), http.StatusFound)
}

// EditForm handles GET /book/{id}/edit/.
func (h *BookHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	b, err := h.books.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !b.IsOwnedBy(viewerFrom(r.Context()).ID) {
		h.fail(w, r, domain.ErrForbidden)
		return
	}

	h.renderBookForm(w, r, http.StatusOK, id, bookForm{Title: b.Title, Description: b.Description}, nil)
}

// Edit handles POST /book/{id}/edit/.
func (h *BookHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, err)
		return
	}

	form := readBookForm(r)
	_, err = h.books.Edit(r.Context(), book.EditBookInput{
		BookID:      id,
		Title:       form.Title,
		Description: form.Description,
	})
	if err != nil {
		h.bookFormError(w, r, id, form, err)
		return
	}

	http.Redirect(w, r, bookPath(id), http.StatusFound)
}

// bookFormError re-renders the form for validation failures and duplicate
// titles; other errors get the error page.
func (h *BookHandler) bookFormError(w http.ResponseWriter, r *http.Request, id uuid.UUID, form bookForm, err error) {
	if errors.Is(err, domain.ErrAlreadyExists) {
		h.renderBookForm(w, r, http.StatusConflict, id, form, map[string]string{
			"title": "you already have a book with this title",
		})
		return
	}

	errs, ok := fieldErrors(err)
	if !ok {
		h.fail(w, r, err)
		return
	}
	h.renderBookForm(w, r, http.StatusBadRequest, id, form, errs)
}

func (h *BookHandler) renderBookForm(w http.ResponseWriter, r *http.Request, status int, id uuid.UUID, form bookForm, errs map[string]string) {
	page := bookFormPage{
		basePage: newBase(r.Context(), "New book"),
		Heading:  "New book",
		Action:   "/book/new/",
		Form:     form,
		Errors:   errs,
	}
	if id != uuid.Nil {
		page.Title, page.Heading = "Edit book", "Edit book"
		page.Action = bookPath(id) + "edit/"
	}
	h.renderPage(w, r, status, "book_form", page)
}

func readBookForm(r *http.Request) bookForm {
	return bookForm{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
	}
}
