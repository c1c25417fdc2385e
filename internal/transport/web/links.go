package web

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/linkbook/internal/domain"
	"github.com/heartmarshall/linkbook/internal/service/comment"
	"github.com/heartmarshall/linkbook/internal/service/link"
)

type linkService interface {
	Get(ctx context.Context, linkID uuid.UUID) (*domain.Link, error)
	Create(ctx context.Context, input link.CreateLinkInput) (*domain.Link, error)
	Edit(ctx context.Context, input link.EditLinkInput) (*domain.Link, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Link, error)
	ListByTag(ctx context.Context, name string) ([]*domain.Link, error)
	ListByBook(ctx context.Context, bookID uuid.UUID) (*domain.Book, []*domain.Link, error)
}

type ownBooks interface {
	ListForOwner(ctx context.Context) ([]*domain.Book, error)
}

type commentService interface {
	Create(ctx context.Context, input comment.CreateCommentInput) (*domain.Comment, error)
	ListForLink(ctx context.Context, linkID uuid.UUID) ([]*domain.Comment, error)
}

type voteService interface {
	Toggle(ctx context.Context, linkID uuid.UUID, action domain.VoteAction) (domain.VoteSummary, error)
	Summary(ctx context.Context, linkID uuid.UUID) (domain.VoteSummary, error)
}

type previewService interface {
	Normalize(ctx context.Context, url string) (*domain.OGPreview, bool)
}

// LinkHandler serves link pages, comments, votes and previews.
type LinkHandler struct {
	responder
	links    linkService
	books    ownBooks
	comments commentService
	votes    voteService
	previews previewService
}

// NewLinkHandler creates a LinkHandler.
func NewLinkHandler(
	links linkService,
	books ownBooks,
	comments commentService,
	votes voteService,
	previews previewService,
	logger *slog.Logger,
) *LinkHandler {
	return &LinkHandler{
		responder: responder{log: logger.With("handler", "link"), render: mustRenderer()},
		links:     links,
		books:     books,
		comments:  comments,
		votes:     votes,
		previews:  previews,
	}
}

// Index handles GET /.
func (h *LinkHandler) Index(w http.ResponseWriter, r *http.Request) {
	links, err := h.links.ListRecent(r.Context(), 0)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.renderList(w, r, listPage{basePage: newBase(r.Context(), ""), Heading: "Recent links"}, links)
}

// ByTag handles GET /tag/{name}/.
func (h *LinkHandler) ByTag(w http.ResponseWriter, r *http.Request) {
	name := domain.NormalizeTagName(chi.URLParam(r, "name"))
	links, err := h.links.ListByTag(r.Context(), name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.renderList(w, r, listPage{basePage: newBase(r.Context(), name), Heading: "Tagged “" + name + "”"}, links)
}

func (h *LinkHandler) renderList(w http.ResponseWriter, r *http.Request, page listPage, links []*domain.Link) {
	rows, err := loadRows(r.Context(), links)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	page.Rows = rows
	h.renderPage(w, r, http.StatusOK, "list", page)
}

// View handles GET /link/{id}/.
func (h *LinkHandler) View(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	page, err := h.loadLinkPage(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.renderPage(w, r, http.StatusOK, "link", page)
}

// loadLinkPage loads the link, then its comments, vote summary and preview
// concurrently. The preview never fails the page.
func (h *LinkHandler) loadLinkPage(ctx context.Context, id uuid.UUID) (*linkPage, error) {
	l, err := h.links.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	page := &linkPage{basePage: newBase(ctx, l.Title), Link: l}
	if page.Title == "" {
		page.Title = l.URL
	}
	page.CanEdit = l.IsOwnedBy(page.Viewer.ID)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page.Comments, err = h.comments.ListForLink(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		page.Votes, err = h.votes.Summary(gctx, id)
		return err
	})
	g.Go(func() error {
		if p, ok := h.previews.Normalize(gctx, l.URL); ok {
			page.Preview = p
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page.UpButton, page.DownButton, err = h.voteButtons(id, page.Votes.State)
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (h *LinkHandler) voteButtons(id uuid.UUID, state domain.VoteState) (up, down template.HTML, err error) {
	up, err = h.render.fragment("vote_button", voteButton{
		LinkID: id, Kind: "up", Action: domain.VoteUp, Active: state == domain.VoteStateUp,
	})
	if err != nil {
		return "", "", err
	}
	down, err = h.render.fragment("vote_button", voteButton{
		LinkID: id, Kind: "down", Action: domain.VoteDown, Active: state == domain.VoteStateDown,
	})
	if err != nil {
		return "", "", err
	}
	return up, down, nil
}

// NewForm handles GET /link/new/.
func (h *LinkHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderLinkForm(w, r, http.StatusOK, uuid.Nil, linkForm{}, nil, nil)
}

// Create handles POST /link/new/.
func (h *LinkHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, err)
		return
	}

	form := readLinkForm(r)
	bookIDs, err := formUUIDs(r, "book_ids")
	if err != nil {
		h.linkFormError(w, r, uuid.Nil, form, bookIDs, err)
		return
	}

	created, err := h.links.Create(r.Context(), link.CreateLinkInput{
		URL:         form.URL,
		Title:       form.Title,
		Description: form.Description,
		RawTags:     form.Tags,
		BookTitles:  splitTitles(r.PostFormValue("books")),
		BookIDs:     bookIDs,
	})
	if err != nil {
		h.linkFormError(w, r, uuid.Nil, form, bookIDs, err)
		return
	}

	http.Redirect(w, r, linkPath(created.ID), http.StatusFound)
}

// EditForm handles GET /link/{id}/edit/.
func (h *LinkHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	l, err := h.links.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !l.IsOwnedBy(viewerFrom(r.Context()).ID) {
		h.fail(w, r, domain.ErrForbidden)
		return
	}

	form := linkForm{
		URL:         l.URL,
		Title:       l.Title,
		Description: l.Description,
		Tags:        domain.FormatTags(l.TagNames()),
	}
	h.renderLinkForm(w, r, http.StatusOK, id, form, l.BookIDs(), nil)
}

// Edit handles POST /link/{id}/edit/.
func (h *LinkHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, err)
		return
	}

	form := readLinkForm(r)
	bookIDs, err := formUUIDs(r, "book_ids")
	if err != nil {
		h.linkFormError(w, r, id, form, bookIDs, err)
		return
	}

	_, err = h.links.Edit(r.Context(), link.EditLinkInput{
		LinkID:      id,
		URL:         form.URL,
		Title:       form.Title,
		Description: form.Description,
		RawTags:     form.Tags,
		BookTitles:  splitTitles(r.PostFormValue("books")),
		BookIDs:     bookIDs,
	})
	if err != nil {
		h.linkFormError(w, r, id, form, bookIDs, err)
		return
	}

	http.Redirect(w, r, linkPath(id), http.StatusFound)
}

// linkFormError re-renders the form with field errors, or falls back to the
// error page for anything that is not a validation failure.
func (h *LinkHandler) linkFormError(w http.ResponseWriter, r *http.Request, id uuid.UUID, form linkForm, selected []uuid.UUID, err error) {
	errs, ok := fieldErrors(err)
	if !ok {
		h.fail(w, r, err)
		return
	}
	h.renderLinkForm(w, r, http.StatusBadRequest, id, form, selected, errs)
}

func (h *LinkHandler) renderLinkForm(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	id uuid.UUID,
	form linkForm,
	selected []uuid.UUID,
	errs map[string]string,
) {
	books, err := h.books.ListForOwner(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	page := linkFormPage{
		basePage: newBase(r.Context(), "New link"),
		Heading:  "New link",
		Action:   "/link/new/",
		Form:     form,
		Books:    books,
		Selected: make(map[uuid.UUID]bool, len(selected)),
		Errors:   errs,
	}
	if id != uuid.Nil {
		page.Title, page.Heading = "Edit link", "Edit link"
		page.Action = linkPath(id) + "edit/"
	}
	for _, b := range selected {
		page.Selected[b] = true
	}
	h.renderPage(w, r, status, "link_form", page)
}

func readLinkForm(r *http.Request) linkForm {
	return linkForm{
		URL:         r.PostFormValue("url"),
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Tags:        r.PostFormValue("tags"),
	}
}

// Comment handles POST /link/{id}/comment/.
func (h *LinkHandler) Comment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, err)
		return
	}

	text := r.PostFormValue("text")
	_, err = h.comments.Create(r.Context(), comment.CreateCommentInput{LinkID: id, Text: text})
	if err == nil {
		http.Redirect(w, r, linkPath(id), http.StatusFound)
		return
	}

	errs, ok := fieldErrors(err)
	if !ok {
		h.fail(w, r, err)
		return
	}

	page, err := h.loadLinkPage(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	page.CommentText = text
	page.Errors = errs
	h.renderPage(w, r, http.StatusBadRequest, "link", page)
}

type voteResponse struct {
	Upvotes        int    `json:"upvotes"`
	Downvotes      int    `json:"downvotes"`
	UpvoteButton   string `json:"upvote_button"`
	DownvoteButton string `json:"downvote_button"`
}

// Vote handles GET /link/{id}/vote/?type=U|D.
func (h *LinkHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.failJSON(w, r, err)
		return
	}

	action, err := domain.ParseVoteAction(r.URL.Query().Get("type"))
	if err != nil {
		h.failJSON(w, r, err)
		return
	}

	summary, err := h.votes.Toggle(r.Context(), id, action)
	if err != nil {
		h.failJSON(w, r, err)
		return
	}

	up, down, err := h.voteButtons(id, summary.State)
	if err != nil {
		h.failJSON(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, voteResponse{
		Upvotes:        summary.Upvotes,
		Downvotes:      summary.Downvotes,
		UpvoteButton:   string(up),
		DownvoteButton: string(down),
	})
}

// Preview handles GET /link/{id}/preview/. Links without valid Open Graph
// metadata answer 204.
func (h *LinkHandler) Preview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.failJSON(w, r, err)
		return
	}

	l, err := h.links.Get(r.Context(), id)
	if err != nil {
		h.failJSON(w, r, err)
		return
	}

	p, ok := h.previews.Normalize(r.Context(), l.URL)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
