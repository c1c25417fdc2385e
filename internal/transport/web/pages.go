package web

import (
	"context"
	"html/template"

	"github.com/google/uuid"

	"github.com/heartmarshall/linkbook/internal/domain"
	"github.com/heartmarshall/linkbook/internal/transport/dataloader"
	"github.com/heartmarshall/linkbook/pkg/ctxutil"
)

// viewer is the session user as seen by templates.
type viewer struct {
	ID       uuid.UUID
	Username string
	SignedIn bool
}

func viewerFrom(ctx context.Context) viewer {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	return viewer{ID: id, Username: ctxutil.UsernameFromCtx(ctx), SignedIn: ok}
}

type basePage struct {
	Title  string
	Viewer viewer
}

func newBase(ctx context.Context, title string) basePage {
	return basePage{Title: title, Viewer: viewerFrom(ctx)}
}

// linkRow is one entry of a link list.
type linkRow struct {
	Link  *domain.Link
	Tags  []domain.Tag
	Votes domain.VoteSummary
}

type listPage struct {
	basePage
	Heading string
	Book    *domain.Book
	CanEdit bool
	Rows    []linkRow
}

type linkPage struct {
	basePage
	Link        *domain.Link
	Comments    []*domain.Comment
	Votes       domain.VoteSummary
	UpButton    template.HTML
	DownButton  template.HTML
	Preview     *domain.OGPreview
	CanEdit     bool
	CommentText string
	Errors      map[string]string
}

type linkForm struct {
	URL         string
	Title       string
	Description string
	Tags        string
}

type linkFormPage struct {
	basePage
	Heading  string
	Action   string
	Form     linkForm
	Books    []*domain.Book
	Selected map[uuid.UUID]bool
	Errors   map[string]string
}

type bookForm struct {
	Title       string
	Description string
}

type bookFormPage struct {
	basePage
	Heading string
	Action  string
	Form    bookForm
	Errors  map[string]string
}

type booksPage struct {
	basePage
	Books []*domain.Book
}

type authForm struct {
	Email    string
	Username string
	Login    string
}

type authPage struct {
	basePage
	Heading  string
	Action   string
	Register bool
	Next     string
	Form     authForm
	Message  string
	Errors   map[string]string
}

type errorPage struct {
	basePage
	Status     int
	StatusText string
	Message    string
}

// voteButton is the data of the vote_button partial.
type voteButton struct {
	LinkID uuid.UUID
	Kind   string
	Action domain.VoteAction
	Active bool
}

// loadRows resolves tags and vote counts for links through the request's
// DataLoaders, one batched query each.
func loadRows(ctx context.Context, links []*domain.Link) ([]linkRow, error) {
	if len(links) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(links))
	for i, l := range links {
		ids[i] = l.ID
	}

	loaders := dataloader.FromContext(ctx)
	tags, err := dataloader.LoadMany(ctx, loaders.TagsByLinkID, ids)
	if err != nil {
		return nil, err
	}
	votes, err := dataloader.LoadMany(ctx, loaders.VotesByLinkID, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]linkRow, len(links))
	for i, l := range links {
		rows[i] = linkRow{Link: l, Tags: tags[i], Votes: votes[i]}
	}
	return rows, nil
}
