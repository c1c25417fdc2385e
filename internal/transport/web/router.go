package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/linkbook/internal/config"
	"github.com/heartmarshall/linkbook/internal/ratelimit"
	"github.com/heartmarshall/linkbook/internal/transport/dataloader"
	"github.com/heartmarshall/linkbook/internal/transport/middleware"
)

// loginPath is where anonymous page loads are sent.
const loginPath = "/login/"

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

// RouterDeps holds everything NewRouter wires.
type RouterDeps struct {
	Logger      *slog.Logger
	Tokens      tokenValidator
	Loaders     *dataloader.Repos
	WriteLimits *ratelimit.Keyed
	Server      config.ServerConfig
	CORS        config.CORSConfig
	CookieName  string

	Links    *LinkHandler
	Books    *BookHandler
	Sessions *SessionHandler
	Health   *HealthHandler
}

// NewRouter builds the HTTP surface.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP(d.Server.TrustProxy),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
		middleware.Auth(d.Tokens, d.CookieName),
	))

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	limited := middleware.RateLimit(d.WriteLimits)
	authed := middleware.RequireAuth(loginPath)

	// Public pages.
	r.Group(func(r chi.Router) {
		r.Use(dataloader.Middleware(d.Loaders))
		r.Get("/", d.Links.Index)
		r.Get("/tag/{name}/", d.Links.ByTag)
		r.Get("/book/{id}/", d.Books.View)
	})
	r.Get("/link/{id}/", d.Links.View)
	r.Get("/link/{id}/preview/", d.Links.Preview)

	// Sessions.
	r.Get("/register/", d.Sessions.RegisterForm)
	r.Get("/login/", d.Sessions.LoginForm)
	r.With(limited).Post("/register/", d.Sessions.Register)
	r.With(limited).Post("/login/", d.Sessions.Login)
	r.Post("/logout/", d.Sessions.Logout)

	// Votes answer JSON 401 from the service for anonymous callers.
	r.With(limited).Get("/link/{id}/vote/", d.Links.Vote)

	// Signed-in pages and writes.
	r.Group(func(r chi.Router) {
		r.Use(authed)
		r.Get("/link/new/", d.Links.NewForm)
		r.Get("/link/{id}/edit/", d.Links.EditForm)
		r.Get("/books/", d.Books.Mine)
		r.Get("/book/new/", d.Books.NewForm)
		r.Get("/book/{id}/edit/", d.Books.EditForm)

		r.With(limited).Post("/link/new/", d.Links.Create)
		r.With(limited).Post("/link/{id}/edit/", d.Links.Edit)
		r.With(limited).Post("/link/{id}/comment/", d.Links.Comment)
		r.With(limited).Post("/book/new/", d.Books.Create)
		r.With(limited).Post("/book/{id}/edit/", d.Books.Edit)
	})

	return r
}
