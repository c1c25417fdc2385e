package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/linkbook/internal/adapter/cache"
	"github.com/heartmarshall/linkbook/internal/adapter/opengraph"
	"github.com/heartmarshall/linkbook/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/linkbook/internal/adapter/postgres/audit"
	bookrepo "github.com/heartmarshall/linkbook/internal/adapter/postgres/book"
	commentrepo "github.com/heartmarshall/linkbook/internal/adapter/postgres/comment"
	linkrepo "github.com/heartmarshall/linkbook/internal/adapter/postgres/link"
	tagrepo "github.com/heartmarshall/linkbook/internal/adapter/postgres/tag"
	userrepo "github.com/heartmarshall/linkbook/internal/adapter/postgres/user"
	voterepo "github.com/heartmarshall/linkbook/internal/adapter/postgres/vote"
	"github.com/heartmarshall/linkbook/internal/auth"
	"github.com/heartmarshall/linkbook/internal/config"
	"github.com/heartmarshall/linkbook/internal/ratelimit"
	authsvc "github.com/heartmarshall/linkbook/internal/service/auth"
	booksvc "github.com/heartmarshall/linkbook/internal/service/book"
	commentsvc "github.com/heartmarshall/linkbook/internal/service/comment"
	linksvc "github.com/heartmarshall/linkbook/internal/service/link"
	previewsvc "github.com/heartmarshall/linkbook/internal/service/preview"
	votesvc "github.com/heartmarshall/linkbook/internal/service/vote"
	"github.com/heartmarshall/linkbook/internal/transport/dataloader"
	"github.com/heartmarshall/linkbook/internal/transport/web"
)

// container holds the wired HTTP handler and the resources Run must release.
type container struct {
	handler http.Handler
	closers []func()
}

func (c *container) close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// NewHandler builds repositories, services and the router over pool. The
// returned func releases limiter goroutines and the cache connection.
func NewHandler(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func()) {
	c := &container{}

	// Repositories.
	users := userrepo.New(pool)
	links := linkrepo.New(pool)
	books := bookrepo.New(pool)
	tags := tagrepo.New(pool)
	comments := commentrepo.New(pool)
	votes := voterepo.New(pool)
	audit := auditrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services.
	authService := authsvc.NewService(logger, users, audit, tx, jwtManager, cfg.Auth)
	linkService := linksvc.NewService(logger, links, tags, books, audit, tx)
	bookService := booksvc.NewService(logger, books, audit, tx)
	commentService := commentsvc.NewService(logger, comments, links, audit, tx)
	voteService := votesvc.NewService(logger, votes, links, tx)

	var fetcher previewsvc.OpenGraphFetcher
	if cfg.Preview.Enabled {
		hostLimits := ratelimit.New(cfg.Preview.HostRatePerSec, cfg.Preview.HostBurst, cfg.RateLimit.CleanupInterval)
		c.closers = append(c.closers, hostLimits.Stop)
		fetcher = opengraph.NewFetcher(cfg.Preview, hostLimits)
	} else {
		logger.Info("link previews disabled")
	}

	var (
		previewService *previewsvc.Service
		health         *web.HealthHandler
	)
	if client := connectCache(ctx, cfg.Redis, logger); client != nil {
		c.closers = append(c.closers, func() { _ = client.Close() })
		previews := cache.NewPreviewCache(client, cfg.Preview.CacheTTL)
		previewService = previewsvc.NewService(logger, fetcher, previews, cfg.Preview.FetchTimeout)
		health = web.NewHealthHandler(pool, previews, BuildVersion())
	} else {
		previewService = previewsvc.NewService(logger, fetcher, nil, cfg.Preview.FetchTimeout)
		health = web.NewHealthHandler(pool, nil, BuildVersion())
	}

	writeLimits := ratelimit.PerMinute(cfg.RateLimit.WritesPerMinute, cfg.RateLimit.CleanupInterval)
	c.closers = append(c.closers, writeLimits.Stop)

	c.handler = web.NewRouter(web.RouterDeps{
		Logger:      logger,
		Tokens:      authService,
		Loaders:     &dataloader.Repos{Tag: tags, Vote: votes},
		WriteLimits: writeLimits,
		Server:      cfg.Server,
		CORS:        cfg.CORS,
		CookieName:  cfg.Auth.CookieName,
		Links:       web.NewLinkHandler(linkService, bookService, commentService, voteService, previewService, logger),
		Books:       web.NewBookHandler(bookService, linkService, logger),
		Sessions: web.NewSessionHandler(authService, web.CookieConfig{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.Auth.CookieSecure,
		}, logger),
		Health: health,
	})

	return c.handler, c.close
}

// connectCache returns nil when Redis is not configured or unreachable.
// Previews then go uncached.
func connectCache(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) *redis.Client {
	if !cfg.Enabled() {
		return nil
	}
	client, err := cache.NewClient(ctx, cfg)
	if err != nil {
		logger.Warn("preview cache unavailable", slog.String("error", err.Error()))
		return nil
	}
	logger.Info("preview cache connected", slog.String("addr", cfg.Addr))
	return client
}
