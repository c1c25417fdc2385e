//go:build e2e

package e2e_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/linkbook/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/linkbook/internal/app"
	"github.com/heartmarshall/linkbook/internal/config"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL  string
	Pool *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret-at-least-32-chars-long!!",
			JWTIssuer:        "linkbook-test",
			AccessTokenTTL:   time.Hour,
			PasswordHashCost: bcrypt.MinCost,
			CookieName:       "linkbook_session",
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
		Preview: config.PreviewConfig{
			Enabled:      false,
			FetchTimeout: time.Second,
		},
		RateLimit: config.RateLimitConfig{
			WritesPerMinute: 10000,
			CleanupInterval: time.Minute,
		},
	}
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	handler, release := app.NewHandler(context.Background(), testConfig(), pool, logger)
	t.Cleanup(release)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Pool: pool}
}

// ---------------------------------------------------------------------------
// browser is a cookie-keeping client that does not follow redirects.
// ---------------------------------------------------------------------------

type browser struct {
	t      *testing.T
	ts     *testServer
	client *http.Client
}

func (ts *testServer) newBrowser(t *testing.T) *browser {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &browser{
		t:  t,
		ts: ts,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// response is a fully read HTTP response.
type response struct {
	Status   int
	Body     string
	Location string
	Header   http.Header
}

func (b *browser) do(req *http.Request) response {
	b.t.Helper()

	resp, err := b.client.Do(req)
	require.NoError(b.t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)

	return response{
		Status:   resp.StatusCode,
		Body:     string(body),
		Location: resp.Header.Get("Location"),
		Header:   resp.Header,
	}
}

func (b *browser) get(path string) response {
	b.t.Helper()
	req, err := http.NewRequest(http.MethodGet, b.ts.URL+path, nil)
	require.NoError(b.t, err)
	req.Header.Set("Accept", "text/html")
	return b.do(req)
}

func (b *browser) getJSON(path string, v any) response {
	b.t.Helper()
	req, err := http.NewRequest(http.MethodGet, b.ts.URL+path, nil)
	require.NoError(b.t, err)
	req.Header.Set("Accept", "application/json")
	resp := b.do(req)
	if v != nil && resp.Status == http.StatusOK {
		require.NoError(b.t, json.Unmarshal([]byte(resp.Body), v))
	}
	return resp
}

func (b *browser) post(path string, form url.Values) response {
	b.t.Helper()
	req, err := http.NewRequest(http.MethodPost, b.ts.URL+path, strings.NewReader(form.Encode()))
	require.NoError(b.t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

// ---------------------------------------------------------------------------
// Flow helpers.
// ---------------------------------------------------------------------------

// register signs up a fresh user in b and returns its username.
func (b *browser) register() string {
	b.t.Helper()

	username := "u" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	resp := b.post("/register/", url.Values{
		"email":    {username + "@example.com"},
		"username": {username},
		"password": {"correct-horse-battery"},
	})
	require.Equal(b.t, http.StatusFound, resp.Status, resp.Body)
	return username
}

// idFromLocation extracts the id from "/link/{id}/" or "/book/{id}/".
func idFromLocation(t *testing.T, location string) uuid.UUID {
	t.Helper()

	parts := strings.Split(strings.Trim(location, "/"), "/")
	require.Len(t, parts, 2, "unexpected location %q", location)
	id, err := uuid.Parse(parts[1])
	require.NoError(t, err)
	return id
}

func (b *browser) createBook(title string) uuid.UUID {
	b.t.Helper()
	resp := b.post("/book/new/", url.Values{"title": {title}})
	require.Equal(b.t, http.StatusFound, resp.Status, resp.Body)
	return idFromLocation(b.t, resp.Location)
}

func (b *browser) createLink(form url.Values) uuid.UUID {
	b.t.Helper()
	resp := b.post("/link/new/", form)
	require.Equal(b.t, http.StatusFound, resp.Status, resp.Body)
	return idFromLocation(b.t, resp.Location)
}

func linkPath(id uuid.UUID) string { return fmt.Sprintf("/link/%s/", id) }

func bookPath(id uuid.UUID) string { return fmt.Sprintf("/book/%s/", id) }

func (ts *testServer) count(t *testing.T, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, ts.Pool.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}
