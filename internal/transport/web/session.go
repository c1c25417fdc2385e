package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/linkbook/internal/domain"
	"github.com/heartmarshall/linkbook/internal/service/auth"
	"github.com/heartmarshall/linkbook/internal/transport/middleware"
)

type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
}

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
}

// SessionHandler serves registration, login and logout.
type SessionHandler struct {
	responder
	svc    authService
	cookie CookieConfig
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc authService, cookie CookieConfig, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		responder: responder{log: logger.With("handler", "session"), render: mustRenderer()},
		svc:       svc,
		cookie:    cookie,
	}
}

// RegisterForm handles GET /register/.
func (h *SessionHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.renderAuth(w, r, http.StatusOK, true, authForm{}, r.URL.Query().Get("next"), "", nil)
}

// Register handles POST /register/.
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, err)
		return
	}

	form := authForm{
		Email:    r.PostFormValue("email"),
		Username: r.PostFormValue("username"),
	}
	next := r.PostFormValue("next")

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Email:    form.Email,
		Username: form.Username,
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			h.renderAuth(w, r, http.StatusConflict, true, form, next, "That email or username is already taken.", nil)
			return
		}
		errs, ok := fieldErrors(err)
		if !ok {
			h.fail(w, r, err)
			return
		}
		h.renderAuth(w, r, http.StatusBadRequest, true, form, next, "", errs)
		return
	}

	h.startSession(w, r, result, next)
}

// LoginForm handles GET /login/.
func (h *SessionHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderAuth(w, r, http.StatusOK, false, authForm{}, r.URL.Query().Get("next"), "", nil)
}

// Login handles POST /login/.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, err)
		return
	}

	form := authForm{Login: r.PostFormValue("login")}
	next := r.PostFormValue("next")

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Login:    form.Login,
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.renderAuth(w, r, http.StatusUnauthorized, false, form, next, "Wrong username or password.", nil)
			return
		}
		errs, ok := fieldErrors(err)
		if !ok {
			h.fail(w, r, err)
			return
		}
		h.renderAuth(w, r, http.StatusBadRequest, false, form, next, "", errs)
		return
	}

	h.startSession(w, r, result, next)
}

// Logout handles POST /logout/. There is no GET route so a cross-site
// link or image cannot end a session.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w, h.cookie.Name)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *SessionHandler) startSession(w http.ResponseWriter, r *http.Request, result *auth.AuthResult, next string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    result.AccessToken,
		Path:     "/",
		MaxAge:   int(result.ExpiresIn / time.Second),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, safeNext(next), http.StatusFound)
}

func (h *SessionHandler) renderAuth(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	register bool,
	form authForm,
	next string,
	message string,
	errs map[string]string,
) {
	page := authPage{
		basePage: newBase(r.Context(), "Log in"),
		Heading:  "Log in",
		Action:   "/login/",
		Register: register,
		Next:     safeNext(next),
		Form:     form,
		Message:  message,
		Errors:   errs,
	}
	if register {
		page.Title, page.Heading, page.Action = "Register", "Register", "/register/"
	}
	h.renderPage(w, r, status, "auth", page)
}
