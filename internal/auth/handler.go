package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ailways/ailways/internal/platform/httpx"
)

// CookieConfig controls how session and CSRF cookies are emitted.
type CookieConfig struct {
	SessionName string
	CSRFName    string
	Secure      bool
}

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger  *slog.Logger
	service *Service
	guard   *Guard
	cookies CookieConfig
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, guard *Guard, cookies CookieConfig) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		guard:   guard,
		cookies: cookies,
	}
}

// MountRoutes registers auth routes on the provided router. Logout validates
// CSRF before the session: the checks are independent and CSRF failures win.
func (h *Handler) MountRoutes(r chi.Router) {
	r.With(h.guard.RateLimit("register")).Post("/register", h.handleRegister)
	r.With(h.guard.RateLimit("login")).Post("/login", h.handleLogin)
	r.With(h.guard.RequireCSRF, h.guard.RequireAuth).Post("/logout", h.handleLogout)
	r.With(h.guard.RequireAuth).Get("/me", h.handleMe)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Detail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	if err := h.service.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			httpx.Detail(w, http.StatusUnprocessableEntity, verr.Fields)
			return
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.Message(w, "User registered successfully")
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Detail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			httpx.Detail(w, http.StatusUnprocessableEntity, verr.Fields)
			return
		}
		httpx.RespondError(w, err)
		return
	}

	maxAge := h.service.SessionTTL()
	http.SetCookie(w, h.cookie(h.cookies.SessionName, result.SessionToken, maxAge, true))
	http.SetCookie(w, h.cookie(h.cookies.CSRFName, result.CSRFToken, maxAge, false))

	httpx.JSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    result.User.Public(),
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := ""
	if cookie, err := r.Cookie(h.cookies.SessionName); err == nil {
		token = cookie.Value
	}
	if err := h.service.Logout(r.Context(), token); err != nil {
		// A store failure means the token may still work; reporting success
		// here would be a lie. Cookies stay in place so the client can retry.
		h.logger.Error("revoke session", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	http.SetCookie(w, h.cookie(h.cookies.SessionName, "", -1, true))
	http.SetCookie(w, h.cookie(h.cookies.CSRFName, "", -1, false))

	httpx.Message(w, "Logout successful")
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		httpx.Detail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	httpx.JSON(w, http.StatusOK, user.Public())
}

// cookie builds a cookie with the shared attribute set: SameSite=Lax, Path=/,
// Secure in production. Only the session cookie is HttpOnly so client-side
// script can read the CSRF token and echo it in a header.
func (h *Handler) cookie(name, value string, maxAge int, httpOnly bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: httpOnly,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
