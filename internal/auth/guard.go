package auth

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/ailways/ailways/internal/platform/httpx"
	"github.com/ailways/ailways/internal/shared"
)

// Guard provides the per-route checks composed onto auth routes: attempt
// throttling for credential endpoints, CSRF validation for mutating
// authenticated routes, and session authentication.
type Guard struct {
	logger            *slog.Logger
	service           *Service
	limiter           *shared.RateLimiter
	sessionCookieName string
	csrfCookieName    string
}

// NewGuard constructs a Guard.
func NewGuard(logger *slog.Logger, service *Service, limiter *shared.RateLimiter, sessionCookieName, csrfCookieName string) *Guard {
	return &Guard{
		logger:            logger,
		service:           service,
		limiter:           limiter,
		sessionCookieName: sessionCookieName,
		csrfCookieName:    csrfCookieName,
	}
}

// RateLimit rejects requests past the attempt budget for (action, client IP)
// before any credential or database work runs.
func (g *Guard) RateLimit(action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, err := g.limiter.Allow(r.Context(), action, clientIP(r))
			if err != nil {
				g.logger.Error("rate limiter unavailable", slog.Any("error", err))
				httpx.RespondError(w, err)
				return
			}
			if !allowed {
				httpx.RespondError(w, shared.ErrRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireCSRF enforces the double-submit cookie check. It runs before
// RequireAuth on logout: a request with no session but a bad CSRF token
// reports the CSRF failure.
func (g *Guard) RequireCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookieValue := ""
		if cookie, err := r.Cookie(g.csrfCookieName); err == nil {
			cookieValue = cookie.Value
		}
		if err := shared.ValidateCSRF(r.Method, cookieValue, r.Header.Get(shared.CSRFHeaderName)); err != nil {
			g.logger.Warn("csrf validation failed", slog.String("path", r.URL.Path))
			httpx.RespondError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth resolves the session cookie into a user and stores it in the
// request context. All failures surface as 401.
func (g *Guard) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if cookie, err := r.Cookie(g.sessionCookieName); err == nil {
			token = cookie.Value
		}
		user, err := g.service.Authenticate(r.Context(), token)
		if err != nil {
			httpx.RespondError(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}

// clientIP keys rate-limit counters by remote address. RealIP middleware runs
// earlier in the chain, so RemoteAddr already reflects forwarding headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
