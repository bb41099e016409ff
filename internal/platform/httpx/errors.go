package httpx

import (
	"errors"
	"net/http"

	"github.com/ailways/ailways/internal/shared"
)

// RespondError maps domain errors to HTTP responses. All session-layer
// failures (missing token, expired session, vanished user) share the 401
// family; infrastructure failures collapse to a generic 500 without detail.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrEmailTaken):
		Detail(w, http.StatusBadRequest, "Email is already registered")
	case errors.Is(err, shared.ErrInvalidCredentials):
		Detail(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, shared.ErrAccountDisabled):
		Detail(w, http.StatusForbidden, "Account is disabled")
	case errors.Is(err, shared.ErrNotAuthenticated):
		Detail(w, http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, shared.ErrSessionInvalid):
		Detail(w, http.StatusUnauthorized, "Session expired or invalid")
	case errors.Is(err, shared.ErrUserNotFound):
		Detail(w, http.StatusUnauthorized, "User not found or invalid session")
	case errors.Is(err, shared.ErrCSRFTokenMissing), errors.Is(err, shared.ErrCSRFTokenMismatch):
		Detail(w, http.StatusForbidden, "CSRF token missing or invalid")
	case errors.Is(err, shared.ErrRateLimited):
		Detail(w, http.StatusTooManyRequests, "Too many requests")
	default:
		Detail(w, http.StatusInternalServerError, "Internal server error")
	}
}
