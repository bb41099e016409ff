package shared

import (
	"crypto/hmac"
	"net/http"
)

// CSRFHeaderName is the request header that must echo the CSRF cookie on
// state-changing requests.
const CSRFHeaderName = "X-CSRF-Token"

// NewCSRFToken returns a fresh CSRF token. The token is never stored server
// side; validity is established purely by cookie/header equality
// (double-submit cookie).
func NewCSRFToken() string {
	return NewToken()
}

// ValidateCSRF enforces the double-submit check for state-changing methods.
// GET, HEAD and OPTIONS are exempt. The session store is never consulted.
func ValidateCSRF(method, cookieValue, headerValue string) error {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return nil
	}
	if cookieValue == "" || headerValue == "" {
		return ErrCSRFTokenMissing
	}
	if !hmac.Equal([]byte(cookieValue), []byte(headerValue)) {
		return ErrCSRFTokenMismatch
	}
	return nil
}
