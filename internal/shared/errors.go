package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken indicates the registration email is already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials indicates login failure. Unknown email and wrong
	// password both map here so responses cannot be told apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountDisabled indicates a correct password against a deactivated account.
	ErrAccountDisabled = errors.New("account disabled")
	// ErrNotAuthenticated occurs when no session token is presented.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSessionInvalid occurs when the session token is expired or unknown.
	ErrSessionInvalid = errors.New("session expired or invalid")
	// ErrUserNotFound occurs when a resolved session maps to a missing user.
	ErrUserNotFound = errors.New("user not found")
	// ErrCSRFTokenMissing occurs when CSRF token missing.
	ErrCSRFTokenMissing = errors.New("csrf token missing")
	// ErrCSRFTokenMismatch occurs when CSRF tokens do not match.
	ErrCSRFTokenMismatch = errors.New("csrf token mismatch")
	// ErrRateLimited occurs when a client exceeds the attempt budget for an action.
	ErrRateLimited = errors.New("rate limited")
)
