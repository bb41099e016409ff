package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ailways/ailways/internal/shared"
)

// Service implements the authentication state machine: it turns credentials
// into sessions, resolves an incoming session token into a user, and tears
// sessions down.
type Service struct {
	repo              Repository
	hasher            *Hasher
	sessions          *shared.SessionStore
	validator         *validator.Validate
	passwordMinLength int
}

// LoginResult carries the artifacts of a successful login. The CSRF token is
// independent of the session and never stored server side.
type LoginResult struct {
	SessionToken string
	CSRFToken    string
	User         *User
}

// NewService constructs a new Service.
func NewService(repo Repository, hasher *Hasher, sessions *shared.SessionStore, passwordMinLength int) *Service {
	return &Service{
		repo:              repo,
		hasher:            hasher,
		sessions:          sessions,
		validator:         validator.New(),
		passwordMinLength: passwordMinLength,
	}
}

// Register validates input and creates a new user account. It does not log the
// user in.
func (s *Service) Register(ctx context.Context, name, email, password string) error {
	if err := validateRegister(s.validator, name, email, password, s.passwordMinLength); err != nil {
		return err
	}

	email = normalizeEmail(email)
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return shared.ErrEmailTaken
	} else if !errors.Is(err, shared.ErrNotFound) {
		return fmt.Errorf("auth: register lookup: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("auth: hash password: %w", err)
	}
	if _, err := s.repo.CreateUser(ctx, strings.TrimSpace(name), email, hash); err != nil {
		return err
	}
	return nil
}

// Login verifies credentials and, on success, creates a session and issues an
// independent CSRF token. A missing account and a wrong password return the
// identical error so responses cannot be used to enumerate emails.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := validateLogin(s.validator, email, password); err != nil {
		return nil, err
	}
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth: login lookup: %w", err)
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, shared.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, shared.ErrAccountDisabled
	}

	token, err := s.sessions.Create(ctx, user.ID.String())
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		SessionToken: token,
		CSRFToken:    shared.NewCSRFToken(),
		User:         user,
	}, nil
}

// Logout revokes the presented session token. It always succeeds: the purpose
// is "ensure this token no longer works", which trivially holds for tokens
// that never worked.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, token)
}

// Authenticate resolves a session token into its user. A session whose user no
// longer exists is treated as invalid but not deleted.
func (s *Service) Authenticate(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, shared.ErrNotAuthenticated
	}
	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, shared.ErrSessionInvalid
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, shared.ErrSessionInvalid
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUserNotFound
		}
		return nil, fmt.Errorf("auth: authenticate lookup: %w", err)
	}
	return user, nil
}

// SessionTTL exposes the session lifetime for cookie Max-Age emission.
func (s *Service) SessionTTL() int {
	return int(s.sessions.TTL().Seconds())
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
