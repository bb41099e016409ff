package shared

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionStore maps opaque session tokens to user IDs in Redis. Expiry is
// enforced by the store: the TTL is set once at creation and never refreshed,
// so sessions have a fixed lifetime from login.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore constructs a SessionStore with the configured session lifetime.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Create stores a new token -> userID mapping and returns the token. Tokens
// carry 256 bits of entropy; collisions are treated as negligible and not
// checked against the store.
func (s *SessionStore) Create(ctx context.Context, userID string) (string, error) {
	token := NewToken()
	if err := s.client.Set(ctx, sessionKeyPrefix+token, userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session store: create: %w", err)
	}
	return token, nil
}

// Resolve returns the user ID mapped to token, or the empty string when the
// token is unknown or expired.
func (s *SessionStore) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("session store: resolve: %w", err)
	}
	return userID, nil
}

// Revoke deletes the token mapping. Deleting an absent token is not an error.
func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("session store: revoke: %w", err)
	}
	return nil
}

// TTL exposes the configured session lifetime.
func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}

// NewToken returns a URL-safe random token with 256 bits of entropy.
func NewToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the process cannot mint credentials at all.
		panic(fmt.Sprintf("shared: read random: %v", err))
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
