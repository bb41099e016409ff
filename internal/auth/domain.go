package auth

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user account. PasswordHash never leaves this package in a
// response body.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
}

// PublicUser is the projection of User safe to return to clients.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the client-visible projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
	}
}
