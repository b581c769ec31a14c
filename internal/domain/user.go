// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
	"time"
)

// ErrUsernameTaken indicates that the username is already registered. It is
// surfaced by UserRepository.Create when the uniqueness constraint trips.
var ErrUsernameTaken = errors.New("username already registered")

// User represents a registered account. ID is the internal storage
// identity and never leaves the system; PublicID is the opaque external
// identifier embedded in tokens and API responses.
type User struct {
	ID           int64     `json:"-"`
	PublicID     string    `json:"public_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	IsAdmin      bool      `json:"-"`
}

// UserRepository defines the port for user persistence operations.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByPublicID(ctx context.Context, publicID string) (*User, error)
	Create(ctx context.Context, username, publicID, passwordHash string) (*User, error)
}
