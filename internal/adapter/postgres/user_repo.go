package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"weighttrack/internal/domain"

	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint trip.
const uniqueViolation = "23505"

// GetByUsername retrieves a user by username.
func (d *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, username, public_id, password_hash, created_at, is_admin FROM users WHERE username = $1",
		username,
	).Scan(&u.ID, &u.Username, &u.PublicID, &u.PasswordHash, &u.CreatedAt, &u.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByPublicID retrieves a user by its opaque external identifier.
func (d *DB) GetByPublicID(ctx context.Context, publicID string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, username, public_id, password_hash, created_at, is_admin FROM users WHERE public_id = $1",
		publicID,
	).Scan(&u.ID, &u.Username, &u.PublicID, &u.PasswordHash, &u.CreatedAt, &u.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. A duplicate username surfaces as
// domain.ErrUsernameTaken rather than a raw constraint error.
func (d *DB) Create(ctx context.Context, username, publicID, passwordHash string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO users (username, public_id, password_hash, created_at) VALUES ($1, $2, $3, $4) RETURNING id, username, public_id, password_hash, created_at, is_admin",
		username, publicID, passwordHash, time.Now(),
	).Scan(&u.ID, &u.Username, &u.PublicID, &u.PasswordHash, &u.CreatedAt, &u.IsAdmin)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, domain.ErrUsernameTaken
		}
		return nil, err
	}
	return &u, nil
}
