// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"weighttrack/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu      sync.Mutex
	users   []*domain.User
	weights []domain.Weight

	userIDCounter   int64
	weightIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.WeightRepository = (*DB)(nil)

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// GetByPublicID retrieves a user by public identifier.
func (db *DB) GetByPublicID(ctx context.Context, publicID string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.PublicID == publicID {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user, rejecting duplicate usernames.
func (db *DB) Create(ctx context.Context, username, publicID, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, domain.ErrUsernameTaken
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		PublicID:     publicID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	return u, nil
}

// --- WeightRepository ---

// FindByDay returns the weight for (userID, day), or nil if none exists.
func (db *DB) FindByDay(ctx context.Context, userID int64, day string) (*domain.Weight, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.weights {
		w := db.weights[i]
		if w.UserID == userID && w.Day == day {
			return &w, nil
		}
	}
	return nil, nil
}

// ListByUser returns the user's weights ordered by day ascending.
func (db *DB) ListByUser(ctx context.Context, userID int64) ([]domain.Weight, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := []domain.Weight{}
	for _, w := range db.weights {
		if w.UserID == userID {
			result = append(result, w)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Day < result[j].Day
	})
	return result, nil
}

// Upsert creates or updates the record for (userID, day). The mutex makes
// the check-then-write atomic, matching the database unique constraint.
func (db *DB) Upsert(ctx context.Context, userID int64, day string, value float64) (*domain.Weight, bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.weights {
		if db.weights[i].UserID == userID && db.weights[i].Day == day {
			db.weights[i].Value = value
			w := db.weights[i]
			return &w, false, nil
		}
	}

	db.weightIDCounter++
	w := domain.Weight{
		ID:     db.weightIDCounter,
		UserID: userID,
		Day:    day,
		Value:  value,
	}
	db.weights = append(db.weights, w)
	return &w, true, nil
}

// DeleteByDay removes all rows for (userID, day) and returns the count.
func (db *DB) DeleteByDay(ctx context.Context, userID int64, day string) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var kept []domain.Weight
	var deleted int64
	for _, w := range db.weights {
		if w.UserID == userID && w.Day == day {
			deleted++
			continue
		}
		kept = append(kept, w)
	}
	db.weights = kept
	return deleted, nil
}
