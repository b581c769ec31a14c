package domain

import "context"

// Weight represents a single daily weight measurement. Day is always a
// canonical YYYY-MM-DD string; at most one record exists per (UserID, Day).
type Weight struct {
	ID     int64   `json:"-"`
	UserID int64   `json:"-"`
	Day    string  `json:"date"`
	Value  float64 `json:"weight"`
}

// WeightRepository is the port for weight persistence.
type WeightRepository interface {
	FindByDay(ctx context.Context, userID int64, day string) (*Weight, error)
	ListByUser(ctx context.Context, userID int64) ([]Weight, error)
	// Upsert creates or updates the record for (userID, day) and reports
	// whether a new row was created. It must be safe under concurrent
	// calls for the same key.
	Upsert(ctx context.Context, userID int64, day string, value float64) (*Weight, bool, error)
	// DeleteByDay removes all rows for (userID, day) and returns the count.
	DeleteByDay(ctx context.Context, userID int64, day string) (int64, error)
}
