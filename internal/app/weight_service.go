package app

import (
	"context"
	"errors"

	"weighttrack/internal/domain"
)

// ErrInvalidWeight indicates a weight value that is not a positive number.
var ErrInvalidWeight = errors.New("weight must be a number greater than zero")

// WeightService encapsulates the weight-tracking use cases. Every
// operation is scoped to a user ID so one user's records are never
// reachable from another's requests.
type WeightService struct {
	repo domain.WeightRepository
}

// NewWeightService creates a WeightService backed by the given repository.
func NewWeightService(repo domain.WeightRepository) *WeightService {
	return &WeightService{repo: repo}
}

// Get returns the weight recorded for the given date, or nil if none
// exists. The date must be a valid YYYY-MM-DD string.
func (s *WeightService) Get(ctx context.Context, userID int64, date string) (*domain.Weight, error) {
	day, err := domain.ParseDay(date)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByDay(ctx, userID, day)
}

// List returns all weights for the user ordered by day ascending.
func (s *WeightService) List(ctx context.Context, userID int64) ([]domain.Weight, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Upsert records value for (userID, date), updating the existing record
// in place when one exists. The returned bool reports whether a new record
// was created.
func (s *WeightService) Upsert(ctx context.Context, userID int64, date string, value float64) (*domain.Weight, bool, error) {
	day, err := domain.ParseDay(date)
	if err != nil {
		return nil, false, err
	}
	if value <= 0 {
		return nil, false, ErrInvalidWeight
	}
	return s.repo.Upsert(ctx, userID, day, value)
}

// Delete removes the weight recorded for the given date and returns how
// many rows were removed. Deleting a date with no record is a no-op.
func (s *WeightService) Delete(ctx context.Context, userID int64, date string) (int64, error) {
	day, err := domain.ParseDay(date)
	if err != nil {
		return 0, err
	}
	return s.repo.DeleteByDay(ctx, userID, day)
}
