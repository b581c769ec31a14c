package postgres

import (
	"context"
	"database/sql"
	"errors"

	"weighttrack/internal/domain"
)

// FindByDay returns the weight recorded for (userID, day), or nil if none.
func (d *DB) FindByDay(ctx context.Context, userID int64, day string) (*domain.Weight, error) {
	var w domain.Weight
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, user_id, day, value FROM weights WHERE user_id = $1 AND day = $2;",
		userID, day,
	).Scan(&w.ID, &w.UserID, &w.Day, &w.Value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// ListByUser returns all weights for the user ordered by day ascending.
// Days are canonical YYYY-MM-DD strings, so lexicographic order is
// chronological.
func (d *DB) ListByUser(ctx context.Context, userID int64) ([]domain.Weight, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, day, value FROM weights WHERE user_id = $1 ORDER BY day ASC;", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Weight{}
	for rows.Next() {
		var w domain.Weight
		if err := rows.Scan(&w.ID, &w.UserID, &w.Day, &w.Value); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Upsert creates or updates the record for (userID, day). The UNIQUE
// (user_id, day) constraint serializes concurrent writers: the insert
// yields no row when the key exists, in which case the write retries as an
// update. The loop only repeats if a concurrent delete lands between the
// two statements.
func (d *DB) Upsert(ctx context.Context, userID int64, day string, value float64) (*domain.Weight, bool, error) {
	for {
		var w domain.Weight
		err := d.sql.QueryRowContext(ctx,
			"INSERT INTO weights(user_id, day, value) VALUES($1, $2, $3) ON CONFLICT (user_id, day) DO NOTHING RETURNING id, user_id, day, value;",
			userID, day, value,
		).Scan(&w.ID, &w.UserID, &w.Day, &w.Value)
		if err == nil {
			return &w, true, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, false, err
		}

		err = d.sql.QueryRowContext(ctx,
			"UPDATE weights SET value = $3 WHERE user_id = $1 AND day = $2 RETURNING id, user_id, day, value;",
			userID, day, value,
		).Scan(&w.ID, &w.UserID, &w.Day, &w.Value)
		if err == nil {
			return &w, false, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, false, err
		}
	}
}

// DeleteByDay removes all rows for (userID, day) and returns the count.
func (d *DB) DeleteByDay(ctx context.Context, userID int64, day string) (int64, error) {
	res, err := d.sql.ExecContext(ctx,
		"DELETE FROM weights WHERE user_id = $1 AND day = $2;", userID, day)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
