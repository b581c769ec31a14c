package domain

import (
	"errors"
	"time"
)

const dayLayout = "2006-01-02"

// ErrBadDate indicates a date string that is not a valid YYYY-MM-DD day.
var ErrBadDate = errors.New("date must be in YYYY-MM-DD format")

// ParseDay validates a calendar-date string and returns it in canonical
// YYYY-MM-DD form. Anything time.Parse would coerce but not round-trip
// (missing zero padding, out-of-range month or day, stray whitespace) is
// rejected so stored keys are format-stable.
func ParseDay(s string) (string, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return "", ErrBadDate
	}
	canonical := t.Format(dayLayout)
	if canonical != s {
		return "", ErrBadDate
	}
	return canonical, nil
}
