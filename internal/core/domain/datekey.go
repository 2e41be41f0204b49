package domain

import (
	"errors"
	"time"
)

const DateKeyLayout = "2006-01-02"

var (
	ErrInvalidDateKey = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidMonth   = errors.New("invalid month (must be 1-12)")
)

// Clock returns the current instant. Services derive "today" from it, so tests
// can pin the calendar day.
type Clock func() time.Time

// DateKey formats the local calendar day of t. The location of t is kept as is.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return time.Time{}, ErrInvalidDateKey
	}
	return t, nil
}

func ValidateDateKey(key string) error {
	_, err := ParseDateKey(key)
	return err
}

// AddDays shifts a date-key by n calendar days.
func AddDays(key string, n int) (string, error) {
	t, err := ParseDateKey(key)
	if err != nil {
		return "", err
	}
	return DateKey(t.AddDate(0, 0, n)), nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
