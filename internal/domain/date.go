package domain

import (
	"fmt"
	"time"
)

// DateLayout is the ISO date-only format used at the collaborator
// boundary. No time-of-day, no timezone handling.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO date-only string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, ErrValidation)
	}
	return t.UTC(), nil
}

// FormatDate renders a time as an ISO date-only string.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// DaysBetween returns the whole days from one date to another
// (negative when 'to' precedes 'from').
func DaysBetween(from, to time.Time) int {
	f := truncate(from)
	t := truncate(to)
	return int(t.Sub(f).Hours() / 24)
}

// IsDue reports whether a next-review date has been reached on the
// given day. An empty nextReview means never scheduled and is not due.
func IsDue(nextReview, today string) (bool, error) {
	if nextReview == "" {
		return false, nil
	}
	days, err := DaysUntilDue(nextReview, today)
	if err != nil {
		return false, err
	}
	return days <= 0, nil
}

// DaysUntilDue returns the days from today until a next-review date.
// Zero or negative means due.
func DaysUntilDue(nextReview, today string) (int, error) {
	next, err := ParseDate(nextReview)
	if err != nil {
		return 0, err
	}
	now, err := ParseDate(today)
	if err != nil {
		return 0, err
	}
	return DaysBetween(now, next), nil
}

func truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
