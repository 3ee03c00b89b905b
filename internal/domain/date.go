package domain

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the calendar-date format used in storage, import files and flags.
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// StartOfDay returns midnight UTC of t's calendar date in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays shifts t by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween returns the signed number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(math.Round(StartOfDay(b).Sub(StartOfDay(a)).Hours() / 24))
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return DaysBetween(a, b) == 0
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// MinTime returns the earliest of the given times. ok is false when ts is empty.
func MinTime(ts ...time.Time) (min time.Time, ok bool) {
	for i, t := range ts {
		if i == 0 || t.Before(min) {
			min = t
		}
	}
	return min, len(ts) > 0
}

// MaxTime returns the latest of the given times. ok is false when ts is empty.
func MaxTime(ts ...time.Time) (max time.Time, ok bool) {
	for i, t := range ts {
		if i == 0 || t.After(max) {
			max = t
		}
	}
	return max, len(ts) > 0
}
