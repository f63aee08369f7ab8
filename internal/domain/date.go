package domain

import (
	"time"

	"github.com/compasshq/compass/internal/errors"
)

// DateLayout is the calendar date form used throughout the data model.
// Dates are stored as plain strings and parsed on use; callers supply them
// as given and malformed values degrade gracefully rather than erroring.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errors.Wrapf(errors.ErrInvalidDate, "%q", s)
	}
	return t, nil
}

// FormatDate renders t as a YYYY-MM-DD calendar date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDay reports whether a and b fall on the same calendar date,
// ignoring the time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay truncates t to midnight of its calendar date.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysUntil returns the number of calendar days from now until due, as the
// ceiling of the fractional difference. Both values are normalized to their
// calendar dates first, so the location and time of day do not skew the
// count. A due date of today or earlier yields a value <= 0.
func DaysUntil(now, due time.Time) int {
	n := asUTCDate(now)
	d := asUTCDate(due)
	diff := d.Sub(n).Hours() / 24
	days := int(diff)
	if diff > float64(days) {
		days++
	}
	return days
}

func asUTCDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
