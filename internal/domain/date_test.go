package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compasshq/compass/internal/errors"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 15, got.Day())

	for _, bad := range []string{"", "someday", "15-06-2025", "2025-6-15"} {
		_, err := ParseDate(bad)
		require.Error(t, err, bad)
		assert.ErrorIs(t, err, errors.ErrInvalidDate)
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	day, err := ParseDate("2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-28", FormatDate(day))
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC)
	night := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	next := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, night))
	assert.False(t, SameDay(night, next))
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 45, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  string
		want int
	}{
		{name: "today", due: "2025-06-15", want: 0},
		{name: "tomorrow", due: "2025-06-16", want: 1},
		{name: "past", due: "2025-06-10", want: -5},
		{name: "next month", due: "2025-07-15", want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, err := ParseDate(tt.due)
			require.NoError(t, err)
			assert.Equal(t, tt.want, DaysUntil(now, due))
		})
	}
}

func TestDaysUntilIgnoresLocation(t *testing.T) {
	// Same calendar date in a non-UTC zone must not shift the count.
	loc := time.FixedZone("plus9", 9*60*60)
	now := time.Date(2025, 6, 15, 23, 0, 0, 0, loc)

	due, err := ParseDate("2025-06-16")
	require.NoError(t, err)
	assert.Equal(t, 1, DaysUntil(now, due))
}

func TestTaskDueOn(t *testing.T) {
	day := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	due := Task{DueDate: "2025-06-15"}
	assert.True(t, due.DueOn(day))

	other := Task{DueDate: "2025-06-16"}
	assert.False(t, other.DueOn(day))

	malformed := Task{DueDate: "eventually"}
	assert.False(t, malformed.DueOn(day))

	empty := Task{}
	assert.False(t, empty.DueOn(day))
}

func TestTaskIsRecurring(t *testing.T) {
	assert.False(t, (&Task{}).IsRecurring())
	assert.False(t, (&Task{Recurrence: &Recurrence{Type: "none"}}).IsRecurring())
	assert.True(t, (&Task{Recurrence: &Recurrence{Type: "weekly"}}).IsRecurring())
}
