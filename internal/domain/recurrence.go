package domain

import (
	"time"

	"github.com/compasshq/compass/internal/constants"
)

// Recurrence is the single tagged recurrence rule attached to a task.
// Only the fields relevant to the rule's Type are consulted; the rest are
// ignored. Zero values select the documented defaults.
type Recurrence struct {
	// Type selects the rule variant (none, daily, weekly, monthly, custom).
	// An empty or unrecognized type behaves like an unconditional daily rule.
	Type constants.RecurrenceType `json:"type" yaml:"type"`

	// Interval is the step between occurrences in the rule's native unit
	// (days for daily, weeks for weekly, months for monthly). Defaults to 1.
	Interval int `json:"interval,omitempty" yaml:"interval"`

	// DaysOfWeek restricts weekly rules to a set of weekdays
	// (0=Sunday .. 6=Saturday). An empty set means "same weekday as the
	// task's due date".
	DaysOfWeek []time.Weekday `json:"days_of_week,omitempty" yaml:"days_of_week"`

	// DayOfMonth selects the calendar day for monthly rules. Defaults to 1.
	DayOfMonth int `json:"day_of_month,omitempty" yaml:"day_of_month"`

	// EndDate, when set, is the last calendar date (inclusive, YYYY-MM-DD)
	// on which an occurrence may fall.
	EndDate string `json:"end_date,omitempty" yaml:"end_date"`

	// MaxOccurrences, when > 0, caps how many occurrences are generated.
	MaxOccurrences int `json:"max_occurrences,omitempty" yaml:"max_occurrences"`

	// WeeklyTimes overrides the task's due time per weekday for weekly
	// rules, keyed by weekday index.
	WeeklyTimes map[time.Weekday]string `json:"weekly_times,omitempty" yaml:"weekly_times"`
}

// EffectiveInterval returns the interval, defaulting to 1 when unset.
func (r *Recurrence) EffectiveInterval() int {
	if r == nil || r.Interval < 1 {
		return 1
	}
	return r.Interval
}

// EffectiveDayOfMonth returns the monthly anchor day, defaulting to 1.
func (r *Recurrence) EffectiveDayOfMonth() int {
	if r == nil || r.DayOfMonth < 1 {
		return 1
	}
	return r.DayOfMonth
}

// MatchesWeekday reports whether day's weekday is in the DaysOfWeek set.
func (r *Recurrence) MatchesWeekday(day time.Time) bool {
	for _, wd := range r.DaysOfWeek {
		if day.Weekday() == wd {
			return true
		}
	}
	return false
}

// TaskInstance is one ephemeral, computed occurrence of a task. Instances
// are produced by the recurrence engine for display purposes and are never
// persisted as separate entities.
type TaskInstance struct {
	// ID is synthesized as <originalId>_<occurrenceIndex> for recurring
	// tasks. A non-recurring task's sole instance keeps the task's own ID.
	ID string `json:"id"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	GoalID      string `json:"goal_id,omitempty"`

	// DueDate is the concrete calendar date of this occurrence.
	DueDate string `json:"due_date"`

	// DueTime is the task's due time, possibly overridden per weekday for
	// weekly rules.
	DueTime string `json:"due_time,omitempty"`

	Priority constants.TaskPriority `json:"priority"`
	Status   constants.TaskStatus   `json:"status"`

	// OriginalTaskID is the ID of the task this occurrence was expanded from.
	OriginalTaskID string `json:"original_task_id"`

	// InstanceNumber is the 1-based sequential position of this occurrence.
	InstanceNumber int `json:"instance_number"`
}
