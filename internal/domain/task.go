package domain

import (
	"time"

	"github.com/compasshq/compass/internal/constants"
)

// Task represents a concrete, schedulable unit of work linked to one goal.
//
// A task may carry a recurrence rule; the occurrences it represents are
// never stored, they are expanded on read (see internal/recurrence). The
// GoalID reference is not validated to exist — a task pointing at a deleted
// goal simply resolves to empty labels in hierarchy lookups.
type Task struct {
	// ID is the unique identifier for the task.
	// Format: task-YYYYMMDD-HHMMSS with an optional millisecond suffix.
	ID string `json:"id" yaml:"id"`

	// Title is a short human-readable name for the task.
	Title string `json:"title" yaml:"title"`

	// Description elaborates on the work to be done.
	Description string `json:"description,omitempty" yaml:"description"`

	// GoalID references the owning goal.
	GoalID string `json:"goal_id,omitempty" yaml:"goal_id"`

	// DueDate is the task's scheduled calendar date (YYYY-MM-DD). For a
	// recurring task it is the start of the recurrence.
	DueDate string `json:"due_date,omitempty" yaml:"due_date"`

	// DueTime is an optional clock time (HH:MM) on the due date.
	DueTime string `json:"due_time,omitempty" yaml:"due_time"`

	// EstimatedDuration and ActualDuration are in minutes.
	EstimatedDuration int `json:"estimated_duration,omitempty" yaml:"estimated_duration"`
	ActualDuration    int `json:"actual_duration,omitempty" yaml:"actual_duration"`

	// Priority is the declared importance (high, medium, low).
	Priority constants.TaskPriority `json:"priority" yaml:"priority"`

	// Status is the task's lifecycle state (pending, in-progress, completed).
	Status constants.TaskStatus `json:"status" yaml:"status"`

	// CompletedAt is set when the task first transitions to completed.
	CompletedAt *time.Time `json:"completed_at,omitempty" yaml:"completed_at"`

	// TimeGranularity is a descriptive scheduling tag (e.g. "morning").
	// It is not used in any computation.
	TimeGranularity string `json:"time_granularity,omitempty" yaml:"time_granularity"`

	// Recurrence is the task's recurrence rule, if any.
	Recurrence *Recurrence `json:"recurrence,omitempty" yaml:"recurrence"`

	// VisionConnection links the task to its higher-purpose narrative.
	// It is produced by a deterministic keyword heuristic, not inference.
	VisionConnection *VisionConnection `json:"vision_connection,omitempty" yaml:"vision_connection"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// IsRecurring reports whether the task carries an effective recurrence rule.
func (t *Task) IsRecurring() bool {
	return t.Recurrence != nil && t.Recurrence.Type != "" && t.Recurrence.Type != constants.RecurrenceNone
}

// DueOn reports whether the task's due date falls on the given day,
// compared by calendar date. Tasks with missing or malformed due dates
// are never due.
func (t *Task) DueOn(day time.Time) bool {
	due, err := ParseDate(t.DueDate)
	if err != nil {
		return false
	}
	return SameDay(due, day)
}
