package constants

// GoalStatus represents the lifecycle state of a goal.
type GoalStatus string

// Goal status constants define the valid states a goal can be in.
const (
	// GoalStatusActive indicates the goal is currently being pursued.
	GoalStatusActive GoalStatus = "active"

	// GoalStatusCompleted indicates the goal has been achieved.
	GoalStatusCompleted GoalStatus = "completed"

	// GoalStatusPaused indicates the goal is temporarily set aside.
	GoalStatusPaused GoalStatus = "paused"
)

// String returns the string representation of the GoalStatus.
func (s GoalStatus) String() string {
	return string(s)
}

// Valid reports whether s is a recognized goal status.
func (s GoalStatus) Valid() bool {
	switch s {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusPaused:
		return true
	}
	return false
}

// GoalType is a display hint for where a goal sits in the hierarchy.
// It is not enforced against the goal's numeric level.
type GoalType string

// Goal type constants from the broadest horizon down.
const (
	GoalTypeVision    GoalType = "vision"
	GoalTypeLongTerm  GoalType = "long-term"
	GoalTypeMidTerm   GoalType = "mid-term"
	GoalTypeShortTerm GoalType = "short-term"
)

// String returns the string representation of the GoalType.
func (t GoalType) String() string {
	return string(t)
}

// Valid reports whether t is a recognized goal type.
func (t GoalType) Valid() bool {
	switch t {
	case GoalTypeVision, GoalTypeLongTerm, GoalTypeMidTerm, GoalTypeShortTerm:
		return true
	}
	return false
}

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

// Task status constants define the valid states a task can be in.
//
//	Pending → InProgress, Completed
//	InProgress → Completed, Pending
const (
	// TaskStatusPending indicates the task has not been started.
	TaskStatusPending TaskStatus = "pending"

	// TaskStatusInProgress indicates the task is actively being worked on.
	TaskStatusInProgress TaskStatus = "in-progress"

	// TaskStatusCompleted indicates the task is done. The task's completed_at
	// timestamp is set when this status is first reached.
	TaskStatusCompleted TaskStatus = "completed"
)

// String returns the string representation of the TaskStatus.
func (s TaskStatus) String() string {
	return string(s)
}

// Valid reports whether s is a recognized task status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// TaskPriority represents the declared importance of a task.
type TaskPriority string

// Task priority constants.
const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// String returns the string representation of the TaskPriority.
func (p TaskPriority) String() string {
	return string(p)
}

// Valid reports whether p is a recognized task priority.
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	}
	return false
}

// RecurrenceType identifies the recurrence rule variant attached to a task.
type RecurrenceType string

// Recurrence type constants.
const (
	// RecurrenceNone marks a task as non-recurring; the task itself is its
	// sole occurrence.
	RecurrenceNone RecurrenceType = "none"

	// RecurrenceDaily repeats every interval days.
	RecurrenceDaily RecurrenceType = "daily"

	// RecurrenceWeekly repeats on a set of weekdays, or weekly on the start
	// weekday when the set is empty.
	RecurrenceWeekly RecurrenceType = "weekly"

	// RecurrenceMonthly repeats on a fixed day of the month.
	RecurrenceMonthly RecurrenceType = "monthly"

	// RecurrenceCustom is a reserved variant. It currently behaves like an
	// unconditional daily rule.
	RecurrenceCustom RecurrenceType = "custom"
)

// String returns the string representation of the RecurrenceType.
func (t RecurrenceType) String() string {
	return string(t)
}
