package domain

import "github.com/compasshq/compass/internal/constants"

// GoalPatch is a partial-field update for a goal. Nil fields are left
// unchanged; non-nil fields are merged onto the matching goal. Using an
// explicit option-per-field struct keeps partial updates type-checked
// instead of flowing through open-ended dictionaries.
type GoalPatch struct {
	Title       *string
	Description *string
	Level       *int
	ParentID    *string
	StartDate   *string
	EndDate     *string
	Progress    *int
	Status      *constants.GoalStatus
	Type        *constants.GoalType
}

// Apply merges the patch onto g.
func (p GoalPatch) Apply(g *Goal) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.Level != nil {
		g.Level = *p.Level
	}
	if p.ParentID != nil {
		g.ParentID = *p.ParentID
	}
	if p.StartDate != nil {
		g.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		g.EndDate = *p.EndDate
	}
	if p.Progress != nil {
		g.Progress = *p.Progress
	}
	if p.Status != nil {
		g.Status = *p.Status
	}
	if p.Type != nil {
		g.Type = *p.Type
	}
}

// TaskPatch is a partial-field update for a task, with the same nil-means-
// unchanged semantics as GoalPatch. CompletedAt is not patchable directly;
// the task store sets it on the first transition to completed.
type TaskPatch struct {
	Title             *string
	Description       *string
	GoalID            *string
	DueDate           *string
	DueTime           *string
	EstimatedDuration *int
	ActualDuration    *int
	Priority          *constants.TaskPriority
	Status            *constants.TaskStatus
	TimeGranularity   *string
	Recurrence        *Recurrence
	VisionConnection  *VisionConnection
}

// Apply merges the patch onto t.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.GoalID != nil {
		t.GoalID = *p.GoalID
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.DueTime != nil {
		t.DueTime = *p.DueTime
	}
	if p.EstimatedDuration != nil {
		t.EstimatedDuration = *p.EstimatedDuration
	}
	if p.ActualDuration != nil {
		t.ActualDuration = *p.ActualDuration
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.TimeGranularity != nil {
		t.TimeGranularity = *p.TimeGranularity
	}
	if p.Recurrence != nil {
		t.Recurrence = p.Recurrence
	}
	if p.VisionConnection != nil {
		t.VisionConnection = p.VisionConnection
	}
}
