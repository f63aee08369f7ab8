// Package domain provides shared domain types for the Compass goal tracker.
// These types are used across all internal packages to ensure consistent
// data structures.
//
// This package follows strict import rules:
//   - CAN import: internal/constants, internal/errors, standard library
//   - MUST NOT import: any other internal packages
//
// All JSON field names use snake_case. Calendar dates are stored as plain
// YYYY-MM-DD strings; see date.go for the parsing helpers.
package domain

import (
	"time"

	"github.com/compasshq/compass/internal/constants"
)

// Goal represents a hierarchical objective node. Goals form a tree through
// ParentID links, from a level-1 vision down to short-term goals. A goal's
// dependent tasks are owned by the task store; deleting a goal cascades to
// them there.
//
// Example JSON representation:
//
//	{
//	    "id": "goal-20260115-093005",
//	    "title": "Run a marathon",
//	    "level": 2,
//	    "parent_id": "goal-20260101-080000",
//	    "start_date": "2026-01-15",
//	    "end_date": "2026-10-01",
//	    "progress": 25,
//	    "status": "active",
//	    "type": "long-term"
//	}
type Goal struct {
	// ID is the unique identifier for the goal.
	// Format: goal-YYYYMMDD-HHMMSS with an optional millisecond suffix.
	ID string `json:"id" yaml:"id"`

	// Title is a short human-readable name for the goal.
	Title string `json:"title" yaml:"title"`

	// Description elaborates on what achieving the goal looks like.
	Description string `json:"description,omitempty" yaml:"description"`

	// Level is the goal's depth in the hierarchy; 1 is the top.
	Level int `json:"level" yaml:"level"`

	// ParentID references the goal one level up, if any. The link is
	// intended to point at an existing goal with Level one less than this
	// goal's, but that is not validated; lookups through a missing parent
	// simply resolve to nothing.
	ParentID string `json:"parent_id,omitempty" yaml:"parent_id"`

	// StartDate and EndDate bound the goal's intended timeframe
	// (YYYY-MM-DD, accepted as given).
	StartDate string `json:"start_date,omitempty" yaml:"start_date"`
	EndDate   string `json:"end_date,omitempty" yaml:"end_date"`

	// Progress is a manually set completion percentage, 0-100. It is never
	// derived from task completion.
	Progress int `json:"progress" yaml:"progress"`

	// Status is the goal's lifecycle state (active, completed, paused).
	Status constants.GoalStatus `json:"status" yaml:"status"`

	// Type hints where the goal sits in the hierarchy for display purposes.
	// It is not enforced against Level.
	Type constants.GoalType `json:"type" yaml:"type"`

	// CreatedAt is when the goal was created.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// UpdatedAt is when the goal was last modified.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// HierarchyPath is the shallow two-level resolution of a task's lineage:
// the owning goal and that goal's parent, rendered as display labels.
// Missing links resolve to empty strings, never an error.
type HierarchyPath struct {
	Vision string `json:"vision"`
	Goal   string `json:"goal"`
	Task   string `json:"task"`
}
