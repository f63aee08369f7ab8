package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func TestGoals(t *testing.T) {
	goals := Goals(testNow)
	require.NotEmpty(t, goals)

	ids := make(map[string]bool)
	for _, g := range goals {
		assert.NotEmpty(t, g.ID)
		assert.NotEmpty(t, g.Title)
		assert.Equal(t, testNow, g.CreatedAt)
		assert.False(t, ids[g.ID], "seed IDs must be unique")
		ids[g.ID] = true

		if g.ParentID != "" {
			assert.True(t, ids[g.ParentID], "parents are declared before children")
		}
	}
}

func TestTasksAnchoredToday(t *testing.T) {
	tasks := Tasks(testNow)
	require.NotEmpty(t, tasks)

	for _, task := range tasks {
		assert.Equal(t, "2025-06-15", task.DueDate, "undated seed tasks are due today")
		assert.Equal(t, testNow, task.CreatedAt)
	}
}

func TestTaskGoalReferencesResolve(t *testing.T) {
	goals := Goals(testNow)
	known := make(map[string]bool, len(goals))
	for _, g := range goals {
		known[g.ID] = true
	}

	for _, task := range Tasks(testNow) {
		assert.True(t, known[task.GoalID], "task %s references unknown goal %s", task.ID, task.GoalID)
	}
}

func TestProfile(t *testing.T) {
	a := Profile(testNow)
	b := Profile(testNow)

	assert.NotEmpty(t, a.Name)
	assert.Equal(t, testNow, a.CreatedAt)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID, "each seeded profile gets a fresh identity")
}
