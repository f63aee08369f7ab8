package task

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compasshq/compass/internal/clock"
	"github.com/compasshq/compass/internal/constants"
	"github.com/compasshq/compass/internal/domain"
	"github.com/compasshq/compass/internal/storage"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

// setupTestStore creates a store over a temp-dir file backend with a fixed
// clock and no annotator.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	kv, err := storage.NewFileKV(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	return NewStore(kv, zerolog.Nop(), clock.Fixed{T: testNow}, nil)
}

// stubGoals resolves a fixed goal set for hierarchy path tests.
type stubGoals struct {
	goals map[string]domain.Goal
}

func (g *stubGoals) Find(id string) (domain.Goal, bool) {
	goal, ok := g.goals[id]
	return goal, ok
}

func TestNewStoreSeedsDefaults(t *testing.T) {
	s := setupTestStore(t)
	require.NotEmpty(t, s.List(), "first run seeds the default tasks")
}

func TestAddDefaults(t *testing.T) {
	s := setupTestStore(t)

	added := s.Add(domain.Task{
		ID:    "ignored",
		Title: "Water the plants",
	}, false)

	assert.Equal(t, "task-20250615-103000", added.ID)
	assert.Equal(t, constants.TaskStatusPending, added.Status)
	assert.Equal(t, constants.TaskPriorityMedium, added.Priority)
	assert.Equal(t, testNow, added.CreatedAt)
}

func TestAddAutoConnect(t *testing.T) {
	annotate := func(title, _ string) *domain.VisionConnection {
		if title == "no match" {
			return nil
		}
		return &domain.VisionConnection{ImpactScore: 4, ValueAlignment: []string{"health"}}
	}

	kv, err := storage.NewFileKV(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	s := NewStore(kv, zerolog.Nop(), clock.Fixed{T: testNow}, annotate)

	connected := s.Add(domain.Task{Title: "Go for a run"}, true)
	require.NotNil(t, connected.VisionConnection)
	assert.Equal(t, 4, connected.VisionConnection.ImpactScore)

	unconnected := s.Add(domain.Task{Title: "no match"}, true)
	assert.Nil(t, unconnected.VisionConnection)

	skipped := s.Add(domain.Task{Title: "Go for a run"}, false)
	assert.Nil(t, skipped.VisionConnection, "autoConnect off leaves the task unconnected")

	explicit := s.Add(domain.Task{
		Title:            "Go for a run",
		VisionConnection: &domain.VisionConnection{ImpactScore: 9},
	}, true)
	assert.Equal(t, 9, explicit.VisionConnection.ImpactScore, "an existing connection is never overwritten")
}

func TestUpdateStampsCompletedAt(t *testing.T) {
	s := setupTestStore(t)
	added := s.Add(domain.Task{Title: "Finish me"}, false)

	completed := constants.TaskStatusCompleted
	updated, ok := s.Update(added.ID, domain.TaskPatch{Status: &completed})
	require.True(t, ok)
	require.NotNil(t, updated.CompletedAt)
	first := *updated.CompletedAt
	assert.Equal(t, testNow, first)

	// Completing again does not move the stamp.
	title := "Finished"
	updated, ok = s.Update(added.ID, domain.TaskPatch{Title: &title, Status: &completed})
	require.True(t, ok)
	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, first, *updated.CompletedAt)
}

func TestDelete(t *testing.T) {
	s := setupTestStore(t)
	added := s.Add(domain.Task{Title: "Short-lived"}, false)

	require.True(t, s.Delete(added.ID))
	_, ok := s.Get(added.ID)
	assert.False(t, ok)
	assert.False(t, s.Delete(added.ID))
}

func TestDeleteByGoal(t *testing.T) {
	s := setupTestStore(t)
	s.Replace([]domain.Task{
		{ID: "t1", Title: "One", GoalID: "g1"},
		{ID: "t2", Title: "Two", GoalID: "g2"},
		{ID: "t3", Title: "Three", GoalID: "g1"},
	})

	removed := s.DeleteByGoal("g1")
	assert.Equal(t, 2, removed)

	remaining := s.List()
	require.Len(t, remaining, 1)
	assert.Equal(t, "t2", remaining[0].ID, "unrelated tasks survive the cascade")

	assert.Zero(t, s.DeleteByGoal("g1"))
}

func TestTodays(t *testing.T) {
	s := setupTestStore(t)
	s.Replace([]domain.Task{
		{ID: "yesterday", Title: "Late", DueDate: "2025-06-14"},
		{ID: "today", Title: "Now", DueDate: "2025-06-15"},
		{ID: "tomorrow", Title: "Soon", DueDate: "2025-06-16"},
		{ID: "undated", Title: "Whenever"},
	})

	todays := s.Todays()
	require.Len(t, todays, 1)
	assert.Equal(t, "today", todays[0].ID)
}

func TestWithVisionConnection(t *testing.T) {
	s := setupTestStore(t)
	s.Replace([]domain.Task{
		{ID: "plain", Title: "Plain"},
		{ID: "linked", Title: "Linked", VisionConnection: &domain.VisionConnection{ImpactScore: 5}},
	})

	linked := s.WithVisionConnection()
	require.Len(t, linked, 1)
	assert.Equal(t, "linked", linked[0].ID)
}

func TestUpdateVisionConnection(t *testing.T) {
	s := setupTestStore(t)
	added := s.Add(domain.Task{Title: "Connect me"}, false)

	conn := &domain.VisionConnection{ImpactScore: 6, WhyStatement: "Because."}
	require.True(t, s.UpdateVisionConnection(added.ID, conn))

	got, ok := s.Get(added.ID)
	require.True(t, ok)
	require.NotNil(t, got.VisionConnection)
	assert.Equal(t, 6, got.VisionConnection.ImpactScore)

	assert.False(t, s.UpdateVisionConnection("task-unknown", conn))
}

func TestHierarchyPath(t *testing.T) {
	s := setupTestStore(t)
	s.SetGoals(&stubGoals{goals: map[string]domain.Goal{
		"g-goal":   {ID: "g-goal", Title: "Run a 5k", ParentID: "g-vision"},
		"g-vision": {ID: "g-vision", Title: "Healthy life"},
		"g-orphan": {ID: "g-orphan", Title: "Orphan"},
	}})
	s.Replace([]domain.Task{
		{ID: "full", Title: "Morning run", GoalID: "g-goal"},
		{ID: "shallow", Title: "Odd one", GoalID: "g-orphan"},
		{ID: "dangling", Title: "No goal", GoalID: "g-missing"},
	})

	tests := []struct {
		name   string
		taskID string
		want   domain.HierarchyPath
	}{
		{
			name:   "full chain",
			taskID: "full",
			want:   domain.HierarchyPath{Vision: "Healthy life", Goal: "Run a 5k", Task: "Morning run"},
		},
		{
			name:   "goal without parent",
			taskID: "shallow",
			want:   domain.HierarchyPath{Goal: "Orphan", Task: "Odd one"},
		},
		{
			name:   "missing goal",
			taskID: "dangling",
			want:   domain.HierarchyPath{Task: "No goal"},
		},
		{
			name:   "unknown task",
			taskID: "nope",
			want:   domain.HierarchyPath{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.HierarchyPath(tt.taskID))
		})
	}
}

func TestReset(t *testing.T) {
	s := setupTestStore(t)
	seedCount := len(s.List())

	s.Replace(nil)
	require.Empty(t, s.List())

	s.Reset()
	assert.Len(t, s.List(), seedCount)
}
