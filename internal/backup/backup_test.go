package backup

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compasshq/compass/internal/clock"
	"github.com/compasshq/compass/internal/constants"
	"github.com/compasshq/compass/internal/domain"
	"github.com/compasshq/compass/internal/goal"
	"github.com/compasshq/compass/internal/storage"
	"github.com/compasshq/compass/internal/task"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func setupService(t *testing.T) (*Service, *goal.Store, *task.Store) {
	t.Helper()

	kv, err := storage.NewFileKV(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	clk := clock.Fixed{T: testNow}
	goals := goal.NewStore(kv, zerolog.Nop(), clk)
	tasks := task.NewStore(kv, zerolog.Nop(), clk, nil)
	goals.SetCascade(tasks)
	tasks.SetGoals(goals)

	return NewService(goals, tasks, clk, zerolog.Nop()), goals, tasks
}

func TestExport(t *testing.T) {
	svc, goals, tasks := setupService(t)

	doc, err := svc.Export()
	require.NoError(t, err)

	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal([]byte(doc), &snap))

	assert.Equal(t, constants.ExportVersion, snap.Version)
	assert.Equal(t, testNow.Format(time.RFC3339), snap.ExportedAt)
	assert.Len(t, snap.Goals, len(goals.List()))
	assert.Len(t, snap.Tasks, len(tasks.List()))
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, goals, tasks := setupService(t)

	g := goals.Add(domain.Goal{Title: "Exported goal", Type: constants.GoalTypeShortTerm})
	tasks.Add(domain.Task{Title: "Exported task", GoalID: g.ID}, false)

	doc, err := svc.Export()
	require.NoError(t, err)

	wantGoals := goals.List()
	wantTasks := tasks.List()

	// Wipe, then restore from the export.
	goals.Replace(nil)
	tasks.Replace(nil)
	require.True(t, svc.Import(doc))

	assert.Equal(t, wantGoals, goals.List())
	assert.Equal(t, wantTasks, tasks.List())
}

func TestImportPartialDocument(t *testing.T) {
	svc, goals, tasks := setupService(t)
	goalsBefore := goals.List()

	// Only tasks present: the goal collection is untouched, not emptied.
	require.True(t, svc.Import(`{"tasks": [{"id": "t1", "title": "Only task"}]}`))

	assert.Equal(t, goalsBefore, goals.List())
	require.Len(t, tasks.List(), 1)
	assert.Equal(t, "t1", tasks.List()[0].ID)
}

func TestImportEmptyArrayEmpties(t *testing.T) {
	svc, goals, tasks := setupService(t)
	tasksBefore := tasks.List()

	require.True(t, svc.Import(`{"goals": []}`))

	assert.Empty(t, goals.List())
	assert.Equal(t, tasksBefore, tasks.List())
}

func TestImportRejectsMalformed(t *testing.T) {
	svc, goals, tasks := setupService(t)
	goalsBefore := goals.List()
	tasksBefore := tasks.List()

	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: "not json"},
		{name: "wrong shape", payload: `{"goals": "nope"}`},
		{name: "empty string", payload: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, svc.Import(tt.payload))
			assert.Equal(t, goalsBefore, goals.List(), "state is untouched on rejection")
			assert.Equal(t, tasksBefore, tasks.List())
		})
	}
}

func TestReset(t *testing.T) {
	svc, goals, tasks := setupService(t)
	seedGoals := len(goals.List())
	seedTasks := len(tasks.List())

	goals.Replace(nil)
	tasks.Replace(nil)

	svc.Reset()

	assert.Len(t, goals.List(), seedGoals)
	assert.Len(t, tasks.List(), seedTasks)
}
