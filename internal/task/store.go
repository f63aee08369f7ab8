// Package task implements the task store: CRUD over the task collection,
// the today filter, vision-connection bookkeeping, impact scoring, and the
// shallow hierarchy path lookup.
//
// Persistence follows the same contract as the goal store: every mutation
// updates the in-memory collection and then writes through the storage
// adapter; a failed durable write is logged and the in-memory change
// stands.
package task

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/compasshq/compass/internal/clock"
	"github.com/compasshq/compass/internal/constants"
	"github.com/compasshq/compass/internal/domain"
	"github.com/compasshq/compass/internal/seed"
	"github.com/compasshq/compass/internal/storage"
)

// GoalResolver looks up goals for hierarchy path resolution. The goal
// store satisfies this.
type GoalResolver interface {
	Find(id string) (domain.Goal, bool)
}

// Annotator infers a vision connection from task text. vision.Infer
// satisfies this; nil output means "no connection".
type Annotator func(title, description string) *domain.VisionConnection

// Store owns the task collection.
type Store struct {
	kv       storage.KV
	log      zerolog.Logger
	clock    clock.Clock
	goals    GoalResolver
	annotate Annotator
	tasks    []domain.Task
}

// NewStore loads the persisted task collection, seeding the built-in
// defaults when nothing has been stored yet. The annotator may be nil to
// disable vision-connection inference.
func NewStore(kv storage.KV, log zerolog.Logger, clk clock.Clock, annotate Annotator) *Store {
	s := &Store{kv: kv, log: log, clock: clk, annotate: annotate}
	if !s.kv.Get(constants.TasksKey, &s.tasks) {
		s.tasks = seed.Tasks(clk.Now())
		s.persist()
		s.log.Info().Int("count", len(s.tasks)).Msg("seeded default tasks")
	}
	return s
}

// SetGoals attaches the goal resolver used by HierarchyPath. Wired after
// construction, like the goal store's cascade.
func (s *Store) SetGoals(g GoalResolver) {
	s.goals = g
}

// Add creates a new task from the given fields, ignoring any supplied ID.
// When autoConnect is set and the task has no vision connection yet, the
// annotator derives one from the task's text.
func (s *Store) Add(t domain.Task, autoConnect bool) domain.Task {
	now := s.clock.Now()
	t.ID = s.newID(now)
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = constants.TaskStatusPending
	}
	if t.Priority == "" {
		t.Priority = constants.TaskPriorityMedium
	}
	if autoConnect && t.VisionConnection == nil && s.annotate != nil {
		t.VisionConnection = s.annotate(t.Title, t.Description)
	}
	s.tasks = append(s.tasks, t)
	s.persist()
	return t
}

// Update merges the patch onto the task with the given ID. The first
// transition to completed stamps CompletedAt. Returns false when no task
// matches (a silent no-op).
func (s *Store) Update(id string, p domain.TaskPatch) (domain.Task, bool) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		wasCompleted := s.tasks[i].Status == constants.TaskStatusCompleted
		p.Apply(&s.tasks[i])
		now := s.clock.Now()
		if s.tasks[i].Status == constants.TaskStatusCompleted && !wasCompleted {
			completedAt := now
			s.tasks[i].CompletedAt = &completedAt
		}
		s.tasks[i].UpdatedAt = now
		s.persist()
		return s.tasks[i], true
	}
	return domain.Task{}, false
}

// Delete removes the task with the given ID. Tasks are leaves, so no
// cascade is needed.
func (s *Store) Delete(id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// DeleteByGoal removes every task owned by the given goal. Invoked by the
// goal store when a goal is deleted.
func (s *Store) DeleteByGoal(goalID string) int {
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.GoalID == goalID {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	if removed > 0 {
		s.tasks = kept
		s.persist()
	}
	return removed
}

// Get returns the task with the given ID.
func (s *Store) Get(id string) (domain.Task, bool) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return s.tasks[i], true
		}
	}
	return domain.Task{}, false
}

// List returns a copy of the task collection in insertion order.
func (s *Store) List() []domain.Task {
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Todays returns the tasks whose due date falls on the current calendar
// date at the moment of the call. The result is a pure function of the
// clock and the stored tasks; callers must treat it as dynamic, it is not
// memoized.
func (s *Store) Todays() []domain.Task {
	today := s.clock.Now()
	var out []domain.Task
	for i := range s.tasks {
		if s.tasks[i].DueOn(today) {
			out = append(out, s.tasks[i])
		}
	}
	return out
}

// WithVisionConnection returns the tasks that carry a vision connection.
func (s *Store) WithVisionConnection() []domain.Task {
	var out []domain.Task
	for i := range s.tasks {
		if s.tasks[i].VisionConnection != nil {
			out = append(out, s.tasks[i])
		}
	}
	return out
}

// UpdateVisionConnection sets the vision connection on the given task.
func (s *Store) UpdateVisionConnection(id string, conn *domain.VisionConnection) bool {
	_, ok := s.Update(id, domain.TaskPatch{VisionConnection: conn})
	return ok
}

// HierarchyPath resolves the task's owning goal and that goal's parent
// (shown as the "vision" label). This is a shallow two-level walk, not the
// full hierarchy traversal; missing links resolve to empty strings.
func (s *Store) HierarchyPath(taskID string) domain.HierarchyPath {
	var path domain.HierarchyPath

	t, ok := s.Get(taskID)
	if !ok {
		return path
	}
	path.Task = t.Title

	if s.goals == nil {
		return path
	}
	g, ok := s.goals.Find(t.GoalID)
	if !ok {
		return path
	}
	path.Goal = g.Title

	if parent, ok := s.goals.Find(g.ParentID); ok {
		path.Vision = parent.Title
	}
	return path
}

// Replace swaps the whole collection, used by import.
func (s *Store) Replace(tasks []domain.Task) {
	s.tasks = make([]domain.Task, len(tasks))
	copy(s.tasks, tasks)
	s.persist()
}

// Reset restores the built-in default tasks and removes the persisted key.
func (s *Store) Reset() {
	s.tasks = seed.Tasks(s.clock.Now())
	s.kv.Remove(constants.TasksKey)
}

func (s *Store) newID(now time.Time) string {
	t := now.UTC()
	id := fmt.Sprintf("task-%s-%s", t.Format("20060102"), t.Format("150405"))
	if _, exists := s.Get(id); !exists {
		return id
	}
	return fmt.Sprintf("%s-%03d", id, t.Nanosecond()/int(time.Millisecond))
}

func (s *Store) persist() {
	if !s.kv.Set(constants.TasksKey, s.tasks) {
		s.log.Warn().Msg("task collection not durably written; in-memory state continues")
	}
}
