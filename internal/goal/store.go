// Package goal implements the goal store: CRUD over the goal collection,
// hierarchy traversal, and the cascade that removes a deleted goal's tasks.
//
// The store keeps the collection in memory and persists it through the
// storage adapter on every mutation. A failed durable write is logged and
// the in-memory change stands; there is no rollback.
package goal

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/compasshq/compass/internal/clock"
	"github.com/compasshq/compass/internal/constants"
	"github.com/compasshq/compass/internal/domain"
	"github.com/compasshq/compass/internal/errors"
	"github.com/compasshq/compass/internal/seed"
	"github.com/compasshq/compass/internal/storage"
)

// Cascader removes the tasks that depend on a goal. The task store
// satisfies this; an interface keeps the two stores from importing each
// other.
type Cascader interface {
	// DeleteByGoal removes every task whose goal reference equals goalID
	// and returns how many were removed.
	DeleteByGoal(goalID string) int
}

// Store owns the goal collection.
type Store struct {
	kv      storage.KV
	log     zerolog.Logger
	clock   clock.Clock
	cascade Cascader
	goals   []domain.Goal
}

// NewStore loads the persisted goal collection, seeding the built-in
// defaults when nothing has been stored yet.
func NewStore(kv storage.KV, log zerolog.Logger, clk clock.Clock) *Store {
	s := &Store{kv: kv, log: log, clock: clk}
	if !s.kv.Get(constants.GoalsKey, &s.goals) {
		s.goals = seed.Goals(clk.Now())
		s.persist()
		s.log.Info().Int("count", len(s.goals)).Msg("seeded default goals")
	}
	return s
}

// SetCascade attaches the task-side cascade. It must be called before
// Delete; the stores are constructed separately and wired afterwards to
// avoid a circular dependency.
func (s *Store) SetCascade(c Cascader) {
	s.cascade = c
}

// Add creates a new goal from the given fields. Any caller-supplied ID is
// ignored; a fresh creation-time token is assigned.
func (s *Store) Add(g domain.Goal) domain.Goal {
	now := s.clock.Now()
	g.ID = s.newID(now)
	g.CreatedAt = now
	g.UpdatedAt = now
	if g.Status == "" {
		g.Status = constants.GoalStatusActive
	}
	s.goals = append(s.goals, g)
	s.persist()
	return g
}

// Update merges the patch onto the goal with the given ID. It returns the
// updated goal and true, or a zero goal and false when no goal matches
// (a silent no-op, per the partial-update contract).
func (s *Store) Update(id string, p domain.GoalPatch) (domain.Goal, bool) {
	for i := range s.goals {
		if s.goals[i].ID != id {
			continue
		}
		p.Apply(&s.goals[i])
		s.goals[i].UpdatedAt = s.clock.Now()
		s.persist()
		return s.goals[i], true
	}
	return domain.Goal{}, false
}

// Delete removes the goal with the given ID and cascades to every task
// referencing it. It returns false when no goal matches.
func (s *Store) Delete(id string) bool {
	for i := range s.goals {
		if s.goals[i].ID != id {
			continue
		}
		s.goals = append(s.goals[:i], s.goals[i+1:]...)
		s.persist()
		if s.cascade != nil {
			removed := s.cascade.DeleteByGoal(id)
			if removed > 0 {
				s.log.Debug().Str("goal_id", id).Int("tasks", removed).Msg("cascaded task delete")
			}
		}
		return true
	}
	return false
}

// Get returns the goal with the given ID.
func (s *Store) Get(id string) (domain.Goal, bool) {
	for i := range s.goals {
		if s.goals[i].ID == id {
			return s.goals[i], true
		}
	}
	return domain.Goal{}, false
}

// Find implements the task store's goal resolver.
func (s *Store) Find(id string) (domain.Goal, bool) {
	return s.Get(id)
}

// List returns a copy of the goal collection in insertion order.
func (s *Store) List() []domain.Goal {
	out := make([]domain.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// Hierarchy walks parent links from the goal with the given ID up to its
// root and returns the chain root-first. An unknown ID yields an empty
// chain. A revisited goal means the parent links form a cycle; the walk
// fails fast with ErrHierarchyCycle instead of looping.
func (s *Store) Hierarchy(id string) ([]domain.Goal, error) {
	var chain []domain.Goal
	visited := make(map[string]bool)

	cur, ok := s.Get(id)
	for ok {
		if visited[cur.ID] {
			return nil, errors.Wrapf(errors.ErrHierarchyCycle, "at goal %s", cur.ID)
		}
		visited[cur.ID] = true
		chain = append(chain, cur)
		if cur.ParentID == "" {
			break
		}
		cur, ok = s.Get(cur.ParentID)
	}

	// Reverse so the root comes first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

// Replace swaps the whole collection, used by import.
func (s *Store) Replace(goals []domain.Goal) {
	s.goals = make([]domain.Goal, len(goals))
	copy(s.goals, goals)
	s.persist()
}

// Reset restores the built-in default goals and removes the persisted key.
func (s *Store) Reset() {
	s.goals = seed.Goals(s.clock.Now())
	s.kv.Remove(constants.GoalsKey)
}

// newID generates a creation-time goal ID, adding milliseconds when the
// plain second-resolution token is already taken.
func (s *Store) newID(now time.Time) string {
	t := now.UTC()
	id := fmt.Sprintf("goal-%s-%s", t.Format("20060102"), t.Format("150405"))
	if _, exists := s.Get(id); !exists {
		return id
	}
	return fmt.Sprintf("%s-%03d", id, t.Nanosecond()/int(time.Millisecond))
}

func (s *Store) persist() {
	if !s.kv.Set(constants.GoalsKey, s.goals) {
		s.log.Warn().Msg("goal collection not durably written; in-memory state continues")
	}
}
