// Package backup implements import and export of the full goal and task
// state as a versioned JSON document, plus the factory reset that restores
// the built-in seed data.
package backup

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/compasshq/compass/internal/clock"
	"github.com/compasshq/compass/internal/constants"
	"github.com/compasshq/compass/internal/domain"
	"github.com/compasshq/compass/internal/errors"
	"github.com/compasshq/compass/internal/goal"
	"github.com/compasshq/compass/internal/task"
)

// Service bundles the stores for bulk state transfer.
type Service struct {
	goals *goal.Store
	tasks *task.Store
	clock clock.Clock
	log   zerolog.Logger
}

// NewService creates a backup service over the given stores.
func NewService(goals *goal.Store, tasks *task.Store, clk clock.Clock, log zerolog.Logger) *Service {
	return &Service{goals: goals, tasks: tasks, clock: clk, log: log}
}

// Export serializes the full state as pretty-printed JSON text. It is pure
// beyond reading current state.
func (s *Service) Export() (string, error) {
	doc := domain.Snapshot{
		Goals:      s.goals.List(),
		Tasks:      s.tasks.List(),
		ExportedAt: s.clock.Now().UTC().Format(time.RFC3339),
		Version:    constants.ExportVersion,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to encode export document")
	}
	return string(data), nil
}

// importDoc mirrors Snapshot with pointer slices so an absent collection
// can be told apart from an empty one: only fields that are present as
// arrays replace state.
type importDoc struct {
	Goals *[]domain.Goal `json:"goals"`
	Tasks *[]domain.Task `json:"tasks"`
}

// Import parses jsonText and replaces the goal and task collections
// wholesale with whatever arrays the document carries. No merging and no
// per-entity validation happens; an empty array is accepted and empties
// the collection. It returns false — leaving state exactly as it was —
// when the text does not parse as a document of this shape.
func (s *Service) Import(jsonText string) bool {
	var doc importDoc
	if err := json.Unmarshal([]byte(jsonText), &doc); err != nil {
		s.log.Warn().Err(err).Msg("import payload rejected")
		return false
	}
	if doc.Goals != nil {
		s.goals.Replace(*doc.Goals)
	}
	if doc.Tasks != nil {
		s.tasks.Replace(*doc.Tasks)
	}
	s.log.Info().
		Bool("goals_replaced", doc.Goals != nil).
		Bool("tasks_replaced", doc.Tasks != nil).
		Msg("import applied")
	return true
}

// Reset restores both collections to the built-in seed data and removes
// their persisted keys. It does not empty the store; first-run defaults
// come back.
func (s *Service) Reset() {
	s.goals.Reset()
	s.tasks.Reset()
	s.log.Info().Msg("state reset to defaults")
}
