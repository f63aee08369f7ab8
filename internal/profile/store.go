// Package profile persists the single local user's profile under its own
// storage key, independent of the goal and task collections.
package profile

import (
	"github.com/rs/zerolog"

	"github.com/compasshq/compass/internal/clock"
	"github.com/compasshq/compass/internal/constants"
	"github.com/compasshq/compass/internal/domain"
	"github.com/compasshq/compass/internal/seed"
	"github.com/compasshq/compass/internal/storage"
)

// Store owns the user profile.
type Store struct {
	kv      storage.KV
	log     zerolog.Logger
	clock   clock.Clock
	profile domain.Profile
}

// NewStore loads the persisted profile, seeding the default identity on
// first run.
func NewStore(kv storage.KV, log zerolog.Logger, clk clock.Clock) *Store {
	s := &Store{kv: kv, log: log, clock: clk}
	if !s.kv.Get(constants.ProfileKey, &s.profile) {
		s.profile = seed.Profile(clk.Now())
		s.persist()
		s.log.Info().Str("profile_id", s.profile.ID).Msg("seeded default profile")
	}
	return s
}

// Get returns the current profile.
func (s *Store) Get() domain.Profile {
	return s.profile
}

// SetName updates the display name.
func (s *Store) SetName(name string) domain.Profile {
	s.profile.Name = name
	s.persist()
	return s.profile
}

// SetFocus updates the focus statement.
func (s *Store) SetFocus(focus string) domain.Profile {
	s.profile.Focus = focus
	s.persist()
	return s.profile
}

func (s *Store) persist() {
	if !s.kv.Set(constants.ProfileKey, s.profile) {
		s.log.Warn().Msg("profile not durably written; in-memory state continues")
	}
}
