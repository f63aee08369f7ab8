package profile

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compasshq/compass/internal/clock"
	"github.com/compasshq/compass/internal/storage"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func TestStore(t *testing.T) {
	kv, err := storage.NewFileKV(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	s := NewStore(kv, zerolog.Nop(), clock.Fixed{T: testNow})

	seeded := s.Get()
	assert.NotEmpty(t, seeded.ID)
	assert.NotEmpty(t, seeded.Name)
	assert.Equal(t, testNow, seeded.CreatedAt)

	s.SetName("Ada")
	s.SetFocus("Ship it")

	// A fresh store over the same backend sees the persisted identity.
	s2 := NewStore(kv, zerolog.Nop(), clock.Fixed{T: testNow.Add(time.Hour)})
	got := s2.Get()
	assert.Equal(t, seeded.ID, got.ID, "the profile survives restarts instead of re-seeding")
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "Ship it", got.Focus)
}
