// Package seed provides the built-in default data used when no persisted
// state exists yet, so the app is never empty on first run. The fixture is
// embedded as YAML; relative values (dates, timestamps, the profile ID)
// are filled in at load time.
package seed

import (
	_ "embed"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/compasshq/compass/internal/domain"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type fixture struct {
	Goals   []domain.Goal  `yaml:"goals"`
	Tasks   []domain.Task  `yaml:"tasks"`
	Profile domain.Profile `yaml:"profile"`
}

// The embedded fixture is part of the build; a parse failure is a
// programming error, so it is decoded once and panics on corruption.
func load() fixture {
	var f fixture
	if err := yaml.Unmarshal(defaultsYAML, &f); err != nil {
		panic("seed: embedded defaults.yaml is invalid: " + err.Error())
	}
	return f
}

// Goals returns the default goal collection with timestamps and timeframe
// dates anchored at now.
func Goals(now time.Time) []domain.Goal {
	f := load()
	today := domain.FormatDate(now)
	for i := range f.Goals {
		g := &f.Goals[i]
		g.CreatedAt = now
		g.UpdatedAt = now
		if g.StartDate == "" {
			g.StartDate = today
		}
	}
	return f.Goals
}

// Tasks returns the default task collection. Tasks without an explicit due
// date are due today, so the first-run "today" view has content.
func Tasks(now time.Time) []domain.Task {
	f := load()
	today := domain.FormatDate(now)
	for i := range f.Tasks {
		t := &f.Tasks[i]
		t.CreatedAt = now
		t.UpdatedAt = now
		if t.DueDate == "" {
			t.DueDate = today
		}
	}
	return f.Tasks
}

// Profile returns the default user profile with a fresh random identity.
func Profile(now time.Time) domain.Profile {
	f := load()
	p := f.Profile
	p.ID = uuid.NewString()
	p.CreatedAt = now
	return p
}
