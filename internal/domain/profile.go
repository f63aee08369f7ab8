package domain

import "time"

// Profile is the single local user's identity record, persisted under its
// own key alongside the goal and task collections.
type Profile struct {
	// ID is a random UUID assigned when the profile is first seeded.
	ID string `json:"id" yaml:"id"`

	// Name is the user's display name.
	Name string `json:"name" yaml:"name"`

	// Focus is a one-line personal focus statement shown on dashboards.
	Focus string `json:"focus,omitempty" yaml:"focus"`

	// CreatedAt is when the profile was first created.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
