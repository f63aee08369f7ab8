// Package constants provides centralized constant values used throughout Compass.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// Storage keys for the persisted collections. Each collection is read and
// written independently under its own key; there is no wrapping transaction.
const (
	// GoalsKey is the key under which the goals collection is persisted.
	GoalsKey = "goals"

	// TasksKey is the key under which the tasks collection is persisted.
	TasksKey = "tasks"

	// ProfileKey is the key under which the user profile is persisted.
	ProfileKey = "profile"
)

// Directory names and paths used by Compass for organizing data.
const (
	// CompassHome is the hidden directory name where Compass stores all its data.
	// This directory is created in the user's home directory.
	CompassHome = ".compass"

	// DataDir is the directory name where persisted collections are stored.
	DataDir = "data"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// ConfigFileName is the name of the Compass configuration file.
	ConfigFileName = "config.yaml"
)

// Recurrence expansion bounds.
const (
	// MaxOccurrences is the hard cap on instances generated for a single
	// recurring task. Expansion stops silently once this many occurrences
	// have been produced, regardless of the rule's own termination settings.
	MaxOccurrences = 1000

	// MaxExpansionIterations bounds the day-by-day cursor scan. A rule whose
	// filter can never match (for example day-of-month 31 with an interval
	// landing only on short months, or an out-of-range day) would otherwise
	// scan forever without ever producing an occurrence.
	MaxExpansionIterations = 64000
)

// Export document constants.
const (
	// ExportVersion is the version string written into export documents.
	ExportVersion = "1.0.0"

	// SnapshotSchemaVersion is the schema version for persisted collections.
	// This enables forward-compatible schema migrations.
	SnapshotSchemaVersion = 1
)

// Environment variable prefix for configuration overrides (COMPASS_*).
const EnvPrefix = "COMPASS"
