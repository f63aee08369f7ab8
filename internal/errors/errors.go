// Package errors provides centralized error handling for Compass.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrGoalNotFound indicates that no goal exists with the requested ID.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrTaskNotFound indicates that no task exists with the requested ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrHierarchyCycle indicates that walking a goal's parent links revisited
	// a goal, meaning the hierarchy contains a cycle.
	ErrHierarchyCycle = errors.New("goal hierarchy contains a cycle")

	// ErrImportFailed indicates that an import payload could not be parsed
	// or applied. State is left untouched when this is reported.
	ErrImportFailed = errors.New("import failed")

	// ErrInvalidDate indicates that a calendar date string is not in
	// YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidStorage indicates an invalid storage configuration value.
	ErrConfigInvalidStorage = errors.New("invalid storage configuration")

	// ErrStorageUnavailable indicates that the durable store could not be
	// reached. Persistence adapters swallow this internally; it is only
	// reported at construction time.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrAborted indicates that the user declined a confirmation prompt.
	ErrAborted = errors.New("aborted")
)
