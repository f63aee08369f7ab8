// Package logging provides logging utilities for Compass.
//
// Goal and task text is personal: titles, descriptions, and reflection
// statements can carry private detail that has no business sitting in a
// rotated log file. The helpers here keep log entries down to identifying
// stubs of that text.
package logging

import (
	"strings"
	"unicode/utf8"
)

// maxLoggedTextLen is the longest personal text fragment written to logs.
const maxLoggedTextLen = 48

// personalFieldNames lists field names whose values are always elided
// entirely. Case-insensitive matching is performed.
var personalFieldNames = []string{
	"description",
	"why_statement",
	"core_vision_relevance",
	"focus",
	"note",
	"reflection",
}

// ElidedValue replaces values of personal fields in log output.
const ElidedValue = "[personal]"

// Snip truncates s to a short loggable stub, appending an ellipsis when
// anything was cut. It is safe on multi-byte text.
func Snip(s string) string {
	if utf8.RuneCountInString(s) <= maxLoggedTextLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLoggedTextLen]) + "…"
}

// IsPersonalFieldName reports whether a field name holds free-form
// personal text that should not be logged.
func IsPersonalFieldName(fieldName string) bool {
	lower := strings.ToLower(fieldName)
	for _, name := range personalFieldNames {
		if lower == name || strings.Contains(lower, name) {
			return true
		}
	}
	return false
}

// SafeValue returns a log-safe rendering of a field value: personal fields
// are elided, everything else is snipped to a stub.
//
// Usage:
//
//	log.Info().Str("title", logging.SafeValue("title", task.Title)).Msg("task added")
func SafeValue(fieldName, value string) string {
	if IsPersonalFieldName(fieldName) {
		return ElidedValue
	}
	return Snip(value)
}
