// Package storage implements the persistence adapter: a durable key-value
// store holding JSON-encoded collections.
//
// Every operation is total. Failures (store unavailable, corrupt JSON on
// read, write errors) are logged and converted to a false/absent result;
// they are never surfaced as errors to callers. Stores treat a failed
// write as "in-memory state succeeded, durable write did not" and keep
// operating.
package storage

// KV is the persistence adapter contract. Values are JSON-serializable.
type KV interface {
	// Get reads the value stored under key into out. It returns false when
	// the key is absent, the stored payload is corrupt, or the store is
	// unreachable.
	Get(key string, out any) bool

	// Set stores value under key, replacing any previous value. It returns
	// false when the durable write failed.
	Set(key string, value any) bool

	// Remove deletes the value stored under key. Removing an absent key is
	// a success. It returns false only when the store failed to perform
	// the delete.
	Remove(key string) bool
}
