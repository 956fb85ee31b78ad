// Package backend implements the two durable stores a record sequence can
// be delegated to, exactly one of which is active per process.
//
// Implementations:
//   - [LocalBackend] : a synchronous key-value slot, a single JSON file with
//     a fixed name under the storage directory
//   - [HostBackend] : the host-provided offline store, a SQLite database
//     written as a transactional whole-snapshot replace
//
// [Select] probes for the host capability once at startup and is never
// revisited; there is no hot-swap between backends.
//
// Both backends honor the all-or-nothing load contract: a payload that
// fails to parse or validate yields the empty sequence (logged) rather than
// a partial recovery, and saving an empty sequence durably empties the
// slot instead of becoming a no-op.
package backend
