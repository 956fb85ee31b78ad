// Package store owns the in-memory record sequence and is its sole
// mutator.
//
// Every mutation follows the same contract: the in-memory sequence changes
// first, then the whole snapshot is handed to the backend, then the change
// is announced. A failed save is logged and never rolled back: the session
// keeps the in-memory state as source of truth and availability wins over
// durability.
//
// The store assumes a single logical caller (CLI action or TUI event
// loop); no internal locking is provided.
package store
