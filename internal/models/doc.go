// Package models defines the domain entities shared by every layer of tick.
//
// The package is deliberately small:
//   - [Record] : a single task entry (immutable id and text, mutable status)
//   - [Status] : the two-state lifecycle literal {"Pending", "Completed"}
//   - [Filter] : the read-only view predicate {all, pending, completed}
//
// [Record.Validate] enforces creation-boundary rules only; stored payloads
// are checked wholesale by [ValidateSequence], which backends use for their
// all-or-nothing load fallback.
package models
