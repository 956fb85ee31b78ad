// package models defines the data model for the tick task store
package models

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a [Record]. It serializes as the
// literal strings "Pending" and "Completed".
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// Valid reports whether s is one of the two known status literals.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Toggled returns the opposite status. Toggling twice is the identity.
func (s Status) Toggled() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// Record is a single task entry. ID and Text are immutable after
// creation; Status is the only mutable field.
type Record struct {
	ID     int64  `json:"id" yaml:"id"`
	Text   string `json:"text" yaml:"text"`
	Status Status `json:"status" yaml:"status"`
}

// NewRecord creates a pending Record. The caller is responsible for
// supplying a unique id and a trimmed, non-empty text.
func NewRecord(id int64, text string) Record {
	return Record{ID: id, Text: text, Status: StatusPending}
}

// Validate checks the creation-boundary invariants: non-empty trimmed
// text and a known status literal. Persisted state is not revalidated
// against the text rule.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return fmt.Errorf("record text is empty")
	}
	if !r.Status.Valid() {
		return fmt.Errorf("unknown status %q", string(r.Status))
	}
	return nil
}

// ValidateSequence checks a loaded sequence as a whole: every status
// must be a known literal and every id unique. Backends use this to
// decide whether a persisted payload is trustworthy; a single bad
// entry invalidates the entire load.
func ValidateSequence(records []Record) error {
	seen := make(map[int64]struct{}, len(records))
	for i, r := range records {
		if !r.Status.Valid() {
			return fmt.Errorf("record %d: unknown status %q", i, string(r.Status))
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("record %d: duplicate id %d", i, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}

// Filter selects a read-only view of a record sequence by status.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// Matches reports whether r belongs to the filtered view.
func (f Filter) Matches(r Record) bool {
	switch f {
	case FilterPending:
		return r.Status == StatusPending
	case FilterCompleted:
		return r.Status == StatusCompleted
	default:
		return true
	}
}

// ParseFilter converts user input to a [Filter]. Matching is
// case-insensitive; the empty string means [FilterAll].
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "pending", "open":
		return FilterPending, nil
	case "completed", "done":
		return FilterCompleted, nil
	default:
		return FilterAll, fmt.Errorf("unknown filter %q", s)
	}
}
