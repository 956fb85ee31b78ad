package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ravenel/tick/internal/backend"
	"github.com/ravenel/tick/internal/models"
	"github.com/ravenel/tick/internal/notify"
	"github.com/ravenel/tick/internal/shared"
)

// Store mediates all mutations of the record sequence and delegates
// durability to the active backend.
type Store struct {
	backend  backend.Backend
	notifier notify.Notifier
	logger   *log.Logger
	records  []models.Record
	nextID   int64
}

// Opts contains the collaborators for a Store.
type Opts struct {
	Backend  backend.Backend
	Notifier notify.Notifier
	Logger   *log.Logger
}

// New creates a Store. A nil notifier drops announcements; a nil logger
// writes to stderr. The backend is required.
func New(opts Opts) *Store {
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &Store{
		backend:  opts.Backend,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		records:  []models.Record{},
		nextID:   1,
	}
}

// Initialize loads the persisted sequence from the active backend. Any
// load failure is logged and the session starts empty; there is no prior
// state to reconcile against, so nothing is surfaced to the user.
func (s *Store) Initialize(ctx context.Context) {
	records, err := s.backend.Load(ctx)
	if err != nil {
		s.logger.Warn("load failed, starting empty", "backend", s.backend.Name(), "error", err)
		records = []models.Record{}
	}

	s.records = records
	s.nextID = 1
	for _, r := range records {
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}

	s.logger.Debug("initialized", "backend", s.backend.Name(), "records", len(records))
}

// Add appends a pending record with a fresh id. Whitespace-only text is a
// silent no-op. Returns the post-mutation snapshot.
func (s *Store) Add(ctx context.Context, text string) []models.Record {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return s.snapshot()
	}

	record := models.NewRecord(s.nextID, trimmed)
	s.nextID++
	s.records = append(s.records, record)

	s.persist(ctx)
	s.notifier.Announce(ctx, "Task added", trimmed)
	return s.snapshot()
}

// Toggle flips the status of the record with the given id. An unknown id
// is a no-op, tolerating stale ids from a delayed presentation layer.
func (s *Store) Toggle(ctx context.Context, id int64) []models.Record {
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		s.records[i].Status = s.records[i].Status.Toggled()

		s.persist(ctx)
		title := "Task reopened"
		if s.records[i].Status == models.StatusCompleted {
			title = "Task completed"
		}
		s.notifier.Announce(ctx, title, s.records[i].Text)
		break
	}
	return s.snapshot()
}

// Remove deletes the record with the given id. An unknown id is a no-op.
// Removal is unconditional: any confirmation gate belongs to the caller.
func (s *Store) Remove(ctx context.Context, id int64) []models.Record {
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		text := s.records[i].Text
		s.records = append(s.records[:i], s.records[i+1:]...)

		s.persist(ctx)
		s.notifier.Announce(ctx, "Task deleted", text)
		break
	}
	return s.snapshot()
}

// Filtered returns a read-only projection of the sequence. It never
// mutates and never persists.
func (s *Store) Filtered(f models.Filter) []models.Record {
	out := []models.Record{}
	for _, r := range s.records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Records returns a copy of the full sequence in insertion order.
func (s *Store) Records() []models.Record {
	return s.snapshot()
}

// Len returns the current sequence length.
func (s *Store) Len() int {
	return len(s.records)
}

// Find returns the record with the given id, if present.
func (s *Store) Find(id int64) (models.Record, error) {
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Record{}, fmt.Errorf("%w: %d", shared.ErrRecordNotFound, id)
}

// persist hands the whole snapshot to the backend. A failed save is
// logged and the in-memory state stays authoritative for the session.
func (s *Store) persist(ctx context.Context) {
	if err := s.backend.Save(ctx, s.snapshot()); err != nil {
		s.logger.Error("save failed, keeping in-memory state", "backend", s.backend.Name(), "error", err)
	}
}

func (s *Store) snapshot() []models.Record {
	out := make([]models.Record, len(s.records))
	copy(out, s.records)
	return out
}
