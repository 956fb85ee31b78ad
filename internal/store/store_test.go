package store

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/ravenel/tick/internal/models"
	"github.com/ravenel/tick/internal/shared"
	tu "github.com/ravenel/tick/internal/testing"
)

func newTestStore(t *testing.T, b *tu.MockBackend, n *tu.MockNotifier) *Store {
	t.Helper()
	opts := Opts{Backend: b, Logger: shared.NewLogger(io.Discard)}
	if n != nil {
		// Assign only when non-nil so a nil *MockNotifier does not become a
		// non-nil interface value and defeat New's nil-notifier fallback.
		opts.Notifier = n
	}
	s := New(opts)
	s.Initialize(context.Background())
	return s
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("cold backend starts empty", func(t *testing.T) {
		s := newTestStore(t, &tu.MockBackend{}, nil)
		if s.Len() != 0 {
			t.Errorf("expected empty store, got %d records", s.Len())
		}
	})

	t.Run("loads the persisted sequence", func(t *testing.T) {
		b := &tu.MockBackend{Records: []models.Record{
			{ID: 1, Text: "a", Status: models.StatusPending},
			{ID: 2, Text: "b", Status: models.StatusCompleted},
		}}
		s := newTestStore(t, b, nil)
		if s.Len() != 2 {
			t.Fatalf("expected 2 records, got %d", s.Len())
		}
	})

	t.Run("load failure falls back to empty silently", func(t *testing.T) {
		b := &tu.MockBackend{LoadErr: errors.New("backend unreachable")}
		s := newTestStore(t, b, nil)
		if s.Len() != 0 {
			t.Errorf("expected empty store after load failure, got %d records", s.Len())
		}
		// The store must stay usable.
		if seq := s.Add(ctx, "still works"); len(seq) != 1 {
			t.Errorf("expected mutation to succeed after load failure")
		}
	})

	t.Run("id counter resumes past loaded ids", func(t *testing.T) {
		b := &tu.MockBackend{Records: []models.Record{
			{ID: 7, Text: "a", Status: models.StatusPending},
			{ID: 3, Text: "b", Status: models.StatusPending},
		}}
		s := newTestStore(t, b, nil)

		seq := s.Add(ctx, "new")
		if got := seq[len(seq)-1].ID; got != 8 {
			t.Errorf("expected fresh id 8, got %d", got)
		}
	})
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("appends a pending record with a unique id", func(t *testing.T) {
		b := &tu.MockBackend{}
		n := &tu.MockNotifier{}
		s := newTestStore(t, b, n)

		seq := s.Add(ctx, "buy milk")
		if len(seq) != 1 {
			t.Fatalf("expected sequence length 1, got %d", len(seq))
		}
		r := seq[0]
		if r.Status != models.StatusPending {
			t.Errorf("expected pending status, got %s", r.Status)
		}
		if r.Text != "buy milk" {
			t.Errorf("expected text preserved, got %q", r.Text)
		}

		seq = s.Add(ctx, "water plants")
		if len(seq) != 2 {
			t.Fatalf("expected sequence length 2, got %d", len(seq))
		}
		if seq[0].ID == seq[1].ID {
			t.Error("expected unique ids")
		}
		if err := models.ValidateSequence(seq); err != nil {
			t.Errorf("sequence invariants violated: %v", err)
		}
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		s := newTestStore(t, &tu.MockBackend{}, nil)
		seq := s.Add(ctx, "  padded  ")
		if seq[0].Text != "padded" {
			t.Errorf("expected trimmed text, got %q", seq[0].Text)
		}
	})

	t.Run("empty and whitespace-only text are no-ops", func(t *testing.T) {
		b := &tu.MockBackend{}
		n := &tu.MockNotifier{}
		s := newTestStore(t, b, n)

		for _, text := range []string{"", "   ", "\t\n"} {
			if seq := s.Add(ctx, text); len(seq) != 0 {
				t.Errorf("Add(%q) should be a no-op, got %d records", text, len(seq))
			}
		}
		if len(b.Saves) != 0 {
			t.Errorf("no-op adds should not persist, got %d saves", len(b.Saves))
		}
		if len(n.Events) != 0 {
			t.Errorf("no-op adds should not announce, got %d events", len(n.Events))
		}
	})

	t.Run("persists the whole snapshot and announces", func(t *testing.T) {
		b := &tu.MockBackend{}
		n := &tu.MockNotifier{}
		s := newTestStore(t, b, n)

		s.Add(ctx, "buy milk")

		saved, ok := b.LastSave()
		if !ok {
			t.Fatal("expected a save")
		}
		if len(saved) != 1 || saved[0].Text != "buy milk" {
			t.Errorf("unexpected saved snapshot: %+v", saved)
		}
		if len(n.Events) != 1 || n.Events[0].Title != "Task added" {
			t.Errorf("unexpected announcements: %+v", n.Events)
		}
	})

	t.Run("save failure keeps the in-memory mutation", func(t *testing.T) {
		b := &tu.MockBackend{SaveErr: errors.New("disk full")}
		s := newTestStore(t, b, nil)

		seq := s.Add(ctx, "buy milk")
		if len(seq) != 1 {
			t.Errorf("expected in-memory mutation kept, got %d records", len(seq))
		}
	})
}

func TestToggle(t *testing.T) {
	ctx := context.Background()

	t.Run("flips pending to completed and back", func(t *testing.T) {
		n := &tu.MockNotifier{}
		s := newTestStore(t, &tu.MockBackend{}, n)
		id := s.Add(ctx, "buy milk")[0].ID

		seq := s.Toggle(ctx, id)
		if seq[0].Status != models.StatusCompleted {
			t.Errorf("expected completed, got %s", seq[0].Status)
		}
		if n.Events[len(n.Events)-1].Title != "Task completed" {
			t.Errorf("expected completion announcement, got %+v", n.Events)
		}

		seq = s.Toggle(ctx, id)
		if seq[0].Status != models.StatusPending {
			t.Errorf("expected pending after double toggle, got %s", seq[0].Status)
		}
		if n.Events[len(n.Events)-1].Title != "Task reopened" {
			t.Errorf("expected reopen announcement, got %+v", n.Events)
		}
	})

	t.Run("unknown id leaves the sequence unchanged", func(t *testing.T) {
		b := &tu.MockBackend{}
		n := &tu.MockNotifier{}
		s := newTestStore(t, b, n)
		s.Add(ctx, "buy milk")
		savesBefore := len(b.Saves)

		seq := s.Toggle(ctx, 999)
		if len(seq) != 1 || seq[0].Status != models.StatusPending {
			t.Errorf("stale id should be a no-op, got %+v", seq)
		}
		if len(b.Saves) != savesBefore {
			t.Error("no-op toggle should not persist")
		}
	})

	t.Run("persists after flipping", func(t *testing.T) {
		b := &tu.MockBackend{}
		s := newTestStore(t, b, nil)
		id := s.Add(ctx, "buy milk")[0].ID

		s.Toggle(ctx, id)
		saved, _ := b.LastSave()
		if saved[0].Status != models.StatusCompleted {
			t.Errorf("expected persisted snapshot to carry the flip, got %+v", saved)
		}
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes by id and persists the empty sequence", func(t *testing.T) {
		b := &tu.MockBackend{}
		n := &tu.MockNotifier{}
		s := newTestStore(t, b, n)
		id := s.Add(ctx, "buy milk")[0].ID

		seq := s.Remove(ctx, id)
		if len(seq) != 0 {
			t.Fatalf("expected empty sequence, got %d records", len(seq))
		}

		saved, ok := b.LastSave()
		if !ok || len(saved) != 0 {
			t.Errorf("deleting the last record must persist as empty, got %+v", saved)
		}
		if n.Events[len(n.Events)-1].Title != "Task deleted" {
			t.Errorf("expected deletion announcement, got %+v", n.Events)
		}
	})

	t.Run("second removal of the same id is a no-op", func(t *testing.T) {
		b := &tu.MockBackend{}
		s := newTestStore(t, b, nil)
		id := s.Add(ctx, "buy milk")[0].ID

		s.Remove(ctx, id)
		savesBefore := len(b.Saves)

		seq := s.Remove(ctx, id)
		if len(seq) != 0 {
			t.Errorf("expected empty sequence, got %d records", len(seq))
		}
		if len(b.Saves) != savesBefore {
			t.Error("repeated removal should not persist again")
		}
	})

	t.Run("preserves insertion order of the survivors", func(t *testing.T) {
		s := newTestStore(t, &tu.MockBackend{}, nil)
		s.Add(ctx, "first")
		mid := s.Add(ctx, "second")[1].ID
		s.Add(ctx, "third")

		seq := s.Remove(ctx, mid)
		if len(seq) != 2 || seq[0].Text != "first" || seq[1].Text != "third" {
			t.Errorf("unexpected order after removal: %+v", seq)
		}
	})
}

func TestFiltered(t *testing.T) {
	ctx := context.Background()

	t.Run("pending and completed views partition the sequence", func(t *testing.T) {
		s := newTestStore(t, &tu.MockBackend{}, nil)
		s.Add(ctx, "a")
		idB := s.Add(ctx, "b")[1].ID
		s.Add(ctx, "c")
		s.Toggle(ctx, idB)

		pending := s.Filtered(models.FilterPending)
		completed := s.Filtered(models.FilterCompleted)

		if len(pending)+len(completed) != s.Len() {
			t.Errorf("partition sizes %d+%d != %d", len(pending), len(completed), s.Len())
		}

		seen := map[int64]int{}
		for _, r := range pending {
			seen[r.ID]++
		}
		for _, r := range completed {
			seen[r.ID]++
		}
		for _, r := range s.Records() {
			if seen[r.ID] != 1 {
				t.Errorf("record %d appeared %d times across partitions", r.ID, seen[r.ID])
			}
		}
	})

	t.Run("never mutates and never persists", func(t *testing.T) {
		b := &tu.MockBackend{}
		s := newTestStore(t, b, nil)
		s.Add(ctx, "a")
		savesBefore := len(b.Saves)

		view := s.Filtered(models.FilterAll)
		view[0].Text = "tampered"

		if s.Records()[0].Text != "a" {
			t.Error("filtered view should be a copy")
		}
		if len(b.Saves) != savesBefore {
			t.Error("filtering should not persist")
		}
	})
}

func TestFind(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, &tu.MockBackend{}, nil)
	id := s.Add(ctx, "buy milk")[0].ID

	t.Run("returns the record by id", func(t *testing.T) {
		r, err := s.Find(id)
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if r.Text != "buy milk" {
			t.Errorf("unexpected record: %+v", r)
		}
	})

	t.Run("unknown id wraps ErrRecordNotFound", func(t *testing.T) {
		if _, err := s.Find(999); !errors.Is(err, shared.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
	})
}

// TestLifecycle walks the full scenario: add, toggle, filter, remove.
func TestLifecycle(t *testing.T) {
	ctx := context.Background()
	b := &tu.MockBackend{}
	s := newTestStore(t, b, nil)

	seq := s.Add(ctx, "buy milk")
	if len(seq) != 1 || seq[0].Text != "buy milk" || seq[0].Status != models.StatusPending {
		t.Fatalf("unexpected sequence after add: %+v", seq)
	}
	id := seq[0].ID

	seq = s.Toggle(ctx, id)
	if seq[0].Status != models.StatusCompleted {
		t.Fatalf("expected completed after toggle, got %s", seq[0].Status)
	}

	completed := s.Filtered(models.FilterCompleted)
	if len(completed) != 1 || completed[0].ID != id {
		t.Fatalf("expected exactly the toggled record in the completed view, got %+v", completed)
	}

	seq = s.Remove(ctx, id)
	if len(seq) != 0 {
		t.Fatalf("expected empty sequence after removal, got %+v", seq)
	}

	saved, ok := b.LastSave()
	if !ok || len(saved) != 0 {
		t.Fatalf("expected empty snapshot persisted, got %+v", saved)
	}
}
