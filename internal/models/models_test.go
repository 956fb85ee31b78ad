package models

import (
	"encoding/json"
	"testing"
)

func TestStatus(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		if !StatusPending.Valid() || !StatusCompleted.Valid() {
			t.Error("known literals should be valid")
		}
		if Status("done").Valid() {
			t.Error("unknown literal should be invalid")
		}
		if Status("").Valid() {
			t.Error("empty status should be invalid")
		}
	})

	t.Run("Toggled flips between the two states", func(t *testing.T) {
		if StatusPending.Toggled() != StatusCompleted {
			t.Error("pending should toggle to completed")
		}
		if StatusCompleted.Toggled() != StatusPending {
			t.Error("completed should toggle to pending")
		}
	})

	t.Run("Toggled twice is the identity", func(t *testing.T) {
		for _, s := range []Status{StatusPending, StatusCompleted} {
			if s.Toggled().Toggled() != s {
				t.Errorf("double toggle of %s should return %s", s, s)
			}
		}
	})
}

func TestRecord(t *testing.T) {
	t.Run("NewRecord defaults to pending", func(t *testing.T) {
		r := NewRecord(1, "buy milk")
		if r.ID != 1 {
			t.Errorf("expected id 1, got %d", r.ID)
		}
		if r.Text != "buy milk" {
			t.Errorf("expected text preserved, got %q", r.Text)
		}
		if r.Status != StatusPending {
			t.Errorf("expected pending status, got %s", r.Status)
		}
	})

	t.Run("Validate rejects empty text", func(t *testing.T) {
		for _, text := range []string{"", "   ", "\t\n"} {
			r := NewRecord(1, text)
			if err := r.Validate(); err == nil {
				t.Errorf("expected validation error for text %q", text)
			}
		}
	})

	t.Run("Validate rejects unknown status", func(t *testing.T) {
		r := Record{ID: 1, Text: "ok", Status: "Archived"}
		if err := r.Validate(); err == nil {
			t.Error("expected validation error for unknown status")
		}
	})

	t.Run("serialized form uses literal status strings", func(t *testing.T) {
		b, err := json.Marshal(NewRecord(7, "water plants"))
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		want := `{"id":7,"text":"water plants","status":"Pending"}`
		if string(b) != want {
			t.Errorf("expected %s, got %s", want, b)
		}
	})
}

func TestValidateSequence(t *testing.T) {
	t.Run("accepts empty sequence", func(t *testing.T) {
		if err := ValidateSequence(nil); err != nil {
			t.Errorf("empty sequence should validate: %v", err)
		}
	})

	t.Run("accepts well formed sequence", func(t *testing.T) {
		seq := []Record{
			{ID: 1, Text: "a", Status: StatusPending},
			{ID: 2, Text: "b", Status: StatusCompleted},
		}
		if err := ValidateSequence(seq); err != nil {
			t.Errorf("expected valid sequence: %v", err)
		}
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		seq := []Record{
			{ID: 1, Text: "a", Status: StatusPending},
			{ID: 1, Text: "b", Status: StatusPending},
		}
		if err := ValidateSequence(seq); err == nil {
			t.Error("expected error for duplicate ids")
		}
	})

	t.Run("rejects unknown status literal", func(t *testing.T) {
		seq := []Record{{ID: 1, Text: "a", Status: "Open"}}
		if err := ValidateSequence(seq); err == nil {
			t.Error("expected error for unknown status")
		}
	})
}

func TestFilter(t *testing.T) {
	pending := Record{ID: 1, Text: "a", Status: StatusPending}
	completed := Record{ID: 2, Text: "b", Status: StatusCompleted}

	t.Run("Matches", func(t *testing.T) {
		if !FilterAll.Matches(pending) || !FilterAll.Matches(completed) {
			t.Error("all filter should match every record")
		}
		if !FilterPending.Matches(pending) || FilterPending.Matches(completed) {
			t.Error("pending filter should match only pending records")
		}
		if FilterCompleted.Matches(pending) || !FilterCompleted.Matches(completed) {
			t.Error("completed filter should match only completed records")
		}
	})

	t.Run("pending and completed views partition any sequence", func(t *testing.T) {
		seq := []Record{pending, completed, {ID: 3, Text: "c", Status: StatusPending}}
		counted := 0
		for _, r := range seq {
			p := FilterPending.Matches(r)
			c := FilterCompleted.Matches(r)
			if p == c {
				t.Errorf("record %d matched both or neither partition", r.ID)
			}
			counted++
		}
		if counted != len(seq) {
			t.Errorf("expected %d records partitioned, got %d", len(seq), counted)
		}
	})

	t.Run("ParseFilter", func(t *testing.T) {
		cases := map[string]Filter{
			"":          FilterAll,
			"all":       FilterAll,
			"ALL":       FilterAll,
			"pending":   FilterPending,
			"open":      FilterPending,
			"completed": FilterCompleted,
			"done":      FilterCompleted,
		}
		for in, want := range cases {
			got, err := ParseFilter(in)
			if err != nil {
				t.Errorf("ParseFilter(%q) returned error: %v", in, err)
			}
			if got != want {
				t.Errorf("ParseFilter(%q) = %s, want %s", in, got, want)
			}
		}

		if _, err := ParseFilter("archived"); err == nil {
			t.Error("expected error for unknown filter")
		}
	})
}
