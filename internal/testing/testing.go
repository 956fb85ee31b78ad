// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"

	"github.com/ravenel/tick/internal/models"
)

// MockBackend is a test double for [backend.Backend]. It records every
// saved snapshot and can be scripted to fail loads or saves.
type MockBackend struct {
	Records []models.Record   // returned by Load
	LoadErr error             // forced load failure
	SaveErr error             // forced save failure
	Saves   [][]models.Record // every snapshot handed to Save, in order
}

func (m *MockBackend) Name() string { return "mock" }

func (m *MockBackend) Load(context.Context) ([]models.Record, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	out := make([]models.Record, len(m.Records))
	copy(out, m.Records)
	return out, nil
}

func (m *MockBackend) Save(_ context.Context, records []models.Record) error {
	snapshot := make([]models.Record, len(records))
	copy(snapshot, records)
	m.Saves = append(m.Saves, snapshot)
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Records = snapshot
	return nil
}

// LastSave returns the most recent snapshot handed to Save.
func (m *MockBackend) LastSave() ([]models.Record, bool) {
	if len(m.Saves) == 0 {
		return nil, false
	}
	return m.Saves[len(m.Saves)-1], true
}

// Event is a recorded announcement.
type Event struct {
	Title string
	Body  string
}

// MockNotifier is a test double for [notify.Notifier].
type MockNotifier struct {
	Events []Event
}

func (m *MockNotifier) Announce(_ context.Context, title, body string) {
	m.Events = append(m.Events, Event{Title: title, Body: body})
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}
