package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/ravenel/tick/internal/models"
	"github.com/ravenel/tick/internal/shared"
)

// slotFile is the fixed key the local slot is stored under.
const slotFile = "records.json"

// LocalBackend persists the record sequence as a single JSON file under a
// fixed name. It is the fallback when no host store is available.
type LocalBackend struct {
	dir    string
	logger *log.Logger
}

// NewLocalBackend creates a local slot rooted at dir. An empty dir means
// the current working directory.
func NewLocalBackend(dir string, logger *log.Logger) *LocalBackend {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &LocalBackend{dir: dir, logger: logger}
}

func (b *LocalBackend) Name() string { return "local" }

// Path returns the location of the slot file.
func (b *LocalBackend) Path() string {
	return filepath.Join(b.dir, slotFile)
}

// Load reads the slot. A missing file is a cold slot and yields the empty
// sequence. A payload that fails to unmarshal or validate also yields the
// empty sequence: the parse is all-or-nothing, partial recovery is never
// attempted.
func (b *LocalBackend) Load(_ context.Context) ([]models.Record, error) {
	data, err := os.ReadFile(b.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.Record{}, nil
		}
		return nil, fmt.Errorf("%w: %v", shared.ErrStorageUnavailable, err)
	}

	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		b.logger.Warn("discarding malformed slot payload", "path", b.Path(), "error", err)
		return []models.Record{}, nil
	}
	if err := models.ValidateSequence(records); err != nil {
		b.logger.Warn("discarding invalid slot payload", "path", b.Path(), "error", err)
		return []models.Record{}, nil
	}

	return records, nil
}

// Save overwrites the slot with the whole snapshot. An empty sequence is
// written as an empty JSON array so that deleting the last record persists.
func (b *LocalBackend) Save(_ context.Context, records []models.Record) error {
	if records == nil {
		records = []models.Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if b.dir != "" {
		if err := os.MkdirAll(b.dir, 0755); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrStorageUnavailable, err)
		}
	}
	if err := os.WriteFile(b.Path(), data, 0644); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorageUnavailable, err)
	}

	return nil
}
