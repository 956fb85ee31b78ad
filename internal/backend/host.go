package backend

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ravenel/tick/internal/models"
	"github.com/ravenel/tick/internal/shared"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	position INTEGER PRIMARY KEY,
	id INTEGER NOT NULL,
	text TEXT NOT NULL,
	status TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// HostBackend is the host-provided offline store: a SQLite database whose
// records table mirrors the in-memory sequence. Every save is a
// transactional whole-snapshot replace, not a delta.
type HostBackend struct {
	db     *sql.DB
	logger *log.Logger
}

// NewHostBackend opens the offline store at path and applies the schema
// idempotently. The path can be ":memory:" in tests.
func NewHostBackend(path string, logger *log.Logger) (*HostBackend, error) {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	db, err := shared.NewDatabase(path)
	if err != nil {
		return nil, err
	}
	shared.ConfigureDatabase(db, 1, 1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &HostBackend{db: db, logger: logger}, nil
}

// NewHostBackendDB wraps an already open database, applying the schema.
// Used when the host environment hands over a live connection.
func NewHostBackendDB(db *sql.DB, logger *log.Logger) (*HostBackend, error) {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &HostBackend{db: db, logger: logger}, nil
}

func (b *HostBackend) Name() string { return "host" }

// Close releases the underlying database connection.
func (b *HostBackend) Close() error {
	return b.db.Close()
}

// Load reads the whole sequence ordered by position. Any malformed row
// invalidates the entire load and yields the empty sequence.
func (b *HostBackend) Load(ctx context.Context) ([]models.Record, error) {
	rows, err := b.db.QueryContext(ctx, "SELECT id, text, status FROM records ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	records := []models.Record{}
	for rows.Next() {
		var r models.Record
		var status string
		if err := rows.Scan(&r.ID, &r.Text, &status); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		r.Status = models.Status(status)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	if err := models.ValidateSequence(records); err != nil {
		b.logger.Warn("discarding invalid offline store payload", "error", err)
		return []models.Record{}, nil
	}

	return records, nil
}

// Save replaces the stored snapshot in one transaction and stamps the meta
// table with a save generation for log correlation. An empty sequence
// leaves the table empty, which is a valid persisted state.
func (b *HostBackend) Save(ctx context.Context, records []models.Record) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM records"); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}

	for i, r := range records {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO records (position, id, text, status) VALUES (?, ?, ?, ?)",
			i, r.ID, r.Text, string(r.Status))
		if err != nil {
			return fmt.Errorf("failed to insert record %d: %w", r.ID, err)
		}
	}

	generation := shared.GenerateID()
	_, err = tx.ExecContext(ctx,
		"INSERT INTO meta (key, value) VALUES ('generation', ?), ('saved_at', ?) "+
			"ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		generation, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to stamp save generation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	b.logger.Debug("saved snapshot to offline store", "records", len(records), "generation", generation)
	return nil
}

// Generation returns the uuid stamped by the most recent save, or the
// empty string for a cold store.
func (b *HostBackend) Generation(ctx context.Context) (string, error) {
	var generation string
	err := b.db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = 'generation'").Scan(&generation)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query generation: %w", err)
	}
	return generation, nil
}
