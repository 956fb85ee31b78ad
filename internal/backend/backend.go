package backend

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/ravenel/tick/internal/models"
	"github.com/ravenel/tick/internal/shared"
)

// Backend is the durable-storage abstraction the store delegates to.
//
// Load returns the persisted sequence, or an empty sequence when the slot
// is cold or its payload is malformed. Save persists the whole snapshot;
// an empty snapshot must be persisted as empty, never skipped.
type Backend interface {
	Name() string
	Load(ctx context.Context) ([]models.Record, error)
	Save(ctx context.Context, records []models.Record) error
}

// Select picks the active backend by capability probing, once at startup.
//
// A configured host store path means the host capability is present and the
// offline store is used. When the path is present but the database cannot
// be opened the capability is treated as absent: the failure is logged and
// the local slot serves the session instead.
func Select(cfg *shared.Config, logger *log.Logger) Backend {
	if cfg == nil {
		cfg = shared.DefaultConfig()
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	if path := cfg.HostDatabase(); path != "" {
		host, err := NewHostBackend(path, logger)
		if err != nil {
			logger.Warn("host store unusable, falling back to local slot", "path", path, "error", err)
		} else {
			logger.Debug("selected host backend", "path", path)
			return host
		}
	}

	logger.Debug("selected local backend", "dir", cfg.Storage.Dir)
	return NewLocalBackend(cfg.Storage.Dir, logger)
}
