package main

import (
	"context"
	"fmt"

	"github.com/ravenel/tick/internal/backend"
	"github.com/ravenel/tick/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes a starter config file and, when a host store is
// configured, applies the offline store schema so the first mutation does
// not pay for it.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if err := shared.CreateConfigFile(path); err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}
	if err := r.writePlain("wrote %s\n", path); err != nil {
		return err
	}

	if dbPath := r.config.HostDatabase(); dbPath != "" {
		host, err := backend.NewHostBackend(dbPath, r.logger)
		if err != nil {
			return fmt.Errorf("failed to initialize host store: %w", err)
		}
		defer host.Close()
		if err := r.writePlain("initialized host store at %s\n", dbPath); err != nil {
			return err
		}
	}

	return nil
}
