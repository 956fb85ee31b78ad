package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ravenel/tick/internal/shared"
	"github.com/ravenel/tick/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI over the store.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.store == nil {
		return fmt.Errorf("%w: store not initialized", shared.ErrStorageUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	logPath := r.config.Log.File
	if logPath == "" {
		logPath = "./tmp/tick-tui.log"
	}
	fileLogger, err := shared.NewFileLogger(logPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	var enable func(context.Context) error
	if r.gate != nil {
		enable = r.gate.Enable
	}

	model := ui.NewModel(ctx, r.store, enable)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
