// submodule actions contains the task intent handlers
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ravenel/tick/internal/formatter"
	"github.com/ravenel/tick/internal/models"
	"github.com/ravenel/tick/internal/shared"
	"github.com/urfave/cli/v3"
)

// Add appends a new pending task from the command arguments.
func (r *Runner) Add(ctx context.Context, cmd *cli.Command) error {
	text := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if text == "" {
		return fmt.Errorf("%w: task text", shared.ErrMissingArgument)
	}

	seq := r.store.Add(ctx, text)
	added := seq[len(seq)-1]
	return r.writePlain("added %d: %s\n", added.ID, added.Text)
}

// List renders the filtered sequence in the requested format.
func (r *Runner) List(ctx context.Context, cmd *cli.Command) error {
	filter, err := models.ParseFilter(cmd.String("filter"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}

	records := r.store.Filtered(filter)

	if cmd.Bool("json") {
		return r.writeJSON(records, cmd.Bool("pretty"))
	}

	out, err := formatter.Render(records, cmd.String("format"), cmd.Bool("pretty"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}
	if _, err := r.output.Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Toggle flips the status of the task with the given id.
func (r *Runner) Toggle(ctx context.Context, cmd *cli.Command) error {
	id, err := r.recordID(cmd)
	if err != nil {
		return err
	}

	r.store.Toggle(ctx, id)

	record, err := r.store.Find(id)
	if err != nil {
		// Stale ids are tolerated as a no-op, matching the store.
		return r.writePlain("no task with id %d\n", id)
	}
	return r.writePlain("%d is now %s\n", record.ID, strings.ToLower(string(record.Status)))
}

// Remove deletes a task after the confirmation gate. The store removal
// itself is unconditional; the gate lives here.
func (r *Runner) Remove(ctx context.Context, cmd *cli.Command) error {
	id, err := r.recordID(cmd)
	if err != nil {
		return err
	}

	record, err := r.store.Find(id)
	if err != nil {
		return r.writePlain("no task with id %d\n", id)
	}

	if !cmd.Bool("yes") && !r.confirm(fmt.Sprintf("delete %q?", record.Text)) {
		return r.writePlain("kept %d\n", id)
	}

	r.store.Remove(ctx, id)
	return r.writePlain("deleted %d\n", id)
}

// Dump writes the full sequence as json or yaml, to stdout or a file.
func (r *Runner) Dump(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	if format == "" || format == "table" {
		format = "json"
	}

	out, err := formatter.Render(r.store.Records(), format, true)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}

	if path := cmd.String("output"); path != "" {
		if err := os.WriteFile(path, out, 0644); err != nil {
			return fmt.Errorf("failed to write dump file: %w", err)
		}
		return r.writePlain("wrote %s\n", path)
	}

	if _, err := r.output.Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// NotifyEnable runs the user-triggered notification opt-in.
func (r *Runner) NotifyEnable(ctx context.Context, cmd *cli.Command) error {
	if r.gate == nil {
		return r.writePlain("no notification channel available\n")
	}

	if err := r.gate.Enable(ctx); err != nil {
		return r.writePlain("notifications not enabled: %v\n", err)
	}
	return r.writePlain("notifications enabled\n")
}

// recordID parses the required positional id argument.
func (r *Runner) recordID(cmd *cli.Command) (int64, error) {
	raw := cmd.Args().First()
	if raw == "" {
		return 0, fmt.Errorf("%w: task id", shared.ErrMissingArgument)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a task id", shared.ErrInvalidArgument, raw)
	}
	return id, nil
}
