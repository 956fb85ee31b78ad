package main

import (
	"bufio"
	"context"
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ravenel/tick/internal/backend"
	"github.com/ravenel/tick/internal/notify"
	"github.com/ravenel/tick/internal/shared"
	"github.com/ravenel/tick/internal/store"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}
	if level, err := log.ParseLevel(config.Log.Level); err == nil {
		shared.SetLogLevel(logger, level)
	}

	active := backend.Select(config, logger)

	notifier, gate := buildNotifier(config, logger)

	st := store.New(store.Opts{Backend: active, Notifier: notifier, Logger: logger})
	st.Initialize(context.Background())

	runner := NewRunner(RunnerOpts{
		Config:   config,
		Store:    st,
		Backend:  active,
		Notifier: notifier,
		Gate:     gate,
		Logger:   logger,
	})

	app := &cli.Command{
		Name:     "tick",
		Usage:    "Keep a local task list with pluggable persistence",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}

// buildNotifier assembles the announcement channel from config. The
// returned gate is non-nil only on the permission-gated path, where the
// notify enable command needs it.
func buildNotifier(config *shared.Config, logger *log.Logger) (notify.Notifier, *notify.GatedNotifier) {
	if config.Notifications.Mode == "off" {
		return notify.Nop{}, nil
	}

	sender, ok := notify.DetectSender()
	if !ok {
		logger.Debug("no notification channel detected")
		return notify.Nop{}, nil
	}

	rate := config.Notifications.RatePerSecond

	if config.Notifications.Mode == "on" {
		// Host-managed channel: permission is the host's problem.
		return notify.NewLimited(notify.NewHostNotifier(sender, logger), rate, logger), nil
	}

	gate := notify.NewGatedNotifier(sender, promptPermission, logger)
	return notify.NewLimited(gate, rate, logger), gate
}

// promptPermission asks once on the terminal. Anything but an explicit
// yes is a denial, which is terminal for the process lifetime.
func promptPermission() bool {
	os.Stderr.WriteString("Allow desktop notifications? [y/N] ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
