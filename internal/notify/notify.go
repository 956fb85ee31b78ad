package notify

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/ravenel/tick/internal/shared"
)

// Notifier announces human-readable state-change events. Announce is
// fire-and-forget: implementations swallow every delivery failure.
type Notifier interface {
	Announce(ctx context.Context, title, body string)
}

// Sender is the raw delivery channel a notifier speaks through.
type Sender interface {
	Send(ctx context.Context, title, body string) error
}

// Nop drops every announcement. Used when notifications are disabled or
// no channel exists.
type Nop struct{}

func (Nop) Announce(context.Context, string, string) {}

// Permission is the state of the user's notification consent.
type Permission int

const (
	PermissionUnknown Permission = iota
	PermissionGranted
	PermissionDenied
)

func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// HostNotifier delegates directly to a host-managed channel. The host is
// assumed to have handled permission already; delivery errors are logged
// and dropped.
type HostNotifier struct {
	sender Sender
	logger *log.Logger
}

// NewHostNotifier creates a notifier over an externally supplied channel.
func NewHostNotifier(sender Sender, logger *log.Logger) *HostNotifier {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &HostNotifier{sender: sender, logger: logger}
}

func (n *HostNotifier) Announce(ctx context.Context, title, body string) {
	event := shared.GenerateID()
	if err := n.sender.Send(ctx, title, body); err != nil {
		n.logger.Debug("announcement dropped", "event", event, "title", title, "error", err)
		return
	}
	n.logger.Debug("announced", "event", event, "title", title)
}

// GatedNotifier wraps a channel behind the platform permission flow.
//
// The decide callback runs at most once per process, when an announcement
// or Enable call finds the state unknown. Its answer is terminal.
type GatedNotifier struct {
	sender Sender
	decide func() bool
	state  Permission
	logger *log.Logger
}

// NewGatedNotifier creates a permission-gated notifier. decide is invoked
// once to resolve the unknown state; a nil decide denies.
func NewGatedNotifier(sender Sender, decide func() bool, logger *log.Logger) *GatedNotifier {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &GatedNotifier{sender: sender, decide: decide, logger: logger}
}

// Permission returns the current state of the machine.
func (n *GatedNotifier) Permission() Permission {
	return n.state
}

// request resolves the unknown state. Granted and denied are terminal, so
// subsequent calls return the settled answer without re-asking.
func (n *GatedNotifier) request() Permission {
	if n.state != PermissionUnknown {
		return n.state
	}
	if n.decide != nil && n.decide() {
		n.state = PermissionGranted
	} else {
		n.state = PermissionDenied
	}
	n.logger.Debug("notification permission settled", "state", n.state)
	return n.state
}

func (n *GatedNotifier) Announce(ctx context.Context, title, body string) {
	if n.request() != PermissionGranted {
		return
	}
	event := shared.GenerateID()
	if err := n.sender.Send(ctx, title, body); err != nil {
		n.logger.Debug("announcement dropped", "event", event, "title", title, "error", err)
		return
	}
	n.logger.Debug("announced", "event", event, "title", title)
}

// Enable is the user-triggered opt-in: it requests permission if the state
// is still unknown and, on grant, shows a confirmation announcement. It is
// independent of store mutations and persists nothing.
func (n *GatedNotifier) Enable(ctx context.Context) error {
	if n.request() != PermissionGranted {
		return shared.ErrPermissionDenied
	}
	if err := n.sender.Send(ctx, "Notifications enabled", "You will be notified of task changes."); err != nil {
		n.logger.Debug("confirmation announcement dropped", "error", err)
	}
	return nil
}
