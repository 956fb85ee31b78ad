package notify

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"
)

var getRuntime = func() string { return runtime.GOOS }

// lookPath is swapped in tests to script channel detection.
var lookPath = exec.LookPath

// sendTimeout bounds a single delivery attempt.
const sendTimeout = 5 * time.Second

// DesktopSender delivers announcements through the platform notification
// command.
type DesktopSender struct {
	command string
}

// DetectSender probes for a usable desktop notification command. The
// second return is false when the platform offers none, which callers
// treat as NotificationUnavailable.
func DetectSender() (*DesktopSender, bool) {
	var candidates []string
	switch getRuntime() {
	case "darwin":
		candidates = []string{"terminal-notifier", "osascript"}
	case "linux":
		candidates = []string{"notify-send"}
	default:
		return nil, false
	}

	for _, c := range candidates {
		if _, err := lookPath(c); err == nil {
			return &DesktopSender{command: c}, true
		}
	}
	return nil, false
}

// Send shows a desktop notification. The attempt is bounded by a short
// timeout so a stuck helper cannot block the caller.
func (s *DesktopSender) Send(ctx context.Context, title, body string) error {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	var cmd *exec.Cmd
	switch s.command {
	case "notify-send":
		cmd = exec.CommandContext(ctx, "notify-send", title, body)
	case "terminal-notifier":
		cmd = exec.CommandContext(ctx, "terminal-notifier", "-title", title, "-message", body)
	case "osascript":
		script := fmt.Sprintf("display notification %q with title %q", body, title)
		cmd = exec.CommandContext(ctx, "osascript", "-e", script)
	default:
		return fmt.Errorf("unsupported notification command: %s", s.command)
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}
	return nil
}
