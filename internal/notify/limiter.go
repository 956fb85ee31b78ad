package notify

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/ravenel/tick/internal/shared"
	"golang.org/x/time/rate"
)

// defaultRate caps announcements at one per second with a small burst.
const (
	defaultRate  = 1.0
	defaultBurst = 3
)

// Limited wraps a notifier with a token-bucket budget. Announcements over
// budget are dropped, never queued: a stale notification about a task
// change is worse than no notification.
type Limited struct {
	next    Notifier
	limiter *rate.Limiter
	logger  *log.Logger
}

// NewLimited creates a rate-limited notifier. perSecond <= 0 uses the
// default budget.
func NewLimited(next Notifier, perSecond float64, logger *log.Logger) *Limited {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	if perSecond <= 0 {
		perSecond = defaultRate
	}
	return &Limited{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), defaultBurst),
		logger:  logger,
	}
}

func (l *Limited) Announce(ctx context.Context, title, body string) {
	if !l.limiter.Allow() {
		l.logger.Debug("announcement dropped over rate budget", "title", title)
		return
	}
	l.next.Announce(ctx, title, body)
}
