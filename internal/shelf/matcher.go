package shelf

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/audiarr/internal/notify"
)

// DefaultMatchDelay is the pause before each match request. The Audible
// provider lookup behind the match endpoint rate-limits aggressively.
const DefaultMatchDelay = 2 * time.Second

// Matcher forces metadata matching for a batch of catalog items,
// reporting per-item progress through the notifier.
type Matcher struct {
	api      LibraryAPI
	notifier notify.Notifier
	delay    time.Duration
	log      *slog.Logger
}

// NewMatcher creates a matcher. A delay of 0 uses DefaultMatchDelay.
func NewMatcher(api LibraryAPI, notifier notify.Notifier, delay time.Duration, log *slog.Logger) *Matcher {
	if delay <= 0 {
		delay = DefaultMatchDelay
	}
	return &Matcher{
		api:      api,
		notifier: notifier,
		delay:    delay,
		log:      log.With("component", "matcher"),
	}
}

// MatchAll requests a match for each item in turn, pausing between
// requests. A failed match is notified and logged, never fatal; matching
// stops early only when ctx is cancelled.
func (m *Matcher) MatchAll(ctx context.Context, items []Item) {
	for _, item := range items {
		select {
		case <-ctx.Done():
			m.log.Warn("matching interrupted", "error", ctx.Err())
			return
		case <-time.After(m.delay):
		}

		title := item.Media.Metadata.Title
		if err := m.api.Match(ctx, item); err != nil {
			m.log.Warn("match failed", "title", title, "error", err)
			m.sendNotification("Error", fmt.Sprintf("Error with %s", title))
			continue
		}

		m.log.Info("matched via audible provider", "title", title, "asin", item.Media.Metadata.ASIN)
		m.sendNotification("Audio Bookshelf", fmt.Sprintf("Processing %s", title))
	}
}

func (m *Matcher) sendNotification(summary, body string) {
	if err := m.notifier.Notify(summary, body); err != nil {
		m.log.Debug("notification failed", "error", err)
	}
}
