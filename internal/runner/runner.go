// Package runner wires the pipeline together: place downloaded files,
// record history, rescan the library, and force-match the new items.
package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/vmunix/audiarr/internal/history"
	"github.com/vmunix/audiarr/internal/manifest"
	"github.com/vmunix/audiarr/internal/notify"
	"github.com/vmunix/audiarr/internal/organizer"
	"github.com/vmunix/audiarr/internal/shelf"
)

// Config for the runner.
type Config struct {
	// ScanWait is how long to wait after triggering a scan before
	// querying the catalog. Best effort; the scanner gives no signal
	// when it finishes.
	ScanWait time.Duration

	// MatchDelay is the pause before each match request.
	MatchDelay time.Duration

	// MaxAgeDays bounds the catalog recency filter when no books were
	// placed in this run.
	MaxAgeDays int
}

// Runner executes one synchronization run.
type Runner struct {
	org      *organizer.Organizer
	api      shelf.LibraryAPI
	notifier notify.Notifier
	hist     *history.Store // nil disables history
	cfg      Config
	log      *slog.Logger
}

// New creates a runner. hist may be nil.
func New(org *organizer.Organizer, api shelf.LibraryAPI, notifier notify.Notifier, hist *history.Store, cfg Config, log *slog.Logger) *Runner {
	return &Runner{
		org:      org,
		api:      api,
		notifier: notifier,
		hist:     hist,
		cfg:      cfg,
		log:      log.With("component", "runner"),
	}
}

// Run places the manifest's books and reconciles the server catalog.
// Everything past placement is best effort: a failing server call is
// logged but never discards the placement result.
func (r *Runner) Run(ctx context.Context, records []manifest.Record) []organizer.Placement {
	placed := r.org.Run(records)
	r.recordHistory(placed)

	if err := r.api.Scan(ctx); err != nil {
		r.log.Warn("library scan failed", "error", err)
	} else if r.cfg.ScanWait > 0 {
		// Give the scanner a head start before reading the catalog.
		select {
		case <-ctx.Done():
			return placed
		case <-time.After(r.cfg.ScanWait):
		}
	}

	items, err := r.api.ListItems(ctx)
	if err != nil {
		r.log.Warn("fetching library items failed", "error", err)
		return placed
	}

	recent := shelf.RecentItems(items, r.cfg.MaxAgeDays, organizer.Books(placed))
	if len(recent) == 0 {
		r.log.Info("no catalog items to match")
		return placed
	}

	r.log.Info("matching catalog items", "count", len(recent))
	matcher := shelf.NewMatcher(r.api, r.notifier, r.cfg.MatchDelay, r.log)
	matcher.MatchAll(ctx, recent)

	return placed
}

func (r *Runner) recordHistory(placed []organizer.Placement) {
	if r.hist == nil {
		return
	}
	for _, p := range placed {
		mode := history.ModeMoved
		if p.Copied {
			mode = history.ModeCopied
		}
		err := r.hist.Add(&history.Placement{
			ASIN:       p.Book.ASIN,
			Title:      p.Book.Title,
			Author:     p.Book.Author,
			SourcePath: p.SourcePath,
			DestPath:   p.DestPath,
			SizeBytes:  p.SizeBytes,
			Mode:       mode,
		})
		if err != nil {
			r.log.Warn("recording placement history failed", "title", p.Book.Title, "error", err)
		}
	}
}
