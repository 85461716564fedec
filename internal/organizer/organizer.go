// Package organizer relocates downloaded audiobook files into the
// author/series/title library layout.
package organizer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/vmunix/audiarr/internal/manifest"
	"github.com/vmunix/audiarr/internal/textutil"
)

// Config for the organizer.
type Config struct {
	Source     manifest.Source
	SourceDir  string
	DestDir    string
	Extension  string // audio file extension including the dot, e.g. ".m4b"
	MaxAgeDays int    // only place books purchased within this many days; 0 disables the filter
	CopyMode   bool   // copy instead of move, keeping the source file

	// CleanupSourceFolder removes the per-book Libation download folder
	// after a move. Ignored for OpenAudible and in copy mode.
	CleanupSourceFolder bool

	// FileLocations optionally overrides the constructed Libation source
	// path with the path Libation itself recorded.
	FileLocations *manifest.FileLocations
}

// Organizer places manifest records into the library tree.
type Organizer struct {
	cfg        Config
	normalizer manifest.Normalizer
	log        *slog.Logger
	now        func() time.Time
}

// New creates an organizer.
func New(cfg Config, log *slog.Logger) *Organizer {
	return &Organizer{
		cfg:        cfg,
		normalizer: manifest.NormalizerFor(cfg.Source),
		log:        log.With("component", "organizer"),
		now:        time.Now,
	}
}

// Placement is one successfully relocated book.
type Placement struct {
	Book       manifest.Book
	SourcePath string
	DestPath   string
	SizeBytes  int64
	Copied     bool
}

// Books extracts the placed book records, in placement order.
func Books(placements []Placement) []manifest.Book {
	books := make([]manifest.Book, len(placements))
	for i, p := range placements {
		books[i] = p.Book
	}
	return books
}

// Run processes records in manifest order and returns the placements
// that succeeded, in that order. A record that fails to normalize or
// place is logged and skipped; it never aborts the run.
func (o *Organizer) Run(records []manifest.Record) []Placement {
	cutoff, filtered := o.cutoffDate()
	if filtered {
		o.log.Info("placing recent purchases", "cutoff", cutoff.Format(time.DateOnly), "records", len(records))
	} else {
		o.log.Info("placing all purchases", "records", len(records))
	}

	var placed []Placement
	for _, raw := range records {
		book, err := o.normalizer.Normalize(raw)
		if err != nil {
			o.log.Error("normalize failed", "title", rawTitle(raw), "error", err)
			continue
		}

		placement, err := o.place(book, cutoff, filtered)
		if err != nil {
			o.log.Error("placement failed", "title", book.Title, "error", err)
			continue
		}
		if placement != nil {
			placed = append(placed, *placement)
		}
	}

	o.log.Info("placement finished", "placed", len(placed), "records", len(records))
	return placed
}

// place moves or copies one book. It returns a nil placement with a nil
// error for the silent skips: too old, source not downloaded yet,
// destination already holds an equal-or-larger file.
func (o *Organizer) place(book manifest.Book, cutoff time.Time, filtered bool) (*Placement, error) {
	purchased, err := time.Parse(time.DateOnly, book.PurchaseDate)
	if err != nil {
		return nil, fmt.Errorf("purchase date: %w", err)
	}
	if filtered && purchased.Before(cutoff) {
		return nil, nil
	}

	srcPath := o.sourcePath(book)
	if _, err := os.Stat(srcPath); err != nil {
		// Not downloaded yet; the next run will pick it up.
		o.log.Debug("source file not present", "title", book.Title, "path", srcPath)
		return nil, nil
	}

	destDir, err := BookDir(o.cfg.DestDir,
		textutil.SanitizeName(book.Author),
		textutil.SanitizeName(book.Series),
		textutil.SanitizeName(book.Title))
	if err != nil {
		return nil, err
	}

	destPath := filepath.Join(destDir, filepath.Base(srcPath))
	if err := ValidatePath(destPath, o.cfg.DestDir); err != nil {
		return nil, err
	}

	replacing, err := o.checkCollision(book, srcPath, destPath)
	if err != nil || !replacing {
		return nil, err
	}

	size, err := o.transfer(srcPath, destPath)
	if err != nil {
		return nil, err
	}

	if o.cfg.CleanupSourceFolder && !o.cfg.CopyMode && book.SourceFolder != "" {
		folder := filepath.Join(o.cfg.SourceDir, book.SourceFolder)
		if err := os.RemoveAll(folder); err != nil {
			o.log.Warn("source folder cleanup failed", "title", book.Title, "folder", folder, "error", err)
		}
	}

	o.log.Info("book placed", "title", book.Title, "author", book.Author, "dest", destPath, "size_bytes", size)
	return &Placement{
		Book:       book,
		SourcePath: srcPath,
		DestPath:   destPath,
		SizeBytes:  size,
		Copied:     o.cfg.CopyMode,
	}, nil
}

// checkCollision decides whether placement may proceed when the
// destination already exists: only a strictly larger source replaces an
// existing file.
func (o *Organizer) checkCollision(book manifest.Book, srcPath, destPath string) (bool, error) {
	destInfo, err := os.Stat(destPath)
	if err != nil {
		return true, nil // nothing there yet
	}

	srcInfo, err := os.Stat(srcPath)
	if err != nil {
		return false, fmt.Errorf("stat source: %w", err)
	}

	if srcInfo.Size() <= destInfo.Size() {
		o.log.Info("no change for book", "title", book.Title, "dest", destPath)
		return false, nil
	}

	o.log.Info("replacing existing file with larger download",
		"title", book.Title, "existing_bytes", destInfo.Size(), "downloaded_bytes", srcInfo.Size())
	return true, nil
}

func (o *Organizer) transfer(srcPath, destPath string) (int64, error) {
	if o.cfg.CopyMode {
		return CopyFile(srcPath, destPath)
	}
	return MoveFile(srcPath, destPath)
}

// sourcePath resolves where the downloaded audio file should be.
// OpenAudible writes flat into the source directory; Libation nests each
// book in its own folder, unless FileLocationsV2.json knows better.
func (o *Organizer) sourcePath(book manifest.Book) string {
	name := book.Filename + o.cfg.Extension
	if o.cfg.Source != manifest.SourceLibation {
		return filepath.Join(o.cfg.SourceDir, name)
	}
	if path, ok := o.cfg.FileLocations.AudioPath(book.ASIN); ok {
		return path
	}
	return filepath.Join(o.cfg.SourceDir, book.SourceFolder, name)
}

// cutoffDate returns the oldest purchase date still placed. The second
// return is false when the filter is disabled (MaxAgeDays == 0).
func (o *Organizer) cutoffDate() (time.Time, bool) {
	if o.cfg.MaxAgeDays <= 0 {
		return time.Time{}, false
	}
	cutoff := o.now().UTC().AddDate(0, 0, -o.cfg.MaxAgeDays)
	return cutoff.Truncate(24 * time.Hour), true
}

// rawTitle digs the best available display title out of an unnormalized
// record for error logging.
func rawTitle(raw manifest.Record) string {
	for _, key := range []string{"title", "Title"} {
		if v, ok := raw[key].(string); ok && v != "" {
			return v
		}
	}
	return "Unknown Book"
}
