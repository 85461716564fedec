package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/audiarr/internal/config"
	"github.com/vmunix/audiarr/internal/history"
	"github.com/vmunix/audiarr/internal/manifest"
	"github.com/vmunix/audiarr/internal/notify"
	"github.com/vmunix/audiarr/internal/organizer"
	"github.com/vmunix/audiarr/internal/runner"
	"github.com/vmunix/audiarr/internal/shelf"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Place downloaded books and reconcile the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runSync(cmd.Context())
	},
}

func runSync(parent context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	source, err := manifest.ParseSource(cfg.Downloads.Program)
	if err != nil {
		return err
	}

	records, err := manifest.Load(cfg.Downloads.ManifestPath)
	if err != nil {
		return err
	}

	var fileLocations *manifest.FileLocations
	if cfg.Downloads.FileLocationsPath != "" {
		fileLocations, err = manifest.LoadFileLocations(cfg.Downloads.FileLocationsPath)
		if err != nil {
			// The constructed paths still work without the index.
			logger.Warn("file locations index unavailable", "error", err)
		}
	}

	maxAge := cfg.Downloads.MaxAgeDays
	if maxAge < 0 {
		maxAge = 0 // explicit no-filter mode
	}

	org := organizer.New(organizer.Config{
		Source:              source,
		SourceDir:           cfg.Downloads.SourceDir,
		DestDir:             cfg.Library.DestDir,
		Extension:           cfg.Downloads.Extension,
		MaxAgeDays:          maxAge,
		CopyMode:            cfg.Downloads.CopyMode,
		CleanupSourceFolder: cfg.Downloads.LibationCleanup,
		FileLocations:       fileLocations,
	}, logger)

	client := shelf.New(cfg.Server.URL, cfg.Server.LibraryID, cfg.Server.Token, shelf.WithLogger(logger))

	var notifier notify.Notifier = notify.Nop{}
	if cfg.Notifications.Desktop {
		notifier = notify.NewDesktop("audiarr", logger)
	}

	var hist *history.Store
	if cfg.History.Path != "" {
		hist, err = history.Open(cfg.History.Path)
		if err != nil {
			logger.Warn("placement history disabled", "error", err)
		} else {
			defer func() { _ = hist.Close() }()
		}
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := runner.New(org, client, notifier, hist, runner.Config{
		ScanWait:   time.Duration(cfg.Server.ScanWaitSeconds) * time.Second,
		MatchDelay: time.Duration(cfg.Server.MatchDelaySeconds) * time.Second,
		MaxAgeDays: maxAge,
	}, logger)

	placed := r.Run(ctx, records)
	fmt.Printf("Placed %d book(s)\n", len(placed))
	return nil
}

// loadConfig discovers, loads, and validates the configuration.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return nil, err
		}
		path = discovered
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &config.ConfigError{Path: path, Errors: errs}
	}
	return cfg, nil
}

// newLogger builds the run logger, appending to the configured log file
// alongside stderr when one is set.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeLog := func() {}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = io.MultiWriter(os.Stderr, f)
		closeLog = func() { _ = f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	return logger, closeLog, nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
