// Package bootstrap assembles a tracker from configuration. Every binary
// starts here.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"roadmap/internal/adapters/filesystem"
	"roadmap/internal/adapters/report"
	"roadmap/internal/adapters/scheduler"
	"roadmap/internal/adapters/storage"
	"roadmap/internal/application"
	"roadmap/internal/config"
	"roadmap/internal/curriculum"
	"roadmap/internal/domain"
	"roadmap/internal/ports"
)

// Options supplies the surface-specific collaborators
type Options struct {
	// Scheduler drives the study timer; nil uses a plain ticker
	Scheduler ports.Scheduler
	Notifier  ports.Notifier
	Logger    *slog.Logger
}

// Env is an opened tracker with the adapters around it
type Env struct {
	Config   *config.Config
	Tracker  *application.Tracker
	KV       ports.KeyValueStore
	Files    *filesystem.Files
	Reports  *report.XLSX
	Defaults func() domain.Catalog
}

// Open loads the curriculum, opens storage and builds the tracker
func Open(ctx context.Context, cfg *config.Config, opts Options) (*Env, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = scheduler.NewTicker()
	}

	base, err := curriculum.LoadFile(cfg.Curriculum)
	if err != nil {
		return nil, err
	}
	defaults := func() domain.Catalog { return base.Clone() }

	kv, err := storage.Open(ctx, cfg.Storage, opts.Logger)
	if err != nil {
		return nil, err
	}

	tracker, err := application.NewTracker(ctx, application.TrackerConfig{
		KV:           kv,
		StorageKey:   cfg.Storage.Key,
		Defaults:     defaults,
		Scheduler:    opts.Scheduler,
		Notifier:     opts.Notifier,
		Logger:       opts.Logger,
		TickInterval: cfg.Timer,
	})
	if err != nil {
		kv.Close()
		return nil, fmt.Errorf("loading progress: %w", err)
	}

	opts.Logger.Info("tracker ready",
		"backend", cfg.Storage.Backend,
		"sections", len(tracker.Store.Snapshot()),
		"config", cfg.File)

	return &Env{
		Config:   cfg,
		Tracker:  tracker,
		KV:       kv,
		Files:    filesystem.NewFiles(cfg.ExportDir),
		Reports:  report.NewXLSX(),
		Defaults: defaults,
	}, nil
}

// Close stops the timer and closes storage
func (e *Env) Close() error {
	e.Tracker.Close()
	return e.KV.Close()
}
