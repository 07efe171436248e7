package application

import (
	"context"
	"log/slog"
	"time"

	"roadmap/internal/domain"
	"roadmap/internal/ports"
)

// TrackerConfig collects the collaborators of a Tracker
type TrackerConfig struct {
	KV           ports.KeyValueStore
	StorageKey   string
	Defaults     func() domain.Catalog
	Scheduler    ports.Scheduler
	Notifier     ports.Notifier
	Logger       *slog.Logger
	TickInterval time.Duration
}

// Tracker wires the store, the time ledger and the notes manager together
type Tracker struct {
	Store  *Store
	Ledger *TimeLedger
	Notes  *NotesManager
}

// NewTracker builds a tracker and loads the catalog
func NewTracker(ctx context.Context, cfg TrackerConfig) (*Tracker, error) {
	persistence := NewPersistence(cfg.KV, cfg.StorageKey, cfg.Logger)
	store := NewStore(persistence, cfg.Defaults, cfg.Notifier, cfg.Logger)
	t := &Tracker{
		Store:  store,
		Ledger: NewTimeLedger(store, cfg.Scheduler, cfg.Notifier, cfg.Logger, cfg.TickInterval),
		Notes:  NewNotesManager(store, cfg.Notifier),
	}
	if _, err := store.Load(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Close stops any running timer
func (t *Tracker) Close() {
	t.Ledger.Stop()
}
