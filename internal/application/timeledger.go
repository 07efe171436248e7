package application

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"roadmap/internal/domain"
	"roadmap/internal/ports"
)

// DefaultTickInterval is how often a running timer adds a minute
const DefaultTickInterval = time.Minute

// RunningTimer is the state of an active timer
type RunningTimer struct {
	At        domain.Coordinate
	StartedAt time.Time
}

// TimerEventKind says whether a toggle started or stopped a timer
type TimerEventKind int

const (
	TimerStarted TimerEventKind = iota
	TimerStopped
)

// TimerEvent is the outcome of TimeLedger.Toggle
type TimerEvent struct {
	Kind  TimerEventKind
	At    domain.Coordinate
	Title string
}

// TimeLedger tracks the single active study timer. While running, every
// tick adds one minute to the timed topic.
type TimeLedger struct {
	store     *Store
	scheduler ports.Scheduler
	notifier  ports.Notifier
	logger    *slog.Logger
	interval  time.Duration
	now       func() time.Time

	// tickMu serialises ticks with Stop and Toggle so no minute is added
	// once either has returned
	tickMu sync.Mutex

	mu         sync.Mutex
	running    *RunningTimer
	cancel     func()
	generation uint64
}

// NewTimeLedger creates a ledger and subscribes it to store events.
// A non-positive interval uses DefaultTickInterval.
func NewTimeLedger(store *Store, scheduler ports.Scheduler, notifier ports.Notifier, logger *slog.Logger, interval time.Duration) *TimeLedger {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	l := &TimeLedger{
		store:     store,
		scheduler: scheduler,
		notifier:  notifier,
		logger:    logger,
		interval:  interval,
		now:       time.Now,
	}
	store.Subscribe(l.handleEvent)
	return l
}

// State returns the running timer, if any
func (l *TimeLedger) State() (RunningTimer, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running == nil {
		return RunningTimer{}, false
	}
	return *l.running, true
}

// IsRunning reports whether the timer runs on the given topic
func (l *TimeLedger) IsRunning(at domain.Coordinate) bool {
	rt, ok := l.State()
	return ok && rt.At == at
}

// Toggle stops the timer if it runs on at, otherwise starts it there,
// stopping any timer on another topic first
func (l *TimeLedger) Toggle(ctx context.Context, at domain.Coordinate) (TimerEvent, error) {
	l.tickMu.Lock()
	defer l.tickMu.Unlock()

	l.mu.Lock()
	if l.running != nil && l.running.At == at {
		l.stopLocked()
		l.mu.Unlock()

		title := ""
		if t, err := l.store.Topic(at); err == nil {
			title = t.Title
		}
		l.notifier.Notify(ports.Notification{Title: "Timer stopped", Description: title})
		return TimerEvent{Kind: TimerStopped, At: at, Title: title}, nil
	}
	l.mu.Unlock()

	topic, err := l.store.Topic(at)
	if err != nil {
		return TimerEvent{}, err
	}
	if topic.Completed {
		return TimerEvent{}, &AlreadyCompletedError{Title: topic.Title}
	}

	now := l.now()
	if err := l.store.MarkStarted(ctx, at, now); err != nil {
		return TimerEvent{}, err
	}

	// A completion published before running is set finds the ledger idle.
	// The store does not publish under its own lock, so reading it under mu is safe.
	l.mu.Lock()
	if current, err := l.store.Topic(at); err != nil || current.Completed {
		l.mu.Unlock()
		if err != nil {
			return TimerEvent{}, err
		}
		return TimerEvent{}, &AlreadyCompletedError{Title: current.Title}
	}
	l.stopLocked()
	l.generation++
	gen := l.generation
	l.running = &RunningTimer{At: at, StartedAt: now}
	l.cancel = l.scheduler.Every(l.interval, func() { l.tick(gen) })
	l.mu.Unlock()

	l.logger.Info("timer started", "topic", topic.Title, "at", at.String())
	l.notifier.Notify(ports.Notification{Title: "Timer started", Description: topic.Title})
	return TimerEvent{Kind: TimerStarted, At: at, Title: topic.Title}, nil
}

// Stop makes the ledger idle. It is a no-op when no timer runs.
func (l *TimeLedger) Stop() {
	l.tickMu.Lock()
	defer l.tickMu.Unlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopLocked()
}

func (l *TimeLedger) stopLocked() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	if l.running != nil {
		l.logger.Info("timer stopped", "at", l.running.At.String())
	}
	l.running = nil
	l.generation++
}

func (l *TimeLedger) tick(gen uint64) {
	l.tickMu.Lock()
	defer l.tickMu.Unlock()

	l.mu.Lock()
	if l.running == nil || gen != l.generation {
		l.mu.Unlock()
		l.logger.Debug("skipping stale tick", "generation", gen)
		return
	}
	at := l.running.At
	l.mu.Unlock()

	err := l.store.AddTimeSpent(context.Background(), at, 1)
	if err == nil {
		return
	}

	l.logger.Warn("tick failed, stopping timer", "at", at.String(), "error", err)
	if errors.Is(err, ErrOutOfRange) {
		l.mu.Lock()
		if gen == l.generation {
			l.stopLocked()
		}
		l.mu.Unlock()
	}
}

// handleEvent keeps the running coordinate valid across store mutations.
// It only takes mu, since it may run inside a tick.
func (l *TimeLedger) handleEvent(ev Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running == nil {
		return
	}

	switch ev.Kind {
	case EventCompleted:
		if ev.At == l.running.At {
			l.stopLocked()
		}
	case EventDeleted:
		at, ok := ev.Shift(l.running.At)
		if !ok {
			l.stopLocked()
			return
		}
		l.running.At = at
	case EventReplaced:
		l.stopLocked()
	}
}
