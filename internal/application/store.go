package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"roadmap/internal/domain"
	"roadmap/internal/ports"
)

// EventKind identifies what a store mutation did
type EventKind int

const (
	// EventChanged is any mutation that keeps coordinates stable
	EventChanged EventKind = iota
	// EventCompleted is a topic becoming completed
	EventCompleted
	// EventDeleted is a topic removal; later topics in the section shift down by one
	EventDeleted
	// EventReplaced is a wholesale replacement of the catalog
	EventReplaced
)

func (k EventKind) String() string {
	switch k {
	case EventCompleted:
		return "completed"
	case EventDeleted:
		return "deleted"
	case EventReplaced:
		return "replaced"
	default:
		return "changed"
	}
}

// Event describes a mutation of the catalog
type Event struct {
	Kind EventKind
	At   domain.Coordinate
}

// Shift returns where a coordinate observed before a delete event lives
// afterwards. ok is false when at is the deleted topic itself.
func (e Event) Shift(at domain.Coordinate) (shifted domain.Coordinate, ok bool) {
	if e.Kind != EventDeleted || at.Section != e.At.Section {
		return at, true
	}
	switch {
	case at.Item == e.At.Item:
		return at, false
	case at.Item > e.At.Item:
		at.Item--
	}
	return at, true
}

// Store owns the current catalog. Every mutation works on a copy which is
// swapped in and persisted, so readers always see complete snapshots.
type Store struct {
	mu          sync.RWMutex
	catalog     domain.Catalog
	persistence *Persistence
	defaults    func() domain.Catalog
	notifier    ports.Notifier
	logger      *slog.Logger
	now         func() time.Time

	subMu       sync.Mutex
	subscribers []func(Event)
}

// NewStore creates a store backed by persistence. defaults supplies the
// catalog used when nothing usable is stored.
func NewStore(persistence *Persistence, defaults func() domain.Catalog, notifier ports.Notifier, logger *slog.Logger) *Store {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		catalog:     domain.Catalog{},
		persistence: persistence,
		defaults:    defaults,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// Subscribe registers fn to be called after every mutation.
// fn runs on the mutating goroutine after the store lock is released.
func (s *Store) Subscribe(fn func(Event)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) publish(events ...Event) {
	s.subMu.Lock()
	subs := make([]func(Event), len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.Unlock()

	for _, ev := range events {
		for _, fn := range subs {
			fn(ev)
		}
	}
}

// Load reads the persisted catalog. When nothing is stored, or the stored
// document cannot be read, the default curriculum is used instead.
func (s *Store) Load(ctx context.Context) (domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := s.persistence.Load(ctx)
	if err != nil {
		s.logger.Warn("falling back to default curriculum", "key", s.persistence.Key(), "error", err)
		c = nil
	}
	if c == nil {
		c = s.defaults().ResetProgress()
		s.logger.Info("loaded default curriculum", "sections", len(c))
	} else {
		s.logger.Info("loaded catalog", "key", s.persistence.Key(), "sections", len(c))
	}

	s.mu.Lock()
	s.catalog = c
	s.mu.Unlock()

	s.publish(Event{Kind: EventReplaced})
	return c.Clone(), nil
}

// Snapshot returns a copy of the current catalog
func (s *Store) Snapshot() domain.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Clone()
}

// Topic returns the topic at the given coordinate
func (s *Store) Topic(at domain.Coordinate) (domain.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.catalog.Topic(at)
	if !ok {
		return domain.Topic{}, &OutOfRangeError{Section: at.Section, Item: at.Item}
	}
	return t.Clone(), nil
}

// mutate applies fn to a copy of the catalog, swaps it in and persists it.
// Persistence failures are logged and do not fail the mutation.
func (s *Store) mutate(ctx context.Context, fn func(c domain.Catalog) (domain.Catalog, error)) error {
	s.mu.Lock()
	next, err := fn(s.catalog.Clone())
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.catalog = next
	if err := s.persistence.Save(ctx, next); err != nil {
		s.logger.Error("saving catalog", "error", err)
	}
	s.mu.Unlock()
	return nil
}

func outOfRange(at domain.Coordinate) error {
	return &OutOfRangeError{Section: at.Section, Item: at.Item}
}

// AddTopic appends an incomplete topic to a section and returns its coordinate
func (s *Store) AddTopic(ctx context.Context, sectionIndex int, title string, difficulty domain.Difficulty, timeEstimate string) (domain.Coordinate, error) {
	if err := ValidateRequired("title", title); err != nil {
		return domain.Coordinate{}, err
	}

	var at domain.Coordinate
	err := s.mutate(ctx, func(c domain.Catalog) (domain.Catalog, error) {
		if _, ok := c.Section(sectionIndex); !ok {
			return nil, &OutOfRangeError{Section: sectionIndex, Item: -1}
		}
		c[sectionIndex].Items = append(c[sectionIndex].Items, domain.Topic{
			Title:        strings.TrimSpace(title),
			Difficulty:   difficulty,
			TimeEstimate: strings.TrimSpace(timeEstimate),
		})
		at = domain.Coordinate{Section: sectionIndex, Item: len(c[sectionIndex].Items) - 1}
		return c, nil
	})
	if err != nil {
		return domain.Coordinate{}, err
	}

	s.publish(Event{Kind: EventChanged, At: at})
	s.notifier.Notify(ports.Notification{Title: "Topic added", Description: strings.TrimSpace(title)})
	return at, nil
}

// DeleteTopic removes the topic at the given coordinate
func (s *Store) DeleteTopic(ctx context.Context, at domain.Coordinate) error {
	var removed domain.Topic
	err := s.mutate(ctx, func(c domain.Catalog) (domain.Catalog, error) {
		t, ok := c.Topic(at)
		if !ok {
			return nil, outOfRange(at)
		}
		removed = t
		items := c[at.Section].Items
		c[at.Section].Items = append(items[:at.Item:at.Item], items[at.Item+1:]...)
		return c, nil
	})
	if err != nil {
		return err
	}

	s.publish(Event{Kind: EventDeleted, At: at})
	s.notifier.Notify(ports.Notification{Title: "Topic deleted", Description: removed.Title})
	return nil
}

// SetCompletion marks a topic completed or incomplete. Completing a topic
// stamps CompletedAt; reverting clears it. StartedAt is never touched.
func (s *Store) SetCompletion(ctx context.Context, at domain.Coordinate, completed bool) error {
	var became bool
	var title string
	err := s.mutate(ctx, func(c domain.Catalog) (domain.Catalog, error) {
		t, ok := c.TopicPtr(at)
		if !ok {
			return nil, outOfRange(at)
		}
		became = completed && !t.Completed
		title = t.Title
		t.Completed = completed
		if completed {
			if t.CompletedAt == nil {
				now := s.now()
				t.CompletedAt = &now
			}
		} else {
			t.CompletedAt = nil
		}
		return c, nil
	})
	if err != nil {
		return err
	}

	if became {
		s.publish(Event{Kind: EventCompleted, At: at})
		s.notifier.Notify(ports.Notification{Title: "Topic completed!", Description: title})
		return nil
	}
	s.publish(Event{Kind: EventChanged, At: at})
	return nil
}

// ToggleCompletion flips the completed flag and returns the new value
func (s *Store) ToggleCompletion(ctx context.Context, at domain.Coordinate) (bool, error) {
	t, err := s.Topic(at)
	if err != nil {
		return false, err
	}
	completed := !t.Completed
	if err := s.SetCompletion(ctx, at, completed); err != nil {
		return false, err
	}
	return completed, nil
}

// SetNotes overwrites the notes of a topic
func (s *Store) SetNotes(ctx context.Context, at domain.Coordinate, notes string) error {
	err := s.mutate(ctx, func(c domain.Catalog) (domain.Catalog, error) {
		t, ok := c.TopicPtr(at)
		if !ok {
			return nil, outOfRange(at)
		}
		t.Notes = notes
		return c, nil
	})
	if err != nil {
		return err
	}
	s.publish(Event{Kind: EventChanged, At: at})
	return nil
}

// ReplaceAll swaps in a whole new catalog
func (s *Store) ReplaceAll(ctx context.Context, catalog domain.Catalog) error {
	if catalog == nil {
		return &ValidationError{Field: "catalog", Message: "catalog is required"}
	}
	next := catalog.Clone()
	err := s.mutate(ctx, func(domain.Catalog) (domain.Catalog, error) {
		return next, nil
	})
	if err != nil {
		return err
	}
	s.publish(Event{Kind: EventReplaced})
	return nil
}

// MarkStarted stamps StartedAt the first time a topic is timed
func (s *Store) MarkStarted(ctx context.Context, at domain.Coordinate, when time.Time) error {
	err := s.mutate(ctx, func(c domain.Catalog) (domain.Catalog, error) {
		t, ok := c.TopicPtr(at)
		if !ok {
			return nil, outOfRange(at)
		}
		if t.StartedAt == nil {
			t.StartedAt = &when
		}
		return c, nil
	})
	if err != nil {
		return err
	}
	s.publish(Event{Kind: EventChanged, At: at})
	return nil
}

// AddTimeSpent adds minutes to a topic's tracked time
func (s *Store) AddTimeSpent(ctx context.Context, at domain.Coordinate, minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("adding %d minutes: %w", minutes, ErrInvalidOperation)
	}
	err := s.mutate(ctx, func(c domain.Catalog) (domain.Catalog, error) {
		t, ok := c.TopicPtr(at)
		if !ok {
			return nil, outOfRange(at)
		}
		t.ActualTimeSpent += minutes
		return c, nil
	})
	if err != nil {
		return err
	}
	s.publish(Event{Kind: EventChanged, At: at})
	return nil
}

type nopNotifier struct{}

func (nopNotifier) Notify(ports.Notification) {}
