package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"roadmap/internal/domain"
	"roadmap/internal/ports"
)

type memKV struct {
	mu      sync.Mutex
	data    map[string][]byte
	failPut bool
	failGet bool
	puts    int
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return nil, errors.New("disk on fire")
	}
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *memKV) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPut {
		return errors.New("quota exceeded")
	}
	m.puts++
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memKV) Close() error { return nil }

// manualScheduler records schedules and fires them on demand
type manualScheduler struct {
	mu        sync.Mutex
	schedules []*manualSchedule
}

type manualSchedule struct {
	interval time.Duration
	fn       func()
	stopped  bool
}

func (s *manualScheduler) Every(interval time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	sch := &manualSchedule{interval: interval, fn: fn}
	s.schedules = append(s.schedules, sch)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		sch.stopped = true
	}
}

// fire runs every live schedule once
func (s *manualScheduler) fire() {
	s.mu.Lock()
	var fns []func()
	for _, sch := range s.schedules {
		if !sch.stopped {
			fns = append(fns, sch.fn)
		}
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// fireAll runs every schedule once, including stopped ones, to simulate late ticks
func (s *manualScheduler) fireAll() {
	s.mu.Lock()
	var fns []func()
	for _, sch := range s.schedules {
		fns = append(fns, sch.fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (s *manualScheduler) live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, sch := range s.schedules {
		if !sch.stopped {
			n++
		}
	}
	return n
}

type recordingNotifier struct {
	mu    sync.Mutex
	items []ports.Notification
}

func (r *recordingNotifier) Notify(n ports.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

func (r *recordingNotifier) titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.items))
	for i, n := range r.items {
		out[i] = n.Title
	}
	return out
}

func testCatalog() domain.Catalog {
	return domain.Catalog{
		{Title: "Foundations", Items: []domain.Topic{
			{Title: "HTML", Difficulty: domain.DifficultyEasy, TimeEstimate: "2 hours"},
			{Title: "CSS", Difficulty: domain.DifficultyEasy, TimeEstimate: "4 hours"},
			{Title: "JavaScript", Difficulty: domain.DifficultyMedium, TimeEstimate: "1 week"},
		}},
		{Title: "Backend", Items: []domain.Topic{
			{Title: "Go", Difficulty: domain.DifficultyHard, TimeEstimate: "2 weeks"},
		}},
		{Title: "Later"},
	}
}

type fixture struct {
	kv       *memKV
	sched    *manualScheduler
	notifier *recordingNotifier
	tracker  *Tracker
}

func newFixture(t testing.TB) *fixture {
	t.Helper()
	f := &fixture{
		kv:       newMemKV(),
		sched:    &manualScheduler{},
		notifier: &recordingNotifier{},
	}
	tr, err := NewTracker(context.Background(), TrackerConfig{
		KV:        f.kv,
		Defaults:  testCatalog,
		Scheduler: f.sched,
		Notifier:  f.notifier,
	})
	if err != nil {
		t.Fatalf("NewTracker() error = %v", err)
	}
	f.tracker = tr
	return f
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
