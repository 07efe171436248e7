package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"roadmap/internal/adapters/memory"
	"roadmap/internal/application"
	"roadmap/internal/domain"
	"roadmap/internal/ports"
)

func testCatalog() domain.Catalog {
	return domain.Catalog{
		{Title: "Foundations", Items: []domain.Topic{
			{Title: "HTML", Difficulty: domain.DifficultyEasy, TimeEstimate: "2 hours", Completed: true},
			{Title: "CSS", Difficulty: domain.DifficultyEasy, TimeEstimate: "4 hours"},
			{Title: "JavaScript", Difficulty: domain.DifficultyMedium, TimeEstimate: "1 week"},
		}},
		{Title: "Backend", Items: []domain.Topic{
			{Title: "Node.js", Difficulty: domain.DifficultyMedium, TimeEstimate: "1 week"},
			{Title: "Databases", Difficulty: domain.DifficultyHard, TimeEstimate: "2 weeks"},
		}},
		{Title: "Later"},
	}
}

// idleScheduler never fires
type idleScheduler struct{}

func (idleScheduler) Every(time.Duration, func()) func() { return func() {} }

type recordingNotifier struct {
	mu    sync.Mutex
	items []ports.Notification
}

func (r *recordingNotifier) Notify(n ports.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

func (r *recordingNotifier) last() ports.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return ports.Notification{}
	}
	return r.items[len(r.items)-1]
}

// dirFiles is a ports.ProgressFiles over a temp directory
type dirFiles struct {
	dir string
}

func (f dirFiles) WriteExport(name string, data []byte) (string, error) {
	path := filepath.Join(f.dir, name)
	return path, os.WriteFile(path, data, 0644)
}

func (f dirFiles) ReadImport(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (f dirFiles) ExportDir() string { return f.dir }

type fakeReports struct {
	path    string
	catalog domain.Catalog
	err     error
}

func (r *fakeReports) WriteReport(path string, c domain.Catalog) error {
	if r.err != nil {
		return r.err
	}
	r.path = path
	r.catalog = c
	return nil
}

var errBoom = errors.New("boom")

func newTracker(t *testing.T) (*application.Tracker, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	tr, err := application.NewTracker(context.Background(), application.TrackerConfig{
		KV:        memory.NewStore(),
		Defaults:  testCatalog,
		Scheduler: idleScheduler{},
		Notifier:  notifier,
	})
	if err != nil {
		t.Fatalf("NewTracker() error = %v", err)
	}
	t.Cleanup(tr.Close)
	// defaults load with progress reset; restore HTML as completed
	if err := tr.Store.ReplaceAll(context.Background(), testCatalog()); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}
	return tr, notifier
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
