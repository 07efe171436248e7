package views

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"roadmap/internal/adapters/memory"
	"roadmap/internal/application"
	"roadmap/internal/domain"
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

type idleScheduler struct{}

func (idleScheduler) Every(time.Duration, func()) func() { return func() {} }

func newServices(t *testing.T) (Services, *application.Tracker) {
	t.Helper()
	tr, err := application.NewTracker(context.Background(), application.TrackerConfig{
		KV:        memory.NewStore(),
		Defaults:  testCatalog,
		Scheduler: idleScheduler{},
	})
	if err != nil {
		t.Fatalf("NewTracker() error = %v", err)
	}
	t.Cleanup(tr.Close)
	if err := tr.Store.ReplaceAll(context.Background(), testCatalog()); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}
	return Services{Store: tr.Store, Timer: tr.Ledger, Notes: tr.Notes}, tr
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// exec runs cmd and returns its message, failing on a nil command
func exec(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	return cmd()
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
