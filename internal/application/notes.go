package application

import (
	"context"
	"sync"

	"roadmap/internal/domain"
	"roadmap/internal/ports"
)

// NoteSession is an open notes edit for one topic
type NoteSession struct {
	At    domain.Coordinate
	Title string
	Draft string
}

// NotesManager holds at most one notes edit session. Drafts are only
// written to the store on Commit.
type NotesManager struct {
	store    *Store
	notifier ports.Notifier

	mu      sync.Mutex
	session *NoteSession
}

// NewNotesManager creates a notes manager and subscribes it to store events
func NewNotesManager(store *Store, notifier ports.Notifier) *NotesManager {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	m := &NotesManager{store: store, notifier: notifier}
	store.Subscribe(m.handleEvent)
	return m
}

// Open starts a session seeded with the topic's current notes.
// An already open session is replaced without saving.
func (m *NotesManager) Open(at domain.Coordinate) (NoteSession, error) {
	t, err := m.store.Topic(at)
	if err != nil {
		return NoteSession{}, err
	}

	s := &NoteSession{At: at, Title: t.Title, Draft: t.Notes}
	m.mu.Lock()
	m.session = s
	m.mu.Unlock()
	return *s, nil
}

// Session returns the open session, if any
func (m *NotesManager) Session() (NoteSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return NoteSession{}, false
	}
	return *m.session, true
}

// UpdateDraft replaces the draft text of the open session
func (m *NotesManager) UpdateDraft(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return ErrNoSession
	}
	m.session.Draft = text
	return nil
}

// Commit writes the draft to the topic and closes the session
func (m *NotesManager) Commit(ctx context.Context) error {
	m.mu.Lock()
	s := m.session
	if s == nil {
		m.mu.Unlock()
		return ErrNoSession
	}
	at, draft, title := s.At, s.Draft, s.Title
	m.mu.Unlock()

	err := m.store.SetNotes(ctx, at, draft)

	m.mu.Lock()
	if m.session == s {
		m.session = nil
	}
	m.mu.Unlock()

	if err != nil {
		return err
	}
	m.notifier.Notify(ports.Notification{Title: "Notes saved", Description: title})
	return nil
}

// Discard closes the session without saving
func (m *NotesManager) Discard() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return ErrNoSession
	}
	m.session = nil
	return nil
}

func (m *NotesManager) handleEvent(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return
	}

	switch ev.Kind {
	case EventDeleted:
		at, ok := ev.Shift(m.session.At)
		if !ok {
			m.session = nil
			return
		}
		m.session.At = at
	case EventReplaced:
		m.session = nil
	}
}
