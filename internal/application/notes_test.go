package application

import (
	"context"
	"errors"
	"testing"

	"roadmap/internal/domain"
)

func TestNotesManager_OpenEditCommit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	notes := f.tracker.Notes
	at := domain.Coordinate{Section: 1, Item: 0}

	if err := f.tracker.Store.SetNotes(ctx, at, "first"); err != nil {
		t.Fatal(err)
	}

	s, err := notes.Open(at)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if s.Draft != "first" || s.Title != "Go" {
		t.Errorf("unexpected session: %+v", s)
	}

	if err := notes.UpdateDraft("first\nsecond"); err != nil {
		t.Fatal(err)
	}
	topic, _ := f.tracker.Store.Topic(at)
	if topic.Notes != "first" {
		t.Error("drafts must not be written before commit")
	}

	if err := notes.Commit(ctx); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	topic, _ = f.tracker.Store.Topic(at)
	if topic.Notes != "first\nsecond" {
		t.Errorf("notes = %q", topic.Notes)
	}
	if _, ok := notes.Session(); ok {
		t.Error("commit should close the session")
	}
}

func TestNotesManager_NoSession(t *testing.T) {
	f := newFixture(t)
	notes := f.tracker.Notes

	if err := notes.UpdateDraft("x"); !errors.Is(err, ErrNoSession) {
		t.Errorf("UpdateDraft: expected ErrNoSession, got %v", err)
	}
	if err := notes.Commit(context.Background()); !errors.Is(err, ErrNoSession) {
		t.Errorf("Commit: expected ErrNoSession, got %v", err)
	}
	if err := notes.Discard(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Discard: expected ErrNoSession, got %v", err)
	}
}

func TestNotesManager_OpenReplacesSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	notes := f.tracker.Notes

	if _, err := notes.Open(domain.Coordinate{Section: 0, Item: 0}); err != nil {
		t.Fatal(err)
	}
	if err := notes.UpdateDraft("unsaved"); err != nil {
		t.Fatal(err)
	}
	if _, err := notes.Open(domain.Coordinate{Section: 0, Item: 1}); err != nil {
		t.Fatal(err)
	}
	if err := notes.Commit(ctx); err != nil {
		t.Fatal(err)
	}

	first, _ := f.tracker.Store.Topic(domain.Coordinate{Section: 0, Item: 0})
	if first.Notes != "" {
		t.Errorf("replaced session was saved: %q", first.Notes)
	}
}

func TestNotesManager_Discard(t *testing.T) {
	f := newFixture(t)
	notes := f.tracker.Notes
	at := domain.Coordinate{Section: 0, Item: 0}

	if _, err := notes.Open(at); err != nil {
		t.Fatal(err)
	}
	_ = notes.UpdateDraft("throwaway")
	if err := notes.Discard(); err != nil {
		t.Fatal(err)
	}
	topic, _ := f.tracker.Store.Topic(at)
	if topic.Notes != "" {
		t.Error("discarded draft was saved")
	}
}

func TestNotesManager_OpenOutOfRange(t *testing.T) {
	f := newFixture(t)
	if _, err := f.tracker.Notes.Open(domain.Coordinate{Section: 2, Item: 0}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestNotesManager_FollowsDeletes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	notes := f.tracker.Notes

	if _, err := notes.Open(domain.Coordinate{Section: 0, Item: 2}); err != nil {
		t.Fatal(err)
	}
	_ = notes.UpdateDraft("closures")
	if err := f.tracker.Store.DeleteTopic(ctx, domain.Coordinate{Section: 0, Item: 0}); err != nil {
		t.Fatal(err)
	}
	if err := notes.Commit(ctx); err != nil {
		t.Fatal(err)
	}

	topic, _ := f.tracker.Store.Topic(domain.Coordinate{Section: 0, Item: 1})
	if topic.Title != "JavaScript" || topic.Notes != "closures" {
		t.Errorf("notes landed on the wrong topic: %+v", topic)
	}
}

func TestNotesManager_DeleteEditedTopicDiscards(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	at := domain.Coordinate{Section: 0, Item: 1}

	if _, err := f.tracker.Notes.Open(at); err != nil {
		t.Fatal(err)
	}
	if err := f.tracker.Store.DeleteTopic(ctx, at); err != nil {
		t.Fatal(err)
	}
	if _, ok := f.tracker.Notes.Session(); ok {
		t.Error("deleting the edited topic must discard the session")
	}
}
