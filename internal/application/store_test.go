package application

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"roadmap/internal/domain"
)

func TestStore_LoadFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name   string
		stored []byte
		fail   bool
	}{
		{name: "nothing stored"},
		{name: "corrupt document", stored: []byte(`[{"title":`)},
		{name: "wrong shape", stored: []byte(`{"sections":[]}`)},
		{name: "read failure", fail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newMemKV()
			if tt.stored != nil {
				kv.data[DefaultStorageKey] = tt.stored
			}
			kv.failGet = tt.fail

			defaults := func() domain.Catalog {
				c := testCatalog()
				c[0].Items[0].Completed = true
				return c
			}
			store := NewStore(NewPersistence(kv, "", nil), defaults, nil, nil)

			c, err := store.Load(context.Background())
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(c) != 3 {
				t.Fatalf("expected default catalog, got %d sections", len(c))
			}
			if done, _ := domain.CountTopics(c); done != 0 {
				t.Errorf("expected defaults to load incomplete, got %d completed", done)
			}
		})
	}
}

func TestStore_LoadPersisted(t *testing.T) {
	kv := newMemKV()
	kv.data["custom"] = []byte(`[{"title":"Mine","items":[{"title":"Only","completed":true}]}]`)
	store := NewStore(NewPersistence(kv, "custom", nil), testCatalog, nil, nil)

	c, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(c) != 1 || c[0].Title != "Mine" {
		t.Errorf("expected persisted catalog, got %+v", c)
	}
	if domain.OverallProgress(c) != 100 {
		t.Errorf("expected 100%% progress, got %d", domain.OverallProgress(c))
	}
}

func TestStore_LoadToleratesAbsentFields(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{"section without items", `[{"title":"Mine","items":[{"title":"A","completed":true}]},{"title":"Empty"}]`},
		{"null fields", `[{"title":"Mine","items":[{"title":"A","completed":true,"notes":null,"startedAt":null}]},{"title":"Empty","items":null}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := newMemKV()
			kv.data[DefaultStorageKey] = []byte(tt.stored)
			store := NewStore(NewPersistence(kv, "", nil), testCatalog, nil, nil)

			c, err := store.Load(ctx)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(c) != 2 || c[0].Title != "Mine" || c[1].Title != "Empty" {
				t.Fatalf("expected stored catalog, got %+v", c)
			}
			if len(c[1].Items) != 0 {
				t.Errorf("expected empty section, got %d items", len(c[1].Items))
			}
			if !c[0].Items[0].Completed || c[0].Items[0].Notes != "" {
				t.Errorf("unexpected topic: %+v", c[0].Items[0])
			}

			if err := store.SetNotes(ctx, domain.Coordinate{Section: 0, Item: 0}, "kept"); err != nil {
				t.Fatalf("SetNotes() error = %v", err)
			}
			saved, err := DecodeCatalog(kv.data[DefaultStorageKey])
			if err != nil {
				t.Fatalf("DecodeCatalog() error = %v", err)
			}
			if len(saved) != 2 || saved[0].Title != "Mine" || saved[0].Items[0].Notes != "kept" {
				t.Errorf("stored progress was not preserved: %+v", saved)
			}
		})
	}
}

func TestStore_AddTopic(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		section    int
		title      string
		wantErr    error
		wantErrTyp any
	}{
		{name: "appends", section: 0, title: "  Accessibility  "},
		{name: "empty section", section: 2, title: "Kubernetes"},
		{name: "blank title", section: 0, title: "   ", wantErrTyp: &ValidationError{}},
		{name: "section out of range", section: 9, title: "Nope", wantErr: ErrOutOfRange},
		{name: "negative section", section: -1, title: "Nope", wantErr: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			store := f.tracker.Store
			before := store.Snapshot()

			at, err := store.AddTopic(ctx, tt.section, tt.title, domain.DifficultyMedium, "2 hours")

			if tt.wantErr != nil || tt.wantErrTyp != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				if tt.wantErrTyp != nil {
					var valErr *ValidationError
					if !errors.As(err, &valErr) {
						t.Errorf("expected ValidationError, got %T", err)
					}
				}
				if !reflect.DeepEqual(before, store.Snapshot()) {
					t.Error("failed AddTopic mutated the catalog")
				}
				return
			}

			if err != nil {
				t.Fatalf("AddTopic() error = %v", err)
			}
			topic, err := store.Topic(at)
			if err != nil {
				t.Fatalf("Topic(%v) error = %v", at, err)
			}
			if topic.Completed || topic.Difficulty != domain.DifficultyMedium || topic.TimeEstimate != "2 hours" {
				t.Errorf("unexpected new topic: %+v", topic)
			}
			if at.Item != len(before[tt.section].Items) {
				t.Errorf("expected topic appended at %d, got %d", len(before[tt.section].Items), at.Item)
			}
		})
	}
}

func TestStore_AddTopicTrimsTitle(t *testing.T) {
	f := newFixture(t)
	at, err := f.tracker.Store.AddTopic(context.Background(), 1, "  Channels ", domain.DifficultyNone, "")
	if err != nil {
		t.Fatalf("AddTopic() error = %v", err)
	}
	topic, _ := f.tracker.Store.Topic(at)
	if topic.Title != "Channels" {
		t.Errorf("expected trimmed title, got %q", topic.Title)
	}
	if got := f.notifier.titles(); len(got) != 1 || got[0] != "Topic added" {
		t.Errorf("unexpected notifications: %v", got)
	}
}

func TestStore_DeleteTopic(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	store := f.tracker.Store

	if err := store.DeleteTopic(ctx, domain.Coordinate{Section: 0, Item: 1}); err != nil {
		t.Fatalf("DeleteTopic() error = %v", err)
	}

	c := store.Snapshot()
	var titles []string
	for _, topic := range c[0].Items {
		titles = append(titles, topic.Title)
	}
	if !reflect.DeepEqual(titles, []string{"HTML", "JavaScript"}) {
		t.Errorf("unexpected titles after delete: %v", titles)
	}
}

func TestStore_DeleteOutOfRange(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	store := f.tracker.Store
	before := store.Snapshot()
	putsBefore := f.kv.puts

	for _, at := range []domain.Coordinate{{Section: 0, Item: 3}, {Section: 2, Item: 0}, {Section: 5, Item: 0}, {Section: -1, Item: -1}} {
		err := store.DeleteTopic(ctx, at)
		var rangeErr *OutOfRangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("DeleteTopic(%v): expected OutOfRangeError, got %v", at, err)
		}
	}

	if !reflect.DeepEqual(before, store.Snapshot()) {
		t.Error("catalog changed after out-of-range deletes")
	}
	if f.kv.puts != putsBefore {
		t.Error("out-of-range deletes were persisted")
	}
}

func TestStore_ToggleCompletionTwice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	store := f.tracker.Store
	at := domain.Coordinate{Section: 0, Item: 0}

	started := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	if err := store.MarkStarted(ctx, at, started); err != nil {
		t.Fatalf("MarkStarted() error = %v", err)
	}

	done, err := store.ToggleCompletion(ctx, at)
	if err != nil || !done {
		t.Fatalf("first toggle = %v, %v", done, err)
	}
	topic, _ := store.Topic(at)
	if topic.CompletedAt == nil {
		t.Error("expected CompletedAt to be stamped")
	}

	done, err = store.ToggleCompletion(ctx, at)
	if err != nil || done {
		t.Fatalf("second toggle = %v, %v", done, err)
	}
	topic, _ = store.Topic(at)
	if topic.Completed || topic.CompletedAt != nil {
		t.Errorf("expected completion cleared, got %+v", topic)
	}
	if topic.StartedAt == nil || !topic.StartedAt.Equal(started) {
		t.Errorf("StartedAt changed: %v", topic.StartedAt)
	}

	if got := f.notifier.titles(); len(got) != 1 || got[0] != "Topic completed!" {
		t.Errorf("unexpected notifications: %v", got)
	}
}

func TestStore_ToggleCompletionOutOfRange(t *testing.T) {
	f := newFixture(t)
	_, err := f.tracker.Store.ToggleCompletion(context.Background(), domain.Coordinate{Section: 1, Item: 7})
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestStore_SetNotes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	at := domain.Coordinate{Section: 1, Item: 0}

	if err := f.tracker.Store.SetNotes(ctx, at, "read the tour"); err != nil {
		t.Fatalf("SetNotes() error = %v", err)
	}
	topic, _ := f.tracker.Store.Topic(at)
	if topic.Notes != "read the tour" {
		t.Errorf("notes = %q", topic.Notes)
	}

	if err := f.tracker.Store.SetNotes(ctx, domain.Coordinate{Section: 2, Item: 0}, "x"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestStore_PersistsMutations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	if _, err := f.tracker.Store.ToggleCompletion(ctx, domain.Coordinate{Section: 0, Item: 0}); err != nil {
		t.Fatal(err)
	}

	reloaded := NewStore(NewPersistence(f.kv, "", nil), testCatalog, nil, nil)
	c, err := reloaded.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !c[0].Items[0].Completed {
		t.Error("completion was not persisted")
	}
}

func TestStore_PersistenceFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.kv.failPut = true

	if _, err := f.tracker.Store.ToggleCompletion(ctx, domain.Coordinate{Section: 0, Item: 0}); err != nil {
		t.Fatalf("expected mutation to succeed despite write failure, got %v", err)
	}
	if topic, _ := f.tracker.Store.Topic(domain.Coordinate{Section: 0, Item: 0}); !topic.Completed {
		t.Error("in-memory catalog should stay authoritative")
	}
}

func TestStore_ReplaceAllFromImport(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	c, err := DecodeCatalog([]byte(`[{"title":"Imported","items":[{"title":"Done","timeEstimate":"1 hour","completed":true}]}]`))
	if err != nil {
		t.Fatalf("DecodeCatalog() error = %v", err)
	}
	if err := f.tracker.Store.ReplaceAll(ctx, c); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}

	if got := domain.OverallProgress(f.tracker.Store.Snapshot()); got != 100 {
		t.Errorf("expected overall progress 100, got %d", got)
	}
	if err := f.tracker.Store.ReplaceAll(ctx, nil); err == nil {
		t.Error("expected error replacing with nil catalog")
	}
}

func TestStore_SnapshotIsolation(t *testing.T) {
	f := newFixture(t)
	snap := f.tracker.Store.Snapshot()
	snap[0].Items[0].Title = "mutated"

	topic, _ := f.tracker.Store.Topic(domain.Coordinate{Section: 0, Item: 0})
	if topic.Title != "HTML" {
		t.Error("Snapshot() exposes internal state")
	}
}

func TestStore_AddTimeSpent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	at := domain.Coordinate{Section: 0, Item: 2}

	for i := 0; i < 3; i++ {
		if err := f.tracker.Store.AddTimeSpent(ctx, at, 1); err != nil {
			t.Fatal(err)
		}
	}
	topic, _ := f.tracker.Store.Topic(at)
	if topic.ActualTimeSpent != 3 {
		t.Errorf("ActualTimeSpent = %d, expected 3", topic.ActualTimeSpent)
	}

	if err := f.tracker.Store.AddTimeSpent(ctx, at, 0); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("expected ErrInvalidOperation for zero minutes, got %v", err)
	}
}

func TestEventShift(t *testing.T) {
	del := Event{Kind: EventDeleted, At: domain.Coordinate{Section: 1, Item: 2}}

	tests := []struct {
		name string
		at   domain.Coordinate
		want domain.Coordinate
		ok   bool
	}{
		{"earlier item", domain.Coordinate{Section: 1, Item: 1}, domain.Coordinate{Section: 1, Item: 1}, true},
		{"deleted item", domain.Coordinate{Section: 1, Item: 2}, domain.Coordinate{Section: 1, Item: 2}, false},
		{"later item", domain.Coordinate{Section: 1, Item: 5}, domain.Coordinate{Section: 1, Item: 4}, true},
		{"other section", domain.Coordinate{Section: 0, Item: 5}, domain.Coordinate{Section: 0, Item: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := del.Shift(tt.at)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Shift(%v) = %v, %v; expected %v, %v", tt.at, got, ok, tt.want, tt.ok)
			}
		})
	}
}
