package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"roadmap/internal/domain"
)

func TestEncodeCatalog_RoundTrip(t *testing.T) {
	started := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	c := testCatalog()
	c[0].Items[0].Completed = true
	c[0].Items[0].Notes = "semantic tags"
	c[0].Items[0].ActualTimeSpent = 42
	c[0].Items[0].StartedAt = &started

	data, err := EncodeCatalog(c)
	if err != nil {
		t.Fatalf("EncodeCatalog() error = %v", err)
	}
	if strings.Contains(string(data), "\n") {
		t.Error("storage encoding should be compact")
	}

	got, err := DecodeCatalog(data)
	if err != nil {
		t.Fatalf("DecodeCatalog() error = %v", err)
	}
	topic := got[0].Items[0]
	if !topic.Completed || topic.Notes != "semantic tags" || topic.ActualTimeSpent != 42 {
		t.Errorf("unexpected topic after round trip: %+v", topic)
	}
	if topic.StartedAt == nil || !topic.StartedAt.Equal(started) {
		t.Errorf("StartedAt = %v, expected %v", topic.StartedAt, started)
	}
	if len(got) != 3 || len(got[2].Items) != 0 {
		t.Errorf("unexpected sections: %+v", got)
	}
}

func TestEncodeExport_Indented(t *testing.T) {
	data, err := EncodeExport(domain.Catalog{{Title: "S", Items: []domain.Topic{{Title: "A"}}}})
	if err != nil {
		t.Fatalf("EncodeExport() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "[\n  {\n    \"title\": \"S\"") {
		t.Errorf("expected two-space indentation, got:\n%s", data)
	}
}

func TestEncodeCatalog_NilIsEmptyArray(t *testing.T) {
	data, err := EncodeCatalog(nil)
	if err != nil || string(data) != "[]" {
		t.Errorf("EncodeCatalog(nil) = %s, %v", data, err)
	}
}

func TestDecodeCatalog(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty array", `[]`, false},
		{"minimal", `[{"title":"S","items":[{"title":"A","timeEstimate":"1 hour","completed":false}]}]`, false},
		{"absent optional fields", `[{"title":"S","items":[{"title":"A"}]}]`, false},
		{"unknown fields allowed", `[{"title":"S","color":"red","items":[{"title":"A","priority":3}]}]`, false},
		{"not json", `{{{`, true},
		{"object instead of array", `{"title":"S"}`, true},
		{"missing items", `[{"title":"S"}]`, false},
		{"null optional fields", `[{"title":"S","items":[{"title":"A","notes":null,"difficulty":null,"actualTimeSpent":null,"startedAt":null,"completed":null}]}]`, false},
		{"null items", `[{"title":"S","items":null}]`, false},
		{"completed not bool", `[{"title":"S","items":[{"title":"A","completed":"yes"}]}]`, true},
		{"negative time spent", `[{"title":"S","items":[{"title":"A","actualTimeSpent":-5}]}]`, true},
		{"title not string", `[{"title":1,"items":[]}]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCatalog([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Errorf("DecodeCatalog() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPersistence_Load(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	p := NewPersistence(kv, "", nil)

	if p.Key() != DefaultStorageKey {
		t.Errorf("expected default key %q, got %q", DefaultStorageKey, p.Key())
	}

	c, err := p.Load(ctx)
	if err != nil || c != nil {
		t.Fatalf("Load() on empty store = %v, %v; expected nil, nil", c, err)
	}

	if err := p.Save(ctx, testCatalog()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	c, err = p.Load(ctx)
	if err != nil || len(c) != 3 {
		t.Fatalf("Load() = %d sections, %v", len(c), err)
	}

	kv.data[DefaultStorageKey] = []byte(`not json`)
	_, err = p.Load(ctx)
	var perr *PersistenceError
	if !errors.As(err, &perr) || perr.Op != "decode" {
		t.Errorf("expected decode PersistenceError, got %v", err)
	}

	if err := p.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, ok := kv.data[DefaultStorageKey]; ok {
		t.Error("Clear() left the key in place")
	}
}

func TestPersistence_SaveFailure(t *testing.T) {
	kv := newMemKV()
	kv.failPut = true
	p := NewPersistence(kv, "custom", nil)

	err := p.Save(context.Background(), testCatalog())
	if !errors.Is(err, ErrPersistence) {
		t.Errorf("expected ErrPersistence, got %v", err)
	}
}
