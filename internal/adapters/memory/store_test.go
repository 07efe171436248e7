package memory

import (
	"context"
	"testing"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	v, err := s.Get(ctx, "roadmapData")
	if err != nil || v != nil {
		t.Fatalf("Get() on missing key = %v, %v; expected nil, nil", v, err)
	}

	value := []byte(`[]`)
	if err := s.Put(ctx, "roadmapData", value); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	value[0] = 'X'

	v, err = s.Get(ctx, "roadmapData")
	if err != nil || string(v) != "[]" {
		t.Fatalf("Get() = %q, %v", v, err)
	}

	if err := s.Delete(ctx, "roadmapData"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := s.Delete(ctx, "roadmapData"); err != nil {
		t.Fatalf("Delete() of absent key error = %v", err)
	}
	if v, _ := s.Get(ctx, "roadmapData"); v != nil {
		t.Errorf("expected key to be gone, got %q", v)
	}
}
