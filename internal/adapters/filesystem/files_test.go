package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFiles_WriteExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	files := NewFiles(dir)

	path, err := files.WriteExport("roadmap-progress-2024-03-07.json", []byte("[]"))
	if err != nil {
		t.Fatalf("WriteExport failed: %v", err)
	}
	if path != filepath.Join(dir, "roadmap-progress-2024-03-07.json") {
		t.Errorf("unexpected path: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil || string(data) != "[]" {
		t.Errorf("export content = %q, %v", data, err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected only the export file, found %d entries", len(entries))
	}
}

func TestFiles_WriteExportOverwrites(t *testing.T) {
	files := NewFiles(t.TempDir())

	if _, err := files.WriteExport("a.json", []byte("first")); err != nil {
		t.Fatal(err)
	}
	path, err := files.WriteExport("a.json", []byte("second"))
	if err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "second" {
		t.Errorf("expected overwrite, got %q", data)
	}
}

func TestFiles_WriteExportRejectsPaths(t *testing.T) {
	files := NewFiles(t.TempDir())

	for _, name := range []string{"", "../escape.json", "sub/dir.json"} {
		if _, err := files.WriteExport(name, []byte("x")); err == nil {
			t.Errorf("WriteExport(%q) should fail", name)
		}
	}
}

func TestFiles_ReadImport(t *testing.T) {
	dir := t.TempDir()
	files := NewFiles(dir)

	path := filepath.Join(dir, "backup.json")
	if err := os.WriteFile(path, []byte(`[{"title":"S","items":[]}]`), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := files.ReadImport(path)
	if err != nil {
		t.Fatalf("ReadImport failed: %v", err)
	}
	if !strings.Contains(string(data), `"title":"S"`) {
		t.Errorf("unexpected content: %s", data)
	}

	if _, err := files.ReadImport(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := files.ReadImport(dir); err == nil {
		t.Error("expected error for directory")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandPath("~/exports"); got != filepath.Join(home, "exports") {
		t.Errorf("ExpandPath(~/exports) = %s", got)
	}
	if got := ExpandPath("/tmp/x"); got != "/tmp/x" {
		t.Errorf("ExpandPath(/tmp/x) = %s", got)
	}
}
