package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"roadmap/internal/application"
	"roadmap/internal/domain"
	"roadmap/internal/ports"
)

func fixedNow() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ExportFormat
		wantErr bool
	}{
		{in: "", want: FormatJSON},
		{in: "json", want: FormatJSON},
		{in: " XLSX ", want: FormatXLSX},
		{in: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseExportFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseExportFormat(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseExportFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExportCommand_JSON(t *testing.T) {
	ctx := context.Background()
	tr, notifier := newTracker(t)
	dir := t.TempDir()

	cmd := NewExportCommand(tr.Store, dirFiles{dir: dir}, nil, notifier, FormatJSON)
	cmd.Now = fixedNow

	result, err := cmd.Execute(ctx)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if want := filepath.Join(dir, "roadmap-progress-2024-05-01.json"); result.Path != want {
		t.Errorf("Path = %q, want %q", result.Path, want)
	}
	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("[\n  {")) {
		t.Errorf("expected two-space indented document, got %q", data[:10])
	}
	decoded, err := application.DecodeCatalog(data)
	if err != nil {
		t.Fatalf("exported document does not decode: %v", err)
	}
	if countTopics(decoded) != 5 {
		t.Errorf("expected 5 topics in export, got %d", countTopics(decoded))
	}
	if n := notifier.last(); n.Title != "Export successful" {
		t.Errorf("expected notification %q, got %q", "Export successful", n.Title)
	}
}

func TestExportCommand_Writer(t *testing.T) {
	tr, _ := newTracker(t)
	var buf bytes.Buffer

	cmd := NewExportCommand(tr.Store, nil, nil, nil, FormatJSON)
	cmd.Writer = &buf

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Path != "" {
		t.Errorf("expected no path when writing to a stream, got %q", result.Path)
	}
	if !contains(buf.String(), `"title": "Foundations"`) {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestExportCommand_XLSX(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTracker(t)
	dir := t.TempDir()

	t.Run("default path in export dir", func(t *testing.T) {
		reports := &fakeReports{}
		cmd := NewExportCommand(tr.Store, dirFiles{dir: dir}, reports, nil, FormatXLSX)
		cmd.Now = fixedNow

		result, err := cmd.Execute(ctx)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		want := filepath.Join(dir, "roadmap-progress-2024-05-01.xlsx")
		if result.Path != want || reports.path != want {
			t.Errorf("expected report at %q, got %q / %q", want, result.Path, reports.path)
		}
		if countTopics(reports.catalog) != 5 {
			t.Error("report did not receive the catalog")
		}
	})

	t.Run("explicit path", func(t *testing.T) {
		reports := &fakeReports{}
		cmd := NewExportCommand(tr.Store, nil, reports, nil, FormatXLSX)
		cmd.Path = filepath.Join(dir, "out.xlsx")

		if _, err := cmd.Execute(ctx); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if reports.path != cmd.Path {
			t.Errorf("report written to %q", reports.path)
		}
	})

	t.Run("rejects stream", func(t *testing.T) {
		cmd := NewExportCommand(tr.Store, nil, &fakeReports{}, nil, FormatXLSX)
		cmd.Writer = &bytes.Buffer{}
		var verr *application.ValidationError
		if _, err := cmd.Execute(ctx); !errors.As(err, &verr) {
			t.Errorf("expected ValidationError, got %v", err)
		}
	})

	t.Run("writer failure", func(t *testing.T) {
		cmd := NewExportCommand(tr.Store, dirFiles{dir: dir}, &fakeReports{err: errBoom}, nil, FormatXLSX)
		if _, err := cmd.Execute(ctx); !errors.Is(err, errBoom) {
			t.Errorf("expected wrapped writer error, got %v", err)
		}
	})
}

func TestImportCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces catalog", func(t *testing.T) {
		tr, notifier := newTracker(t)
		cmd := NewImportCommand(tr.Store, nil, notifier, "")
		cmd.Data = []byte(`[{"title":"Only","items":[{"title":"One","timeEstimate":"1 hour","completed":true}]}]`)

		result, err := cmd.Execute(ctx)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if result.Sections != 1 || result.Topics != 1 {
			t.Errorf("unexpected result: %+v", result)
		}
		if got := domain.OverallProgress(tr.Store.Snapshot()); got != 100 {
			t.Errorf("OverallProgress() = %d, want 100", got)
		}
		if n := notifier.last(); n.Title != "Import successful" {
			t.Errorf("expected notification %q, got %q", "Import successful", n.Title)
		}
	})

	t.Run("reads from file", func(t *testing.T) {
		tr, _ := newTracker(t)
		path := filepath.Join(t.TempDir(), "progress.json")
		if err := os.WriteFile(path, []byte(`[{"title":"A","items":[]}]`), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := NewImportCommand(tr.Store, dirFiles{}, nil, path).Execute(ctx); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if c := tr.Store.Snapshot(); len(c) != 1 || c[0].Title != "A" {
			t.Errorf("unexpected catalog after import: %+v", c)
		}
	})

	failures := []struct {
		name string
		data string
	}{
		{name: "not json", data: `not json`},
		{name: "not an array", data: `{"title":"x"}`},
		{name: "section without items", data: `[{"title":"x"}]`},
		{name: "negative time", data: `[{"title":"x","items":[{"title":"t","actualTimeSpent":-5}]}]`},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			tr, notifier := newTracker(t)
			before := tr.Store.Snapshot()

			cmd := NewImportCommand(tr.Store, nil, notifier, "")
			cmd.Data = []byte(tt.data)
			_, err := cmd.Execute(ctx)

			var importErr *application.ImportError
			if !errors.As(err, &importErr) {
				t.Fatalf("expected ImportError, got %v", err)
			}
			if countTopics(tr.Store.Snapshot()) != countTopics(before) {
				t.Error("catalog changed after failed import")
			}
			n := notifier.last()
			if n.Title != "Import failed" || n.Level != ports.LevelError {
				t.Errorf("expected error notification, got %+v", n)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		tr, _ := newTracker(t)
		_, err := NewImportCommand(tr.Store, dirFiles{}, nil, filepath.Join(t.TempDir(), "nope.json")).Execute(ctx)
		if !errors.Is(err, application.ErrImport) {
			t.Errorf("expected ErrImport, got %v", err)
		}
	})

	t.Run("no path", func(t *testing.T) {
		tr, _ := newTracker(t)
		_, err := NewImportCommand(tr.Store, dirFiles{}, nil, "").Execute(ctx)
		if err == nil || !contains(err.Error(), "path is required") {
			t.Errorf("expected path validation error, got %v", err)
		}
	})
}

func TestResetCommand_Execute(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTracker(t)

	if err := tr.Store.SetNotes(ctx, domain.Coordinate{Section: 0, Item: 1}, "keep?"); err != nil {
		t.Fatal(err)
	}

	result, err := NewResetCommand(tr.Store, testCatalog).Execute(ctx)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Sections != 3 || result.Topics != 5 {
		t.Errorf("unexpected result: %+v", result)
	}

	c := tr.Store.Snapshot()
	if done, _ := domain.CountTopics(c); done != 0 {
		t.Errorf("expected no completed topics after reset, got %d", done)
	}
	if c[0].Items[1].Notes != "" {
		t.Error("expected notes to be discarded")
	}
}
