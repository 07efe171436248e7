package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"roadmap/internal/ports"
)

// MaxImportSize bounds the size of an imported progress document
const MaxImportSize = 16 << 20

// Files implements ports.ProgressFiles on the local filesystem
type Files struct {
	exportDir string
}

// Ensure Files implements ProgressFiles
var _ ports.ProgressFiles = (*Files)(nil)

// NewFiles creates a file adapter writing exports to exportDir
func NewFiles(exportDir string) *Files {
	if exportDir == "" {
		exportDir = "."
	}
	return &Files{exportDir: ExpandPath(exportDir)}
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExportDir returns the directory exports are written to
func (f *Files) ExportDir() string {
	return f.exportDir
}

// WriteExport writes data as name in the export directory.
// The file is written to a temporary name first and renamed into place.
func (f *Files) WriteExport(name string, data []byte) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("invalid export file name: %q", name)
	}
	if err := os.MkdirAll(f.exportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(f.exportDir, name)
	tmp, err := os.CreateTemp(f.exportDir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}

// ReadImport reads a progress document from path
func (f *Files) ReadImport(path string) ([]byte, error) {
	path = ExpandPath(path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("import path is a directory: %s", path)
	}
	if info.Size() > MaxImportSize {
		return nil, fmt.Errorf("import file too large: %d bytes", info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}
	return data, nil
}
