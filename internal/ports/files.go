package ports

import "roadmap/internal/domain"

// ProgressFiles reads and writes progress documents outside the key-value store
type ProgressFiles interface {
	// WriteExport writes data as name in the export directory and returns the full path
	WriteExport(name string, data []byte) (string, error)

	// ReadImport reads a progress document from path
	ReadImport(path string) ([]byte, error)

	// ExportDir is the directory WriteExport writes to
	ExportDir() string
}

// ReportWriter renders a catalog as a spreadsheet report
type ReportWriter interface {
	// WriteReport writes the report to path
	WriteReport(path string, c domain.Catalog) error
}
