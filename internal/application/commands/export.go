package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"roadmap/internal/application"
	"roadmap/internal/domain"
	"roadmap/internal/ports"
)

// ExportFormat selects the export output
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatXLSX ExportFormat = "xlsx"
)

// ParseExportFormat parses a format name; empty means json
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", &application.ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unknown format %q (expected json or xlsx)", s),
		}
	}
}

// ExportResult contains the result of an export
type ExportResult struct {
	Path    string // empty when written to Writer
	Data    []byte // json document; nil for xlsx
	Message string
}

// ExportCommand writes the catalog as a progress document or a spreadsheet report
type ExportCommand struct {
	store    CatalogReader
	files    ports.ProgressFiles
	reports  ports.ReportWriter
	notifier ports.Notifier

	Format ExportFormat
	// Writer receives the json document instead of the export directory
	Writer io.Writer
	// Path overrides the xlsx report location
	Path string
	Now  func() time.Time
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(store CatalogReader, files ports.ProgressFiles, reports ports.ReportWriter, notifier ports.Notifier, format ExportFormat) *ExportCommand {
	return &ExportCommand{
		store:    store,
		files:    files,
		reports:  reports,
		notifier: notifier,
		Format:   format,
		Now:      time.Now,
	}
}

// Validate checks the export can be carried out
func (c *ExportCommand) Validate() error {
	switch c.Format {
	case FormatJSON:
		if c.Writer == nil && c.files == nil {
			return &application.ValidationError{Field: "path", Message: "no export destination"}
		}
	case FormatXLSX:
		if c.reports == nil {
			return &application.ValidationError{Field: "format", Message: "xlsx reports are not available"}
		}
		if c.Writer != nil {
			return &application.ValidationError{Field: "format", Message: "xlsx cannot be written to a stream"}
		}
		if c.Path == "" && c.files == nil {
			return &application.ValidationError{Field: "path", Message: "no export destination"}
		}
	default:
		_, err := ParseExportFormat(string(c.Format))
		return err
	}
	return nil
}

// Execute runs the export
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	catalog := c.store.Snapshot()
	var result *ExportResult
	var err error
	if c.Format == FormatXLSX {
		result, err = c.exportReport(catalog)
	} else {
		result, err = c.exportJSON(catalog)
	}
	if err != nil {
		return nil, err
	}

	if c.notifier != nil && result.Path != "" {
		c.notifier.Notify(ports.Notification{Title: "Export successful", Description: result.Path})
	}
	return result, nil
}

func (c *ExportCommand) exportJSON(catalog domain.Catalog) (*ExportResult, error) {
	data, err := application.EncodeExport(catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}

	if c.Writer != nil {
		if _, err := c.Writer.Write(append(data, '\n')); err != nil {
			return nil, fmt.Errorf("failed to write export: %w", err)
		}
		return &ExportResult{Data: data}, nil
	}

	path, err := c.files.WriteExport(domain.ExportFileName(c.Now()), data)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		Path:    path,
		Data:    data,
		Message: fmt.Sprintf("Exported progress to %s", path),
	}, nil
}

func (c *ExportCommand) exportReport(catalog domain.Catalog) (*ExportResult, error) {
	path := c.Path
	if path == "" {
		path = filepath.Join(c.files.ExportDir(), domain.ReportFileName(c.Now()))
	}
	if err := c.reports.WriteReport(path, catalog); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	return &ExportResult{
		Path:    path,
		Message: fmt.Sprintf("Wrote report to %s", path),
	}, nil
}
