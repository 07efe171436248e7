package commands

import (
	"context"
	"fmt"

	"roadmap/internal/application"
	"roadmap/internal/domain"
	"roadmap/internal/ports"
)

// ImportResult contains the result of an import
type ImportResult struct {
	Sections int
	Topics   int
	Message  string
}

// ImportCommand replaces the catalog with a progress document. A document
// that cannot be read or parsed leaves the catalog untouched.
type ImportCommand struct {
	store    CatalogWriter
	files    ports.ProgressFiles
	notifier ports.Notifier

	Path string
	// Data is used instead of reading Path when set
	Data []byte
}

// NewImportCommand creates a new ImportCommand reading from path
func NewImportCommand(store CatalogWriter, files ports.ProgressFiles, notifier ports.Notifier, path string) *ImportCommand {
	return &ImportCommand{store: store, files: files, notifier: notifier, Path: path}
}

// Validate checks there is something to import
func (c *ImportCommand) Validate() error {
	if c.Data != nil {
		return nil
	}
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return err
	}
	if c.files == nil {
		return &application.ValidationError{Field: "path", Message: "file access is not available"}
	}
	return nil
}

// Execute runs the import
func (c *ImportCommand) Execute(ctx context.Context) (*ImportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	result, err := c.run(ctx)
	if err != nil {
		c.notify(ports.Notification{Title: "Import failed", Description: err.Error(), Level: ports.LevelError})
		return nil, err
	}
	c.notify(ports.Notification{Title: "Import successful", Description: result.Message})
	return result, nil
}

func (c *ImportCommand) run(ctx context.Context) (*ImportResult, error) {
	data := c.Data
	if data == nil {
		var err error
		data, err = c.files.ReadImport(c.Path)
		if err != nil {
			return nil, &application.ImportError{Reason: "unreadable file", Err: err}
		}
	}

	catalog, err := application.DecodeCatalog(data)
	if err != nil {
		return nil, &application.ImportError{Reason: "invalid document", Err: err}
	}

	if err := c.store.ReplaceAll(ctx, catalog); err != nil {
		return nil, fmt.Errorf("failed to replace catalog: %w", err)
	}

	_, total := domain.CountTopics(catalog)
	return &ImportResult{
		Sections: len(catalog),
		Topics:   total,
		Message:  fmt.Sprintf("Imported %d sections with %d topics", len(catalog), total),
	}, nil
}

func (c *ImportCommand) notify(n ports.Notification) {
	if c.notifier != nil {
		c.notifier.Notify(n)
	}
}
