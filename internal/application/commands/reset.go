package commands

import (
	"context"
	"fmt"

	"roadmap/internal/domain"
)

// ResetResult contains the result of a reset
type ResetResult struct {
	Sections int
	Topics   int
	Message  string
}

// ResetCommand replaces the catalog with the default curriculum, discarding all progress
type ResetCommand struct {
	store    CatalogWriter
	defaults func() domain.Catalog
}

// NewResetCommand creates a new ResetCommand
func NewResetCommand(store CatalogWriter, defaults func() domain.Catalog) *ResetCommand {
	return &ResetCommand{store: store, defaults: defaults}
}

// Execute runs the reset
func (c *ResetCommand) Execute(ctx context.Context) (*ResetResult, error) {
	catalog := c.defaults().ResetProgress()
	if err := c.store.ReplaceAll(ctx, catalog); err != nil {
		return nil, fmt.Errorf("failed to reset catalog: %w", err)
	}

	_, total := domain.CountTopics(catalog)
	return &ResetResult{
		Sections: len(catalog),
		Topics:   total,
		Message:  fmt.Sprintf("Reset to the default roadmap: %d sections, %d topics", len(catalog), total),
	}, nil
}
