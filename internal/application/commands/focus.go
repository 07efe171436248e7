package commands

import (
	"context"

	"roadmap/internal/domain"
)

// FocusResult contains the suggested next topics
type FocusResult struct {
	Topics  []domain.TopicRef
	Message string
}

// FocusCommand suggests what to study next
type FocusCommand struct {
	store CatalogReader
}

// NewFocusCommand creates a new FocusCommand
func NewFocusCommand(store CatalogReader) *FocusCommand {
	return &FocusCommand{store: store}
}

// Execute runs the focus command
func (c *FocusCommand) Execute(ctx context.Context) (*FocusResult, error) {
	catalog := c.store.Snapshot()
	topics := domain.FocusTopics(catalog)
	if len(topics) == 0 {
		if _, total := domain.CountTopics(catalog); total == 0 {
			return &FocusResult{Message: "No topics yet."}, nil
		}
		return &FocusResult{Message: "Nothing left to focus on. Every topic is completed."}, nil
	}
	return &FocusResult{Topics: topics}, nil
}
