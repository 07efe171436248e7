package commands

import (
	"context"
	"fmt"

	"roadmap/internal/domain"
)

// DeleteTopicResult contains the result of deleting a topic
type DeleteTopicResult struct {
	Topic   domain.Topic
	Message string
}

// DeleteTopicCommand removes a topic from its section
type DeleteTopicCommand struct {
	store CatalogWriter
	At    domain.Coordinate
}

// NewDeleteTopicCommand creates a new DeleteTopicCommand
func NewDeleteTopicCommand(store CatalogWriter, at domain.Coordinate) *DeleteTopicCommand {
	return &DeleteTopicCommand{store: store, At: at}
}

// Execute runs the delete command
func (c *DeleteTopicCommand) Execute(ctx context.Context) (*DeleteTopicResult, error) {
	topic, err := c.store.Topic(c.At)
	if err != nil {
		return nil, err
	}
	if err := c.store.DeleteTopic(ctx, c.At); err != nil {
		return nil, fmt.Errorf("failed to delete topic: %w", err)
	}
	return &DeleteTopicResult{
		Topic:   topic,
		Message: fmt.Sprintf("Deleted topic: %s", topic.Title),
	}, nil
}
