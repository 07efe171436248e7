package commands

import (
	"context"
	"fmt"

	"roadmap/internal/domain"
)

// CompleteMode selects how CompleteCommand changes the completed flag
type CompleteMode int

const (
	CompleteToggle CompleteMode = iota
	CompleteMark
	CompleteUnmark
)

// CompleteResult contains the result of a completion change
type CompleteResult struct {
	At        domain.Coordinate
	Title     string
	Completed bool
	Message   string
}

// CompleteCommand marks, unmarks or toggles a topic
type CompleteCommand struct {
	store CatalogWriter
	At    domain.Coordinate
	Mode  CompleteMode
}

// NewCompleteCommand creates a new CompleteCommand
func NewCompleteCommand(store CatalogWriter, at domain.Coordinate, mode CompleteMode) *CompleteCommand {
	return &CompleteCommand{store: store, At: at, Mode: mode}
}

// Execute runs the complete command
func (c *CompleteCommand) Execute(ctx context.Context) (*CompleteResult, error) {
	topic, err := c.store.Topic(c.At)
	if err != nil {
		return nil, err
	}

	var completed bool
	switch c.Mode {
	case CompleteMark:
		completed = true
		err = c.store.SetCompletion(ctx, c.At, true)
	case CompleteUnmark:
		err = c.store.SetCompletion(ctx, c.At, false)
	default:
		completed, err = c.store.ToggleCompletion(ctx, c.At)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update topic: %w", err)
	}

	msg := fmt.Sprintf("Completed: %s", topic.Title)
	if !completed {
		msg = fmt.Sprintf("Marked incomplete: %s", topic.Title)
	}
	return &CompleteResult{
		At:        c.At,
		Title:     topic.Title,
		Completed: completed,
		Message:   msg,
	}, nil
}
