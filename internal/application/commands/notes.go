package commands

import (
	"context"
	"fmt"

	"roadmap/internal/domain"
)

// NotesResult contains a topic's notes
type NotesResult struct {
	At      domain.Coordinate
	Title   string
	Notes   string
	Message string
}

// ShowNotesCommand reads the notes of a topic
type ShowNotesCommand struct {
	store CatalogReader
	At    domain.Coordinate
}

// NewShowNotesCommand creates a new ShowNotesCommand
func NewShowNotesCommand(store CatalogReader, at domain.Coordinate) *ShowNotesCommand {
	return &ShowNotesCommand{store: store, At: at}
}

// Execute runs the show notes command
func (c *ShowNotesCommand) Execute(ctx context.Context) (*NotesResult, error) {
	topic, err := c.store.Topic(c.At)
	if err != nil {
		return nil, err
	}
	return &NotesResult{At: c.At, Title: topic.Title, Notes: topic.Notes}, nil
}

// SetNotesCommand overwrites the notes of a topic
type SetNotesCommand struct {
	store CatalogWriter
	At    domain.Coordinate
	Notes string
}

// NewSetNotesCommand creates a new SetNotesCommand
func NewSetNotesCommand(store CatalogWriter, at domain.Coordinate, notes string) *SetNotesCommand {
	return &SetNotesCommand{store: store, At: at, Notes: notes}
}

// Execute runs the set notes command
func (c *SetNotesCommand) Execute(ctx context.Context) (*NotesResult, error) {
	topic, err := c.store.Topic(c.At)
	if err != nil {
		return nil, err
	}
	if err := c.store.SetNotes(ctx, c.At, c.Notes); err != nil {
		return nil, fmt.Errorf("failed to save notes: %w", err)
	}

	msg := fmt.Sprintf("Saved notes for %s", topic.Title)
	if c.Notes == "" {
		msg = fmt.Sprintf("Cleared notes for %s", topic.Title)
	}
	return &NotesResult{At: c.At, Title: topic.Title, Notes: c.Notes, Message: msg}, nil
}
