package commands

import (
	"context"
	"fmt"
	"strings"

	"roadmap/internal/application"
	"roadmap/internal/domain"
)

// Values a new topic gets when the caller leaves them blank
const (
	DefaultDifficulty   = domain.DifficultyMedium
	DefaultTimeEstimate = "2 hours"
)

// NoDifficulty asks for a topic without a difficulty, counted under Other
const NoDifficulty = "none"

// AddTopicResult contains the result of adding a topic
type AddTopicResult struct {
	At      domain.Coordinate
	Topic   domain.Topic
	Message string
}

// AddTopicCommand appends a topic to a section
type AddTopicCommand struct {
	store        CatalogWriter
	SectionIndex int
	Title        string
	Difficulty   string
	TimeEstimate string
}

// NewAddTopicCommand creates a new AddTopicCommand
func NewAddTopicCommand(store CatalogWriter, sectionIndex int, title, difficulty, timeEstimate string) *AddTopicCommand {
	return &AddTopicCommand{
		store:        store,
		SectionIndex: sectionIndex,
		Title:        title,
		Difficulty:   difficulty,
		TimeEstimate: timeEstimate,
	}
}

// Validate checks the input without touching the catalog
func (c *AddTopicCommand) Validate() error {
	if err := application.ValidateRequired("title", c.Title); err != nil {
		return err
	}
	if err := application.ValidateIndex("sectionIndex", c.SectionIndex); err != nil {
		return err
	}
	if _, err := c.difficulty(); err != nil {
		return err
	}
	return nil
}

// difficulty resolves the requested difficulty. Blank means the default.
func (c *AddTopicCommand) difficulty() (domain.Difficulty, error) {
	value := strings.TrimSpace(c.Difficulty)
	switch {
	case value == "":
		return DefaultDifficulty, nil
	case strings.EqualFold(value, NoDifficulty):
		return domain.DifficultyNone, nil
	}
	return application.ValidateDifficulty(value)
}

// Execute runs the add topic command
func (c *AddTopicCommand) Execute(ctx context.Context) (*AddTopicResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	difficulty, _ := c.difficulty()
	estimate := strings.TrimSpace(c.TimeEstimate)
	if estimate == "" {
		estimate = DefaultTimeEstimate
	}

	at, err := c.store.AddTopic(ctx, c.SectionIndex, c.Title, difficulty, estimate)
	if err != nil {
		return nil, fmt.Errorf("failed to add topic: %w", err)
	}
	topic, err := c.store.Topic(at)
	if err != nil {
		return nil, err
	}

	section, _ := c.store.Snapshot().Section(at.Section)
	return &AddTopicResult{
		At:      at,
		Topic:   topic,
		Message: fmt.Sprintf("Added topic %s %q to %s", at, topic.Title, section.Title),
	}, nil
}
