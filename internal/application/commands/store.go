// Package commands holds the use cases shared by the CLI, the TUI and the MCP server.
package commands

import (
	"context"

	"roadmap/internal/application"
	"roadmap/internal/domain"
)

// CatalogReader reads the current catalog
type CatalogReader interface {
	Snapshot() domain.Catalog
	Topic(at domain.Coordinate) (domain.Topic, error)
}

// CatalogWriter is the subset of application.Store the commands mutate through
type CatalogWriter interface {
	CatalogReader
	AddTopic(ctx context.Context, sectionIndex int, title string, difficulty domain.Difficulty, timeEstimate string) (domain.Coordinate, error)
	DeleteTopic(ctx context.Context, at domain.Coordinate) error
	SetCompletion(ctx context.Context, at domain.Coordinate, completed bool) error
	ToggleCompletion(ctx context.Context, at domain.Coordinate) (bool, error)
	SetNotes(ctx context.Context, at domain.Coordinate, notes string) error
	ReplaceAll(ctx context.Context, catalog domain.Catalog) error
}

// Timer starts and stops the study timer
type Timer interface {
	Toggle(ctx context.Context, at domain.Coordinate) (application.TimerEvent, error)
	State() (application.RunningTimer, bool)
}

var (
	_ CatalogWriter = (*application.Store)(nil)
	_ Timer         = (*application.TimeLedger)(nil)
)
