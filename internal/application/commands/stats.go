package commands

import (
	"context"
	"fmt"

	"roadmap/internal/application"
	"roadmap/internal/domain"
)

// StatsResult contains the aggregate progress with display strings
type StatsResult struct {
	application.Stats
	TimeSpent string
	Remaining string
	Message   string
}

// StatsCommand summarises progress over the whole catalog
type StatsCommand struct {
	store CatalogReader
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(store CatalogReader) *StatsCommand {
	return &StatsCommand{store: store}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context) (*StatsResult, error) {
	stats := application.ComputeStats(c.store.Snapshot())
	return &StatsResult{
		Stats:     stats,
		TimeSpent: domain.FormatDuration(stats.TimeSpent),
		Remaining: domain.FormatHours(stats.RemainingHours),
		Message: fmt.Sprintf("%d/%d topics completed (%d%%)",
			stats.Completed, stats.Total, stats.Percentage),
	}, nil
}
