package application

import (
	"fmt"

	"roadmap/internal/domain"
)

// Re-export domain types for use by adapters
type (
	Catalog        = domain.Catalog
	Section        = domain.Section
	Topic          = domain.Topic
	Coordinate     = domain.Coordinate
	TopicRef       = domain.TopicRef
	Difficulty     = domain.Difficulty
	DifficultyStat = domain.DifficultyStat
	SectionStat    = domain.SectionStat
)

// Stats is the aggregate progress summary shown on every surface
type Stats struct {
	Completed      int
	Total          int
	Percentage     int
	TimeSpent      int // minutes
	RemainingHours int
	Sections       []SectionStat
	Difficulties   []DifficultyStat
}

// ComputeStats aggregates a catalog into Stats
func ComputeStats(c domain.Catalog) Stats {
	done, total := domain.CountTopics(c)
	return Stats{
		Completed:      done,
		Total:          total,
		Percentage:     domain.Percent(done, total),
		TimeSpent:      domain.TotalTimeSpent(c),
		RemainingHours: domain.RemainingHours(c),
		Sections:       domain.SectionStats(c),
		Difficulties:   domain.DifficultyStats(c),
	}
}

// ParseCoordinate parses "section.item" as printed by domain.Coordinate.String
func ParseCoordinate(s string) (domain.Coordinate, error) {
	var at domain.Coordinate
	var rest string
	n, _ := fmt.Sscanf(s, "%d.%d%s", &at.Section, &at.Item, &rest)
	if n != 2 {
		return domain.Coordinate{}, &ValidationError{
			Field:   "coordinate",
			Message: fmt.Sprintf("expected section.item, got: %s", s),
		}
	}
	if err := ValidateIndex("sectionIndex", at.Section); err != nil {
		return domain.Coordinate{}, err
	}
	if err := ValidateIndex("itemIndex", at.Item); err != nil {
		return domain.Coordinate{}, err
	}
	return at, nil
}
