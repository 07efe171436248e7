package commands

import (
	"context"

	"roadmap/internal/application"
	"roadmap/internal/domain"
)

// AllSections selects every section in ListCommand
const AllSections = -1

// ListedSection is one section of a listing with the real coordinates of its topics
type ListedSection struct {
	Index      int
	Title      string
	Completed  int
	Total      int
	Percentage int
	Topics     []domain.TopicRef
}

// ListResult contains the listing together with stats over the whole catalog
type ListResult struct {
	Sections []ListedSection
	Matches  int
	Stats    application.Stats
}

// ListCommand lists the catalog, optionally narrowed by a title query or a section
type ListCommand struct {
	store   CatalogReader
	Query   string
	Section int
}

// NewListCommand creates a new ListCommand
func NewListCommand(store CatalogReader, query string, section int) *ListCommand {
	return &ListCommand{store: store, Query: query, Section: section}
}

// Execute runs the list command. With a query, sections without matching
// topics are left out, same as domain.Filter.
func (c *ListCommand) Execute(ctx context.Context) (*ListResult, error) {
	catalog := c.store.Snapshot()
	if c.Section != AllSections {
		if _, ok := catalog.Section(c.Section); !ok {
			return nil, &application.OutOfRangeError{Section: c.Section, Item: -1}
		}
	}

	result := &ListResult{Stats: application.ComputeStats(catalog)}
	for _, m := range domain.FilterSections(catalog, c.Query) {
		if c.Section != AllSections && m.Index != c.Section {
			continue
		}
		done, total := m.Section.Count()
		result.Matches += len(m.Topics)
		result.Sections = append(result.Sections, ListedSection{
			Index:      m.Index,
			Title:      m.Section.Title,
			Completed:  done,
			Total:      total,
			Percentage: domain.Percent(done, total),
			Topics:     m.Topics,
		})
	}

	return result, nil
}
