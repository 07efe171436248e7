package commands

import (
	"context"
	"sort"
	"strings"

	"roadmap/internal/domain"
)

// SearchResult wraps domain.TopicRef with a relevance score
type SearchResult struct {
	domain.TopicRef
	Score int
}

// SearchCommand finds topics by title. Plain searches return substring
// matches in catalog order; ranked searches also accept fuzzy matches and
// sort by relevance.
type SearchCommand struct {
	store  CatalogReader
	Query  string
	Ranked bool
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(store CatalogReader, query string, ranked bool) *SearchCommand {
	return &SearchCommand{store: store, Query: query, Ranked: ranked}
}

// Execute runs the search command
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	query := strings.TrimSpace(c.Query)
	if query == "" {
		return nil, nil
	}

	catalog := c.store.Snapshot()
	if !c.Ranked {
		refs := domain.Search(catalog, query)
		results := make([]SearchResult, len(refs))
		for i, r := range refs {
			results[i] = SearchResult{TopicRef: r}
		}
		return results, nil
	}
	return FuzzySort(catalog.Refs(), query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	t := []rune(strings.ToLower(target))
	q := []rune(strings.ToLower(query))

	if len(q) == 0 {
		return 0
	}

	// Substring matches outrank any fuzzy match
	if strings.Contains(string(t), string(q)) {
		score := 100
		if strings.HasPrefix(string(t), string(q)) {
			score += 50
		}
		return score
	}

	// Fuzzy match: every query rune must appear in order
	score := 0
	qi := 0
	prev := -1

	for i := 0; i < len(t) && qi < len(q); i++ {
		if t[i] != q[qi] {
			continue
		}
		if prev == i-1 {
			score += 10 // consecutive
		}
		if i == 0 {
			score += 15 // start of title
		}
		if i > 0 && (t[i-1] == ' ' || t[i-1] == '.' || t[i-1] == '-' || t[i-1] == '/') {
			score += 10 // word start
		}
		score++
		prev = i
		qi++
	}

	if qi == len(q) {
		return score
	}
	return 0
}

// FuzzySort scores refs against query, drops non-matches and sorts by
// score. Ties keep catalog order.
func FuzzySort(refs []domain.TopicRef, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(refs))

	for _, r := range refs {
		best := max(FuzzyScore(r.Topic.Title, query), FuzzyScore(r.SectionTitle, query)/2)
		if best > 0 {
			scored = append(scored, SearchResult{TopicRef: r, Score: best})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
