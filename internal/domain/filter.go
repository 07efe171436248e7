package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matches reports whether title contains query, ignoring case
func Matches(title, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(title), fold.String(q))
}

// SectionMatch is a section of a filtered view. Topics carry their
// coordinates in the unfiltered catalog.
type SectionMatch struct {
	Index   int
	Section Section
	Topics  []TopicRef
}

// FilterSections is the filtered view of c: sections with at least one
// topic whose title matches query, each with only its matching topics. A
// blank query keeps every section, empty ones included.
func FilterSections(c Catalog, query string) []SectionMatch {
	blank := strings.TrimSpace(query) == ""

	var out []SectionMatch
	for si, s := range c {
		m := SectionMatch{Index: si, Section: s}
		for ii, t := range s.Items {
			if !Matches(t.Title, query) {
				continue
			}
			m.Topics = append(m.Topics, TopicRef{
				Coordinate:   Coordinate{Section: si, Item: ii},
				SectionTitle: s.Title,
				Topic:        t,
			})
		}
		if blank || len(m.Topics) > 0 {
			out = append(out, m)
		}
	}
	return out
}

// Filter returns the sections that contain at least one topic whose title
// matches the query, keeping only the matching topics. A blank query returns
// a copy of the whole catalog.
func Filter(c Catalog, query string) Catalog {
	if strings.TrimSpace(query) == "" {
		return c.Clone()
	}

	out := Catalog{}
	for _, m := range FilterSections(c, query) {
		items := make([]Topic, 0, len(m.Topics))
		for _, ref := range m.Topics {
			items = append(items, ref.Topic.Clone())
		}
		out = append(out, Section{Title: m.Section.Title, Items: items})
	}
	return out
}

// Search returns every topic whose title matches the query together with
// its coordinate in c
func Search(c Catalog, query string) []TopicRef {
	var refs []TopicRef
	for _, ref := range c.Refs() {
		if Matches(ref.Topic.Title, query) {
			refs = append(refs, ref)
		}
	}
	return refs
}
