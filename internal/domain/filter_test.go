package domain

import (
	"reflect"
	"testing"
)

func TestFilter(t *testing.T) {
	c := sampleCatalog()

	tests := []struct {
		name     string
		query    string
		sections []string
		topics   int
	}{
		{"substring across sections", "s", []string{"Foundations", "Backend"}, 4},
		{"case-insensitive", "html", []string{"Foundations"}, 1},
		{"upper-case query", "NODE", []string{"Backend"}, 1},
		{"no match", "rust", nil, 0},
		{"surrounding whitespace", "  css ", []string{"Foundations"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(c, tt.query)

			var titles []string
			topics := 0
			for _, s := range got {
				titles = append(titles, s.Title)
				topics += len(s.Items)
			}
			if !reflect.DeepEqual(titles, tt.sections) {
				t.Errorf("Filter(%q) sections = %v, expected %v", tt.query, titles, tt.sections)
			}
			if topics != tt.topics {
				t.Errorf("Filter(%q) topics = %d, expected %d", tt.query, topics, tt.topics)
			}
		})
	}
}

func TestFilter_BlankQueryReturnsCatalog(t *testing.T) {
	c := sampleCatalog()

	for _, q := range []string{"", "   "} {
		got := Filter(c, q)
		if !reflect.DeepEqual(got, c) {
			t.Errorf("Filter(%q) changed the catalog structure", q)
		}
	}
}

func TestFilter_Idempotent(t *testing.T) {
	c := sampleCatalog()

	for _, q := range []string{"", "s", "java", "zzz"} {
		once := Filter(c, q)
		twice := Filter(once, q)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Filter(%q) is not idempotent: %v vs %v", q, once, twice)
		}
	}
}

func TestFilter_UnicodeFolding(t *testing.T) {
	c := Catalog{{Title: "Sprachen", Items: []Topic{{Title: "Straße"}, {Title: "Übung"}}}}

	if got := Search(c, "STRASSE"); len(got) != 1 {
		t.Errorf("expected fold match for STRASSE, got %d", len(got))
	}
	if got := Search(c, "üBUNG"); len(got) != 1 {
		t.Errorf("expected fold match for üBUNG, got %d", len(got))
	}
}

func TestSearch_KeepsOriginalCoordinates(t *testing.T) {
	got := Search(sampleCatalog(), "databases")
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].Coordinate != (Coordinate{Section: 2, Item: 1}) {
		t.Errorf("expected coordinate 2.1, got %v", got[0].Coordinate)
	}
	if got[0].SectionTitle != "Backend" {
		t.Errorf("expected section Backend, got %q", got[0].SectionTitle)
	}
}

func TestFilterSections(t *testing.T) {
	c := sampleCatalog()

	tests := []struct {
		name    string
		query   string
		indexes []int
		coords  []Coordinate
	}{
		{"blank keeps empty sections", "", []int{0, 1, 2}, []Coordinate{{0, 0}, {0, 1}, {0, 2}, {2, 0}, {2, 1}}},
		{"matches keep catalog coordinates", "s", []int{0, 2}, []Coordinate{{0, 1}, {0, 2}, {2, 0}, {2, 1}}},
		{"no match", "rust", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var indexes []int
			var coords []Coordinate
			for _, m := range FilterSections(c, tt.query) {
				indexes = append(indexes, m.Index)
				if m.Section.Title != c[m.Index].Title {
					t.Errorf("section %d title = %q", m.Index, m.Section.Title)
				}
				for _, ref := range m.Topics {
					coords = append(coords, ref.Coordinate)
				}
			}
			if !reflect.DeepEqual(indexes, tt.indexes) {
				t.Errorf("FilterSections(%q) sections = %v, expected %v", tt.query, indexes, tt.indexes)
			}
			if !reflect.DeepEqual(coords, tt.coords) {
				t.Errorf("FilterSections(%q) coordinates = %v, expected %v", tt.query, coords, tt.coords)
			}
		})
	}
}

func TestFilterSections_AgreesWithFilter(t *testing.T) {
	c := sampleCatalog()

	for _, q := range []string{"s", "java", "NODE", "zzz"} {
		matches := FilterSections(c, q)
		filtered := Filter(c, q)
		if len(matches) != len(filtered) {
			t.Fatalf("query %q: %d sections vs %d", q, len(matches), len(filtered))
		}
		for i, m := range matches {
			if m.Section.Title != filtered[i].Title || len(m.Topics) != len(filtered[i].Items) {
				t.Errorf("query %q: section %d differs", q, i)
			}
		}
	}
}
