package domain

import (
	"fmt"
	"time"
)

// Topic is a single unit of learning within a section
type Topic struct {
	Title           string     `json:"title"`
	Difficulty      Difficulty `json:"difficulty,omitempty"`
	TimeEstimate    string     `json:"timeEstimate"` // free text, e.g. "3 hours"
	Completed       bool       `json:"completed"`
	Notes           string     `json:"notes,omitempty"`
	ActualTimeSpent int        `json:"actualTimeSpent,omitempty"` // minutes
	StartedAt       *time.Time `json:"startedAt,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
}

// Section is a named, ordered group of topics
type Section struct {
	Title string  `json:"title"`
	Items []Topic `json:"items"`
}

// Catalog is the ordered list of sections; it is the whole persisted state
type Catalog []Section

// Coordinate identifies a topic by its section index and item index
type Coordinate struct {
	Section int
	Item    int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%d.%d", c.Section, c.Item)
}

// TopicRef is a topic together with its location in the catalog
type TopicRef struct {
	Coordinate
	SectionTitle string
	Topic        Topic
}

// Section returns the section at index i
func (c Catalog) Section(i int) (Section, bool) {
	if i < 0 || i >= len(c) {
		return Section{}, false
	}
	return c[i], true
}

// Topic returns the topic at the given coordinate
func (c Catalog) Topic(at Coordinate) (Topic, bool) {
	s, ok := c.Section(at.Section)
	if !ok || at.Item < 0 || at.Item >= len(s.Items) {
		return Topic{}, false
	}
	return s.Items[at.Item], true
}

// Contains reports whether the coordinate resolves to a topic
func (c Catalog) Contains(at Coordinate) bool {
	_, ok := c.Topic(at)
	return ok
}

// TopicPtr returns a pointer into the catalog for in-place mutation.
// Only use it on a catalog you own (e.g. a Clone).
func (c Catalog) TopicPtr(at Coordinate) (*Topic, bool) {
	if !c.Contains(at) {
		return nil, false
	}
	return &c[at.Section].Items[at.Item], true
}

// Clone returns a deep copy of the catalog
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	out := make(Catalog, len(c))
	for i, s := range c {
		out[i] = s.Clone()
	}
	return out
}

// Clone returns a deep copy of the section
func (s Section) Clone() Section {
	out := Section{Title: s.Title}
	if s.Items != nil {
		out.Items = make([]Topic, len(s.Items))
		for i, t := range s.Items {
			out.Items[i] = t.Clone()
		}
	}
	return out
}

// Clone returns a copy of the topic that shares no timestamps with the original
func (t Topic) Clone() Topic {
	out := t
	out.StartedAt = cloneTime(t.StartedAt)
	out.CompletedAt = cloneTime(t.CompletedAt)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// Refs flattens the catalog into topic references in display order
func (c Catalog) Refs() []TopicRef {
	var refs []TopicRef
	for si, s := range c {
		for ii, t := range s.Items {
			refs = append(refs, TopicRef{
				Coordinate:   Coordinate{Section: si, Item: ii},
				SectionTitle: s.Title,
				Topic:        t,
			})
		}
	}
	return refs
}

// ResetProgress returns a copy with every topic marked incomplete
func (c Catalog) ResetProgress() Catalog {
	out := c.Clone()
	for si := range out {
		for ii := range out[si].Items {
			out[si].Items[ii].Completed = false
		}
	}
	return out
}
