package domain

// FocusLimit caps the number of suggested topics
const FocusLimit = 5

// FocusTopics suggests what to study next: incomplete topics that either open
// their section or follow a completed topic, in catalog order
func FocusTopics(c Catalog) []TopicRef {
	var refs []TopicRef
	for si, s := range c {
		for ii, t := range s.Items {
			if t.Completed {
				continue
			}
			if ii > 0 && !s.Items[ii-1].Completed {
				continue
			}
			refs = append(refs, TopicRef{
				Coordinate:   Coordinate{Section: si, Item: ii},
				SectionTitle: s.Title,
				Topic:        t,
			})
			if len(refs) == FocusLimit {
				return refs
			}
		}
	}
	return refs
}
