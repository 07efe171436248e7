package domain

// DifficultyStat is the completion breakdown for one difficulty bucket
type DifficultyStat struct {
	Bucket     Difficulty `json:"bucket"`
	Completed  int        `json:"completed"`
	Total      int        `json:"total"`
	Percentage int        `json:"percentage"`
}

// SectionStat is the completion breakdown for one section
type SectionStat struct {
	Index      int    `json:"index"`
	Title      string `json:"title"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

// Percent returns round(100*completed/total) rounding halves up, or 0 when total is 0
func Percent(completed, total int) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	if completed > total {
		completed = total
	}
	return (200*completed + total) / (2 * total)
}

// CountTopics returns the number of completed topics and the number of topics overall
func CountTopics(c Catalog) (completed, total int) {
	for _, s := range c {
		done, n := s.Count()
		completed += done
		total += n
	}
	return completed, total
}

// Count returns the number of completed topics and the number of topics in the section
func (s Section) Count() (completed, total int) {
	for _, t := range s.Items {
		if t.Completed {
			completed++
		}
	}
	return completed, len(s.Items)
}

// OverallProgress returns the completion percentage across all sections
func OverallProgress(c Catalog) int {
	return Percent(CountTopics(c))
}

// SectionProgress returns the completion percentage of one section
func SectionProgress(s Section) int {
	return Percent(s.Count())
}

// SectionStats returns the completion breakdown of every section in order
func SectionStats(c Catalog) []SectionStat {
	stats := make([]SectionStat, 0, len(c))
	for i, s := range c {
		done, n := s.Count()
		stats = append(stats, SectionStat{
			Index:      i,
			Title:      s.Title,
			Completed:  done,
			Total:      n,
			Percentage: Percent(done, n),
		})
	}
	return stats
}

// DifficultyStats returns the completion breakdown per bucket: Easy, Medium, Hard, Other
func DifficultyStats(c Catalog) []DifficultyStat {
	index := make(map[Difficulty]int, len(Buckets))
	stats := make([]DifficultyStat, len(Buckets))
	for i, b := range Buckets {
		stats[i].Bucket = b
		index[b] = i
	}

	for _, s := range c {
		for _, t := range s.Items {
			st := &stats[index[t.Difficulty.Bucket()]]
			st.Total++
			if t.Completed {
				st.Completed++
			}
		}
	}

	for i := range stats {
		stats[i].Percentage = Percent(stats[i].Completed, stats[i].Total)
	}
	return stats
}
