package domain

import "testing"

func TestPercent(t *testing.T) {
	tests := []struct {
		completed, total int
		want             int
	}{
		{0, 0, 0},
		{0, 10, 0},
		{10, 10, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},  // 12.5 rounds up
		{1, 200, 1}, // 0.5 rounds up
		{1, 201, 0},
		{5, 3, 100},
	}

	for _, tt := range tests {
		if got := Percent(tt.completed, tt.total); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, expected %d", tt.completed, tt.total, got, tt.want)
		}
	}
}

func TestOverallProgress(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		want    int
	}{
		{"nil catalog", nil, 0},
		{"only empty sections", Catalog{{Title: "A"}, {Title: "B"}}, 0},
		{"sample", sampleCatalog(), 20},
		{"single completed topic", Catalog{{Title: "S", Items: []Topic{{Title: "X", Completed: true}}}}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverallProgress(tt.catalog)
			if got != tt.want {
				t.Errorf("OverallProgress() = %d, expected %d", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("OverallProgress() = %d, out of range", got)
			}
		})
	}
}

func TestSectionProgress(t *testing.T) {
	c := sampleCatalog()

	if got := SectionProgress(c[0]); got != 33 {
		t.Errorf("SectionProgress(Foundations) = %d, expected 33", got)
	}
	if got := SectionProgress(c[1]); got != 0 {
		t.Errorf("SectionProgress(Empty) = %d, expected 0", got)
	}
}

func TestSectionStats(t *testing.T) {
	stats := SectionStats(sampleCatalog())
	if len(stats) != 3 {
		t.Fatalf("expected 3 section stats, got %d", len(stats))
	}

	first := stats[0]
	if first.Title != "Foundations" || first.Completed != 1 || first.Total != 3 || first.Percentage != 33 {
		t.Errorf("unexpected first stat: %+v", first)
	}
	if stats[1].Total != 0 || stats[1].Percentage != 0 {
		t.Errorf("unexpected empty section stat: %+v", stats[1])
	}
}

func TestDifficultyStats(t *testing.T) {
	c := sampleCatalog()
	c[2].Items = append(c[2].Items, Topic{Title: "Legacy", Difficulty: "Expert", Completed: true})

	stats := DifficultyStats(c)

	want := []DifficultyStat{
		{Bucket: DifficultyEasy, Completed: 1, Total: 1, Percentage: 100},
		{Bucket: DifficultyMedium, Completed: 0, Total: 2, Percentage: 0},
		{Bucket: DifficultyHard, Completed: 0, Total: 1, Percentage: 0},
		{Bucket: DifficultyOther, Completed: 1, Total: 2, Percentage: 50},
	}

	if len(stats) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(stats))
	}
	for i := range want {
		if stats[i] != want[i] {
			t.Errorf("bucket %d = %+v, expected %+v", i, stats[i], want[i])
		}
	}
}

func TestDifficultyStats_EmptyCatalog(t *testing.T) {
	stats := DifficultyStats(nil)
	if len(stats) != len(Buckets) {
		t.Fatalf("expected %d buckets, got %d", len(Buckets), len(stats))
	}
	for _, s := range stats {
		if s.Total != 0 || s.Percentage != 0 {
			t.Errorf("expected empty bucket, got %+v", s)
		}
	}
}
