package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"roadmap/internal/application"
	"roadmap/internal/domain"
)

var (
	bold  = color.New(color.Bold)
	faint = color.New(color.Faint)
	done  = color.New(color.FgGreen)
	warn  = color.New(color.FgYellow)
)

// parseCoordinate reads a "section.item" argument
func parseCoordinate(arg string) (domain.Coordinate, error) {
	return application.ParseCoordinate(arg)
}

// parseIndex reads a non-negative integer argument
func parseIndex(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, &application.ValidationError{Field: name, Message: fmt.Sprintf("expected a number, got: %s", arg)}
	}
	if err := application.ValidateIndex(name, n); err != nil {
		return 0, err
	}
	return n, nil
}

func difficulty(d domain.Difficulty) string {
	label := string(d)
	if d == domain.DifficultyNone {
		label = string(domain.DifficultyOther)
	}
	switch d.Bucket() {
	case domain.DifficultyEasy:
		return color.GreenString(label)
	case domain.DifficultyMedium:
		return color.YellowString(label)
	case domain.DifficultyHard:
		return color.RedString(label)
	default:
		return color.BlueString(label)
	}
}

func checkbox(t domain.Topic) string {
	if t.Completed {
		return done.Sprint("[x]")
	}
	return "[ ]"
}

func spent(minutes int) string {
	if minutes == 0 {
		return faint.Sprint("-")
	}
	return domain.FormatDuration(minutes)
}

func newTable() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	return tbl
}

// topicTable renders topics with their coordinates. withSection adds the section title.
func topicTable(refs []domain.TopicRef, withSection bool) *uitable.Table {
	tbl := newTable()
	header := []any{bold.Sprint("#"), "", bold.Sprint("Topic"), bold.Sprint("Difficulty"), bold.Sprint("Estimate"), bold.Sprint("Spent")}
	if withSection {
		header = append(header, bold.Sprint("Section"))
	}
	tbl.AddRow(header...)

	for _, ref := range refs {
		t := ref.Topic
		notes := ""
		if t.Notes != "" {
			notes = faint.Sprint(" ✎")
		}
		row := []any{ref.Coordinate.String(), checkbox(t), t.Title + notes, difficulty(t.Difficulty), t.TimeEstimate, spent(t.ActualTimeSpent)}
		if withSection {
			row = append(row, faint.Sprint(ref.SectionTitle))
		}
		tbl.AddRow(row...)
	}
	return tbl
}

func progressLine(completed, total, pct int) string {
	c := faint
	if total > 0 && completed == total {
		c = done
	}
	return c.Sprintf("%d/%d (%d%%)", completed, total, pct)
}
