// Package mcp exposes the roadmap as Model Context Protocol tools.
package mcp

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"roadmap/internal/application"
	"roadmap/internal/application/commands"
	"roadmap/internal/domain"
	"roadmap/internal/ports"
)

// Services are what the tools operate on
type Services struct {
	Store    commands.CatalogWriter
	Timer    commands.Timer
	Files    ports.ProgressFiles
	Reports  ports.ReportWriter
	Notifier ports.Notifier
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func withCoordinate() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("section_index",
			mcp.Description("Zero-based index of the section (as shown by the roadmap tool)"),
			mcp.Required(),
		),
		mcp.WithNumber("item_index",
			mcp.Description("Zero-based index of the topic within its section"),
			mcp.Required(),
		),
	}
}

func coordinate(req mcp.CallToolRequest) (domain.Coordinate, error) {
	at := domain.Coordinate{
		Section: req.GetInt("section_index", -1),
		Item:    req.GetInt("item_index", -1),
	}
	if err := application.ValidateIndex("sectionIndex", at.Section); err != nil {
		return domain.Coordinate{}, err
	}
	if err := application.ValidateIndex("itemIndex", at.Item); err != nil {
		return domain.Coordinate{}, err
	}
	return at, nil
}

func formatTopic(ref domain.TopicRef) string {
	check := " "
	if ref.Topic.Completed {
		check = "x"
	}

	var details []string
	if ref.Topic.Difficulty != domain.DifficultyNone {
		details = append(details, string(ref.Topic.Difficulty))
	}
	if ref.Topic.TimeEstimate != "" {
		details = append(details, ref.Topic.TimeEstimate)
	}
	if ref.Topic.ActualTimeSpent > 0 {
		details = append(details, "spent "+domain.FormatDuration(ref.Topic.ActualTimeSpent))
	}
	if ref.Topic.Notes != "" {
		details = append(details, "has notes")
	}

	line := fmt.Sprintf("[%s] %s  %s", check, ref.Coordinate, ref.Topic.Title)
	if len(details) > 0 {
		line += "  (" + strings.Join(details, ", ") + ")"
	}
	return line
}

func formatRefs(refs []domain.TopicRef, empty string) *mcp.CallToolResult {
	if len(refs) == 0 {
		return mcp.NewToolResultText(empty)
	}
	var sb strings.Builder
	for _, r := range refs {
		fmt.Fprintf(&sb, "%s  [%s]\n", formatTopic(r), r.SectionTitle)
	}
	return mcp.NewToolResultText(sb.String())
}
