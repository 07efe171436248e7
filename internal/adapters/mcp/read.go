package mcp

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"roadmap/internal/application/commands"
	"roadmap/internal/domain"
)

// RegisterReadTools adds all read-only roadmap tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, svc Services) {
	s.AddTool(roadmapTool(), roadmapHandler(svc))
	s.AddTool(statsTool(), statsHandler(svc))
	s.AddTool(focusTool(), focusHandler(svc))
	s.AddTool(searchTool(), searchHandler(svc))
	s.AddTool(notesTool(), notesHandler(svc))
	s.AddTool(timerStatusTool(), timerStatusHandler(svc))
	s.AddTool(exportTool(), exportHandler(svc))
}

// --- roadmap ---

func roadmapTool() mcp.Tool {
	return mcp.NewTool("roadmap",
		mcp.WithDescription("List the learning roadmap: sections with their progress and topics with coordinates (section.item). Optionally filter topic titles by a query or show one section."),
		mcp.WithString("query",
			mcp.Description("Case-insensitive title filter. Sections without matches are omitted."),
		),
		mcp.WithNumber("section_index",
			mcp.Description("Only list this section. Omit to list all."),
		),
	)
}

func roadmapHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		section := req.GetInt("section_index", commands.AllSections)

		result, err := commands.NewListCommand(svc.Store, query, section).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(result.Sections) == 0 {
			return mcp.NewToolResultText("No topics match."), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Overall: %d/%d topics (%d%%)\n\n",
			result.Stats.Completed, result.Stats.Total, result.Stats.Percentage)
		for _, s := range result.Sections {
			fmt.Fprintf(&sb, "%d. %s  %d/%d (%d%%)\n", s.Index, s.Title, s.Completed, s.Total, s.Percentage)
			for _, ref := range s.Topics {
				fmt.Fprintf(&sb, "  %s\n", formatTopic(ref))
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- stats ---

func statsTool() mcp.Tool {
	return mcp.NewTool("stats",
		mcp.WithDescription("Progress statistics: overall completion, time spent, estimated remaining time, per-section and per-difficulty breakdowns."),
	)
}

func statsHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewStatsCommand(svc.Store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s\n", result.Message)
		fmt.Fprintf(&sb, "Time spent: %s\n", result.TimeSpent)
		fmt.Fprintf(&sb, "Estimated remaining: %s\n\n", result.Remaining)

		sb.WriteString("By difficulty:\n")
		for _, d := range result.Difficulties {
			fmt.Fprintf(&sb, "  %-7s %d/%d (%d%%)\n", d.Bucket, d.Completed, d.Total, d.Percentage)
		}
		sb.WriteString("\nBy section:\n")
		for _, s := range result.Sections {
			fmt.Fprintf(&sb, "  %d. %s  %d/%d (%d%%)\n", s.Index, s.Title, s.Completed, s.Total, s.Percentage)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- focus ---

func focusTool() mcp.Tool {
	return mcp.NewTool("focus",
		mcp.WithDescription("Suggest up to five topics to study next: incomplete topics that open a section or follow a completed one."),
	)
}

func focusHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewFocusCommand(svc.Store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatRefs(result.Topics, result.Message), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search topics by title. Returns matching topics with their coordinates."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
		mcp.WithBoolean("ranked",
			mcp.Description("Also accept fuzzy matches and sort by relevance"),
		),
	)
}

func searchHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if strings.TrimSpace(query) == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(svc.Store, query, req.GetBool("ranked", false)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		refs := make([]domain.TopicRef, len(results))
		for i, r := range results {
			refs[i] = r.TopicRef
		}
		return formatRefs(refs, "No results found."), nil
	}
}

// --- notes ---

func notesTool() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Read the notes of a topic."),
	}, withCoordinate()...)
	return mcp.NewTool("notes", opts...)
}

func notesHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		at, err := coordinate(req)
		if err != nil {
			return toolError(err)
		}
		result, err := commands.NewShowNotesCommand(svc.Store, at).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Notes == "" {
			return mcp.NewToolResultText(fmt.Sprintf("No notes for %s.", result.Title)), nil
		}
		return mcp.NewToolResultText(result.Notes), nil
	}
}

// --- timer_status ---

func timerStatusTool() mcp.Tool {
	return mcp.NewTool("timer_status",
		mcp.WithDescription("Show which topic the study timer is running on, if any."),
	)
}

func timerStatusHandler(svc Services) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rt, ok := svc.Timer.State()
		if !ok {
			return mcp.NewToolResultText("No timer running."), nil
		}
		topic, err := svc.Store.Topic(rt.At)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Timer running on %s %s since %s (total %s)",
			rt.At, topic.Title, rt.StartedAt.Format("15:04"), domain.FormatDuration(topic.ActualTimeSpent))), nil
	}
}

// --- export ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export",
		mcp.WithDescription("Export progress. Without a format returns the JSON progress document; format \"file\" writes it to the export directory and \"xlsx\" writes a spreadsheet report there."),
		mcp.WithString("format",
			mcp.Description("One of: inline (default), file, xlsx"),
		),
	)
}

func exportHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		switch req.GetString("format", "inline") {
		case "", "inline":
			var buf bytes.Buffer
			cmd := commands.NewExportCommand(svc.Store, nil, nil, nil, commands.FormatJSON)
			cmd.Writer = &buf
			if _, err := cmd.Execute(ctx); err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(buf.String()), nil

		case "file":
			return runExport(ctx, svc, commands.FormatJSON)

		case "xlsx":
			return runExport(ctx, svc, commands.FormatXLSX)

		default:
			return toolError(fmt.Errorf("unknown format: %s (expected inline, file or xlsx)", req.GetString("format", "")))
		}
	}
}

func runExport(ctx context.Context, svc Services, format commands.ExportFormat) (*mcp.CallToolResult, error) {
	cmd := commands.NewExportCommand(svc.Store, svc.Files, svc.Reports, svc.Notifier, format)
	result, err := cmd.Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}
