package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"roadmap/internal/application/commands"
)

// RegisterWriteTools adds all roadmap mutation tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, svc Services) {
	s.AddTool(addTopicTool(), addTopicHandler(svc))
	s.AddTool(deleteTopicTool(), deleteTopicHandler(svc))
	s.AddTool(toggleCompleteTool(), toggleCompleteHandler(svc))
	s.AddTool(toggleTimerTool(), toggleTimerHandler(svc))
	s.AddTool(setNotesTool(), setNotesHandler(svc))
	s.AddTool(importTool(), importHandler(svc))
}

// --- add_topic ---

func addTopicTool() mcp.Tool {
	return mcp.NewTool("add_topic",
		mcp.WithDescription("Append a new, incomplete topic to a section."),
		mcp.WithNumber("section_index",
			mcp.Description("Zero-based index of the section"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("Topic title"),
			mcp.Required(),
		),
		mcp.WithString("difficulty",
			mcp.Description("Easy, Medium, Hard, or none for no difficulty. Defaults to Medium."),
		),
		mcp.WithString("time_estimate",
			mcp.Description("Free-text estimate such as \"3 hours\", \"2 days\" or \"1 week\". Defaults to 2 hours."),
		),
	)
}

func addTopicHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddTopicCommand(svc.Store,
			req.GetInt("section_index", -1),
			req.GetString("title", ""),
			req.GetString("difficulty", ""),
			req.GetString("time_estimate", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_topic ---

func deleteTopicTool() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Delete a topic. Later topics in the same section move up by one."),
	}, withCoordinate()...)
	return mcp.NewTool("delete_topic", opts...)
}

func deleteTopicHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		at, err := coordinate(req)
		if err != nil {
			return toolError(err)
		}
		result, err := commands.NewDeleteTopicCommand(svc.Store, at).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- toggle_complete ---

func toggleCompleteTool() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Flip a topic between completed and incomplete, or force one state with mode."),
		mcp.WithString("mode",
			mcp.Description("toggle (default), mark or unmark"),
		),
	}, withCoordinate()...)
	return mcp.NewTool("toggle_complete", opts...)
}

func toggleCompleteHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		at, err := coordinate(req)
		if err != nil {
			return toolError(err)
		}

		var mode commands.CompleteMode
		switch m := req.GetString("mode", "toggle"); m {
		case "", "toggle":
			mode = commands.CompleteToggle
		case "mark":
			mode = commands.CompleteMark
		case "unmark":
			mode = commands.CompleteUnmark
		default:
			return toolError(fmt.Errorf("unknown mode: %s (expected toggle, mark or unmark)", m))
		}

		result, err := commands.NewCompleteCommand(svc.Store, at, mode).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- toggle_timer ---

func toggleTimerTool() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Start the study timer on a topic, or stop it if it already runs there. Starting stops any other timer. A running timer adds one minute per minute to the topic."),
	}, withCoordinate()...)
	return mcp.NewTool("toggle_timer", opts...)
}

func toggleTimerHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		at, err := coordinate(req)
		if err != nil {
			return toolError(err)
		}
		result, err := commands.NewToggleTimerCommand(svc.Timer, at).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- set_notes ---

func setNotesTool() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Replace the notes of a topic. An empty text clears them."),
		mcp.WithString("notes",
			mcp.Description("New notes text"),
			mcp.Required(),
		),
	}, withCoordinate()...)
	return mcp.NewTool("set_notes", opts...)
}

func setNotesHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		at, err := coordinate(req)
		if err != nil {
			return toolError(err)
		}
		result, err := commands.NewSetNotesCommand(svc.Store, at, req.GetString("notes", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- import ---

func importTool() mcp.Tool {
	return mcp.NewTool("import",
		mcp.WithDescription("Replace the whole roadmap with a progress document, given inline or as a file path. An invalid document leaves the roadmap unchanged."),
		mcp.WithString("document",
			mcp.Description("JSON progress document, as returned by export"),
		),
		mcp.WithString("path",
			mcp.Description("Path of a progress document file"),
		),
	)
}

func importHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewImportCommand(svc.Store, svc.Files, svc.Notifier, req.GetString("path", ""))
		if doc := req.GetString("document", ""); doc != "" {
			cmd.Data = []byte(doc)
		}
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
