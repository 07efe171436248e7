package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"roadmap/internal/application"
	"roadmap/internal/domain"
)

// RegisterResources exposes the progress document and the statistics as JSON resources.
func RegisterResources(s *server.MCPServer, svc Services) {
	progress := mcp.NewResource(
		"roadmap://progress",
		"Progress document",
		mcp.WithResourceDescription("The full roadmap with completion, notes and tracked time, in export format."),
		mcp.WithMIMEType("application/json"),
	)
	s.AddResource(progress, func(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := application.EncodeExport(svc.Store.Snapshot())
		if err != nil {
			return nil, err
		}
		return textResource(req.Params.URI, data), nil
	})

	stats := mcp.NewResource(
		"roadmap://stats",
		"Progress statistics",
		mcp.WithResourceDescription("Overall, per-section and per-difficulty progress."),
		mcp.WithMIMEType("application/json"),
	)
	s.AddResource(stats, func(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return encodeResourceJSON(req.Params.URI, statsPayload(svc.Store.Snapshot()))
	})
}

func statsPayload(c domain.Catalog) map[string]any {
	stats := application.ComputeStats(c)
	return map[string]any{
		"completed":      stats.Completed,
		"total":          stats.Total,
		"percentage":     stats.Percentage,
		"timeSpent":      stats.TimeSpent,
		"remainingHours": stats.RemainingHours,
		"sections":       stats.Sections,
		"difficulties":   stats.Difficulties,
	}
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return textResource(uri, data), nil
}

func textResource(uri string, data []byte) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}
}
