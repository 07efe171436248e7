package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "roadmap/internal/adapters/mcp"
	"roadmap/internal/adapters/notify"
	"roadmap/internal/bootstrap"
	"roadmap/internal/config"
	"roadmap/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "config file (default searches .roadmap.yaml)")
	backendFlag := flag.String("backend", "", "storage backend: sqlite, diskv, redis or memory")
	dataFlag := flag.String("data", "", "storage directory")
	flag.Parse()

	v := config.New()
	if *backendFlag != "" {
		v.Set(config.KeyStorageBackend, *backendFlag)
	}
	if *dataFlag != "" {
		v.Set(config.KeyStoragePath, *dataFlag)
	}
	cfg, err := config.Load(v, *configFlag)
	if err != nil {
		log.Fatalf("roadmap-mcp: %v", err)
	}

	// stdout carries the protocol
	logger, closeLog, err := logging.Setup(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	}, os.Stderr)
	if err != nil {
		log.Fatalf("roadmap-mcp: %v", err)
	}
	defer closeLog()

	notifier := notify.NewLogger(logger)
	env, err := bootstrap.Open(context.Background(), cfg, bootstrap.Options{
		Notifier: notifier,
		Logger:   logger,
	})
	if err != nil {
		log.Fatalf("roadmap-mcp: %v", err)
	}
	defer env.Close()

	mcpServer := server.NewMCPServer(
		"roadmap-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	svc := mcpadapter.Services{
		Store:    env.Tracker.Store,
		Timer:    env.Tracker.Ledger,
		Files:    env.Files,
		Reports:  env.Reports,
		Notifier: notifier,
	}
	mcpadapter.RegisterReadTools(mcpServer, svc)
	mcpadapter.RegisterWriteTools(mcpServer, svc)
	mcpadapter.RegisterResources(mcpServer, svc)

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("server stopped", "error", err)
	}
}
