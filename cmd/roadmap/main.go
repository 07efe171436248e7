package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"roadmap/internal/adapters/editor"
	"roadmap/internal/adapters/notify"
	"roadmap/internal/adapters/scheduler"
	"roadmap/internal/adapters/tui"
	"roadmap/internal/bootstrap"
	"roadmap/internal/config"
	"roadmap/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "config file (default searches .roadmap.yaml)")
	backendFlag := flag.String("backend", "", "storage backend: sqlite, diskv, redis or memory")
	dataFlag := flag.String("data", "", "storage directory")
	flag.Parse()

	if err := run(*configFlag, *backendFlag, *dataFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile, backend, data string) error {
	v := config.New()
	if backend != "" {
		v.Set(config.KeyStorageBackend, backend)
	}
	if data != "" {
		v.Set(config.KeyStoragePath, data)
	}
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI, so logs always go to a file
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(cfg.Storage.Path, "roadmap.log")
	}
	logger, closeLog, err := logging.Setup(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	}, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	dispatcher := &tui.Dispatcher{}
	queue := notify.NewQueue(notify.NewLogger(logger))

	env, err := bootstrap.Open(context.Background(), cfg, bootstrap.Options{
		Scheduler: scheduler.NewTicker(scheduler.WithDispatch(dispatcher.Dispatch)),
		Notifier:  queue,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer env.Close()

	app := tui.NewApp(tui.Deps{
		Tracker:       env.Tracker,
		Files:         env.Files,
		Reports:       env.Reports,
		Notifications: queue,
		Editor:        editor.NewOpener(),
		Logger:        logger,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	dispatcher.Attach(p)

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
