package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"roadmap/internal/adapters/notify"
	"roadmap/internal/bootstrap"
	"roadmap/internal/config"
	"roadmap/internal/logging"
)

var (
	configFile string
	v          *viper.Viper
	env        *bootstrap.Env
	notifier   *notify.Logger
	closeLog   func() error
)

var rootCmd = &cobra.Command{
	Use:   "roadmap-cli",
	Short: "CLI for tracking progress through a learning roadmap",
	Long: `roadmap-cli is a command-line interface for a learning roadmap tracker.

It lists sections and topics, marks topics complete, records study time,
keeps notes per topic and exports or imports progress documents. Progress is
shared with the roadmap TUI and the roadmap-mcp server through the same
storage.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for commands that never touch the catalog
		switch cmd.Name() {
		case "help", "completion", "version":
			return nil
		}

		cfg, err := config.Load(v, configFile)
		if err != nil {
			return err
		}

		logger, closeFn, err := logging.Setup(logging.Options{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
			File:   cfg.Log.File,
		}, os.Stderr)
		if err != nil {
			return err
		}
		closeLog = closeFn
		notifier = notify.NewLogger(logger)

		env, err = bootstrap.Open(context.Background(), cfg, bootstrap.Options{
			Notifier: notifier,
			Logger:   logger,
		})
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return shutdown()
	},
}

func shutdown() error {
	var err error
	if env != nil {
		err = env.Close()
		env = nil
	}
	if closeLog != nil {
		closeLog()
		closeLog = nil
	}
	return err
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		shutdown()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	v = config.New()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default searches .roadmap.yaml)")
	flags.String("backend", config.DefaultBackend, "storage backend: sqlite, diskv, redis or memory")
	flags.String("data", config.DefaultDataDir(), "storage directory")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")

	_ = v.BindPFlag(config.KeyStorageBackend, flags.Lookup("backend"))
	_ = v.BindPFlag(config.KeyStoragePath, flags.Lookup("data"))
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
}

// GetEnv returns the opened tracker environment
func GetEnv() *bootstrap.Env {
	return env
}
