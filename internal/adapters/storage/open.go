// Package storage selects the key-value backend named by configuration.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"roadmap/internal/adapters/diskv"
	"roadmap/internal/adapters/memory"
	"roadmap/internal/adapters/redis"
	"roadmap/internal/adapters/sqlite"
	"roadmap/internal/config"
	"roadmap/internal/ports"
)

// Open returns the configured key-value store
func Open(ctx context.Context, cfg config.Storage, logger *slog.Logger) (ports.KeyValueStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Backend {
	case config.BackendSQLite, "":
		s, err := sqlite.Open(ctx, cfg.Path, cfg.Driver)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite storage: %w", err)
		}
		logger.Debug("storage opened", "backend", "sqlite", "driver", s.Driver(), "path", s.Path())
		return s, nil

	case config.BackendDiskv:
		s, err := diskv.New(filepath.Join(cfg.Path, "kv"))
		if err != nil {
			return nil, fmt.Errorf("opening diskv storage: %w", err)
		}
		logger.Debug("storage opened", "backend", "diskv", "path", s.BasePath())
		return s, nil

	case config.BackendRedis:
		s, err := redis.New(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("opening redis storage: %w", err)
		}
		logger.Debug("storage opened", "backend", "redis")
		return s, nil

	case config.BackendMemory:
		logger.Warn("using in-memory storage; progress will not survive a restart")
		return memory.NewStore(), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
