// Package config loads tracker settings from .roadmap.yaml, ROADMAP_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Configuration keys
const (
	KeyStorageBackend = "storage.backend"
	KeyStoragePath    = "storage.path"
	KeyStorageDriver  = "storage.driver"
	KeyStorageKey     = "storage.key"
	KeyRedisURL       = "redis.url"
	KeyExportDir      = "export.dir"
	KeyTimerInterval  = "timer.interval"
	KeyCurriculumPath = "curriculum.path"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyLogFile        = "log.file"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendDiskv  = "diskv"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

const (
	EnvPrefix      = "ROADMAP"
	ConfigName     = ".roadmap"
	EnvConfigPath  = "ROADMAP_CONFIG_PATH"
	DefaultRedis   = "redis://localhost:6379/0"
	DefaultKey     = "roadmapData"
	DefaultBackend = BackendSQLite
)

// Config is the resolved tracker configuration
type Config struct {
	Storage    Storage
	ExportDir  string
	Timer      time.Duration
	Curriculum string
	Log        Log
	// File is the config file that was read, if any
	File string
}

// Storage selects and configures the key-value backend
type Storage struct {
	Backend  string
	Path     string
	Driver   string
	Key      string
	RedisURL string
}

// Log configures the slog handler
type Log struct {
	Level  string
	Format string
	File   string
}

// DefaultDataDir returns $XDG_DATA_HOME/roadmap, falling back to ~/.local/share/roadmap
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := homedir.Dir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "roadmap")
}

// New returns a viper instance with defaults, environment binding and
// config search paths set up
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyStorageBackend, DefaultBackend)
	v.SetDefault(KeyStoragePath, DefaultDataDir())
	v.SetDefault(KeyStorageDriver, "sqlite")
	v.SetDefault(KeyStorageKey, DefaultKey)
	v.SetDefault(KeyRedisURL, DefaultRedis)
	v.SetDefault(KeyExportDir, ".")
	v.SetDefault(KeyTimerInterval, "1m")
	v.SetDefault(KeyCurriculumPath, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyLogFile, "")

	v.SetConfigName(ConfigName) // .yaml is implicit
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(EnvConfigPath); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	return v
}

// Load reads the config file (if one exists) and resolves the configuration.
// A non-empty file overrides the search paths.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(expand(file))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return Resolve(v)
}

// Resolve builds a Config from viper's current values
func Resolve(v *viper.Viper) (*Config, error) {
	interval, err := time.ParseDuration(v.GetString(KeyTimerInterval))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyTimerInterval, err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("invalid %s: must be positive", KeyTimerInterval)
	}

	cfg := &Config{
		Storage: Storage{
			Backend:  strings.ToLower(strings.TrimSpace(v.GetString(KeyStorageBackend))),
			Path:     expand(v.GetString(KeyStoragePath)),
			Driver:   v.GetString(KeyStorageDriver),
			Key:      v.GetString(KeyStorageKey),
			RedisURL: v.GetString(KeyRedisURL),
		},
		ExportDir:  expand(v.GetString(KeyExportDir)),
		Timer:      interval,
		Curriculum: expand(v.GetString(KeyCurriculumPath)),
		Log: Log{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
			File:   expand(v.GetString(KeyLogFile)),
		},
		File: v.ConfigFileUsed(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendDiskv, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q (expected sqlite, diskv, redis or memory)", c.Storage.Backend)
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		return fmt.Errorf("%s must not be empty", KeyStorageKey)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (expected text or json)", c.Log.Format)
	}
	return nil
}

func expand(path string) string {
	if path == "" {
		return path
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}
