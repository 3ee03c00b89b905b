package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/roadmap/internal/timeline"
	"gopkg.in/yaml.v3"
)

// Config is the process configuration: defaults, then an optional YAML
// file named by ROADMAP_CONFIG, then ROADMAP_* environment variables.
type Config struct {
	DB   DBConfig   `yaml:"db"`
	View ViewConfig `yaml:"view"`
	Log  LogConfig  `yaml:"log"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type ViewConfig struct {
	Zoom   string `yaml:"zoom"`
	CellPx int    `yaml:"cell_px"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	UseCases bool   `yaml:"use_cases"`
}

const (
	defaultZoom   = "week"
	defaultCellPx = 10
	defaultLevel  = "info"
)

// Default returns the built-in configuration.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DB:   DBConfig{Path: filepath.Join(home, ".roadmap", "roadmap.db")},
		View: ViewConfig{Zoom: defaultZoom, CellPx: defaultCellPx},
		Log:  LogConfig{Level: defaultLevel},
	}, nil
}

// Load builds the configuration. Only an unreadable or malformed config
// file is an error; invalid individual values fall back to defaults.
func Load() (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	if path := os.Getenv("ROADMAP_CONFIG"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv("ROADMAP_DB"); v != "" {
		cfg.DB.Path = v
	}
	if v := os.Getenv("ROADMAP_ZOOM"); v != "" {
		cfg.View.Zoom = v
	}
	if v := os.Getenv("ROADMAP_TERMINAL_CELL_PX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.View.CellPx = n
		}
	}
	if v := os.Getenv("ROADMAP_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ROADMAP_LOG_USE_CASES"); v != "" {
		cfg.Log.UseCases, _ = strconv.ParseBool(v)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if _, err := timeline.ParseZoom(c.View.Zoom); err != nil {
		c.View.Zoom = defaultZoom
	}
	if c.View.CellPx <= 0 {
		c.View.CellPx = defaultCellPx
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		c.Log.Level = defaultLevel
	}
}

// ZoomLevel returns the configured initial zoom.
func (c Config) ZoomLevel() timeline.ZoomLevel {
	level, _ := timeline.ParseZoom(c.View.Zoom)
	return level
}

// SlogLevel returns the configured log level.
func (c Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.Log.Level)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
