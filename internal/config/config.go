package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Layout names.
const (
	LayoutAlpha = "alpha"
	LayoutBeta  = "beta"
)

// Config captures everything the dashboard reads at startup.
type Config struct {
	APIBind          string
	EventsPath       string
	Layout           string
	FPS              int
	ReconnectInitial time.Duration
	ReconnectMax     time.Duration
	LogFile          string
	LogLevel         string
}

const (
	defaultConfigPath  = "~/.config/signet-rx/config.toml"
	defaultLogFile     = "~/.local/state/signet-rx/signet-rx.log"
	defaultAPIBind     = "127.0.0.1:8088"
	defaultEventsPath  = "/events"
	defaultLayout      = LayoutBeta
	defaultFPS         = 30
	maxFPS             = 120
	defaultLogLevel    = "info"
	defaultInitialWait = 500 * time.Millisecond
	defaultMaxWait     = 10 * time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBind:          defaultAPIBind,
		EventsPath:       defaultEventsPath,
		Layout:           defaultLayout,
		FPS:              defaultFPS,
		ReconnectInitial: defaultInitialWait,
		ReconnectMax:     defaultMaxWait,
		LogFile:          mustExpand(defaultLogFile),
		LogLevel:         defaultLogLevel,
	}
}

// Load locates and parses the config file, falling back to defaults when it
// is missing or a field is blank.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBind            string `toml:"api_bind"`
		EventsPath         string `toml:"events_path"`
		Layout             string `toml:"layout"`
		FPS                int    `toml:"fps"`
		ReconnectInitialMS int    `toml:"reconnect_initial_ms"`
		ReconnectMaxMS     int    `toml:"reconnect_max_ms"`
		LogFile            string `toml:"log_file"`
		LogLevel           string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBind); v != "" {
		cfg.APIBind = v
	}
	if v := strings.TrimSpace(raw.EventsPath); v != "" {
		cfg.EventsPath = v
	}
	if v := strings.TrimSpace(raw.Layout); v != "" {
		layout, err := ParseLayout(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		cfg.Layout = layout
	}
	if raw.FPS != 0 {
		cfg.FPS = ClampFPS(raw.FPS)
	}
	if raw.ReconnectInitialMS > 0 {
		cfg.ReconnectInitial = time.Duration(raw.ReconnectInitialMS) * time.Millisecond
	}
	if raw.ReconnectMaxMS > 0 {
		cfg.ReconnectMax = time.Duration(raw.ReconnectMaxMS) * time.Millisecond
	}
	if cfg.ReconnectMax < cfg.ReconnectInitial {
		cfg.ReconnectMax = cfg.ReconnectInitial
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	return cfg, nil
}

// FrameInterval is the render tick period for the configured frame rate.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(ClampFPS(c.FPS))
}

// ParseLayout validates a layout name.
func ParseLayout(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LayoutAlpha:
		return LayoutAlpha, nil
	case LayoutBeta:
		return LayoutBeta, nil
	default:
		return "", fmt.Errorf("unknown layout %q (want %s or %s)", name, LayoutAlpha, LayoutBeta)
	}
}

// ClampFPS keeps a frame rate within 1..120, mapping non-positive values to
// the default.
func ClampFPS(fps int) int {
	switch {
	case fps <= 0:
		return defaultFPS
	case fps > maxFPS:
		return maxFPS
	default:
		return fps
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath expands a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
