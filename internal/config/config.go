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

// Config holds runtime settings for the landing page.
type Config struct {
	ContentPath string        // empty uses the embedded site
	LogFile     string        // expanded, absolute
	LogLevel    string        `validate:"oneof=trace debug info warn error disabled"`
	StartPanel  string        `validate:"omitempty,oneof=none services about gallery"`
	DragSettle  time.Duration `validate:"gte=0s,lte=2s"`
	FrameRate   int           `validate:"min=1,max=60"`
	Globe       Globe
}

// Globe configures the decorative globe.
type Globe struct {
	RotationPerFrame float64 `validate:"gte=0,lte=1"`
	MaxSize          int     `validate:"min=8,max=80"`
}

const (
	defaultConfigPath = "~/.config/cristosalva/config.toml"
	defaultLogFile    = "~/.local/state/cristosalva/cristosalva.log"
	defaultLogLevel   = "info"
	defaultDragSettle = 100 * time.Millisecond
	defaultFrameRate  = 30
	defaultRotation   = 0.02
	defaultGlobeSize  = 24
)

// Environment overrides, applied after the file.
const (
	EnvContent    = "CRISTOSALVA_CONTENT"
	EnvLogFile    = "CRISTOSALVA_LOG_FILE"
	EnvLogLevel   = "CRISTOSALVA_LOG_LEVEL"
	EnvStartPanel = "CRISTOSALVA_START_PANEL"
)

type rawConfig struct {
	Content      string   `toml:"content"`
	LogFile      string   `toml:"log_file"`
	LogLevel     string   `toml:"log_level"`
	StartPanel   string   `toml:"start_panel"`
	DragSettleMS *int     `toml:"drag_settle_ms"`
	FrameRate    *int     `toml:"frame_rate"`
	Globe        rawGlobe `toml:"globe"`
}

type rawGlobe struct {
	RotationPerFrame *float64 `toml:"rotation_per_frame"`
	MaxSize          *int     `toml:"max_size"`
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		LogFile:    mustExpand(defaultLogFile),
		LogLevel:   defaultLogLevel,
		DragSettle: defaultDragSettle,
		FrameRate:  defaultFrameRate,
		Globe: Globe{
			RotationPerFrame: defaultRotation,
			MaxSize:          defaultGlobeSize,
		},
	}
}

// Load reads the config file at path (or the default location), applies
// environment overrides and validates the result. A missing file is not an
// error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		var raw rawConfig
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		if err := raw.apply(&cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (raw rawConfig) apply(cfg *Config) error {
	if v := strings.TrimSpace(raw.Content); v != "" {
		expanded, err := expandPath(v)
		if err != nil {
			return fmt.Errorf("content path: %w", err)
		}
		cfg.ContentPath = expanded
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		expanded, err := expandPath(v)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		cfg.LogFile = expanded
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.StartPanel); v != "" {
		cfg.StartPanel = strings.ToLower(v)
	}
	if raw.DragSettleMS != nil {
		cfg.DragSettle = time.Duration(*raw.DragSettleMS) * time.Millisecond
	}
	if raw.FrameRate != nil {
		cfg.FrameRate = *raw.FrameRate
	}
	if raw.Globe.RotationPerFrame != nil {
		cfg.Globe.RotationPerFrame = *raw.Globe.RotationPerFrame
	}
	if raw.Globe.MaxSize != nil {
		cfg.Globe.MaxSize = *raw.Globe.MaxSize
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvContent)); v != "" {
		expanded, err := expandPath(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvContent, err)
		}
		cfg.ContentPath = expanded
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		expanded, err := expandPath(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogFile, err)
		}
		cfg.LogFile = expanded
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvStartPanel)); v != "" {
		cfg.StartPanel = strings.ToLower(v)
	}
	return nil
}

// FrameInterval is the time between animation frames.
func (c Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / defaultFrameRate
	}
	return time.Second / time.Duration(c.FrameRate)
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

// ExpandPath resolves a leading "~" and makes the path absolute.
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
