package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/cristosalva/cristosalva/internal/config"
	"github.com/cristosalva/cristosalva/internal/content"
	"github.com/cristosalva/cristosalva/internal/hero"
	"github.com/cristosalva/cristosalva/internal/input"
	"github.com/cristosalva/cristosalva/internal/logging"
	"github.com/cristosalva/cristosalva/internal/prefs"
	"github.com/cristosalva/cristosalva/internal/ui"
)

// Options configure the application. Non-empty fields override the config
// file and preferences for this run only.
type Options struct {
	ConfigPath  string
	ContentPath string
	PrefsPath   string // empty uses default ~/.config/cristosalva/prefs.toml
	Theme       string
	StartPanel  string
	LogLevel    string
}

// Env is everything loaded before the UI starts.
type Env struct {
	Config    config.Config
	Site      content.Site
	Prefs     prefs.Prefs
	PrefsPath string
	Panel     hero.Panel
	Logger    zerolog.Logger

	closer io.Closer
}

// Close flushes and closes the log file.
func (e *Env) Close() error {
	if e == nil || e.closer == nil {
		return nil
	}
	return e.closer.Close()
}

// Load reads configuration, opens the log, and loads content and
// preferences, applying the overrides in opts.
func Load(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.ContentPath); v != "" {
		cfg.ContentPath = v
	}
	if v := strings.TrimSpace(opts.StartPanel); v != "" {
		cfg.StartPanel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	panel, err := hero.ParsePanel(cfg.StartPanel)
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(logging.Options{
		Level:         cfg.LogLevel,
		Path:          cfg.LogFile,
		HumanReadable: true,
	})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	site, err := content.Load(cfg.ContentPath)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("load content: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)
	if !slices.Contains(ui.ThemeNames(), userPrefs.Theme) {
		logger.Warn().Str("theme", userPrefs.Theme).Msg("unknown theme in preferences; using default")
		userPrefs.Theme = prefs.Defaults().Theme
	}
	if v := strings.TrimSpace(opts.Theme); v != "" {
		if !slices.Contains(ui.ThemeNames(), v) {
			_ = closer.Close()
			return nil, fmt.Errorf("unknown theme %q (available: %s)", v, strings.Join(ui.ThemeNames(), ", "))
		}
		userPrefs.Theme = v
	}

	logger.Info().
		Str("content", displayPath(cfg.ContentPath)).
		Str("panel", panel.String()).
		Str("theme", userPrefs.Theme).
		Msg("starting")

	return &Env{
		Config:    cfg,
		Site:      site,
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
		Panel:     panel,
		Logger:    logger,
		closer:    closer,
	}, nil
}

// Run boots the TUI until the user quits or the context is cancelled. When
// stdout is not a terminal it writes the static page instead.
func Run(ctx context.Context, opts Options) error {
	env, err := Load(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		env.Logger.Debug().Msg("stdout is not a terminal; writing static page")
		return WriteStatic(os.Stdout, env, staticWidth)
	}

	err = ui.Run(ui.Options{
		Context:    ctx,
		Site:       env.Site,
		Config:     env.Config,
		Prefs:      env.Prefs,
		PrefsPath:  env.PrefsPath,
		StartPanel: env.Panel,
		Logger:     env.Logger,
		Bus:        &input.Bus{},
	})
	if err != nil {
		env.Logger.Error().Err(err).Msg("ui exited with error")
		return fmt.Errorf("run ui: %w", err)
	}
	env.Logger.Info().Msg("exiting")
	return nil
}

// staticWidth is the page width used when output is not a terminal.
const staticWidth = 80

// WriteStatic renders every section to w.
func WriteStatic(w io.Writer, env *Env, width int) error {
	out, err := ui.RenderStatic(env.Site, width)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}

func displayPath(path string) string {
	if path == "" {
		return "(embedded)"
	}
	return path
}
