package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/five82/signet-rx/internal/anim"
	"github.com/five82/signet-rx/internal/config"
	"github.com/five82/signet-rx/internal/prefs"
	"github.com/five82/signet-rx/internal/push"
	"github.com/five82/signet-rx/internal/state"
	"github.com/five82/signet-rx/internal/ui"
)

// Options configure the dashboard.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/signet-rx/prefs.toml
	Layout     string // overrides config and prefs when set
	FPS        int    // zero keeps the configured rate
}

// settings is the merged view of config file, saved prefs and flags.
type settings struct {
	cfg   config.Config
	theme string
}

// resolve merges cfg with the saved preferences and command line overrides.
// Precedence, lowest first: config file, prefs, flags.
func resolve(cfg config.Config, p prefs.Prefs, opts Options) (settings, error) {
	if p.Layout != "" {
		if layout, err := config.ParseLayout(p.Layout); err == nil {
			cfg.Layout = layout
		}
	}
	if opts.Layout != "" {
		layout, err := config.ParseLayout(opts.Layout)
		if err != nil {
			return settings{}, err
		}
		cfg.Layout = layout
	}
	if opts.FPS != 0 {
		cfg.FPS = config.ClampFPS(opts.FPS)
	}
	theme := p.Theme
	if theme == "" {
		theme = prefs.DefaultTheme()
	}
	return settings{cfg: cfg, theme: theme}, nil
}

// Run boots the dashboard until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	s, err := resolve(cfg, userPrefs, opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := OpenLog(s.cfg.LogFile, s.cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	store := &state.Store{}
	channel, err := push.New(store, push.Options{
		APIBind:        s.cfg.APIBind,
		EventsPath:     s.cfg.EventsPath,
		InitialBackoff: s.cfg.ReconnectInitial,
		MaxBackoff:     s.cfg.ReconnectMax,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("init push channel: %w", err)
	}

	logger.WithFields(log.Fields{
		"endpoint": channel.URL(),
		"layout":   s.cfg.Layout,
		"fps":      s.cfg.FPS,
	}).Info("dashboard starting")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	channel.Start(ctx)

	err = ui.Run(ui.Options{
		Context:    ctx,
		Store:      store,
		Source:     anim.NewDemoSource(nil, time.Time{}),
		Layout:     s.cfg.Layout,
		ThemeName:  s.theme,
		PrefsPath:  opts.PrefsPath,
		LogPath:    s.cfg.LogFile,
		FrameEvery: s.cfg.FrameInterval(),
		Logger:     logger,
	})
	if err != nil {
		logger.WithError(err).Error("dashboard exited")
		return err
	}
	logger.Info("dashboard stopped")
	return nil
}
