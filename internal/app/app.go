package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/citylink/internal/config"
	"github.com/specialistvlad/citylink/internal/ctxlog"
	"github.com/specialistvlad/citylink/internal/edgestore"
	"github.com/specialistvlad/citylink/internal/reach"
	"github.com/specialistvlad/citylink/internal/report"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger   *slog.Logger
	settings config.Settings
	store    *edgestore.Store
	engine   *reach.Engine
	report   *report.Writer
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW. Settings are resolved as defaults, then the settings
// file (if any) through loader, then explicit flags.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	// The settings file may itself change the log level, so it is read with a
	// provisional logger built from defaults and flags only.
	provisional := config.Defaults().Merge(appConfig.Flags)
	logger := newLogger(provisional.LogLevel, provisional.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	var fromFile config.Settings
	if appConfig.SettingsPath != "" {
		if loader == nil {
			return nil, fmt.Errorf("settings file %s given but no loader configured", appConfig.SettingsPath)
		}
		loaded, err := loader.Load(ctx, appConfig.SettingsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		fromFile = *loaded
	}

	settings := config.Defaults().Merge(fromFile).Merge(appConfig.Flags)
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	logger = newLogger(settings.LogLevel, settings.LogFormat, logW)
	logger.Debug("Logger configured successfully.",
		"input", settings.InputPath,
		"log_level", settings.LogLevel,
		"log_format", settings.LogFormat,
		"echo_connections", settings.Echo(),
	)

	store := edgestore.New()
	return &App{
		logger:   logger,
		settings: settings,
		store:    store,
		engine:   reach.New(store),
		report:   report.New(outW),
	}, nil
}

// Settings returns the resolved settings. This is primarily for testing.
func (a *App) Settings() config.Settings {
	return a.settings
}

// Store returns the application's edge store. This is primarily for testing.
func (a *App) Store() *edgestore.Store {
	return a.store
}
