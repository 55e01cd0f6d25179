package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/porrinha/internal/config"
	"github.com/specialistvlad/porrinha/internal/ctxlog"
	"github.com/specialistvlad/porrinha/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	loader   config.Loader
}

// New is the constructor for the main application. Game output goes to outW
// and logs to logW. Without modules, every built-in player is registered.
func New(outW, logW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := registry.NewWithModules(modules...)
	logger.Debug("All player modules registered.", "count", len(modules), "kinds", reg.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		loader:   loader,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Context returns ctx carrying the application logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
