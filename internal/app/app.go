package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/smallgraph/internal/ctxlog"
	"github.com/specialistvlad/smallgraph/internal/scenario"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader *scenario.Loader
}

// NewApp is the constructor for the main application. Reports go to outW and
// logs to logW, so machine-readable output is never mixed with log lines.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: scenario.NewLoader(),
	}
}

// Context returns ctx carrying the app's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
