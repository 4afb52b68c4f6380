package app

import (
	"io"
	"log/slog"
)

// App encapsulates one decode invocation: its configuration, its logger and
// the streams it writes to.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp returns an App that writes the presentation to outW and logs and
// diagnostics to errW.
func NewApp(outW, errW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: cfg,
	}
}

// Config returns the configuration the App was built with.
func (a *App) Config() *Config {
	return a.config
}
