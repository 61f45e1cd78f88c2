package cli

import (
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/ventureos/internal/config"
	"github.com/alexanderramin/ventureos/internal/service"
	"github.com/alexanderramin/ventureos/internal/session"
)

// App holds references to everything CLI commands and the TUI use.
type App struct {
	Config    config.Config
	Simulator *session.Simulator
	Generator session.Generator
	Auth      session.Authenticator
	Archive   service.ArchiveService
	Export    service.ExportService
	Logger    *slog.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool

	// Now stamps history listings and the log lines of seeded headless runs.
	// Nil means time.Now.
	Now func() time.Time
}

// NewController returns a fresh controller that logs its transitions.
func (a *App) NewController() *session.Controller {
	return session.NewController(session.WithObserver(session.LogTransitionObserver{Logger: a.logger()}))
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a.Logger
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
