package app

import (
	"log/slog"

	"painel.telasesalas.org/internal/appconf"
	"painel.telasesalas.org/internal/board"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the configuration, a logger and the board loaded at
// startup. The board is read only after startup and shared by every request.
type Application struct {
	Config appconf.Config
	Logger *slog.Logger
	Board  *board.Table
}

// Title returns the dashboard heading, falling back to the default one.
func (app *Application) Title() string {
	if app.Config.Title != "" {
		return app.Config.Title
	}
	return appconf.DefaultConfig().Title
}
