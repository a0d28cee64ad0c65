package app

import (
	"log/slog"

	"painel.telasesalas.org/internal/appconf"
	"painel.telasesalas.org/internal/board"
	"painel.telasesalas.org/internal/metrics"
)

// LoadBoard reads the CSV export named by cfg and checks it carries every
// column the metrics need.
func LoadBoard(cfg appconf.Config, logger *slog.Logger) (*board.Table, error) {
	delimiter, err := cfg.Data.DelimiterRune()
	if err != nil {
		return nil, err
	}

	table, err := board.Load(cfg.Data.Path, board.Options{
		Delimiter: delimiter,
		Encoding:  cfg.Data.Encoding,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	if err := metrics.Validate(table); err != nil {
		return nil, err
	}

	return table, nil
}

// New loads the board and assembles the Application.
func New(cfg appconf.Config, logger *slog.Logger) (*Application, error) {
	table, err := LoadBoard(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config: cfg,
		Logger: logger,
		Board:  table,
	}, nil
}
