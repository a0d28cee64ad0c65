package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"painel.telasesalas.org/internal/app"
	"painel.telasesalas.org/internal/logging"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	logger := logging.NewLogger(os.Stdout, level, cfg.Log.Format)
	if err != nil {
		logger.Warn("falling back to info level", "error", err)
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		_ = logging.StartupFailure(logger, "failed to load board", err)
		os.Exit(1)
	}

	handler, closer, err := newHandler(application)
	if err != nil {
		_ = logging.StartupFailure(logger, "failed to build handler", err)
		os.Exit(1)
	}

	srv := newServer(application, handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String(), "data", cfg.Data.Path)
	if err := serve(ctx, srv, logger, closer); err != nil {
		logger.Error("server stopped", "error", err)
		stop()
		os.Exit(1)
	}
}
