package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"painel.telasesalas.org/internal/app"
	"painel.telasesalas.org/internal/logging"
	"painel.telasesalas.org/internal/restapi"
	"painel.telasesalas.org/internal/telemetry"
	"painel.telasesalas.org/internal/webui"
)

const shutdownTimeout = 10 * time.Second

// newHandler mounts the dashboard, the JSON API and the Prometheus endpoint
// on one router and wraps it with the shared middleware. The closer stops
// the API's background work.
func newHandler(application *app.Application) (http.Handler, io.Closer, error) {
	api := restapi.NewRestAPI(application)

	ui, err := webui.NewWebUI(application)
	if err != nil {
		_ = api.Close()
		return nil, nil, err
	}

	metrics := telemetry.New()
	metrics.ObserveBoard(application.Board)

	router := httprouter.New()
	api.SetRoutes(router)
	ui.SetRoutes(router)
	router.Handler(http.MethodGet, "/metrics", metrics.Handler())

	return api.Middleware(metrics.Middleware(router)), api, nil
}

func newServer(application *app.Application, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", application.Config.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(application.Logger.Handler(), slog.LevelError),
	}
}

// serve runs srv until ctx is cancelled, then drains open requests and
// closes closers.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger, closers ...io.Closer) error {
	defer func() {
		for _, c := range closers {
			logging.SafeCloseWithLogging(c, logger, "server_shutdown")
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server", "component", "http_server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
