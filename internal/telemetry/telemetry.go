// Package telemetry exposes Prometheus counters for the HTTP server and the
// loaded board on a private registry.
package telemetry

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"painel.telasesalas.org/internal/board"
)

const namespace = "painel"

// Metrics holds the collectors of one server.
type Metrics struct {
	registry      *prometheus.Registry
	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	boardRows     prometheus.Gauge
	boardPeriods  prometheus.Gauge
	boardLoadedAt prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		boardRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "board_rows",
			Help:      "Rows in the loaded Pipefy export.",
		}),
		boardPeriods: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "board_periods",
			Help:      "Distinct periods in the loaded Pipefy export.",
		}),
		boardLoadedAt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "board_loaded_timestamp_seconds",
			Help:      "Unix time the export was loaded.",
		}),
	}

	m.registry.MustRegister(m.requests, m.latency, m.boardRows, m.boardPeriods, m.boardLoadedAt)
	return m
}

// ObserveBoard records the size of the loaded table.
func (m *Metrics) ObserveBoard(table *board.Table) {
	m.boardRows.Set(float64(table.Len()))
	m.boardPeriods.Set(float64(len(table.Periods())))
	m.boardLoadedAt.Set(float64(table.LoadedAt().Unix()))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Middleware counts every request and its latency.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := RouteLabel(r.URL.Path)
		m.requests.With(prometheus.Labels{
			"route":  route,
			"method": r.Method,
			"status": strconv.Itoa(rec.status),
		}).Inc()
		m.latency.With(prometheus.Labels{"route": route}).Observe(time.Since(start).Seconds())
	})
}

var knownRoutes = map[string]bool{
	"/":                 true,
	"/gauge.svg":        true,
	"/logo.png":         true,
	"/debug/":           true,
	"/healthz":          true,
	"/metrics":          true,
	"/api/periods.json": true,
	"/api/metrics.json": true,
}

// RouteLabel maps a request path to its route pattern so that period
// values and unknown paths do not create new series.
func RouteLabel(path string) string {
	switch {
	case knownRoutes[path]:
		return path
	case strings.HasPrefix(path, "/api/periods/"):
		return "/api/periods/:period"
	case strings.HasPrefix(path, "/static/"):
		return "/static/*filepath"
	default:
		return "other"
	}
}
