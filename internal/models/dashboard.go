package models

import (
	"painel.telasesalas.org/internal/board"
	"painel.telasesalas.org/internal/metrics"
)

// PeriodsEntry lists the selectable periods and the one shown by default.
type PeriodsEntry struct {
	Default string   `json:"default"`
	Periods []string `json:"periods"`
}

// MetricsEntry holds the counters of one period, both keyed by name and in
// dashboard order.
type MetricsEntry struct {
	Period  string           `json:"period"`
	Rows    int              `json:"rows"`
	Values  map[string]int   `json:"values"`
	Metrics []metrics.Metric `json:"metrics"`
}

// HealthModel reports the state of the loaded board.
type HealthModel struct {
	Status   string           `json:"status"`
	Rows     int              `json:"rows"`
	Periods  int              `json:"periods"`
	Source   string           `json:"source"`
	LoadedAt CurrentTimeModel `json:"loadedAt"`
}

func NewPeriodsEntry(table *board.Table) PeriodsEntry {
	periods := table.Periods()
	if periods == nil {
		periods = []string{}
	}
	return PeriodsEntry{
		Default: table.DefaultPeriod(),
		Periods: periods,
	}
}

func NewMetricsEntry(view board.View, summary metrics.Summary) MetricsEntry {
	return MetricsEntry{
		Period:  view.Period(),
		Rows:    view.Len(),
		Values:  summary.AsMap(),
		Metrics: summary.Items(),
	}
}

func NewHealthModel(table *board.Table) HealthModel {
	return HealthModel{
		Status:   "ok",
		Rows:     table.Len(),
		Periods:  len(table.Periods()),
		Source:   table.Source(),
		LoadedAt: NewCurrentTimeModel(table.LoadedAt()),
	}
}
