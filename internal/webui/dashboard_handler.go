package webui

import (
	"bytes"
	"net/http"

	"painel.telasesalas.org/internal/board"
	"painel.telasesalas.org/internal/logging"
	"painel.telasesalas.org/internal/metrics"
	"painel.telasesalas.org/internal/utils"
)

// section is one block of metric tiles under a heading.
type section struct {
	Heading string
	Icon    string
	Gauge   bool
	Tiles   []metrics.Metric
}

type tableRow struct {
	Index int
	Cells []string
}

type dashboardPage struct {
	Title      string
	HasLogo    bool
	Periods    []string
	Selected   string
	GaugeValue int
	GaugeColor string
	Sections   []section
	Columns    []string
	Rows       []tableRow
}

// sectionLayout lists the tiles of each dashboard block in display order.
// "Em Andamento" is drawn as the gauge of the first block.
var sectionLayout = []struct {
	heading string
	icon    string
	gauge   bool
	names   []string
}{
	{"Visão Geral do Status", "📊", true, []string{metrics.NameDevelopments, metrics.NameProjects}},
	{"Progresso das Etapas", "⚙️", false, []string{
		metrics.NameAwaitingMaterial,
		metrics.NameFinalDesign,
		metrics.NameDesignAdjustments,
		metrics.NameFirstScreens,
		metrics.NameFinalProgramming,
		metrics.NameProgrammingAdjustments,
	}},
	{"Entregas", "🚎", false, []string{metrics.NameDelivered, metrics.NameOnHold}},
}

func buildSections(summary metrics.Summary) []section {
	values := summary.AsMap()
	sections := make([]section, 0, len(sectionLayout))
	for _, l := range sectionLayout {
		s := section{Heading: l.heading, Icon: l.icon, Gauge: l.gauge}
		for _, name := range l.names {
			s.Tiles = append(s.Tiles, metrics.Metric{Name: name, Value: values[name]})
		}
		sections = append(sections, s)
	}
	return sections
}

// numberedRows renders the view with row numbers restarting at 0.
func numberedRows(view board.View) []tableRow {
	rows := view.Rows()
	out := make([]tableRow, len(rows))
	for i, cells := range rows {
		out[i] = tableRow{Index: i, Cells: cells}
	}
	return out
}

// selectedPeriod reads ?period=, falling back to the default period. The
// second result is false when the value is neither a listed period nor a
// well formed one.
func (webUI *WebUI) selectedPeriod(r *http.Request) (string, bool) {
	period := utils.PeriodParam(r, webUI.Board.HasPeriod)
	if period == "" {
		return webUI.Board.DefaultPeriod(), true
	}
	if err := utils.ValidateKnownPeriod(period, webUI.Board.HasPeriod); err != nil {
		return "", false
	}
	return period, true
}

func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	period, ok := webUI.selectedPeriod(r)
	if !ok {
		http.Error(w, "invalid period", http.StatusBadRequest)
		return
	}

	view := webUI.Board.Filter(period)
	summary, err := metrics.Compute(view)
	if err != nil {
		logging.LogError(logger, "failed to compute metrics", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := dashboardPage{
		Title:      webUI.Title(),
		HasLogo:    webUI.logoAvailable(),
		Periods:    webUI.Board.Periods(),
		Selected:   period,
		GaugeValue: summary.InProgress,
		GaugeColor: webUI.Gauge.StepColor(float64(summary.InProgress)),
		Sections:   buildSections(summary),
		Columns:    view.Columns(),
		Rows:       numberedRows(view),
	}

	var buf bytes.Buffer
	if err := webUI.templates.ExecuteTemplate(&buf, "dashboard.html", page); err != nil {
		logging.LogError(logger, "failed to render dashboard", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
