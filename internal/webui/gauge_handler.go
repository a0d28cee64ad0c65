package webui

import (
	"bytes"
	"net/http"

	"painel.telasesalas.org/internal/gauge"
	"painel.telasesalas.org/internal/logging"
)

// gaugeHandler draws the "Em Andamento" gauge of ?period= as SVG.
func (webUI *WebUI) gaugeHandler(w http.ResponseWriter, r *http.Request) {
	period, ok := webUI.selectedPeriod(r)
	if !ok {
		http.Error(w, "invalid period", http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := gauge.Render(&buf, webUI.Board.Filter(period).Len(), webUI.Gauge); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to render gauge", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = buf.WriteTo(w)
}
