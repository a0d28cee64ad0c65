package webui

import (
	"bytes"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"painel.telasesalas.org/internal/metrics"
)

type debugData struct {
	Title string
	Pre   string
}

func (webUI *WebUI) writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	var buf bytes.Buffer
	err := webUI.templates.ExecuteTemplate(&buf, "debug_index.html", debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	table := webUI.Board

	switch dataType {
	case "source":
		data = map[string]interface{}{
			"source":   table.Source(),
			"loadedAt": table.LoadedAt(),
			"rows":     table.Len(),
		}
		title = "Board - Source"
	case "columns":
		data = table.Columns()
		title = "Board - Columns"
	case "periods":
		data = table.Periods()
		title = "Board - Periods"
	case "summaries":
		summaries, err := metrics.ByPeriod(table)
		if err != nil {
			data = map[string]string{"error": err.Error()}
		} else {
			data = summaries
		}
		title = "Metrics - Summary per Period"
	case "rows":
		data = table.All().Rows()
		title = "Board - Rows"
	default:
		data = map[string]string{
			"error": "Please use one of the following: source, columns, periods, summaries, rows.",
		}
		title = "Choose a data type"
	}

	webUI.writeDebugData(w, title, data)
}
