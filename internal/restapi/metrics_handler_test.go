package restapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"painel.telasesalas.org/internal/metrics"
)

func TestMetricsHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/metrics.json?key=TEST&period=Janeiro+-+2024")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)

	entry := entryOf(t, model)
	assert.Equal(t, "Janeiro - 2024", entry["period"])
	assert.Equal(t, float64(3), entry["rows"])

	values, ok := entry["values"].(map[string]interface{})
	require.True(t, ok)

	expected := map[string]float64{
		metrics.NameInProgress:             3,
		metrics.NameDevelopments:           2,
		metrics.NameProjects:               3,
		metrics.NameAwaitingMaterial:       1,
		metrics.NameFinalDesign:            1,
		metrics.NameDesignAdjustments:      1,
		metrics.NameFirstScreens:           2,
		metrics.NameFinalProgramming:       1,
		metrics.NameProgrammingAdjustments: 1,
		metrics.NameDelivered:              1,
		metrics.NameOnHold:                 2,
	}
	for name, want := range expected {
		assert.Equal(t, want, values[name], name)
	}

	list, ok := entry["metrics"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, len(metrics.Names()))
	first, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, metrics.NameInProgress, first["name"])
}

func TestMetricsHandlerDefaultsToFirstPeriod(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/metrics.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.Equal(t, "Fevereiro - 2024", entry["period"])
	assert.Equal(t, float64(1), entry["rows"])
}

func TestMetricsHandlerUnknownPeriod(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/metrics.json?key=TEST&period=Mar%C3%A7o+-+2030")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}

func TestMetricsHandlerRejectsInvalidPeriod(t *testing.T) {
	api := createTestApi(t)
	req := httptest.NewRequest(http.MethodGet, "/api/metrics.json?key=TEST&period=%3Cscript%3E", nil)
	rec := httptest.NewRecorder()

	newRouter(api).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, []string{"period contains invalid characters"}, body.FieldErrors["period"])
}

func TestPeriodMetricsHandler(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status int
		rows   float64
	}{
		{"plain", "/api/periods/Fevereiro%20-%202024?key=TEST", http.StatusOK, 1},
		{"json suffix", "/api/periods/Janeiro%20-%202024.json?key=TEST", http.StatusOK, 3},
		{"unknown", "/api/periods/Abril%20-%202024?key=TEST", http.StatusNotFound, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, resp, model := serveAndRetrieveEndpoint(t, tt.path)

			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.rows, entryOf(t, model)["rows"])
			}
		})
	}
}

func TestMetricsHandlerMissingColumn(t *testing.T) {
	api := createTestApi(t)
	api.Board = readTable(t, "MÊS,ANO,FASE\nJaneiro,2024,Entregue\n")

	req := httptest.NewRequest(http.MethodGet, "/api/metrics.json?key=TEST", nil)
	rec := httptest.NewRecorder()
	newRouter(api).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}

const irregularPeriodsCSV = `EMPREENDIMENTO,PROJETO,MATERIAL,DESIGN FINAL,FASE,PRIMEIRAS TELAS,PROGRAMAÇÃO FINAL,MÊS,ANO
Sala A,Tela Espaçada,ok,,Entregue,,, Janeiro,2024
Sala B,Tela Dupla,ok,,Design,,,Jan--Fev,2024
Sala C,Tela Comum,ok,,Design,,,Março,2024
`

func TestEveryListedPeriodIsSelectable(t *testing.T) {
	api := createTestApi(t)
	api.Board = readTable(t, irregularPeriodsCSV)

	periods := api.Board.Periods()
	require.Contains(t, periods, " Janeiro - 2024")
	require.Contains(t, periods, "Jan--Fev - 2024")

	for _, period := range periods {
		t.Run(period, func(t *testing.T) {
			endpoints := []string{
				"/api/metrics.json?key=TEST&period=" + url.QueryEscape(period),
				"/api/periods/" + url.PathEscape(period) + "?key=TEST",
			}
			for _, endpoint := range endpoints {
				resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)

				require.Equal(t, http.StatusOK, resp.StatusCode, endpoint)
				entry := entryOf(t, model)
				assert.Equal(t, period, entry["period"], endpoint)
				assert.Equal(t, float64(1), entry["rows"], endpoint)
			}
		})
	}
}
